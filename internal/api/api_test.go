package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"path/filepath"
	"testing"
	"time"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/backend/memory"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/notify"
	"github.com/bondly/bondly/internal/outbox"
	"github.com/bondly/bondly/internal/readstate"
	"github.com/bondly/bondly/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

const self = "me"

type services struct {
	be       *memory.Backend
	conv     *conversation.Store
	tracker  *readstate.Tracker
	notes    *notify.Center
	contacts *ContactService
	messages *MessageService
	notify   *NotificationService
}

func newServices(t *testing.T) *services {
	t.Helper()
	db, err := store.OpenMigrated(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	be := memory.New()
	memory.SeedDemo(be, self, "Me")
	b := bus.New()
	dir := contacts.New(self, be, db, b, nil)
	if err := dir.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	conv := conversation.New(self, b, dir, nil)
	tracker := readstate.New(conv, readstate.BackendPersister{Backend: be, Self: self}, db, readstate.Options{}, nil)
	sender := outbox.NewSender(conv, outbox.BackendGateway{Backend: be}, db, b, outbox.Options{}, nil)
	t.Cleanup(sender.Close)
	notes := notify.New(b)

	return &services{
		be:       be,
		conv:     conv,
		tracker:  tracker,
		notes:    notes,
		contacts: NewContactService(dir, tracker),
		messages: NewMessageService(conv, dir, sender, tracker, db, b, nil),
		notify:   NewNotificationService(notes),
	}
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{outbox.ErrEmptyBody, codes.InvalidArgument},
		{fmt.Errorf("add: %w", contacts.ErrInvalidContact), codes.InvalidArgument},
		{errNoTarget, codes.InvalidArgument},
		{conversation.ErrUnknownMessage, codes.NotFound},
		{outbox.ErrInFlight, codes.FailedPrecondition},
		{&backend.Error{Op: "query", Kind: backend.ErrUnauthorized}, codes.Unauthenticated},
		{&backend.Error{Op: "insert", Kind: backend.ErrTransient}, codes.Unavailable},
		{context.Canceled, codes.Canceled},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		if got := grpcstatus.Code(toStatus(tt.err)); got != tt.want {
			t.Errorf("toStatus(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
	if toStatus(nil) != nil {
		t.Error("toStatus(nil) != nil")
	}
}

func TestSendFailureThenRetry(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	sarah := &bondlyv1.Target{Counterpart: "sarah"}

	if _, err := s.messages.SendText(ctx, &bondlyv1.SendTextRequest{Target: sarah, Body: "   "}); grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("blank body code = %v", grpcstatus.Code(err))
	}
	if _, err := s.messages.SendText(ctx, &bondlyv1.SendTextRequest{Body: "hi"}); grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("missing target code = %v", grpcstatus.Code(err))
	}

	s.be.SetOffline(true)
	resp, err := s.messages.SendText(ctx, &bondlyv1.SendTextRequest{Target: sarah, Body: "test", Wait: true})
	if err != nil {
		t.Fatalf("SendText() error = %v", err)
	}
	if resp.Message.State != "failed" || resp.Message.Body != "test" || !resp.Message.FromMe {
		t.Fatalf("failed send = %+v", resp.Message)
	}

	s.be.SetOffline(false)
	retry, err := s.messages.RetrySend(ctx, &bondlyv1.RetrySendRequest{LocalId: resp.Message.LocalId, Wait: true})
	if err != nil {
		t.Fatalf("RetrySend() error = %v", err)
	}
	if retry.Message.State != "confirmed" || retry.Message.LocalId != resp.Message.LocalId {
		t.Errorf("retried = %+v", retry.Message)
	}

	conv, err := s.messages.GetConversation(ctx, &bondlyv1.GetConversationRequest{Target: sarah})
	if err != nil {
		t.Fatal(err)
	}
	if conv.Title != "Sarah Chen" || len(conv.Messages) != 1 {
		t.Errorf("conversation = %+v", conv)
	}

	if _, err := s.messages.RetrySend(ctx, &bondlyv1.RetrySendRequest{LocalId: "nope"}); grpcstatus.Code(err) != codes.NotFound {
		t.Errorf("unknown retry code = %v", grpcstatus.Code(err))
	}
}

func TestOpenConversationMarksRead(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	s.conv.AppendIncoming(conversation.Message{ID: "s1", SenderID: "sarah", ReceiverID: self, Body: "Hey!", CreatedAt: time.Now()})

	friends, _ := s.contacts.ListFriends(ctx, &bondlyv1.ListContactsRequest{})
	unread := map[string]int32{}
	for _, c := range friends.Contacts {
		unread[c.Id] = c.Unread
	}
	if unread["sarah"] != 1 {
		t.Errorf("sarah unread = %d, want 1", unread["sarah"])
	}

	open, err := s.messages.OpenConversation(ctx, &bondlyv1.OpenConversationRequest{Target: &bondlyv1.Target{Counterpart: "sarah"}})
	if err != nil || open.MarkedRead != 1 {
		t.Fatalf("OpenConversation() = %+v, %v", open, err)
	}
	list, _ := s.messages.ListConversations(ctx, &bondlyv1.ListConversationsRequest{})
	if len(list.Conversations) != 1 || list.Conversations[0].Unread != 0 {
		t.Errorf("conversations = %+v", list.Conversations)
	}
	if s.tracker.IsOpen(conversation.DirectKey(self, "sarah")) {
		t.Error("unary open left the conversation open")
	}
}

func serve(t *testing.T, msgs *MessageService) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	bondlyv1.RegisterMessageServiceServer(srv, msgs)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for condition")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestViewConversationEndsWithClient(t *testing.T) {
	s := newServices(t)
	key := conversation.DirectKey(self, "sarah")
	s.conv.AppendIncoming(conversation.Message{ID: "s1", SenderID: "sarah", ReceiverID: self, Body: "Hey!", CreatedAt: time.Now()})

	conn := serve(t, s.messages)
	stream, err := bondlyv1.NewMessageServiceClient(conn).ViewConversation(context.Background(), &bondlyv1.OpenConversationRequest{Target: &bondlyv1.Target{Counterpart: "sarah"}})
	if err != nil {
		t.Fatal(err)
	}
	first, err := stream.Recv()
	if err != nil || first.Key != string(key) || first.MarkedRead != 1 {
		t.Fatalf("first response = %+v, %v", first, err)
	}
	if !s.tracker.IsOpen(key) {
		t.Fatal("conversation not open while viewed")
	}
	s.conv.AppendIncoming(conversation.Message{ID: "s2", SenderID: "sarah", ReceiverID: self, Body: "still there?", CreatedAt: time.Now()})
	if s.conv.UnreadCount(key) != 0 {
		t.Error("message arriving while viewed is unread")
	}

	// The client goes away without closing the view.
	_ = conn.Close()
	waitFor(t, func() bool { return !s.tracker.IsOpen(key) })

	s.conv.AppendIncoming(conversation.Message{ID: "s3", SenderID: "sarah", ReceiverID: self, Body: "hello?", CreatedAt: time.Now()})
	if s.conv.UnreadCount(key) != 1 {
		t.Errorf("UnreadCount() = %d after the viewer left, want 1", s.conv.UnreadCount(key))
	}
}

func TestViewConversationRequiresTarget(t *testing.T) {
	s := newServices(t)
	conn := serve(t, s.messages)
	t.Cleanup(func() { _ = conn.Close() })

	stream, err := bondlyv1.NewMessageServiceClient(conn).ViewConversation(context.Background(), &bondlyv1.OpenConversationRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := stream.Recv(); grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("Recv() code = %v, want InvalidArgument", grpcstatus.Code(err))
	}
}

func TestCloseEndsStreams(t *testing.T) {
	s := newServices(t)
	conn := serve(t, s.messages)
	t.Cleanup(func() { _ = conn.Close() })
	client := bondlyv1.NewMessageServiceClient(conn)
	ctx := context.Background()

	view, err := client.ViewConversation(ctx, &bondlyv1.OpenConversationRequest{Target: &bondlyv1.Target{Counterpart: "sarah"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := view.Recv(); err != nil {
		t.Fatal(err)
	}
	events, err := client.WatchEvents(ctx, &bondlyv1.WatchEventsRequest{})
	if err != nil {
		t.Fatal(err)
	}

	s.messages.Close()
	if _, err := view.Recv(); err == nil {
		t.Error("view stream still open after Close")
	}
	if _, err := events.Recv(); err == nil {
		t.Error("event stream still open after Close")
	}
	waitFor(t, func() bool { return !s.tracker.IsOpen(conversation.DirectKey(self, "sarah")) })
}

func TestPayloadStruct(t *testing.T) {
	type update struct {
		Key    string `json:"key"`
		Unread int    `json:"unread"`
	}
	st, err := payloadStruct(update{Key: "dm:me:sarah", Unread: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := st.AsMap(); got["key"] != "dm:me:sarah" || got["unread"] != float64(2) {
		t.Errorf("payload = %v", got)
	}

	st, err = payloadStruct("sarah")
	if err != nil || st.AsMap()["value"] != "sarah" {
		t.Errorf("scalar payload = %v, %v", st, err)
	}
	if st, err := payloadStruct(nil); st != nil || err != nil {
		t.Errorf("nil payload = %v, %v", st, err)
	}
	if _, err := payloadStruct(math.Inf(1)); err == nil {
		t.Error("unencodable payload accepted")
	}
}

func TestContactServiceAddAndRemove(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	if _, err := s.contacts.AddFriend(ctx, &bondlyv1.ContactRequest{ContactId: self}); grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("add self code = %v", grpcstatus.Code(err))
	}
	added, err := s.contacts.AddFriend(ctx, &bondlyv1.ContactRequest{ContactId: "emma"})
	if err != nil || added.Contact.DisplayName != "Emma Thompson" || added.Contact.Presence != "Active now" {
		t.Fatalf("AddFriend() = %+v, %v", added, err)
	}
	sugg, _ := s.contacts.ListSuggestions(ctx, &bondlyv1.ListContactsRequest{})
	for _, c := range sugg.Contacts {
		if c.Id == "emma" {
			t.Error("new friend still suggested")
		}
	}

	s.be.FailNext("delete", backend.TableFriendships, &backend.Error{Op: "delete", Table: "friendships", Kind: backend.ErrUnauthorized})
	if _, err := s.contacts.RemoveFriend(ctx, &bondlyv1.ContactRequest{ContactId: "emma"}); grpcstatus.Code(err) != codes.Unauthenticated {
		t.Errorf("unauthorized remove code = %v", grpcstatus.Code(err))
	}
	if _, err := s.contacts.RemoveFriend(ctx, &bondlyv1.ContactRequest{ContactId: "emma"}); err != nil {
		t.Errorf("RemoveFriend() error = %v", err)
	}
}

func TestSearchMessages(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	if _, err := s.messages.SearchMessages(ctx, &bondlyv1.SearchMessagesRequest{Query: " "}); grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("blank query code = %v", grpcstatus.Code(err))
	}
	resp, err := s.messages.SendText(ctx, &bondlyv1.SendTextRequest{Target: &bondlyv1.Target{Counterpart: "mike"}, Body: "yoga at seven?", Wait: true})
	if err != nil || resp.Message.State != "confirmed" {
		t.Fatalf("SendText() = %+v, %v", resp, err)
	}
	found, err := s.messages.SearchMessages(ctx, &bondlyv1.SearchMessagesRequest{Query: "YOGA"})
	if err != nil {
		t.Fatal(err)
	}
	if len(found.Results) != 1 || found.Results[0].Message.ReceiverId != "mike" {
		t.Errorf("results = %+v", found.Results)
	}
}

func TestNotificationService(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	n := s.notes.Add(notify.Notification{Type: notify.TypeFriend, Title: "Emma Thompson is now your friend"})
	s.notes.Add(notify.Notification{Type: notify.TypeEvent, Title: "New event"})

	list, _ := s.notify.ListNotifications(ctx, &bondlyv1.ListNotificationsRequest{})
	if len(list.Notifications) != 2 || list.Unread != 2 {
		t.Fatalf("list = %+v", list)
	}
	if _, err := s.notify.MarkNotificationRead(ctx, &bondlyv1.NotificationRequest{Id: "unknown"}); err != nil {
		t.Errorf("unknown id error = %v", err)
	}
	if _, err := s.notify.DismissNotification(ctx, &bondlyv1.NotificationRequest{Id: n.ID}); err != nil {
		t.Fatal(err)
	}
	all, _ := s.notify.MarkAllNotificationsRead(ctx, &emptypb.Empty{})
	if all.Marked != 1 {
		t.Errorf("marked = %d, want 1", all.Marked)
	}
}
