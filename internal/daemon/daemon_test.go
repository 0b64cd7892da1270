package daemon

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	apiv1 "github.com/bondly/bondly/internal/apiv1"
	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/backend/memory"
	"github.com/bondly/bondly/internal/lock"
	"github.com/bondly/bondly/internal/session"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// setHome points the session tree at a short temp dir so socket paths stay
// under the Unix socket length limit.
func setHome(t *testing.T) {
	t.Helper()
	dir, err := os.MkdirTemp("/tmp", "bondly-test-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	t.Setenv(session.HomeEnv, dir)
	for _, k := range []string{"BONDLY_BACKEND_URL", "BONDLY_API_KEY", "BONDLY_ACCESS_TOKEN"} {
		t.Setenv(k, "")
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for %s", what)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestFxModuleWiring(t *testing.T) {
	setHome(t)
	if err := fx.ValidateApp(Module(Params{SessionName: "fxtest"})); err != nil {
		t.Fatalf("ValidateApp() error = %v", err)
	}
}

func TestDaemonLifecycle(t *testing.T) {
	setHome(t)
	const name = "test"

	var remote *Remote
	var srv *Server
	app := fxtest.New(t, Module(Params{SessionName: name}), fx.Populate(&remote, &srv))
	app.RequireStart()
	stopped := false
	defer func() {
		if !stopped {
			app.RequireStop()
		}
	}()

	if srv.SocketPath() != session.SocketPath(name) {
		t.Errorf("socket = %s, want %s", srv.SocketPath(), session.SocketPath(name))
	}
	if _, err := lock.Acquire(session.Dir(name)); !errors.As(err, new(*lock.LockHeldError)) {
		t.Errorf("second Acquire() err = %v, want LockHeldError", err)
	}
	if holder, held := lock.Inspect(session.Dir(name)); !held || holder.PID != os.Getpid() {
		t.Errorf("Inspect() = %+v, %v", holder, held)
	}

	client, err := apiv1.NewClient(session.SocketPath(name))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = client.Close() }()
	ctx := context.Background()

	waitFor(t, "subscription", func() bool {
		st, err := client.Session.GetStatus(ctx, &bondlyv1.GetStatusRequest{})
		return err == nil && st.ChannelState == "SUBSCRIBED" && st.Unread == 1
	})
	st, _ := client.Session.GetStatus(ctx, &bondlyv1.GetStatusRequest{})
	if st.Session != name || st.UserId != "me" || st.Backend != "memory" || st.Friends != 2 {
		t.Errorf("status = %+v", st)
	}

	friends, err := client.Contact.ListFriends(ctx, &bondlyv1.ListContactsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(friends.Contacts) != 2 || friends.Contacts[0].DisplayName != "Mike Rodriguez" || friends.Contacts[1].Unread != 1 {
		t.Errorf("friends = %+v", friends.Contacts)
	}

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	stream, err := client.Message.WatchEvents(watchCtx, &bondlyv1.WatchEventsRequest{Prefixes: []string{"message."}})
	if err != nil {
		t.Fatal(err)
	}
	acks := make(chan *bondlyv1.Event, 8)
	go func() {
		for {
			evt, err := stream.Recv()
			if err != nil {
				close(acks)
				return
			}
			acks <- evt
		}
	}()
	// Give the server a moment to subscribe the stream to the bus.
	time.Sleep(50 * time.Millisecond)

	sent, err := client.Message.SendText(ctx, &bondlyv1.SendTextRequest{Target: &bondlyv1.Target{Counterpart: "sarah"}, Body: "Great, thanks!", Wait: true})
	if err != nil {
		t.Fatalf("SendText() error = %v", err)
	}
	if sent.Message.State != "confirmed" {
		t.Errorf("sent = %+v", sent.Message)
	}
	select {
	case evt := <-acks:
		if evt == nil || evt.Kind != "message.send_ack" {
			t.Errorf("event = %+v", evt)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no send_ack on the event stream")
	}

	// The realtime echo of the insert must not duplicate the entry.
	waitFor(t, "echo", func() bool {
		conv, err := client.Message.GetConversation(ctx, &bondlyv1.GetConversationRequest{Target: &bondlyv1.Target{Counterpart: "sarah"}})
		return err == nil && len(conv.Messages) == 2
	})
	time.Sleep(50 * time.Millisecond)
	conv, _ := client.Message.GetConversation(ctx, &bondlyv1.GetConversationRequest{Target: &bondlyv1.Target{Counterpart: "sarah"}})
	if len(conv.Messages) != 2 || conv.Messages[1].Body != "Great, thanks!" {
		t.Errorf("conversation = %+v", conv.Messages)
	}

	// A live message from Mike raises a notification.
	if _, err := remote.Backend.Insert(ctx, backend.TableMessages, backend.Row{"sender_id": "mike", "receiver_id": "me", "content": "Running late"}); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "notification", func() bool {
		n, err := client.Notification.ListNotifications(ctx, &bondlyv1.ListNotificationsRequest{})
		return err == nil && n.Unread == 1 && n.Notifications[0].Title == "Mike Rodriguez"
	})

	opened, err := client.Message.OpenConversation(ctx, &bondlyv1.OpenConversationRequest{Target: &bondlyv1.Target{Counterpart: "sarah"}})
	if err != nil || opened.MarkedRead != 1 {
		t.Errorf("OpenConversation() = %+v, %v", opened, err)
	}
	waitFor(t, "read persisted", func() bool {
		for _, r := range remote.Backend.(*memory.Backend).Rows(backend.TableMessages) {
			if r.String("id") == "demo-sarah-1" {
				read, _ := r["read"].(bool)
				return read
			}
		}
		return false
	})

	_, err = client.Message.SendText(ctx, &bondlyv1.SendTextRequest{Target: &bondlyv1.Target{Counterpart: "sarah"}, Body: " "})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("blank send code = %v", status.Code(err))
	}

	// A conversation still on screen must not hold up shutdown.
	view, err := client.Message.ViewConversation(ctx, &bondlyv1.OpenConversationRequest{Target: &bondlyv1.Target{Counterpart: "mike"}})
	if err != nil {
		t.Fatal(err)
	}
	if first, err := view.Recv(); err != nil || first.Key != "dm:me:mike" {
		t.Fatalf("ViewConversation() = %+v, %v", first, err)
	}

	cancelWatch()
	app.RequireStop()
	stopped = true

	if _, err := os.Stat(session.SocketPath(name)); !os.IsNotExist(err) {
		t.Errorf("socket still present: %v", err)
	}
	if _, held := lock.Inspect(session.Dir(name)); held {
		t.Error("lock still held after stop")
	}
}

func TestSecondDaemonFailsOnLock(t *testing.T) {
	setHome(t)
	if err := session.EnsureDir("busy"); err != nil {
		t.Fatal(err)
	}
	lk, err := lock.Acquire(session.Dir("busy"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = lk.Release() }()

	app := fx.New(Module(Params{SessionName: "busy"}), fx.NopLogger)
	if err := app.Err(); !errors.As(err, new(*lock.LockHeldError)) {
		t.Errorf("app.Err() = %v, want LockHeldError", err)
	}
}
