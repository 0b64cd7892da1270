package outbox

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/backend/memory"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/store"
)

const self = "me"

var (
	sarahKey = conversation.DirectKey(self, "sarah")
	mikeKey  = conversation.DirectKey(self, "mike")
)

func testDB(t *testing.T) *store.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// gatewayFunc adapts a function to Gateway.
type gatewayFunc func(ctx context.Context, msg conversation.Message) (conversation.Message, error)

func (f gatewayFunc) Deliver(ctx context.Context, msg conversation.Message) (conversation.Message, error) {
	return f(ctx, msg)
}

// gatedGateway blocks each delivery until released and records the order.
type gatedGateway struct {
	mu      sync.Mutex
	bodies  []string
	release map[string]chan struct{}
}

func newGatedGateway() *gatedGateway {
	return &gatedGateway{release: make(map[string]chan struct{})}
}

func (g *gatedGateway) gate(body string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.release[body]
	if !ok {
		ch = make(chan struct{})
		g.release[body] = ch
	}
	return ch
}

func (g *gatedGateway) Deliver(ctx context.Context, msg conversation.Message) (conversation.Message, error) {
	g.mu.Lock()
	g.bodies = append(g.bodies, msg.Body)
	g.mu.Unlock()
	select {
	case <-g.gate(msg.Body):
	case <-ctx.Done():
		return conversation.Message{}, ctx.Err()
	}
	return conversation.Message{ID: msg.LocalID}, nil
}

func (g *gatedGateway) delivered() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.bodies...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for condition")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func wait(t *testing.T, tk *Ticket) (conversation.Message, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	m, err := tk.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil {
		t.Fatal("ticket did not complete")
	}
	return m, err
}

func newMemorySender(t *testing.T) (*Sender, *conversation.Store, *memory.Backend, *store.DB, *bus.Bus) {
	t.Helper()
	be := memory.New()
	db := testDB(t)
	b := bus.New()
	conv := conversation.New(self, b, nil, nil)
	s := NewSender(conv, BackendGateway{Backend: be}, db, b, Options{}, nil)
	t.Cleanup(s.Close)
	return s, conv, be, db, b
}

func TestSendValidation(t *testing.T) {
	s, conv, be, _, _ := newMemorySender(t)
	ctx := context.Background()

	tests := []struct {
		name string
		key  conversation.Key
		body string
		want error
	}{
		{"empty", sarahKey, "", ErrEmptyBody},
		{"whitespace", sarahKey, "  \n\t ", ErrEmptyBody},
		{"too long", sarahKey, strings.Repeat("é", MaxBodyRunes+1), ErrBodyTooLong},
		{"malformed key", conversation.Key("sarah"), "hi", ErrInvalidConversation},
		{"foreign key", conversation.DirectKey("emma", "sarah"), "hi", ErrInvalidConversation},
		{"self key", conversation.DirectKey(self, self), "hi", ErrInvalidConversation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Send(ctx, tt.key, tt.body); !errors.Is(err, tt.want) {
				t.Errorf("Send() err = %v, want %v", err, tt.want)
			}
		})
	}

	if be.Calls("insert", backend.TableMessages) != 0 {
		t.Error("validation error reached the network")
	}
	if len(conv.Conversation(sarahKey)) != 0 {
		t.Error("rejected body was added to the conversation")
	}
}

func TestSendAtLimit(t *testing.T) {
	s, _, _, _, _ := newMemorySender(t)
	tk, err := s.Send(context.Background(), sarahKey, strings.Repeat("a", MaxBodyRunes))
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if _, err := wait(t, tk); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}

func TestSendConfirms(t *testing.T) {
	s, conv, be, db, b := newMemorySender(t)
	acks, unsub := b.Subscribe(bus.KindSendAck, 10)
	defer unsub()

	tk, err := s.Send(context.Background(), sarahKey, "  hello Sarah  ")
	if err != nil {
		t.Fatal(err)
	}

	// The optimistic entry is visible before delivery completes.
	msgs := conv.Conversation(sarahKey)
	if len(msgs) != 1 || msgs[0].Body != "hello Sarah" || msgs[0].LocalID != tk.LocalID {
		t.Fatalf("optimistic entry = %+v", msgs)
	}

	m, err := wait(t, tk)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if m.State != conversation.Confirmed || m.ID != tk.LocalID {
		t.Errorf("confirmed = %+v", m)
	}

	rows := be.Rows(backend.TableMessages)
	if len(rows) != 1 || rows[0].String("content") != "hello Sarah" || rows[0].String("receiver_id") != "sarah" {
		t.Errorf("backend rows = %v", rows)
	}
	if unsent, _ := db.UnsentOutbox(); len(unsent) != 0 {
		t.Errorf("journal still holds %v", unsent)
	}
	if cached, _ := db.ListMessages(string(sarahKey), 0, 10); len(cached) != 1 {
		t.Errorf("cache = %v", cached)
	}

	select {
	case evt := <-acks:
		ack := evt.Payload.(SendAck)
		if ack.LocalID != tk.LocalID || ack.Key != sarahKey {
			t.Errorf("ack = %+v", ack)
		}
	case <-time.After(time.Second):
		t.Fatal("no send_ack event")
	}
}

func TestOfflineSendFailsThenRetry(t *testing.T) {
	s, conv, be, db, b := newMemorySender(t)
	failures, unsub := b.Subscribe(bus.KindSendFailed, 10)
	defer unsub()
	ctx := context.Background()

	be.SetOffline(true)
	tk, err := s.Send(ctx, sarahKey, "test")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := wait(t, tk); !errors.Is(err, backend.ErrTransient) {
		t.Fatalf("Wait() err = %v, want transient", err)
	}

	msgs := conv.Conversation(sarahKey)
	if len(msgs) != 1 || msgs[0].State != conversation.Failed || msgs[0].Body != "test" || msgs[0].Error == "" {
		t.Fatalf("after failure = %+v", msgs)
	}
	select {
	case evt := <-failures:
		if evt.Payload.(SendFailed).LocalID != tk.LocalID {
			t.Errorf("failure payload = %+v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no send_failed event")
	}
	unsent, _ := db.UnsentOutbox()
	if len(unsent) != 1 || unsent[0].Status != store.OutboxFailed {
		t.Errorf("journal = %+v", unsent)
	}

	be.SetOffline(false)
	retry, err := s.Retry(ctx, tk.LocalID)
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if _, err := wait(t, retry); err != nil {
		t.Fatalf("retry Wait() error = %v", err)
	}

	msgs = conv.Conversation(sarahKey)
	if len(msgs) != 1 || msgs[0].State != conversation.Confirmed || msgs[0].LocalID != tk.LocalID {
		t.Errorf("after retry = %+v", msgs)
	}
	if n := len(be.Rows(backend.TableMessages)); n != 1 {
		t.Errorf("backend rows = %d, want 1", n)
	}
}

func TestRetryStates(t *testing.T) {
	s, _, _, _, _ := newMemorySender(t)
	ctx := context.Background()

	if _, err := s.Retry(ctx, "missing"); !errors.Is(err, conversation.ErrUnknownMessage) {
		t.Errorf("Retry(missing) err = %v", err)
	}

	tk, _ := s.Send(ctx, sarahKey, "hi")
	if _, err := wait(t, tk); err != nil {
		t.Fatal(err)
	}
	again, err := s.Retry(ctx, tk.LocalID)
	if err != nil {
		t.Fatalf("Retry(confirmed) err = %v", err)
	}
	select {
	case <-again.Done():
	default:
		t.Error("retry of a confirmed send should complete immediately")
	}
}

func TestRetryInFlight(t *testing.T) {
	conv := conversation.New(self, nil, nil, nil)
	gw := newGatedGateway()
	s := NewSender(conv, gw, nil, nil, Options{}, nil)
	defer s.Close()

	tk, _ := s.Send(context.Background(), sarahKey, "slow")
	if _, err := s.Retry(context.Background(), tk.LocalID); !errors.Is(err, ErrInFlight) {
		t.Errorf("Retry(pending) err = %v, want ErrInFlight", err)
	}
	close(gw.gate("slow"))
	_, _ = wait(t, tk)
}

func TestRetryConflictCountsAsSuccess(t *testing.T) {
	be := memory.New()
	conv := conversation.New(self, nil, nil, nil)
	first := true
	// The first insert lands but its response is lost.
	gw := gatewayFunc(func(ctx context.Context, msg conversation.Message) (conversation.Message, error) {
		m, err := BackendGateway{Backend: be}.Deliver(ctx, msg)
		if first && err == nil {
			first = false
			return conversation.Message{}, &backend.Error{Op: "insert", Table: "messages", Kind: backend.ErrTransient}
		}
		return m, err
	})
	s := NewSender(conv, gw, nil, nil, Options{}, nil)
	defer s.Close()

	tk, _ := s.Send(context.Background(), sarahKey, "twice?")
	if _, err := wait(t, tk); err == nil {
		t.Fatal("first attempt should report failure")
	}
	retry, err := s.Retry(context.Background(), tk.LocalID)
	if err != nil {
		t.Fatal(err)
	}
	m, err := wait(t, retry)
	if err != nil || m.State != conversation.Confirmed {
		t.Fatalf("retry = %+v, %v", m, err)
	}
	if n := len(be.Rows(backend.TableMessages)); n != 1 {
		t.Errorf("backend rows = %d, want 1", n)
	}
}

func TestEchoBeforeAckDoesNotDuplicate(t *testing.T) {
	conv := conversation.New(self, nil, nil, nil)
	gw := newGatedGateway()
	s := NewSender(conv, gw, nil, nil, Options{}, nil)
	defer s.Close()

	tk, _ := s.Send(context.Background(), sarahKey, "echo me")
	waitFor(t, func() bool { return len(gw.delivered()) == 1 })

	// The realtime echo of our own insert arrives first.
	conv.AppendIncoming(conversation.Message{
		ID: tk.LocalID, SenderID: self, ReceiverID: "sarah", Body: "echo me", CreatedAt: time.Now(),
	})
	close(gw.gate("echo me"))
	if _, err := wait(t, tk); err != nil {
		t.Fatal(err)
	}

	msgs := conv.Conversation(sarahKey)
	if len(msgs) != 1 || msgs[0].State != conversation.Confirmed {
		t.Errorf("conversation = %+v", msgs)
	}
}

func TestPipelinesPerConversation(t *testing.T) {
	conv := conversation.New(self, nil, nil, nil)
	gw := newGatedGateway()
	s := NewSender(conv, gw, nil, nil, Options{}, nil)
	defer s.Close()
	ctx := context.Background()

	var sarah []*Ticket
	for _, body := range []string{"a", "b", "c"} {
		tk, err := s.Send(ctx, sarahKey, body)
		if err != nil {
			t.Fatal(err)
		}
		sarah = append(sarah, tk)
	}
	mike, _ := s.Send(ctx, mikeKey, "x")

	// Mike's send completes while Sarah's first one is still blocked.
	close(gw.gate("x"))
	if _, err := wait(t, mike); err != nil {
		t.Fatal(err)
	}
	for _, got := range gw.delivered() {
		if got == "b" || got == "c" {
			t.Fatalf("later send delivered before the first completed: %v", gw.delivered())
		}
	}

	for _, body := range []string{"a", "b", "c"} {
		close(gw.gate(body))
	}
	for _, tk := range sarah {
		if _, err := wait(t, tk); err != nil {
			t.Fatal(err)
		}
	}

	var order []string
	for _, body := range gw.delivered() {
		if body != "x" {
			order = append(order, body)
		}
	}
	if strings.Join(order, "") != "abc" {
		t.Errorf("delivery order = %v, want a b c", order)
	}
	waitFor(t, func() bool { return s.Pipelines() == 0 })
}

func TestCallerCancelDoesNotCancelSend(t *testing.T) {
	conv := conversation.New(self, nil, nil, nil)
	gw := newGatedGateway()
	s := NewSender(conv, gw, nil, nil, Options{}, nil)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	tk, err := s.Send(ctx, sarahKey, "keep going")
	if err != nil {
		t.Fatal(err)
	}
	cancel()
	close(gw.gate("keep going"))

	if m, err := wait(t, tk); err != nil || m.State != conversation.Confirmed {
		t.Errorf("send after cancel = %+v, %v", m, err)
	}
}

func TestAttemptTimeout(t *testing.T) {
	conv := conversation.New(self, nil, nil, nil)
	s := NewSender(conv, newGatedGateway(), nil, nil, Options{AttemptTimeout: 20 * time.Millisecond}, nil)
	defer s.Close()

	tk, _ := s.Send(context.Background(), sarahKey, "never acked")
	if _, err := wait(t, tk); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() err = %v, want deadline exceeded", err)
	}
	if m, _, _ := conv.Get(tk.LocalID); m.State != conversation.Failed {
		t.Errorf("state = %v, want failed", m.State)
	}
}

func TestRestore(t *testing.T) {
	db := testDB(t)
	created := time.Date(2026, 10, 14, 10, 32, 0, 0, time.UTC)
	for _, e := range []store.OutboxEntry{
		{LocalID: "l1", ConvKey: string(sarahKey), ReceiverID: "sarah", Body: "lost in shutdown", CreatedAt: created.UnixMilli()},
		{LocalID: "l2", ConvKey: string(mikeKey), ReceiverID: "mike", Body: "already sent", CreatedAt: created.UnixMilli()},
	} {
		if err := db.QueueOutbox(&e); err != nil {
			t.Fatal(err)
		}
	}

	conv := conversation.New(self, nil, nil, nil)
	// l2 landed before the restart and came back with the cache.
	conv.Hydrate([]conversation.Message{{LocalID: "l2", ID: "l2", SenderID: self, ReceiverID: "mike", Body: "already sent", CreatedAt: created}})

	be := memory.New()
	s := NewSender(conv, BackendGateway{Backend: be}, db, nil, Options{}, nil)
	defer s.Close()

	n, err := s.Restore()
	if err != nil || n != 1 {
		t.Fatalf("Restore() = %d, %v; want 1", n, err)
	}
	msgs := conv.Conversation(sarahKey)
	if len(msgs) != 1 || msgs[0].State != conversation.Failed || !msgs[0].CreatedAt.Equal(created) {
		t.Fatalf("restored = %+v", msgs)
	}
	unsent, _ := db.UnsentOutbox()
	if len(unsent) != 1 || unsent[0].LocalID != "l1" {
		t.Errorf("journal = %+v", unsent)
	}

	tk, err := s.Retry(context.Background(), "l1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := wait(t, tk); err != nil {
		t.Fatal(err)
	}
	if rows := be.Rows(backend.TableMessages); len(rows) != 1 || rows[0].String("id") != "l1" {
		t.Errorf("backend rows = %v", rows)
	}
}

func TestCloseRejectsSends(t *testing.T) {
	s, _, _, _, _ := newMemorySender(t)
	s.Close()
	if _, err := s.Send(context.Background(), sarahKey, "late"); !errors.Is(err, ErrClosed) {
		t.Errorf("Send() after Close err = %v", err)
	}
}

func TestSendRacingCloseFailsEntry(t *testing.T) {
	s, conv, _, db, b := newMemorySender(t)
	events, unsub := b.Subscribe(bus.KindSendFailed, 4)
	defer unsub()

	// Send passed its closed check, then Close ran before the job was queued.
	msg := conv.AppendOutgoingOptimistic(sarahKey, conversation.Draft{SenderID: self, ReceiverID: "sarah", Body: "late"})
	s.journal(sarahKey, msg)
	s.Close()

	tk := newTicket(sarahKey, msg.LocalID)
	if err := s.enqueue(job{ctx: context.Background(), key: sarahKey, msg: msg, ticket: tk}); !errors.Is(err, ErrClosed) {
		t.Fatalf("enqueue() err = %v, want ErrClosed", err)
	}

	got, _, ok := conv.Get(msg.LocalID)
	if !ok || got.State != conversation.Failed || got.Error != ErrClosed.Error() {
		t.Fatalf("entry = %+v, want failed with %q", got, ErrClosed)
	}
	if _, err := wait(t, tk); !errors.Is(err, ErrClosed) {
		t.Errorf("ticket err = %v", err)
	}
	unsent, _ := db.UnsentOutbox()
	if len(unsent) != 1 || unsent[0].LocalID != msg.LocalID || unsent[0].ErrorMessage != ErrClosed.Error() {
		t.Errorf("journal = %+v", unsent)
	}
	select {
	case evt := <-events:
		if p, ok := evt.Payload.(SendFailed); !ok || p.LocalID != msg.LocalID {
			t.Errorf("event payload = %+v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Error("no send_failed event")
	}
}

func TestConcurrentSendAndCloseLeavesNothingPending(t *testing.T) {
	s, conv, _, _, _ := newMemorySender(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Send(context.Background(), sarahKey, "hello")
		}()
	}
	s.Close()
	wg.Wait()

	for _, m := range conv.Conversation(sarahKey) {
		if m.State == conversation.Pending {
			t.Errorf("entry %s left pending", m.LocalID)
		}
	}
}
