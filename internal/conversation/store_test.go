package conversation

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/bus"
)

const self = "me"

var day = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func incoming(id, from string, ts time.Time, body string) Message {
	return Message{ID: id, SenderID: from, ReceiverID: self, Body: body, CreatedAt: ts}
}

type names map[string]string

func (n names) DisplayName(id string) string {
	if v, ok := n[id]; ok {
		return v
	}
	return id
}

// openPolicy is a ReadPolicy with a fixed set of open conversations.
type openPolicy struct {
	mu      sync.Mutex
	open    map[Key]bool
	flipped []string
}

func (p *openPolicy) IsOpen(k Key) bool { return p.open[k] }

func (p *openPolicy) Flipped(_ Key, ids []string) {
	p.mu.Lock()
	p.flipped = append(p.flipped, ids...)
	p.mu.Unlock()
}

func bodies(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Body
	}
	return out
}

func TestKeys(t *testing.T) {
	if DirectKey("me", "sarah") != DirectKey("sarah", "me") {
		t.Error("DirectKey depends on argument order")
	}
	k := DirectKey("sarah", "me")
	if k != "dm:me:sarah" || k.IsChannel() || k.Counterpart("me") != "sarah" || !k.Valid() {
		t.Errorf("direct key %q misbehaves", k)
	}
	c := ChannelKey("yoga")
	if !c.IsChannel() || c.ChannelID() != "yoga" || c.Counterpart("me") != "" || !c.Valid() {
		t.Errorf("channel key %q misbehaves", c)
	}
	for _, bad := range []Key{"", "dm:me", "dm::x", "x:y"} {
		if bad.Valid() {
			t.Errorf("Key(%q).Valid() = true", bad)
		}
	}
}

func TestSarahThenSelfOrderingAndUnread(t *testing.T) {
	s := New(self, nil, nil, nil)
	key := DirectKey(self, "sarah")

	s.AppendIncoming(incoming("s1", "sarah", at(10, 30), "Hey! How was the yoga session today?"))
	if n := s.UnreadCount(key); n != 1 {
		t.Fatalf("UnreadCount() = %d, want 1", n)
	}

	s.now = func() time.Time { return at(10, 32) }
	opt := s.AppendOutgoingOptimistic(key, Draft{SenderID: self, ReceiverID: "sarah", Body: "It was great!"})
	if opt.State != Pending || opt.LocalID == "" {
		t.Fatalf("optimistic entry = %+v", opt)
	}
	if err := s.Reconcile(opt.LocalID, Message{ID: opt.LocalID, CreatedAt: at(10, 32)}); err != nil {
		t.Fatal(err)
	}

	msgs := s.Conversation(key)
	if len(msgs) != 2 || msgs[0].SenderID != "sarah" || msgs[1].SenderID != self {
		t.Fatalf("order = %v", bodies(msgs))
	}
	if msgs[1].State != Confirmed {
		t.Errorf("own message state = %v", msgs[1].State)
	}
	if n := s.UnreadCount(key); n != 1 {
		t.Errorf("UnreadCount() = %d before open, want 1", n)
	}

	flipped := s.MarkRead(key)
	if len(flipped) != 1 || flipped[0] != "s1" {
		t.Errorf("MarkRead() = %v, want [s1]", flipped)
	}
	if n := s.UnreadCount(key); n != 0 {
		t.Errorf("UnreadCount() = %d after read, want 0", n)
	}
	if again := s.MarkRead(key); len(again) != 0 {
		t.Errorf("second MarkRead() = %v, want none", again)
	}
}

func TestAppendIncomingDeduplicates(t *testing.T) {
	s := New(self, nil, nil, nil)
	m := incoming("m1", "sarah", at(9, 0), "hi")

	if !s.AppendIncoming(m) {
		t.Fatal("first append reported duplicate")
	}
	if s.AppendIncoming(m) {
		t.Error("second append added a duplicate")
	}
	if s.AppendIncoming(Message{SenderID: "sarah", ReceiverID: self}) {
		t.Error("message without id was added")
	}
	if n := len(s.Conversation(DirectKey(self, "sarah"))); n != 1 {
		t.Errorf("len = %d, want 1", n)
	}

	m.Read = true
	s.AppendIncoming(m)
	if s.UnreadCount(DirectKey(self, "sarah")) != 0 {
		t.Error("read flag from a repeated delivery not merged")
	}
}

func TestEchoConfirmsPendingEntry(t *testing.T) {
	s := New(self, nil, nil, nil)
	key := DirectKey(self, "mike")
	opt := s.AppendOutgoingOptimistic(key, Draft{SenderID: self, ReceiverID: "mike", Body: "on my way"})

	echo := Message{ID: opt.LocalID, SenderID: self, ReceiverID: "mike", Body: "on my way", CreatedAt: opt.CreatedAt.Add(time.Second)}
	if s.AppendIncoming(echo) {
		t.Error("echo added a second entry")
	}
	msgs := s.Conversation(key)
	if len(msgs) != 1 || msgs[0].State != Confirmed || msgs[0].ID != opt.LocalID {
		t.Fatalf("after echo = %+v", msgs)
	}

	// The acknowledgement arriving after the echo is a no-op.
	if err := s.Reconcile(opt.LocalID, echo); err != nil {
		t.Errorf("Reconcile() after echo = %v", err)
	}
	if n := len(s.Conversation(key)); n != 1 {
		t.Errorf("len = %d, want 1", n)
	}
}

func TestReconcileIdempotentAndUnknown(t *testing.T) {
	b := bus.New()
	events, cancel := b.Subscribe("conversation.", 16)
	defer cancel()
	s := New(self, b, nil, nil)
	key := DirectKey(self, "sarah")
	opt := s.AppendOutgoingOptimistic(key, Draft{SenderID: self, ReceiverID: "sarah", Body: "x"})
	<-events

	server := Message{ID: opt.LocalID, CreatedAt: opt.CreatedAt}
	if err := s.Reconcile(opt.LocalID, server); err != nil {
		t.Fatal(err)
	}
	select {
	case evt := <-events:
		if u := evt.Payload.(Updated); u.Key != key || u.LocalID != opt.LocalID {
			t.Errorf("payload = %+v", u)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for conversation.updated")
	}

	if err := s.Reconcile(opt.LocalID, server); err != nil {
		t.Errorf("second Reconcile() = %v", err)
	}
	select {
	case evt := <-events:
		t.Errorf("no-op reconcile published %v", evt)
	case <-time.After(50 * time.Millisecond):
	}

	if err := s.Reconcile("nope", server); !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("Reconcile(unknown) = %v, want ErrUnknownMessage", err)
	}
	if err := s.MarkFailed("nope", errors.New("x")); !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("MarkFailed(unknown) = %v, want ErrUnknownMessage", err)
	}
}

func TestReconcileKeepsOrder(t *testing.T) {
	s := New(self, nil, nil, nil)
	key := DirectKey(self, "sarah")

	s.now = func() time.Time { return at(10, 0) }
	first := s.AppendOutgoingOptimistic(key, Draft{SenderID: self, ReceiverID: "sarah", Body: "first"})
	s.now = func() time.Time { return at(10, 1) }
	second := s.AppendOutgoingOptimistic(key, Draft{SenderID: self, ReceiverID: "sarah", Body: "second"})
	s.AppendIncoming(incoming("s1", "sarah", at(10, 5), "reply"))

	// The server stamps the first send later than the reply.
	if err := s.Reconcile(first.LocalID, Message{ID: first.LocalID, CreatedAt: at(10, 6)}); err != nil {
		t.Fatal(err)
	}
	// Same-timestamp confirmation keeps arrival order.
	if err := s.Reconcile(second.LocalID, Message{ID: second.LocalID, CreatedAt: at(10, 5)}); err != nil {
		t.Fatal(err)
	}

	got := bodies(s.Conversation(key))
	want := []string{"second", "reply", "first"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestEqualTimestampsKeepArrivalOrder(t *testing.T) {
	s := New(self, nil, nil, nil)
	for _, id := range []string{"a", "b", "c"} {
		s.AppendIncoming(incoming(id, "sarah", at(8, 0), id))
	}
	s.AppendIncoming(incoming("early", "sarah", at(7, 0), "early"))

	got := bodies(s.Conversation(DirectKey(self, "sarah")))
	want := []string{"early", "a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFailedEntryKeepsContent(t *testing.T) {
	s := New(self, nil, nil, nil)
	key := DirectKey(self, "sarah")
	opt := s.AppendOutgoingOptimistic(key, Draft{SenderID: self, ReceiverID: "sarah", Body: "test"})

	if err := s.MarkFailed(opt.LocalID, errors.New("backend offline")); err != nil {
		t.Fatal(err)
	}
	m, gotKey, ok := s.Get(opt.LocalID)
	if !ok || gotKey != key || m.State != Failed || m.Body != "test" || m.Error != "backend offline" {
		t.Fatalf("failed entry = %+v", m)
	}

	if err := s.MarkPending(opt.LocalID); err != nil {
		t.Fatal(err)
	}
	if err := s.Reconcile(opt.LocalID, Message{ID: opt.LocalID}); err != nil {
		t.Fatal(err)
	}
	// A late failure report never downgrades a confirmed entry.
	if err := s.MarkFailed(opt.LocalID, errors.New("late")); err != nil {
		t.Fatal(err)
	}
	msgs := s.Conversation(key)
	if len(msgs) != 1 || msgs[0].State != Confirmed || msgs[0].Error != "" {
		t.Errorf("entries = %+v", msgs)
	}
}

func TestOpenConversationStoresIncomingRead(t *testing.T) {
	s := New(self, nil, nil, nil)
	key := DirectKey(self, "sarah")
	p := &openPolicy{open: map[Key]bool{key: true}}
	s.SetReadPolicy(p)

	s.AppendIncoming(incoming("s1", "sarah", at(11, 0), "still there?"))
	s.AppendIncoming(incoming("m1", "mike", at(11, 0), "lunch?"))

	if n := s.UnreadCount(key); n != 0 {
		t.Errorf("open conversation unread = %d, want 0", n)
	}
	if n := s.UnreadCount(DirectKey(self, "mike")); n != 1 {
		t.Errorf("closed conversation unread = %d, want 1", n)
	}
	if len(p.flipped) != 1 || p.flipped[0] != "s1" {
		t.Errorf("flipped = %v, want [s1]", p.flipped)
	}
	if s.TotalUnread() != 1 {
		t.Errorf("TotalUnread() = %d, want 1", s.TotalUnread())
	}
}

func TestApplyReadReceipt(t *testing.T) {
	s := New(self, nil, nil, nil)
	key := DirectKey(self, "sarah")
	opt := s.AppendOutgoingOptimistic(key, Draft{SenderID: self, ReceiverID: "sarah", Body: "seen?"})
	_ = s.Reconcile(opt.LocalID, Message{ID: opt.LocalID})

	if !s.ApplyReadReceipt(opt.LocalID) {
		t.Error("receipt for own message not applied")
	}
	if s.ApplyReadReceipt(opt.LocalID) {
		t.Error("repeated receipt reported a change")
	}
	if s.ApplyReadReceipt("unknown") {
		t.Error("receipt for unknown id reported a change")
	}
	if m, _, _ := s.Get(opt.LocalID); !m.Read {
		t.Error("own message not marked read")
	}
}

func TestChannelMessagesCountUnread(t *testing.T) {
	s := New(self, nil, nil, nil)
	key := ChannelKey("yoga")
	s.AppendIncoming(Message{ID: "c1", SenderID: "emma", ChannelID: "yoga", CreatedAt: at(9, 0)})
	s.AppendIncoming(Message{ID: "c2", SenderID: self, ChannelID: "yoga", CreatedAt: at(9, 1)})

	if n := s.UnreadCount(key); n != 1 {
		t.Errorf("UnreadCount() = %d, want 1", n)
	}
	if ids := s.MarkRead(key); len(ids) != 1 || ids[0] != "c1" {
		t.Errorf("MarkRead() = %v", ids)
	}
}

func TestConversationsSummaries(t *testing.T) {
	s := New(self, nil, names{"sarah": "Sarah Chen"}, nil)
	s.AppendIncoming(incoming("s1", "sarah", at(10, 30), "older"))
	s.AppendIncoming(incoming("m1", "mike", at(11, 0), "newer"))
	s.AppendIncoming(Message{ID: "c1", SenderID: "emma", ChannelID: "yoga", CreatedAt: at(9, 0)})
	s.now = func() time.Time { return at(12, 0) }
	opt := s.AppendOutgoingOptimistic(DirectKey(self, "sarah"), Draft{SenderID: self, ReceiverID: "sarah", Body: "pending"})
	_ = s.MarkFailed(opt.LocalID, errors.New("offline"))

	sums := s.Conversations()
	if len(sums) != 3 {
		t.Fatalf("len = %d, want 3", len(sums))
	}
	if sums[0].Counterpart != "sarah" || sums[0].Title != "Sarah Chen" || sums[0].Failed != 1 || sums[0].Unread != 1 {
		t.Errorf("first summary = %+v", sums[0])
	}
	if sums[1].Title != "mike" || sums[2].Title != "#yoga" {
		t.Errorf("titles = %q, %q", sums[1].Title, sums[2].Title)
	}
}

func TestHydrateAndRestore(t *testing.T) {
	s := New(self, nil, nil, nil)
	n := s.Hydrate([]Message{incoming("s1", "sarah", at(8, 0), "cached"), incoming("s1", "sarah", at(8, 0), "cached")})
	if n != 1 {
		t.Errorf("Hydrate() = %d, want 1", n)
	}

	key := DirectKey(self, "sarah")
	draft := Draft{SenderID: self, ReceiverID: "sarah", Body: "unsent"}
	m := s.RestoreFailed(key, draft, "local-1", at(9, 0), "interrupted")
	if m.State != Failed || m.LocalID != "local-1" {
		t.Errorf("restored = %+v", m)
	}
	again := s.RestoreFailed(key, draft, "local-1", at(9, 0), "interrupted")
	if again.LocalID != "local-1" || len(s.Conversation(key)) != 2 {
		t.Errorf("restore not idempotent: %+v", s.Conversation(key))
	}
}

func TestFromRow(t *testing.T) {
	m, err := FromRow(backend.Row{
		"id": "m1", "sender_id": "sarah", "receiver_id": self,
		"content": "hi", "read": true, "created_at": "2026-10-14T10:30:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.LocalID != "m1" || !m.Read || !m.CreatedAt.Equal(at(10, 30)) || KeyFor(self, m) != DirectKey(self, "sarah") {
		t.Errorf("FromRow() = %+v", m)
	}

	bad := []backend.Row{
		{"sender_id": "sarah", "receiver_id": self, "created_at": "2026-10-14T10:30:00Z"},
		{"id": "m1", "receiver_id": self, "created_at": "2026-10-14T10:30:00Z"},
		{"id": "m1", "sender_id": "sarah", "created_at": "2026-10-14T10:30:00Z"},
		{"id": "m1", "sender_id": "sarah", "receiver_id": self, "created_at": "yesterday"},
	}
	for i, r := range bad {
		if _, err := FromRow(r); !errors.Is(err, ErrMalformed) {
			t.Errorf("row %d: err = %v, want ErrMalformed", i, err)
		}
	}
}

func TestCacheRoundTrip(t *testing.T) {
	m := incoming("s1", "sarah", at(10, 30), "hi")
	c := m.ToCache(self)
	if c.ConvKey != string(DirectKey(self, "sarah")) {
		t.Errorf("ConvKey = %q", c.ConvKey)
	}
	back := FromCache(c)
	if back.ID != "s1" || back.LocalID != "s1" || !back.CreatedAt.Equal(m.CreatedAt) || back.State != Confirmed {
		t.Errorf("FromCache() = %+v", back)
	}
}
