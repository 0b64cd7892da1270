package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bondly/bondly/internal/backend"
)

func TestInsertAndQuery(t *testing.T) {
	b := New()
	ctx := context.Background()

	if _, err := b.Insert(ctx, backend.TableMessages, backend.Row{"sender_id": "a", "receiver_id": "b", "content": "one", "created_at": "2026-01-01T10:00:00Z"}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Insert(ctx, backend.TableMessages, backend.Row{"sender_id": "b", "receiver_id": "a", "content": "two", "created_at": "2026-01-01T09:00:00Z"}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Insert(ctx, backend.TableMessages, backend.Row{"sender_id": "c", "receiver_id": "a", "content": "other"}); err != nil {
		t.Fatal(err)
	}

	q := backend.Query{}.AnyOf(
		backend.All(backend.Eq("sender_id", "a"), backend.Eq("receiver_id", "b")),
		backend.All(backend.Eq("sender_id", "b"), backend.Eq("receiver_id", "a")),
	).OrderBy("created_at", false)

	rows, err := b.Query(ctx, backend.TableMessages, q)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].String("content") != "two" {
		t.Errorf("first row = %q, want two (ordered by created_at)", rows[0].String("content"))
	}
	if rows[0].String("id") == "" {
		t.Error("insert did not generate an id")
	}
	if rows[0].Bool("read") {
		t.Error("read should default to false")
	}
}

func TestQueryFiltersAndLimit(t *testing.T) {
	b := New()
	for _, id := range []string{"u1", "u2", "u3", "u4"} {
		b.Seed(backend.TableProfiles, backend.Row{"user_id": id})
	}
	rows, err := b.Query(context.Background(), backend.TableProfiles,
		backend.Where(backend.Neq("user_id", "u1"), backend.NotIn("user_id", []string{"u2"})).WithLimit(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].String("user_id") != "u3" {
		t.Errorf("rows = %v, want [u3]", rows)
	}

	rows, _ = b.Query(context.Background(), backend.TableProfiles, backend.Where(backend.In("user_id", []string{"u2", "u4"})))
	if len(rows) != 2 {
		t.Errorf("in filter returned %d rows, want 2", len(rows))
	}
}

func TestInsertConflict(t *testing.T) {
	b := New()
	ctx := context.Background()
	row := backend.Row{"user_id": "a", "friend_id": "b", "status": "accepted"}
	if _, err := b.Insert(ctx, backend.TableFriendships, row); err != nil {
		t.Fatal(err)
	}
	_, err := b.Insert(ctx, backend.TableFriendships, row)
	if !errors.Is(err, backend.ErrConflict) {
		t.Errorf("second insert err = %v, want ErrConflict", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	b := New()
	ctx := context.Background()
	b.Seed(backend.TableMessages, backend.Row{"id": "m1", "receiver_id": "me", "read": false})
	b.Seed(backend.TableMessages, backend.Row{"id": "m2", "receiver_id": "me", "read": false})

	if err := b.Update(ctx, backend.TableMessages, backend.Where(backend.In("id", []string{"m1"})), backend.Row{"read": true}); err != nil {
		t.Fatal(err)
	}
	unread, _ := b.Query(ctx, backend.TableMessages, backend.Where(backend.Eq("read", false)))
	if len(unread) != 1 || unread[0].String("id") != "m2" {
		t.Errorf("unread = %v, want [m2]", unread)
	}

	if err := b.Delete(ctx, backend.TableMessages, backend.Where(backend.Eq("id", "m2"))); err != nil {
		t.Fatal(err)
	}
	if got := len(b.Rows(backend.TableMessages)); got != 1 {
		t.Errorf("rows after delete = %d, want 1", got)
	}
}

func TestOfflineAndFailNext(t *testing.T) {
	b := New()
	ctx := context.Background()

	b.SetOffline(true)
	if _, err := b.Query(ctx, backend.TableProfiles, backend.Query{}); !backend.IsRetryable(err) {
		t.Errorf("offline query err = %v, want transient", err)
	}
	b.SetOffline(false)

	boom := errors.New("boom")
	b.FailNext("insert", backend.TableMessages, boom)
	if _, err := b.Insert(ctx, backend.TableMessages, backend.Row{}); !errors.Is(err, boom) {
		t.Errorf("first insert err = %v, want boom", err)
	}
	if _, err := b.Insert(ctx, backend.TableMessages, backend.Row{}); err != nil {
		t.Errorf("second insert err = %v, want nil", err)
	}
	if got := b.Calls("insert", backend.TableMessages); got != 2 {
		t.Errorf("Calls = %d, want 2", got)
	}
}

func TestChangeFeed(t *testing.T) {
	b := New()
	ctx := context.Background()
	got := make(chan backend.Change, 10)

	sub, err := b.SubscribeChanges(ctx, []backend.Topic{{Table: backend.TableMessages, Events: backend.MaskInsert}}, func(c backend.Change) {
		got <- c
	})
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	if _, err := b.Insert(ctx, backend.TableMessages, backend.Row{"content": "hi"}); err != nil {
		t.Fatal(err)
	}
	// Updates are not part of the topic.
	_ = b.Update(ctx, backend.TableMessages, backend.Query{}, backend.Row{"read": true})

	select {
	case c := <-got:
		if c.Type != backend.Insert || c.Record.String("content") != "hi" {
			t.Errorf("change = %+v", c)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for change")
	}
	select {
	case c := <-got:
		t.Errorf("unexpected change %+v", c)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTopicFilter(t *testing.T) {
	b := New()
	ctx := context.Background()
	got := make(chan backend.Change, 10)
	sub, err := b.SubscribeChanges(ctx, []backend.Topic{{Table: backend.TableFriendships, Events: backend.MaskAll, Filter: "user_id=eq.me"}}, func(c backend.Change) {
		got <- c
	})
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	_, _ = b.Insert(ctx, backend.TableFriendships, backend.Row{"user_id": "other", "friend_id": "x"})
	_, _ = b.Insert(ctx, backend.TableFriendships, backend.Row{"user_id": "me", "friend_id": "x"})

	select {
	case c := <-got:
		if c.Record.String("user_id") != "me" {
			t.Errorf("filtered change for %q delivered", c.Record.String("user_id"))
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for change")
	}
}

func TestDropSubscriptions(t *testing.T) {
	b := New()
	sub, err := b.SubscribeChanges(context.Background(), []backend.Topic{{Table: backend.TableMessages, Events: backend.MaskAll}}, func(backend.Change) {})
	if err != nil {
		t.Fatal(err)
	}
	cause := errors.New("socket closed")
	b.DropSubscriptions(cause)

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription not done after drop")
	}
	if !errors.Is(sub.Err(), cause) {
		t.Errorf("Err() = %v, want %v", sub.Err(), cause)
	}
	if err := sub.Close(); err != nil {
		t.Errorf("Close after drop = %v", err)
	}
	if b.Subscribers() != 0 {
		t.Errorf("Subscribers = %d, want 0", b.Subscribers())
	}
}

func TestSeedDemo(t *testing.T) {
	b := New()
	SeedDemo(b, "me", "Me")
	if got := len(b.Rows(backend.TableFriendships)); got != 4 {
		t.Errorf("friendships = %d, want 4 (two friends, both directions)", got)
	}
	msgs := b.Rows(backend.TableMessages)
	if len(msgs) != 1 || msgs[0].String("sender_id") != "sarah" {
		t.Errorf("messages = %v", msgs)
	}
}
