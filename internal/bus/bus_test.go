package bus

import (
	"sync"
	"testing"
	"time"
)

func recv(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
		return Event{}
	}
}

func expectNone(t *testing.T, ch <-chan Event) {
	t.Helper()
	select {
	case evt := <-ch:
		t.Errorf("unexpected event %q", evt.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNamespaceRouting(t *testing.T) {
	b := New()
	ingest, unsubIngest := b.Subscribe("ingest.", 10)
	defer unsubIngest()
	all, unsubAll := b.Subscribe("", 10)
	defer unsubAll()

	b.Publish(NewEvent(KindSendAck, "l1"))
	b.Publish(NewEvent(KindIngestMessage, "m1"))

	if evt := recv(t, ingest); evt.Kind != KindIngestMessage || evt.Payload != "m1" {
		t.Errorf("ingest subscriber got %+v", evt)
	}
	expectNone(t, ingest)

	if evt := recv(t, all); evt.Kind != KindSendAck {
		t.Errorf("first event on catch-all = %q, want %q", evt.Kind, KindSendAck)
	}
	if evt := recv(t, all); evt.Kind != KindIngestMessage {
		t.Errorf("second event on catch-all = %q, want %q", evt.Kind, KindIngestMessage)
	}
}

func TestPublishStampsTimestamp(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("message.", 2)
	defer unsub()

	fixed := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	b.Publish(Event{Kind: KindSendFailed})
	b.Publish(Event{Kind: KindSendAck, Timestamp: fixed})

	if evt := recv(t, ch); evt.Timestamp.IsZero() {
		t.Error("zero timestamp was not stamped")
	}
	if evt := recv(t, ch); !evt.Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", evt.Timestamp, fixed)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe("contacts.", 4)
	if b.Subscribers() != 1 {
		t.Fatalf("Subscribers() = %d, want 1", b.Subscribers())
	}
	cancel()
	cancel()
	if b.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d after cancel, want 0", b.Subscribers())
	}

	b.Publish(NewEvent(KindContactsChanged, nil))
	expectNone(t, ch)
}

func TestSlowSubscriberDoesNotBlockOthers(t *testing.T) {
	b := New()
	slow, unsubSlow := b.Subscribe("notification.", 1)
	defer unsubSlow()
	fast, unsubFast := b.Subscribe("notification.", 8)
	defer unsubFast()

	for range 3 {
		b.Publish(NewEvent(KindNotificationChanged, nil))
	}

	if got := b.Dropped(); got != 2 {
		t.Errorf("Dropped() = %d, want 2", got)
	}
	recv(t, slow)
	for range 3 {
		recv(t, fast)
	}
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	b := New()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				b.Publish(NewEvent(KindConversationUpdated, nil))
			}
		}()
		go func() {
			defer wg.Done()
			_, cancel := b.Subscribe("conversation.", 1)
			cancel()
		}()
	}
	wg.Wait()
	if b.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", b.Subscribers())
	}
}
