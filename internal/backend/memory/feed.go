package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/bondly/bondly/internal/backend"
)

type subscription struct {
	topics []backend.Topic
	queue  chan backend.Change
	done   chan struct{}
	once   sync.Once
	mu     sync.Mutex
	err    error
	detach func()
}

// SubscribeChanges implements backend.ChangeFeed. Changes are delivered in
// commit order from a goroutine owned by the subscription.
func (b *Backend) SubscribeChanges(_ context.Context, topics []backend.Topic, fn func(backend.Change)) (backend.Subscription, error) {
	b.mu.Lock()
	if b.offline {
		b.mu.Unlock()
		return nil, &backend.Error{Op: "subscribe", Kind: backend.ErrTransient, Message: "backend offline"}
	}
	s := &subscription{
		topics: topics,
		queue:  make(chan backend.Change, 256),
		done:   make(chan struct{}),
	}
	id := b.nextSub
	b.nextSub++
	b.subs[id] = s
	s.detach = func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
	b.mu.Unlock()

	go func() {
		for {
			select {
			case c := <-s.queue:
				fn(c)
			case <-s.done:
				return
			}
		}
	}()
	return s, nil
}

func (b *Backend) notify(c backend.Change) {
	b.mu.Lock()
	var targets []*subscription
	for _, s := range b.subs {
		if s.wants(c) {
			targets = append(targets, s)
		}
	}
	b.mu.Unlock()
	for _, s := range targets {
		select {
		case s.queue <- c:
		case <-s.done:
		}
	}
}

func (s *subscription) wants(c backend.Change) bool {
	for _, t := range s.topics {
		if t.Table == c.Table && t.Events.Has(c.Type) && topicFilter(t.Filter, c) {
			return true
		}
	}
	return false
}

// topicFilter applies a "column=eq.value" topic filter to the new row (or the
// old row for deletes). Other filter forms are not evaluated.
func topicFilter(filter string, c backend.Change) bool {
	col, rest, ok := strings.Cut(filter, "=")
	if !ok {
		return true
	}
	want, ok := strings.CutPrefix(rest, "eq.")
	if !ok {
		return true
	}
	row := c.Record
	if c.Type == backend.Delete {
		row = c.Old
	}
	return row.String(col) == want
}

func (s *subscription) finish(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.done)
	})
}

func (s *subscription) Done() <-chan struct{} { return s.done }

func (s *subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *subscription) Close() error {
	if s.detach != nil {
		s.detach()
	}
	s.finish(nil)
	return nil
}
