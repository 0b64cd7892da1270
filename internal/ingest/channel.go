// Package ingest subscribes to the backend change feed and turns raw changes
// into typed events for the sync engine.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/status"
	"go.uber.org/zap"
)

// ErrCanceled is returned by Subscribe when Unsubscribe ran while connecting.
var ErrCanceled = errors.New("subscription canceled")

// Sink receives classified events. Enqueue must not block on the network.
type Sink interface {
	Enqueue(evt bus.Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(bus.Event)

func (f SinkFunc) Enqueue(evt bus.Event) { f(evt) }

var closedCh = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Channel owns one change-feed subscription at a time.
type Channel struct {
	self    string
	feed    backend.ChangeFeed
	sink    Sink
	machine *status.Machine
	logger  *zap.Logger
	dropped atomic.Uint64

	mu   sync.Mutex
	gen  uint64
	sub  backend.Subscription
	lost chan struct{}
}

// NewChannel creates a disconnected channel.
func NewChannel(self string, feed backend.ChangeFeed, sink Sink, machine *status.Machine, logger *zap.Logger) *Channel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Channel{self: self, feed: feed, sink: sink, machine: machine, logger: logger}
}

// Topics lists the subscriptions the channel requests.
func (c *Channel) Topics() []backend.Topic {
	return []backend.Topic{
		{Table: backend.TableMessages, Events: backend.MaskInsert | backend.MaskUpdate},
		{Table: backend.TableFriendships, Events: backend.MaskAll, Filter: "user_id=eq." + c.self},
		{Table: backend.TableProfiles, Events: backend.MaskUpdate},
		{Table: backend.TableGroupMembers, Events: backend.MaskInsert, Filter: "user_id=eq." + c.self},
		{Table: backend.TableEvents, Events: backend.MaskInsert},
	}
}

// State returns the connection state.
func (c *Channel) State() status.State {
	return c.machine.Current()
}

// Dropped returns how many changes were discarded as malformed or irrelevant.
func (c *Channel) Dropped() uint64 {
	return c.dropped.Load()
}

// Done is closed when the current subscription ends and the channel is back
// to Disconnected. It is already closed while disconnected.
func (c *Channel) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lost == nil {
		return closedCh
	}
	return c.lost
}

// Subscribe connects the feed. It is a no-op unless disconnected.
func (c *Channel) Subscribe(ctx context.Context) error {
	c.mu.Lock()
	if c.machine.Current() != status.Disconnected {
		c.mu.Unlock()
		return nil
	}
	if err := c.machine.Transition(status.Connecting); err != nil {
		c.mu.Unlock()
		return err
	}
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	sub, err := c.feed.SubscribeChanges(ctx, c.Topics(), c.handle)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		if sub != nil {
			_ = sub.Close()
		}
		return ErrCanceled
	}
	if err != nil {
		_ = c.machine.Transition(status.Disconnected)
		return fmt.Errorf("subscribe changes: %w", err)
	}
	c.sub = sub
	c.lost = make(chan struct{})
	if err := c.machine.Transition(status.Subscribed); err != nil {
		c.logger.Error("state transition", zap.Error(err))
	}
	go c.watch(sub, c.lost)
	c.logger.Info("realtime channel subscribed")
	return nil
}

// Unsubscribe closes the current subscription. It is safe to call at any
// time and more than once.
func (c *Channel) Unsubscribe() {
	c.mu.Lock()
	c.gen++
	sub := c.sub
	c.sub = nil
	c.machine.Reset()
	c.mu.Unlock()

	if sub != nil {
		_ = sub.Close()
	}
}

func (c *Channel) watch(sub backend.Subscription, lost chan struct{}) {
	<-sub.Done()
	c.mu.Lock()
	if c.sub == sub {
		c.sub = nil
		c.machine.Reset()
		c.logger.Warn("realtime channel lost", zap.Error(sub.Err()))
	}
	if c.lost == lost {
		c.lost = nil
	}
	c.mu.Unlock()
	close(lost)
}

func (c *Channel) handle(change backend.Change) {
	evt, ok := Classify(c.self, change)
	if !ok {
		c.dropped.Add(1)
		c.logger.Debug("change dropped", zap.String("table", change.Table), zap.String("type", string(change.Type)))
		return
	}
	c.sink.Enqueue(evt)
}
