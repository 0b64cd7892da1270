// Package readstate tracks which conversations are open and persists read
// flags to the backend.
package readstate

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
)

const (
	batchSize      = 100
	persistTimeout = 10 * time.Second
)

// Store is the part of the conversation store the tracker drives.
type Store interface {
	MarkRead(key conversation.Key) []string
	ApplyReadReceipt(id string) bool
	UnreadCount(key conversation.Key) int
	TotalUnread() int
	SetReadPolicy(p conversation.ReadPolicy)
}

// Persister writes read flags remotely.
type Persister interface {
	PersistRead(ctx context.Context, ids []string) error
}

// Cache mirrors read flags locally. *store.DB implements it.
type Cache interface {
	MarkMessagesRead(ids []string) error
}

// Journal keeps the unpersisted read flags across restarts. A Cache that
// also implements Journal is used as one; *store.DB does.
type Journal interface {
	QueueReads(ids []string) error
	ClearReads(ids []string) error
	PendingReads() ([]string, error)
}

// BackendPersister marks messages read in the backend's messages table. Only
// rows addressed to Self are touched.
type BackendPersister struct {
	Backend backend.Backend
	Self    string
}

// PersistRead implements Persister.
func (p BackendPersister) PersistRead(ctx context.Context, ids []string) error {
	q := backend.Where(backend.In("id", ids), backend.Eq("receiver_id", p.Self))
	return p.Backend.Update(ctx, backend.TableMessages, q, backend.Row{"read": true})
}

// Options tunes the retry worker.
type Options struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Tracker implements conversation.ReadPolicy.
type Tracker struct {
	store     Store
	persister Persister
	cache     Cache
	journal   Journal
	opts      Options
	logger    *zap.Logger

	mu      sync.Mutex
	open    map[conversation.Key]int
	pending []string
	queued  map[string]bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
	once sync.Once
	run  sync.Once
}

// New creates a tracker and installs it as the store's read policy. cache
// may be nil.
func New(store Store, persister Persister, cache Cache, opts Options, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = 500 * time.Millisecond
	}
	if opts.MaxInterval <= 0 {
		opts.MaxInterval = time.Minute
	}
	t := &Tracker{
		store:     store,
		persister: persister,
		cache:     cache,
		opts:      opts,
		logger:    logger,
		open:      make(map[conversation.Key]int),
		queued:    make(map[string]bool),
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	t.journal, _ = cache.(Journal)
	store.SetReadPolicy(t)
	return t
}

// IsOpen implements conversation.ReadPolicy.
func (t *Tracker) IsOpen(key conversation.Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open[key] > 0
}

// Flipped implements conversation.ReadPolicy.
func (t *Tracker) Flipped(key conversation.Key, ids []string) {
	t.record(key, ids)
}

// OnConversationOpened marks every loaded message of key read and keeps the
// key open until a matching OnConversationClosed.
func (t *Tracker) OnConversationOpened(key conversation.Key) []string {
	t.mu.Lock()
	t.open[key]++
	t.mu.Unlock()

	// The store lock is taken after ours is released; the store calls
	// IsOpen with its own lock held.
	ids := t.store.MarkRead(key)
	t.record(key, ids)
	return ids
}

// OnConversationClosed releases one open of key.
func (t *Tracker) OnConversationClosed(key conversation.Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.open[key] <= 1 {
		delete(t.open, key)
		return
	}
	t.open[key]--
}

// OpenConversations lists the keys currently open.
func (t *Tracker) OpenConversations() []conversation.Key {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]conversation.Key, 0, len(t.open))
	for k := range t.open {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// ApplyReceipt applies a server-side read receipt.
func (t *Tracker) ApplyReceipt(id string) bool {
	if !t.store.ApplyReadReceipt(id) {
		return false
	}
	t.mirror([]string{id})
	return true
}

// UnreadCount is derived from the store on every call.
func (t *Tracker) UnreadCount(key conversation.Key) int {
	return t.store.UnreadCount(key)
}

// TotalUnread sums unread counts across conversations.
func (t *Tracker) TotalUnread() int {
	return t.store.TotalUnread()
}

// Pending returns the number of read flags not yet persisted remotely.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

func (t *Tracker) record(key conversation.Key, ids []string) {
	if len(ids) == 0 {
		return
	}
	t.mirror(ids)
	if key.IsChannel() {
		return
	}
	added := t.enqueue(ids)
	if t.journal != nil && len(added) > 0 {
		if err := t.journal.QueueReads(added); err != nil {
			t.logger.Warn("journal read flags", zap.Error(err))
		}
	}
	t.signal()
}

// enqueue appends the ids not already queued and returns them.
func (t *Tracker) enqueue(ids []string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var added []string
	for _, id := range ids {
		if !t.queued[id] {
			t.queued[id] = true
			t.pending = append(t.pending, id)
			added = append(added, id)
		}
	}
	return added
}

func (t *Tracker) signal() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

func (t *Tracker) mirror(ids []string) {
	if t.cache == nil {
		return
	}
	if err := t.cache.MarkMessagesRead(ids); err != nil {
		t.logger.Warn("cache read flags", zap.Error(err))
	}
}

// Start reloads read flags journaled by an earlier run and launches the
// persistence worker.
func (t *Tracker) Start() {
	t.run.Do(func() {
		t.restore()
		go t.loop()
	})
}

func (t *Tracker) restore() {
	if t.journal == nil {
		return
	}
	ids, err := t.journal.PendingReads()
	if err != nil {
		t.logger.Warn("read journal", zap.Error(err))
		return
	}
	if n := len(t.enqueue(ids)); n > 0 {
		t.logger.Info("restored unpersisted read flags", zap.Int("ids", n))
		t.signal()
	}
}

// Stop ends the worker after one last flush attempt.
func (t *Tracker) Stop() {
	t.once.Do(func() { close(t.stop) })
	t.run.Do(func() { close(t.done) })
	<-t.done
}

func (t *Tracker) loop() {
	defer close(t.done)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.opts.InitialInterval
	b.MaxInterval = t.opts.MaxInterval
	b.MaxElapsedTime = 0
	b.Reset()

	for {
		select {
		case <-t.stop:
			t.flush()
			return
		case <-t.wake:
		}

		for t.Pending() > 0 {
			if err := t.flush(); err == nil {
				b.Reset()
				continue
			}
			wait := b.NextBackOff()
			select {
			case <-t.stop:
				return
			case <-time.After(wait):
			}
		}
	}
}

// flush persists one batch and drops it from the queue on success.
func (t *Tracker) flush() error {
	t.mu.Lock()
	n := min(len(t.pending), batchSize)
	batch := slices.Clone(t.pending[:n])
	t.mu.Unlock()
	if len(batch) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := t.persister.PersistRead(ctx, batch); err != nil {
		t.logger.Warn("persist read state", zap.Int("ids", len(batch)), zap.Error(err))
		return err
	}

	t.mu.Lock()
	t.pending = t.pending[len(batch):]
	for _, id := range batch {
		delete(t.queued, id)
	}
	t.mu.Unlock()
	if t.journal != nil {
		if err := t.journal.ClearReads(batch); err != nil {
			t.logger.Warn("clear read journal", zap.Error(err))
		}
	}
	t.logger.Debug("read state persisted", zap.Int("ids", len(batch)))
	return nil
}
