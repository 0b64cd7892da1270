// Package sync routes ingested events into the core stores and loads history
// on (re)connect.
package sync

import (
	"context"
	gosync "sync"
	"unicode/utf8"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/ingest"
	"github.com/bondly/bondly/internal/notify"
	"github.com/bondly/bondly/internal/readstate"
	"github.com/bondly/bondly/internal/store"
	"go.uber.org/zap"
)

const previewLen = 80

// Engine drains the ingest queue in order. It implements ingest.Sink.
type Engine struct {
	self    string
	conv    *conversation.Store
	dir     *contacts.Directory
	tracker *readstate.Tracker
	notes   *notify.Center
	rec     *Reconciler
	db      *store.DB
	bus     *bus.Bus
	logger  *zap.Logger

	mu     gosync.Mutex
	queue  []bus.Event
	signal chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

var _ ingest.Sink = (*Engine)(nil)

// Deps groups the engine's collaborators. DB, Bus and Notes may be nil.
type Deps struct {
	Self       string
	Store      *conversation.Store
	Directory  *contacts.Directory
	Tracker    *readstate.Tracker
	Notes      *notify.Center
	Reconciler *Reconciler
	DB         *store.DB
	Bus        *bus.Bus
}

// NewEngine creates a new sync engine.
func NewEngine(d Deps, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if d.Reconciler == nil {
		d.Reconciler = NewReconciler(d.DB, logger)
	}
	return &Engine{
		self:    d.Self,
		conv:    d.Store,
		dir:     d.Directory,
		tracker: d.Tracker,
		notes:   d.Notes,
		rec:     d.Reconciler,
		db:      d.DB,
		bus:     d.Bus,
		logger:  logger,
		signal:  make(chan struct{}, 1),
	}
}

// Enqueue appends evt to the queue. It never blocks.
func (e *Engine) Enqueue(evt bus.Event) {
	e.mu.Lock()
	e.queue = append(e.queue, evt)
	e.mu.Unlock()
	select {
	case e.signal <- struct{}{}:
	default:
	}
}

// Start launches the draining goroutine.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	if e.cancel != nil {
		e.mu.Unlock()
		return
	}
	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})
	done := e.done
	e.mu.Unlock()

	go func() {
		defer close(done)
		for {
			for _, evt := range e.drain() {
				e.Handle(ctx, evt)
			}
			select {
			case <-e.signal:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the engine and waits for the current event to finish.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (e *Engine) drain() []bus.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.queue
	e.queue = nil
	return out
}

// Handle applies one ingest event and republishes it on the bus.
func (e *Engine) Handle(ctx context.Context, evt bus.Event) {
	switch p := evt.Payload.(type) {
	case ingest.MessageReceived:
		e.ingestMessage(p.Message, true)
	case ingest.MessageRead:
		e.tracker.ApplyReceipt(p.ID)
	case ingest.FriendshipChanged:
		e.friendshipChanged(ctx, p)
	case ingest.PresenceChanged:
		e.dir.ApplyProfile(p.Contact)
	case ingest.GroupJoined:
		if p.UserID == e.self {
			e.notify(notify.Notification{Type: notify.TypeGroup, Title: "You joined a group", Ref: p.GroupID})
		}
	case ingest.EventCreated:
		e.notify(notify.Notification{Type: notify.TypeEvent, Title: "New event", Summary: p.Title, Ref: p.ID})
	default:
		e.logger.Debug("unhandled ingest event", zap.String("kind", evt.Kind))
		return
	}
	if e.bus != nil {
		e.bus.Publish(evt)
	}
}

// IngestMessage applies a server message (idempotent) and writes it through
// to the cache. live controls whether a notification may be raised.
func (e *Engine) IngestMessage(m conversation.Message) bool {
	return e.ingestMessage(m, false)
}

func (e *Engine) ingestMessage(m conversation.Message, live bool) bool {
	added := e.conv.AppendIncoming(m)
	e.rec.Advance(m.CreatedAt)

	if stored, _, ok := e.conv.Get(m.ID); ok && e.db != nil {
		cached := stored.ToCache(e.self)
		if err := e.db.UpsertMessage(&cached); err != nil {
			e.logger.Error("failed to cache message", zap.Error(err), zap.String("id", m.ID))
		}
	}

	key := conversation.KeyFor(e.self, m)
	if added && live && m.Incoming(e.self) && !e.tracker.IsOpen(key) {
		title := m.SenderID
		if e.dir != nil {
			title = e.dir.DisplayName(m.SenderID)
		}
		e.notify(notify.Notification{Type: notify.TypeMessage, Title: title, Summary: truncate(m.Body, previewLen), Ref: string(key)})
	}
	return added
}

func (e *Engine) friendshipChanged(ctx context.Context, f ingest.FriendshipChanged) {
	other := f.FriendID
	if other == e.self {
		other = f.UserID
	}
	initiated := e.dir.Initiated(other)
	if err := e.dir.Load(ctx); err != nil {
		e.logger.Warn("reload contacts", zap.Error(err))
	}
	if f.Type == backend.Insert && !initiated && e.dir.IsFriend(other) {
		e.notify(notify.Notification{Type: notify.TypeFriend, Title: e.dir.DisplayName(other) + " is now your friend", Ref: other})
	}
}

func (e *Engine) notify(n notify.Notification) {
	if e.notes != nil {
		e.notes.Add(n)
	}
}

func truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	r := []rune(s)
	return string(r[:maxRunes-1]) + "…"
}
