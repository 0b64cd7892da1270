package sync

import (
	"context"
	"fmt"
	"slices"
	gosync "sync"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/store"
	"go.uber.org/zap"
)

const (
	// InitialLimit is how many recent messages the first load fetches.
	InitialLimit = 200
	gapPageSize  = 500
	hydrateLimit = 1000
)

// Loader performs the initial load and the gap fill after a resubscribe. It
// implements ingest.Loader.
type Loader struct {
	self   string
	be     backend.Backend
	dir    *contacts.Directory
	engine *Engine
	rec    *Reconciler
	db     *store.DB
	logger *zap.Logger

	mu       gosync.Mutex
	prepared bool
	since    time.Time
	resume   bool
}

// NewLoader creates a loader writing through engine.
func NewLoader(self string, be backend.Backend, dir *contacts.Directory, engine *Engine, db *store.DB, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{self: self, be: be, dir: dir, engine: engine, rec: engine.rec, db: db, logger: logger}
}

// Hydrate fills the conversation store from the local cache.
func (l *Loader) Hydrate() (int, error) {
	if l.db == nil {
		return 0, nil
	}
	cached, err := l.db.RecentMessages(hydrateLimit)
	if err != nil {
		return 0, fmt.Errorf("read cache: %w", err)
	}
	msgs := make([]conversation.Message, 0, len(cached))
	for _, c := range cached {
		msgs = append(msgs, conversation.FromCache(c))
	}
	n := l.engine.conv.Hydrate(msgs)
	l.logger.Info("conversations hydrated from cache", zap.Int("messages", n))
	return n, nil
}

// Prepare snapshots the checkpoint the next Sync resumes from. It must run
// before the subscribe: live messages delivered between the subscribe and
// the load advance the checkpoint past the gap still to be filled.
func (l *Loader) Prepare() {
	since, ok := l.rec.LastSeen()
	l.mu.Lock()
	l.prepared, l.since, l.resume = true, since, ok
	l.mu.Unlock()
}

// checkpoint returns the prepared snapshot once, or the current checkpoint
// when Prepare was not called.
func (l *Loader) checkpoint() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.prepared {
		return l.rec.LastSeen()
	}
	l.prepared = false
	return l.since, l.resume
}

// Sync reloads contacts, then fetches messages: the most recent ones on first
// run, everything since the checkpoint afterwards.
func (l *Loader) Sync(ctx context.Context) error {
	since, ok := l.checkpoint()
	if err := l.dir.Load(ctx); err != nil {
		return err
	}
	channels, err := l.channels(ctx)
	if err != nil {
		return err
	}

	var added int
	if ok {
		added, err = l.gapFill(ctx, channels, since)
	} else {
		added, err = l.initial(ctx, channels)
	}
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}
	l.logger.Info("messages synced", zap.Bool("gap_fill", ok), zap.Int("added", added))
	return nil
}

func (l *Loader) involving(channels []string) backend.Query {
	groups := [][]backend.Filter{
		backend.All(backend.Eq("sender_id", l.self)),
		backend.All(backend.Eq("receiver_id", l.self)),
	}
	if len(channels) > 0 {
		groups = append(groups, backend.All(backend.In("channel_id", channels)))
	}
	return backend.Query{}.AnyOf(groups...)
}

func (l *Loader) channels(ctx context.Context) ([]string, error) {
	rows, err := l.be.Query(ctx, backend.TableGroupMembers, backend.Where(backend.Eq("user_id", l.self)))
	if err != nil {
		return nil, fmt.Errorf("load channels: %w", err)
	}
	var ids []string
	for _, r := range rows {
		if id := r.String("group_id"); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (l *Loader) initial(ctx context.Context, channels []string) (int, error) {
	rows, err := l.be.Query(ctx, backend.TableMessages, l.involving(channels).OrderBy("created_at", true).WithLimit(InitialLimit))
	if err != nil {
		return 0, err
	}
	slices.Reverse(rows)
	return l.apply(rows), nil
}

// gapFill pages forward from since in (created_at, id) order. The first page
// includes the boundary timestamp; the store drops the repeats.
func (l *Loader) gapFill(ctx context.Context, channels []string, since time.Time) (int, error) {
	total := 0
	var after backend.Row
	for {
		q := l.involving(channels)
		if after == nil {
			q.Filters = append(q.Filters, backend.Gte("created_at", stamp(since)))
		} else {
			q.Or = cross(q.Or, keysetAfter(after))
		}
		rows, err := l.be.Query(ctx, backend.TableMessages, q.OrderBy("created_at", false).ThenBy("id").WithLimit(gapPageSize))
		if err != nil {
			return total, err
		}
		total += l.apply(rows)
		if len(rows) < gapPageSize {
			return total, nil
		}
		after = rows[len(rows)-1]
	}
}

// keysetAfter matches rows sorting strictly after last.
func keysetAfter(last backend.Row) [][]backend.Filter {
	ts := last.String("created_at")
	if t, ok := last.Time("created_at"); ok {
		ts = stamp(t)
	}
	return [][]backend.Filter{
		backend.All(backend.Gt("created_at", ts)),
		backend.All(backend.Eq("created_at", ts), backend.Gt("id", last.String("id"))),
	}
}

// cross ANDs two disjunctions of conjunctions.
func cross(a, b [][]backend.Filter) [][]backend.Filter {
	if len(a) == 0 {
		return b
	}
	out := make([][]backend.Filter, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, append(slices.Clone(x), y...))
		}
	}
	return out
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (l *Loader) apply(rows []backend.Row) int {
	added := 0
	for _, r := range rows {
		m, err := conversation.FromRow(r)
		if err != nil {
			l.logger.Debug("skip malformed message row", zap.String("id", r.String("id")))
			continue
		}
		if l.engine.IngestMessage(m) {
			added++
		}
	}
	return added
}
