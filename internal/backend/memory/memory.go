// Package memory is an in-process implementation of the backend row store and
// change feed. It backs the daemon's demo mode and the tests of everything
// above the backend boundary.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/google/uuid"
)

// uniqueKeys lists, per table, column sets that must be unique.
var uniqueKeys = map[string][][]string{
	backend.TableProfiles:     {{"user_id"}},
	backend.TableFriendships:  {{"user_id", "friend_id"}},
	backend.TableMessages:     {{"id"}},
	backend.TableGroupMembers: {{"group_id", "user_id"}},
	backend.TableEvents:       {{"id"}},
}

// Backend is a thread-safe in-memory row store with a change feed.
type Backend struct {
	mu       sync.Mutex
	tables   map[string][]backend.Row
	subs     map[int]*subscription
	nextSub  int
	offline  bool
	failures map[string]error
	calls    map[string]int
	now      func() time.Time
}

// New creates an empty backend.
func New() *Backend {
	return &Backend{
		tables:   make(map[string][]backend.Row),
		subs:     make(map[int]*subscription),
		failures: make(map[string]error),
		calls:    make(map[string]int),
		now:      time.Now,
	}
}

// SetClock overrides the clock used for generated created_at values.
func (b *Backend) SetClock(now func() time.Time) {
	b.mu.Lock()
	b.now = now
	b.mu.Unlock()
}

// Seed inserts rows without uniqueness checks or change notifications.
func (b *Backend) Seed(table string, rows ...backend.Row) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range rows {
		b.tables[table] = append(b.tables[table], b.complete(table, r))
	}
}

// Rows returns a copy of every row in table.
func (b *Backend) Rows(table string) []backend.Row {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]backend.Row, 0, len(b.tables[table]))
	for _, r := range b.tables[table] {
		out = append(out, copyRow(r))
	}
	return out
}

// SetOffline makes every operation fail with a transient error while true.
func (b *Backend) SetOffline(offline bool) {
	b.mu.Lock()
	b.offline = offline
	b.mu.Unlock()
}

// FailNext makes the next op ("query", "insert", "update", "delete") on table
// fail with err.
func (b *Backend) FailNext(op, table string, err error) {
	b.mu.Lock()
	b.failures[op+":"+table] = err
	b.mu.Unlock()
}

// Calls reports how many times op was attempted on table.
func (b *Backend) Calls(op, table string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op+":"+table]
}

// DropSubscriptions ends every open subscription with err, as a transport
// failure would.
func (b *Backend) DropSubscriptions(err error) {
	b.mu.Lock()
	subs := make([]*subscription, 0, len(b.subs))
	for id, s := range b.subs {
		subs = append(subs, s)
		delete(b.subs, id)
	}
	b.mu.Unlock()
	for _, s := range subs {
		s.finish(err)
	}
}

// Subscribers returns the number of open subscriptions.
func (b *Backend) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Backend) begin(op, table string) error {
	b.calls[op+":"+table]++
	if b.offline {
		return &backend.Error{Op: op, Table: table, Kind: backend.ErrTransient, Message: "backend offline"}
	}
	key := op + ":" + table
	if err, ok := b.failures[key]; ok {
		delete(b.failures, key)
		return err
	}
	return nil
}

// Query implements backend.Backend.
func (b *Backend) Query(_ context.Context, table string, q backend.Query) ([]backend.Row, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.begin("query", table); err != nil {
		return nil, err
	}

	var out []backend.Row
	for _, r := range b.tables[table] {
		if matches(r, q) {
			out = append(out, copyRow(r))
		}
	}
	if q.Order != "" {
		slices.SortStableFunc(out, func(x, y backend.Row) int {
			c := compare(x.String(q.Order), y.String(q.Order))
			if c == 0 && q.Then != "" {
				c = compare(x.String(q.Then), y.String(q.Then))
			}
			if q.Desc {
				return -c
			}
			return c
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// Insert implements backend.Backend.
func (b *Backend) Insert(_ context.Context, table string, rec backend.Row) (backend.Row, error) {
	b.mu.Lock()
	if err := b.begin("insert", table); err != nil {
		b.mu.Unlock()
		return nil, err
	}
	row := b.complete(table, rec)
	for _, existing := range b.tables[table] {
		if cols, dup := duplicate(table, existing, row); dup {
			b.mu.Unlock()
			return nil, &backend.Error{
				Op: "insert", Table: table, Status: 409, Kind: backend.ErrConflict,
				Message: fmt.Sprintf("duplicate key (%s)", strings.Join(cols, ", ")),
			}
		}
	}
	b.tables[table] = append(b.tables[table], row)
	change := backend.Change{Table: table, Type: backend.Insert, Record: copyRow(row), CommitTime: b.now()}
	b.mu.Unlock()

	b.notify(change)
	return copyRow(row), nil
}

// Update implements backend.Backend.
func (b *Backend) Update(_ context.Context, table string, q backend.Query, patch backend.Row) error {
	b.mu.Lock()
	if err := b.begin("update", table); err != nil {
		b.mu.Unlock()
		return err
	}
	var changes []backend.Change
	for _, r := range b.tables[table] {
		if !matches(r, q) {
			continue
		}
		old := copyRow(r)
		for k, v := range patch {
			r[k] = v
		}
		changes = append(changes, backend.Change{Table: table, Type: backend.Update, Record: copyRow(r), Old: old, CommitTime: b.now()})
	}
	b.mu.Unlock()

	for _, c := range changes {
		b.notify(c)
	}
	return nil
}

// Delete implements backend.Backend.
func (b *Backend) Delete(_ context.Context, table string, q backend.Query) error {
	b.mu.Lock()
	if err := b.begin("delete", table); err != nil {
		b.mu.Unlock()
		return err
	}
	var kept []backend.Row
	var changes []backend.Change
	for _, r := range b.tables[table] {
		if matches(r, q) {
			changes = append(changes, backend.Change{Table: table, Type: backend.Delete, Old: copyRow(r), CommitTime: b.now()})
			continue
		}
		kept = append(kept, r)
	}
	b.tables[table] = kept
	b.mu.Unlock()

	for _, c := range changes {
		b.notify(c)
	}
	return nil
}

// complete fills generated columns. Must be called with b.mu held.
func (b *Backend) complete(table string, rec backend.Row) backend.Row {
	row := copyRow(rec)
	switch table {
	case backend.TableMessages, backend.TableEvents:
		if row.String("id") == "" {
			row["id"] = uuid.NewString()
		}
		if _, ok := row["read"]; !ok && table == backend.TableMessages {
			row["read"] = false
		}
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = b.now().UTC().Format(time.RFC3339Nano)
	}
	return row
}

func duplicate(table string, a, b backend.Row) ([]string, bool) {
	for _, cols := range uniqueKeys[table] {
		same := true
		for _, c := range cols {
			if a.String(c) == "" || a.String(c) != b.String(c) {
				same = false
				break
			}
		}
		if same {
			return cols, true
		}
	}
	return nil, false
}

func copyRow(r backend.Row) backend.Row {
	out := make(backend.Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
