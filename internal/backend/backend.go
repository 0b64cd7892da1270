// Package backend describes the hosted backend-as-a-service the messaging core
// talks to: a row store reachable through filtered queries and a change feed
// keyed by table and event type.
package backend

import (
	"context"
	"time"
)

// Table names used by the core.
const (
	TableProfiles     = "profiles"
	TableFriendships  = "friendships"
	TableMessages     = "messages"
	TableGroupMembers = "group_members"
	TableEvents       = "events"
)

// Row is a single record as returned by the backend.
type Row map[string]any

// Backend is the row store.
type Backend interface {
	Query(ctx context.Context, table string, q Query) ([]Row, error)
	Insert(ctx context.Context, table string, rec Row) (Row, error)
	Update(ctx context.Context, table string, q Query, patch Row) error
	Delete(ctx context.Context, table string, q Query) error
}

// EventType is the kind of row change.
type EventType string

const (
	Insert EventType = "INSERT"
	Update EventType = "UPDATE"
	Delete EventType = "DELETE"
)

// EventMask selects which change types a topic carries.
type EventMask uint8

const (
	MaskInsert EventMask = 1 << iota
	MaskUpdate
	MaskDelete

	MaskAll = MaskInsert | MaskUpdate | MaskDelete
)

// Has reports whether the mask includes t.
func (m EventMask) Has(t EventType) bool {
	switch t {
	case Insert:
		return m&MaskInsert != 0
	case Update:
		return m&MaskUpdate != 0
	case Delete:
		return m&MaskDelete != 0
	}
	return false
}

// Event returns the wire name for the mask: a single type or "*".
func (m EventMask) Event() string {
	switch m {
	case MaskInsert:
		return string(Insert)
	case MaskUpdate:
		return string(Update)
	case MaskDelete:
		return string(Delete)
	}
	return "*"
}

// Topic is one change-feed subscription target.
type Topic struct {
	Table  string
	Events EventMask
	// Filter is an optional server-side row filter such as "user_id=eq.42".
	Filter string
}

// Change is a raw change payload as delivered by a feed. Record holds the new
// row for inserts and updates; Old holds the previous row when the feed
// provides it.
type Change struct {
	Table      string
	Type       EventType
	Record     Row
	Old        Row
	CommitTime time.Time
}

// ChangeFeed subscribes to row changes. SubscribeChanges returns once the
// server has acknowledged every topic; fn is then called from the feed's
// receive goroutine for each change.
type ChangeFeed interface {
	SubscribeChanges(ctx context.Context, topics []Topic, fn func(Change)) (Subscription, error)
}

// Subscription is an established change-feed subscription.
type Subscription interface {
	// Done is closed when the subscription ends for any reason.
	Done() <-chan struct{}
	// Err returns the cause after Done is closed; nil after a clean Close.
	Err() error
	// Close ends the subscription. It is safe to call more than once.
	Close() error
}
