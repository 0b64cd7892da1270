// Package notify keeps the in-memory notification list shown to the user.
package notify

import (
	"sync"
	"time"

	"github.com/bondly/bondly/internal/bus"
	"github.com/google/uuid"
)

// Capacity is the number of notifications kept; older ones are evicted.
const Capacity = 100

// Type classifies a notification.
type Type string

const (
	TypeFriend  Type = "friend"
	TypeMessage Type = "message"
	TypeGroup   Type = "group"
	TypeEvent   Type = "event"
)

// Notification is one entry of the center.
type Notification struct {
	ID        string
	Type      Type
	Title     string
	Summary   string
	Read      bool
	CreatedAt time.Time
	// Ref points at the related object, e.g. a conversation key.
	Ref string
}

// Center is safe for concurrent use.
type Center struct {
	bus *bus.Bus

	mu    sync.RWMutex
	items []Notification // newest first
	now   func() time.Time
}

// New creates an empty center. b may be nil.
func New(b *bus.Bus) *Center {
	return &Center{bus: b, now: time.Now}
}

// Add stores n, filling ID and CreatedAt when empty, and returns it.
func (c *Center) Add(n Notification) Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = c.now()
	}
	c.mu.Lock()
	c.items = append([]Notification{n}, c.items...)
	if len(c.items) > Capacity {
		c.items = c.items[:Capacity]
	}
	c.mu.Unlock()

	c.publish()
	return n
}

// List returns the notifications, newest first.
func (c *Center) List() []Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Notification(nil), c.items...)
}

// UnreadCount returns the number of unread notifications.
func (c *Center) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, it := range c.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// MarkRead marks one notification read. Unknown ids are ignored.
func (c *Center) MarkRead(id string) bool {
	c.mu.Lock()
	changed := false
	for i := range c.items {
		if c.items[i].ID == id && !c.items[i].Read {
			c.items[i].Read = true
			changed = true
		}
	}
	c.mu.Unlock()

	if changed {
		c.publish()
	}
	return changed
}

// MarkAllRead marks every notification read.
func (c *Center) MarkAllRead() int {
	c.mu.Lock()
	n := 0
	for i := range c.items {
		if !c.items[i].Read {
			c.items[i].Read = true
			n++
		}
	}
	c.mu.Unlock()

	if n > 0 {
		c.publish()
	}
	return n
}

// Dismiss removes one notification. Unknown ids are ignored.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	removed := false
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			removed = true
			break
		}
	}
	c.mu.Unlock()

	if removed {
		c.publish()
	}
	return removed
}

func (c *Center) publish() {
	if c.bus != nil {
		c.bus.Publish(bus.NewEvent(bus.KindNotificationChanged, c.UnreadCount()))
	}
}
