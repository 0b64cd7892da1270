// Package contacts maintains the user's friends and friend suggestions.
package contacts

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/status"
	"github.com/bondly/bondly/internal/store"
	"go.uber.org/zap"
)

// SuggestionLimit caps the suggestion list.
const SuggestionLimit = 10

const statusAccepted = "accepted"

// ErrInvalidContact is returned for an empty id or the user's own id.
var ErrInvalidContact = errors.New("invalid contact")

// Contact is another user as seen by the directory.
type Contact struct {
	ID          string
	DisplayName string
	Online      bool
}

// Presence renders the contact's presence line.
func (c Contact) Presence() string {
	return status.Presence(c.Online)
}

// Cache persists the friend list between runs. *store.DB implements it.
type Cache interface {
	ReplaceFriends([]store.Contact) error
	Friends() ([]store.Contact, error)
}

// Directory is safe for concurrent use.
type Directory struct {
	self   string
	be     backend.Backend
	cache  Cache
	bus    *bus.Bus
	logger *zap.Logger

	mu          sync.RWMutex
	friends     map[string]Contact
	suggestions map[string]Contact
	known       map[string]Contact
	adding      map[string]bool
}

// New creates a directory for self. cache and b may be nil.
func New(self string, be backend.Backend, cache Cache, b *bus.Bus, logger *zap.Logger) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Directory{
		self:        self,
		be:          be,
		cache:       cache,
		bus:         b,
		logger:      logger,
		friends:     make(map[string]Contact),
		suggestions: make(map[string]Contact),
		known:       make(map[string]Contact),
		adding:      make(map[string]bool),
	}
}

// Self returns the user id the directory belongs to.
func (d *Directory) Self() string { return d.self }

// Load fetches friends and suggestions. When the backend fails, cached
// friends are served and the error is still returned.
func (d *Directory) Load(ctx context.Context) error {
	friends, suggestions, err := d.fetch(ctx)
	if err != nil {
		d.fallback()
		return fmt.Errorf("load contacts: %w", err)
	}

	d.mu.Lock()
	d.friends = index(friends)
	d.suggestions = index(suggestions)
	for _, c := range friends {
		d.known[c.ID] = c
	}
	for _, c := range suggestions {
		d.known[c.ID] = c
	}
	d.mu.Unlock()

	d.persist()
	d.publish()
	d.logger.Debug("contacts loaded", zap.Int("friends", len(friends)), zap.Int("suggestions", len(suggestions)))
	return nil
}

func (d *Directory) fetch(ctx context.Context) (friends, suggestions []Contact, err error) {
	rows, err := d.be.Query(ctx, backend.TableFriendships,
		backend.Where(backend.Eq("user_id", d.self), backend.Eq("status", statusAccepted)))
	if err != nil {
		return nil, nil, err
	}
	var ids []string
	for _, r := range rows {
		if id := r.String("friend_id"); id != "" && id != d.self && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	if len(ids) > 0 {
		rows, err = d.be.Query(ctx, backend.TableProfiles, backend.Where(backend.In("user_id", ids)))
		if err != nil {
			return nil, nil, err
		}
		friends = fromRows(rows)
	}

	q := backend.Where(backend.Neq("user_id", d.self))
	if len(ids) > 0 {
		q.Filters = append(q.Filters, backend.NotIn("user_id", ids))
	}
	rows, err = d.be.Query(ctx, backend.TableProfiles, q.OrderBy("full_name", false).WithLimit(SuggestionLimit))
	if err != nil {
		return nil, nil, err
	}
	return friends, fromRows(rows), nil
}

func (d *Directory) fallback() {
	if d.cache == nil {
		return
	}
	cached, err := d.cache.Friends()
	if err != nil {
		d.logger.Warn("read cached friends", zap.Error(err))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.friends) > 0 {
		return
	}
	for _, c := range cached {
		contact := Contact{ID: c.UserID, DisplayName: c.DisplayName, Online: c.Online}
		d.friends[c.UserID] = contact
		d.known[c.UserID] = contact
	}
}

// Friends returns friends ordered by display name.
func (d *Directory) Friends() []Contact {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return sorted(d.friends, 0)
}

// Suggestions returns up to SuggestionLimit candidates that are neither self
// nor friends, ordered by display name.
func (d *Directory) Suggestions() []Contact {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return sorted(d.suggestions, SuggestionLimit)
}

// IsFriend reports whether id is a friend.
func (d *Directory) IsFriend(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.friends[id]
	return ok
}

// Initiated reports whether id is a friend or being added by this user.
func (d *Directory) Initiated(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.friends[id]
	return ok || d.adding[id]
}

// AddFriend creates the friendship in both directions. It is idempotent.
func (d *Directory) AddFriend(ctx context.Context, candidateID string) error {
	if err := d.validate(candidateID); err != nil {
		return err
	}
	if d.IsFriend(candidateID) {
		return nil
	}
	d.mu.Lock()
	d.adding[candidateID] = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		delete(d.adding, candidateID)
		d.mu.Unlock()
	}()

	forward := backend.Row{"user_id": d.self, "friend_id": candidateID, "status": statusAccepted}
	if _, err := d.be.Insert(ctx, backend.TableFriendships, forward); err != nil && !errors.Is(err, backend.ErrConflict) {
		return fmt.Errorf("add friend %s: %w", candidateID, err)
	}
	reverse := backend.Row{"user_id": candidateID, "friend_id": d.self, "status": statusAccepted}
	if _, err := d.be.Insert(ctx, backend.TableFriendships, reverse); err != nil && !errors.Is(err, backend.ErrConflict) {
		undo := backend.Where(backend.Eq("user_id", d.self), backend.Eq("friend_id", candidateID))
		if uerr := d.be.Delete(context.WithoutCancel(ctx), backend.TableFriendships, undo); uerr != nil {
			d.logger.Error("undo one-sided friendship", zap.String("contact", candidateID), zap.Error(uerr))
		}
		return fmt.Errorf("add friend %s: %w", candidateID, err)
	}

	contact := d.resolve(ctx, candidateID)
	d.mu.Lock()
	delete(d.suggestions, candidateID)
	d.friends[candidateID] = contact
	d.known[candidateID] = contact
	d.mu.Unlock()

	d.persist()
	d.publish()
	d.logger.Info("friend added", zap.String("contact", candidateID))
	return nil
}

// RemoveFriend deletes both friendship rows with one filtered delete.
func (d *Directory) RemoveFriend(ctx context.Context, contactID string) error {
	if err := d.validate(contactID); err != nil {
		return err
	}
	q := backend.Query{}.AnyOf(
		backend.All(backend.Eq("user_id", d.self), backend.Eq("friend_id", contactID)),
		backend.All(backend.Eq("user_id", contactID), backend.Eq("friend_id", d.self)),
	)
	if err := d.be.Delete(ctx, backend.TableFriendships, q); err != nil {
		return fmt.Errorf("remove friend %s: %w", contactID, err)
	}

	d.mu.Lock()
	contact, ok := d.friends[contactID]
	if !ok {
		contact, ok = d.known[contactID]
	}
	delete(d.friends, contactID)
	if ok {
		d.suggestions[contactID] = contact
	}
	d.mu.Unlock()

	d.persist()
	d.publish()
	d.logger.Info("friend removed", zap.String("contact", contactID))
	return nil
}

// Lookup finds any contact the directory has seen.
func (d *Directory) Lookup(id string) (Contact, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if c, ok := d.friends[id]; ok {
		return c, true
	}
	if c, ok := d.suggestions[id]; ok {
		return c, true
	}
	c, ok := d.known[id]
	return c, ok
}

// DisplayName returns the contact's display name, or id when unknown.
func (d *Directory) DisplayName(id string) string {
	if c, ok := d.Lookup(id); ok && c.DisplayName != "" {
		return c.DisplayName
	}
	return id
}

// ApplyProfile merges a profile update into every list holding the contact.
// It reports whether anything changed.
func (d *Directory) ApplyProfile(c Contact) bool {
	if c.ID == "" || c.ID == d.self {
		return false
	}
	d.mu.Lock()
	changed := false
	for _, m := range []map[string]Contact{d.friends, d.suggestions, d.known} {
		old, ok := m[c.ID]
		if !ok {
			continue
		}
		if c.DisplayName == "" {
			c.DisplayName = old.DisplayName
		}
		if old != c {
			m[c.ID] = c
			changed = true
		}
	}
	d.mu.Unlock()

	if changed {
		d.publish()
	}
	return changed
}

// SetOnline updates a contact's presence.
func (d *Directory) SetOnline(id string, online bool) bool {
	c, ok := d.Lookup(id)
	if !ok {
		return false
	}
	c.Online = online
	return d.ApplyProfile(c)
}

// Presence renders the presence line for id.
func (d *Directory) Presence(id string) string {
	c, _ := d.Lookup(id)
	return c.Presence()
}

func (d *Directory) validate(id string) error {
	if strings.TrimSpace(id) == "" || id == d.self {
		return ErrInvalidContact
	}
	return nil
}

// resolve returns the best known profile for id, fetching it when unknown.
func (d *Directory) resolve(ctx context.Context, id string) Contact {
	if c, ok := d.Lookup(id); ok {
		return c
	}
	rows, err := d.be.Query(ctx, backend.TableProfiles, backend.Where(backend.Eq("user_id", id)).WithLimit(1))
	if err != nil || len(rows) == 0 {
		return Contact{ID: id, DisplayName: id}
	}
	return fromRow(rows[0])
}

func (d *Directory) persist() {
	if d.cache == nil {
		return
	}
	friends := d.Friends()
	cached := make([]store.Contact, 0, len(friends))
	for _, c := range friends {
		cached = append(cached, store.Contact{UserID: c.ID, DisplayName: c.DisplayName, Online: c.Online})
	}
	if err := d.cache.ReplaceFriends(cached); err != nil {
		d.logger.Warn("cache friends", zap.Error(err))
	}
}

func (d *Directory) publish() {
	if d.bus != nil {
		d.bus.Publish(bus.NewEvent(bus.KindContactsChanged, nil))
	}
}

// fromRow converts a profiles row.
func fromRow(r backend.Row) Contact {
	name := r.String("full_name")
	if name == "" {
		name = r.String("username")
	}
	id := r.String("user_id")
	if name == "" {
		name = id
	}
	return Contact{ID: id, DisplayName: name, Online: r.Bool("online")}
}

func fromRows(rows []backend.Row) []Contact {
	out := make([]Contact, 0, len(rows))
	for _, r := range rows {
		if c := fromRow(r); c.ID != "" {
			out = append(out, c)
		}
	}
	return out
}

// ContactFromProfile converts a profiles row from the change feed. ok is
// false when the row has no user id.
func ContactFromProfile(r backend.Row) (c Contact, ok bool) {
	c = fromRow(r)
	if r.String("full_name") == "" && r.String("username") == "" {
		c.DisplayName = ""
	}
	return c, c.ID != ""
}

func index(cs []Contact) map[string]Contact {
	m := make(map[string]Contact, len(cs))
	for _, c := range cs {
		m[c.ID] = c
	}
	return m
}

func sorted(m map[string]Contact, limit int) []Contact {
	out := make([]Contact, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Contact) int {
		if c := strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
