package conversation

import (
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/bondly/bondly/internal/bus"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownMessage is returned for a local id the store never issued.
var ErrUnknownMessage = errors.New("unknown message")

// ReadPolicy decides whether incoming messages are stored already read. It is
// consulted with the store's lock held and must not call back into the store.
type ReadPolicy interface {
	IsOpen(key Key) bool
	// Flipped is told which ids were stored read because key was open. It
	// is called without the store's lock.
	Flipped(key Key, ids []string)
}

// Names resolves user ids to display names.
type Names interface {
	DisplayName(id string) string
}

// Summary describes one conversation for list views.
type Summary struct {
	Key         Key
	Counterpart string
	Title       string
	Last        Message
	Unread      int
	Pending     int
	Failed      int
}

// Updated is the payload of conversation.updated events.
type Updated struct {
	Key     Key
	LocalID string
}

// Store is safe for concurrent use: one writer at a time, many readers.
type Store struct {
	self   string
	bus    *bus.Bus
	names  Names
	logger *zap.Logger

	mu      sync.RWMutex
	policy  ReadPolicy
	convs   map[Key][]*Message
	byLocal map[string]Key
	byID    map[string]Key
	seq     uint64
	now     func() time.Time
}

// New creates an empty store for self. b and names may be nil.
func New(self string, b *bus.Bus, names Names, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		self:    self,
		bus:     b,
		names:   names,
		logger:  logger,
		convs:   make(map[Key][]*Message),
		byLocal: make(map[string]Key),
		byID:    make(map[string]Key),
		now:     time.Now,
	}
}

// Self returns the owning user id.
func (s *Store) Self() string { return s.self }

// SetReadPolicy installs the policy consulted on incoming appends.
func (s *Store) SetReadPolicy(p ReadPolicy) {
	s.mu.Lock()
	s.policy = p
	s.mu.Unlock()
}

// Conversation returns a copy of the ordered messages of key.
func (s *Store) Conversation(key Key) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.convs[key]
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		out[i] = *m
	}
	return out
}

// Get returns the entry with the given local id.
func (s *Store) Get(localID string) (Message, Key, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.byLocal[localID]
	if !ok {
		return Message{}, "", false
	}
	m := s.find(key, localID)
	if m == nil {
		return Message{}, "", false
	}
	return *m, key, true
}

// AppendIncoming adds a server message. A message already present by server
// id is not added again; one matching a pending or failed entry's local id
// confirms that entry. It reports whether a new entry was added.
func (s *Store) AppendIncoming(msg Message) bool {
	if msg.ID == "" {
		return false
	}
	key := KeyFor(s.self, msg)

	s.mu.Lock()
	if existing, ok := s.byID[msg.ID]; ok {
		changed := false
		if m := s.findByID(existing, msg.ID); m != nil && msg.Read && !m.Read {
			m.Read = true
			changed = true
		}
		s.mu.Unlock()
		if changed {
			s.publish(existing, msg.ID)
		}
		return false
	}
	if _, ok := s.byLocal[msg.ID]; ok {
		s.reconcileLocked(msg.ID, msg)
		s.mu.Unlock()
		s.publish(key, msg.ID)
		return false
	}

	msg.State = Confirmed
	msg.LocalID = msg.ID
	msg.Error = ""
	var flipped []string
	policy := s.policy
	if !msg.Read && msg.Incoming(s.self) && policy != nil && policy.IsOpen(key) {
		msg.Read = true
		flipped = []string{msg.ID}
	}
	s.insertLocked(key, &msg)
	s.byID[msg.ID] = key
	s.mu.Unlock()

	if len(flipped) > 0 {
		policy.Flipped(key, flipped)
	}
	s.publish(key, msg.ID)
	return true
}

// Hydrate loads cached messages without consulting the read policy or
// publishing events.
func (s *Store) Hydrate(msgs []Message) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range msgs {
		if m.ID == "" {
			continue
		}
		if _, ok := s.byID[m.ID]; ok {
			continue
		}
		m.State = Confirmed
		m.LocalID = m.ID
		key := KeyFor(s.self, m)
		s.insertLocked(key, &m)
		s.byID[m.ID] = key
		n++
	}
	return n
}

// AppendOutgoingOptimistic inserts a pending entry for draft and returns it.
func (s *Store) AppendOutgoingOptimistic(key Key, draft Draft) Message {
	return s.appendLocal(key, draft, uuid.NewString(), time.Time{}, Pending, "")
}

// RestoreFailed re-creates a failed entry for a send that never completed.
// An entry already holding localID is returned unchanged.
func (s *Store) RestoreFailed(key Key, draft Draft, localID string, createdAt time.Time, reason string) Message {
	return s.appendLocal(key, draft, localID, createdAt, Failed, reason)
}

func (s *Store) appendLocal(key Key, draft Draft, localID string, createdAt time.Time, state State, reason string) Message {
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}
	m := &Message{
		LocalID:    localID,
		SenderID:   draft.SenderID,
		ReceiverID: draft.ReceiverID,
		ChannelID:  draft.ChannelID,
		Body:       draft.Body,
		CreatedAt:  createdAt,
		Read:       false,
		State:      state,
		Error:      reason,
	}
	s.mu.Lock()
	if existing, ok := s.byLocal[localID]; ok {
		var out Message
		if e := s.find(existing, localID); e != nil {
			out = *e
		}
		s.mu.Unlock()
		return out
	}
	s.insertLocked(key, m)
	out := *m
	s.mu.Unlock()

	s.publish(key, localID)
	return out
}

// Reconcile confirms the entry localID with the server's record. Confirming
// an already confirmed entry is a no-op.
func (s *Store) Reconcile(localID string, server Message) error {
	s.mu.Lock()
	key, ok := s.byLocal[localID]
	if !ok {
		s.mu.Unlock()
		return ErrUnknownMessage
	}
	changed := s.reconcileLocked(localID, server)
	s.mu.Unlock()

	if changed {
		s.publish(key, localID)
	}
	return nil
}

// reconcileLocked must be called with s.mu held.
func (s *Store) reconcileLocked(localID string, server Message) bool {
	key := s.byLocal[localID]
	msgs := s.convs[key]
	idx := slices.IndexFunc(msgs, func(m *Message) bool { return m.LocalID == localID })
	if idx < 0 {
		return false
	}
	m := msgs[idx]
	id := server.ID
	if id == "" {
		id = localID
	}
	if m.State == Confirmed && m.ID == id {
		return false
	}
	if other, ok := s.byID[id]; ok && s.findByID(other, id) != m {
		// The server record is already present as its own entry.
		s.convs[key] = slices.Delete(msgs, idx, idx+1)
		delete(s.byLocal, localID)
		return true
	}

	m.ID = id
	m.State = Confirmed
	m.Error = ""
	m.Read = m.Read || server.Read
	s.byID[id] = key
	if !server.CreatedAt.IsZero() && !server.CreatedAt.Equal(m.CreatedAt) {
		m.CreatedAt = server.CreatedAt
		s.reposition(key, idx)
	}
	return true
}

// MarkFailed marks a pending entry failed. Confirmed entries are left alone.
func (s *Store) MarkFailed(localID string, cause error) error {
	reason := ""
	if cause != nil {
		reason = cause.Error()
	}
	return s.setState(localID, Failed, reason)
}

// MarkPending returns a failed entry to pending for a retry.
func (s *Store) MarkPending(localID string) error {
	return s.setState(localID, Pending, "")
}

func (s *Store) setState(localID string, state State, reason string) error {
	s.mu.Lock()
	key, ok := s.byLocal[localID]
	if !ok {
		s.mu.Unlock()
		return ErrUnknownMessage
	}
	m := s.find(key, localID)
	if m == nil {
		s.mu.Unlock()
		return ErrUnknownMessage
	}
	if m.State == Confirmed {
		s.mu.Unlock()
		return nil
	}
	m.State = state
	m.Error = reason
	s.mu.Unlock()

	s.publish(key, localID)
	return nil
}

// MarkRead flips every unread incoming message of key to read and returns
// the server ids flipped.
func (s *Store) MarkRead(key Key) []string {
	s.mu.Lock()
	var flipped []string
	for _, m := range s.convs[key] {
		if m.State == Confirmed && !m.Read && m.Incoming(s.self) {
			m.Read = true
			flipped = append(flipped, m.ID)
		}
	}
	s.mu.Unlock()

	if len(flipped) > 0 {
		s.publish(key, "")
	}
	return flipped
}

// ApplyReadReceipt records that the server marked id read.
func (s *Store) ApplyReadReceipt(id string) bool {
	s.mu.Lock()
	key, ok := s.byID[id]
	var m *Message
	if ok {
		m = s.findByID(key, id)
	}
	if m == nil || m.Read {
		s.mu.Unlock()
		return false
	}
	m.Read = true
	s.mu.Unlock()

	s.publish(key, m.LocalID)
	return true
}

// UnreadCount returns the number of unread incoming messages in key.
func (s *Store) UnreadCount(key Key) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadLocked(key)
}

// TotalUnread sums UnreadCount over every conversation.
func (s *Store) TotalUnread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for key := range s.convs {
		n += s.unreadLocked(key)
	}
	return n
}

func (s *Store) unreadLocked(key Key) int {
	n := 0
	for _, m := range s.convs[key] {
		if !m.Read && m.State == Confirmed && m.Incoming(s.self) {
			n++
		}
	}
	return n
}

// Conversations returns one summary per non-empty conversation, most recent
// first.
func (s *Store) Conversations() []Summary {
	s.mu.RLock()
	out := make([]Summary, 0, len(s.convs))
	for key, msgs := range s.convs {
		if len(msgs) == 0 {
			continue
		}
		sum := Summary{Key: key, Last: *msgs[len(msgs)-1], Unread: s.unreadLocked(key)}
		for _, m := range msgs {
			switch m.State {
			case Pending:
				sum.Pending++
			case Failed:
				sum.Failed++
			}
		}
		out = append(out, sum)
	}
	s.mu.RUnlock()

	for i := range out {
		if id := out[i].Key.ChannelID(); id != "" {
			out[i].Title = "#" + id
			continue
		}
		out[i].Counterpart = out[i].Key.Counterpart(s.self)
		out[i].Title = out[i].Counterpart
		if s.names != nil {
			out[i].Title = s.names.DisplayName(out[i].Counterpart)
		}
	}
	slices.SortFunc(out, func(a, b Summary) int {
		if c := b.Last.CreatedAt.Compare(a.Last.CreatedAt); c != 0 {
			return c
		}
		return compareKeys(a.Key, b.Key)
	})
	return out
}

func compareKeys(a, b Key) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// insertLocked places m by (CreatedAt, arrival sequence). A zero seq is
// assigned the next sequence number.
func (s *Store) insertLocked(key Key, m *Message) {
	if m.seq == 0 {
		s.seq++
		m.seq = s.seq
	}
	msgs := s.convs[key]
	i := sort.Search(len(msgs), func(i int) bool { return less(m, msgs[i]) })
	s.convs[key] = slices.Insert(msgs, i, m)
	if m.LocalID != "" {
		s.byLocal[m.LocalID] = key
	}
}

// reposition moves the entry at idx only if its timestamp now breaks the
// order with a neighbour.
func (s *Store) reposition(key Key, idx int) {
	msgs := s.convs[key]
	m := msgs[idx]
	if (idx == 0 || !less(m, msgs[idx-1])) && (idx == len(msgs)-1 || !less(msgs[idx+1], m)) {
		return
	}
	s.convs[key] = slices.Delete(msgs, idx, idx+1)
	s.insertLocked(key, m)
}

func less(a, b *Message) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.seq < b.seq
}

func (s *Store) find(key Key, localID string) *Message {
	for _, m := range s.convs[key] {
		if m.LocalID == localID {
			return m
		}
	}
	return nil
}

func (s *Store) findByID(key Key, id string) *Message {
	for _, m := range s.convs[key] {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (s *Store) publish(key Key, localID string) {
	if s.bus != nil {
		s.bus.Publish(bus.NewEvent(bus.KindConversationUpdated, Updated{Key: key, LocalID: localID}))
	}
}
