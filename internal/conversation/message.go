// Package conversation holds every conversation's ordered message list,
// including optimistic entries awaiting server confirmation.
package conversation

import (
	"errors"
	"strings"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/store"
)

// Key identifies a conversation: the unordered pair of participants of a
// direct conversation, or a channel.
type Key string

// DirectKey returns the key of the direct conversation between a and b. The
// argument order does not matter.
func DirectKey(a, b string) Key {
	if b < a {
		a, b = b, a
	}
	return Key("dm:" + a + ":" + b)
}

// ChannelKey returns the key of a channel conversation.
func ChannelKey(id string) Key {
	return Key("ch:" + id)
}

// IsChannel reports whether k names a channel.
func (k Key) IsChannel() bool {
	return strings.HasPrefix(string(k), "ch:")
}

// ChannelID returns the channel id, or "" for direct conversations.
func (k Key) ChannelID() string {
	id, ok := strings.CutPrefix(string(k), "ch:")
	if !ok {
		return ""
	}
	return id
}

// Counterpart returns the other participant of a direct conversation.
func (k Key) Counterpart(self string) string {
	rest, ok := strings.CutPrefix(string(k), "dm:")
	if !ok {
		return ""
	}
	a, b, _ := strings.Cut(rest, ":")
	if a == self {
		return b
	}
	return a
}

// Valid reports whether k has one of the two key shapes.
func (k Key) Valid() bool {
	if id := k.ChannelID(); id != "" {
		return true
	}
	rest, ok := strings.CutPrefix(string(k), "dm:")
	if !ok {
		return false
	}
	a, b, ok := strings.Cut(rest, ":")
	return ok && a != "" && b != ""
}

// State is the delivery state of a message.
type State int

const (
	Confirmed State = iota
	Pending
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Failed:
		return "failed"
	}
	return "confirmed"
}

// Message is one entry of a conversation. LocalID is assigned when the entry
// is created; for confirmed server messages it equals ID.
type Message struct {
	LocalID    string
	ID         string
	SenderID   string
	ReceiverID string
	ChannelID  string
	Body       string
	CreatedAt  time.Time
	Read       bool
	State      State
	Error      string

	seq uint64
}

// KeyFor returns the conversation m belongs to, as seen by self.
func KeyFor(self string, m Message) Key {
	if m.ChannelID != "" {
		return ChannelKey(m.ChannelID)
	}
	if m.SenderID == self {
		return DirectKey(self, m.ReceiverID)
	}
	return DirectKey(self, m.SenderID)
}

// Incoming reports whether m counts toward self's unread state.
func (m Message) Incoming(self string) bool {
	if m.ChannelID != "" {
		return m.SenderID != self
	}
	return m.ReceiverID == self && m.SenderID != self
}

// Draft is the content of an outgoing message.
type Draft struct {
	SenderID   string
	ReceiverID string
	ChannelID  string
	Body       string
}

// ErrMalformed is returned for rows missing required message columns.
var ErrMalformed = errors.New("malformed message row")

// FromRow converts a messages row.
func FromRow(r backend.Row) (Message, error) {
	m := Message{
		ID:         r.String("id"),
		SenderID:   r.String("sender_id"),
		ReceiverID: r.String("receiver_id"),
		ChannelID:  r.String("channel_id"),
		Body:       r.String("content"),
		Read:       r.Bool("read"),
		State:      Confirmed,
	}
	m.LocalID = m.ID
	created, ok := r.Time("created_at")
	if m.ID == "" || m.SenderID == "" || (m.ReceiverID == "" && m.ChannelID == "") || !ok {
		return Message{}, ErrMalformed
	}
	m.CreatedAt = created
	return m, nil
}

// Row renders m as a messages row for insertion.
func (m Message) Row() backend.Row {
	r := backend.Row{
		"id":        m.LocalID,
		"sender_id": m.SenderID,
		"content":   m.Body,
	}
	if m.ChannelID != "" {
		r["channel_id"] = m.ChannelID
	} else {
		r["receiver_id"] = m.ReceiverID
	}
	return r
}

// ToCache renders a confirmed message for the local cache.
func (m Message) ToCache(self string) store.Message {
	return store.Message{
		ID:         m.ID,
		ConvKey:    string(KeyFor(self, m)),
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		ChannelID:  m.ChannelID,
		Body:       m.Body,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt.UnixMilli(),
	}
}

// FromCache converts a cached message.
func FromCache(c store.Message) Message {
	return Message{
		LocalID:    c.ID,
		ID:         c.ID,
		SenderID:   c.SenderID,
		ReceiverID: c.ReceiverID,
		ChannelID:  c.ChannelID,
		Body:       c.Body,
		Read:       c.Read,
		CreatedAt:  time.UnixMilli(c.CreatedAt).UTC(),
		State:      Confirmed,
	}
}
