package ingest

import (
	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
)

// MessageReceived is the payload of ingest.message.
type MessageReceived struct {
	Message conversation.Message
}

// MessageRead is the payload of ingest.message_read.
type MessageRead struct {
	ID string
}

// FriendshipChanged is the payload of ingest.friendship.
type FriendshipChanged struct {
	Type     backend.EventType
	UserID   string
	FriendID string
}

// PresenceChanged is the payload of ingest.presence.
type PresenceChanged struct {
	Contact contacts.Contact
}

// GroupJoined is the payload of ingest.group_member.
type GroupJoined struct {
	GroupID string
	UserID  string
}

// EventCreated is the payload of ingest.event.
type EventCreated struct {
	ID      string
	Title   string
	GroupID string
}
