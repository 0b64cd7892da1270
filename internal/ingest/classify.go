package ingest

import (
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
)

// Classify turns a raw change into a typed ingest event. ok is false for
// malformed changes and for changes the core does not consume.
func Classify(self string, c backend.Change) (bus.Event, bool) {
	ts := c.CommitTime
	if ts.IsZero() {
		ts = time.Now()
	}
	mk := func(kind string, payload any) (bus.Event, bool) {
		return bus.Event{Kind: kind, Timestamp: ts, Payload: payload}, true
	}

	switch c.Table {
	case backend.TableMessages:
		switch c.Type {
		case backend.Insert:
			m, err := conversation.FromRow(c.Record)
			if err != nil {
				return bus.Event{}, false
			}
			if m.ChannelID == "" && m.SenderID != self && m.ReceiverID != self {
				return bus.Event{}, false
			}
			return mk(bus.KindIngestMessage, MessageReceived{Message: m})
		case backend.Update:
			id := c.Record.String("id")
			if id == "" || !c.Record.Bool("read") || (c.Old != nil && c.Old.Bool("read")) {
				return bus.Event{}, false
			}
			return mk(bus.KindIngestMessageRead, MessageRead{ID: id})
		}

	case backend.TableFriendships:
		row := c.Record
		if c.Type == backend.Delete {
			row = c.Old
		}
		u, f := row.String("user_id"), row.String("friend_id")
		if u == "" || f == "" || (u != self && f != self) {
			return bus.Event{}, false
		}
		return mk(bus.KindIngestFriendship, FriendshipChanged{Type: c.Type, UserID: u, FriendID: f})

	case backend.TableProfiles:
		if c.Type == backend.Delete {
			return bus.Event{}, false
		}
		contact, ok := contacts.ContactFromProfile(c.Record)
		if !ok || contact.ID == self {
			return bus.Event{}, false
		}
		return mk(bus.KindIngestPresence, PresenceChanged{Contact: contact})

	case backend.TableGroupMembers:
		g, u := c.Record.String("group_id"), c.Record.String("user_id")
		if c.Type != backend.Insert || g == "" || u == "" {
			return bus.Event{}, false
		}
		return mk(bus.KindIngestGroupMember, GroupJoined{GroupID: g, UserID: u})

	case backend.TableEvents:
		id := c.Record.String("id")
		if c.Type != backend.Insert || id == "" {
			return bus.Event{}, false
		}
		return mk(bus.KindIngestEvent, EventCreated{ID: id, Title: c.Record.String("title"), GroupID: c.Record.String("group_id")})
	}
	return bus.Event{}, false
}
