package bus

import "time"

// Event is a domain event carried on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Event kinds. The part before the first dot is the namespace subscribers
// filter on.
const (
	KindChannelState = "channel.state_changed"

	KindIngestMessage     = "ingest.message"
	KindIngestMessageRead = "ingest.message_read"
	KindIngestFriendship  = "ingest.friendship"
	KindIngestPresence    = "ingest.presence"
	KindIngestGroupMember = "ingest.group_member"
	KindIngestEvent       = "ingest.event"

	KindConversationUpdated = "conversation.updated"
	KindSendAck             = "message.send_ack"
	KindSendFailed          = "message.send_failed"
	KindContactsChanged     = "contacts.changed"
	KindNotificationChanged = "notification.changed"
)

// NewEvent stamps an event with the current time.
func NewEvent(kind string, payload any) Event {
	return Event{Kind: kind, Timestamp: time.Now(), Payload: payload}
}
