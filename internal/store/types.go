package store

// Message is a confirmed message as cached locally. CreatedAt is unix
// milliseconds.
type Message struct {
	ID         string
	ConvKey    string
	SenderID   string
	ReceiverID string
	ChannelID  string
	Body       string
	Read       bool
	CreatedAt  int64
}

// Contact is a cached friend.
type Contact struct {
	UserID      string
	DisplayName string
	Online      bool
}

// Outbox statuses.
const (
	OutboxQueued  = "queued"
	OutboxSending = "sending"
	OutboxSent    = "sent"
	OutboxFailed  = "failed"
)

// OutboxEntry is a journaled send.
type OutboxEntry struct {
	LocalID      string
	ConvKey      string
	ReceiverID   string
	ChannelID    string
	Body         string
	Status       string
	ErrorMessage string
	CreatedAt    int64
}

// SearchResult holds a message with a search snippet.
type SearchResult struct {
	Message Message
	Snippet string
}
