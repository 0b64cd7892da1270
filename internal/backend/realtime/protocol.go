package realtime

import (
	"encoding/json"

	"github.com/bondly/bondly/internal/backend"
)

// Phoenix channel events.
const (
	eventJoin      = "phx_join"
	eventReply     = "phx_reply"
	eventError     = "phx_error"
	eventClose     = "phx_close"
	eventHeartbeat = "heartbeat"
	eventChanges   = "postgres_changes"

	topicPhoenix = "phoenix"
)

// envelope is the Phoenix v1 JSON frame.
type envelope struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref,omitempty"`
}

type changeBinding struct {
	Event  string `json:"event"`
	Schema string `json:"schema"`
	Table  string `json:"table"`
	Filter string `json:"filter,omitempty"`
}

type joinPayload struct {
	Config struct {
		PostgresChanges []changeBinding `json:"postgres_changes"`
	} `json:"config"`
	AccessToken string `json:"access_token,omitempty"`
}

type replyPayload struct {
	Status   string `json:"status"`
	Response struct {
		Reason string `json:"reason"`
	} `json:"response"`
}

type changesPayload struct {
	Data struct {
		Type            string      `json:"type"`
		Table           string      `json:"table"`
		Record          backend.Row `json:"record"`
		OldRecord       backend.Row `json:"old_record"`
		CommitTimestamp string      `json:"commit_timestamp"`
	} `json:"data"`
}

func newJoin(topics []backend.Topic, token string) joinPayload {
	var p joinPayload
	p.AccessToken = token
	for _, t := range topics {
		p.Config.PostgresChanges = append(p.Config.PostgresChanges, changeBinding{
			Event:  t.Events.Event(),
			Schema: "public",
			Table:  t.Table,
			Filter: t.Filter,
		})
	}
	return p
}

// toChange converts a postgres_changes payload. ok is false when the frame is
// missing its type or table.
func toChange(raw json.RawMessage) (backend.Change, bool) {
	var p changesPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return backend.Change{}, false
	}
	if p.Data.Type == "" || p.Data.Table == "" {
		return backend.Change{}, false
	}
	c := backend.Change{
		Table:  p.Data.Table,
		Type:   backend.EventType(p.Data.Type),
		Record: p.Data.Record,
		Old:    p.Data.OldRecord,
	}
	if t, ok := (backend.Row{"ts": p.Data.CommitTimestamp}).Time("ts"); ok {
		c.CommitTime = t
	}
	return c, true
}
