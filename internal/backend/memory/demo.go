package memory

import (
	"time"

	"github.com/bondly/bondly/internal/backend"
)

// DemoPeople are the profiles created by SeedDemo, keyed by user id.
var DemoPeople = map[string]string{
	"sarah": "Sarah Chen",
	"mike":  "Mike Rodriguez",
	"emma":  "Emma Thompson",
	"alex":  "Alex Kim",
	"lisa":  "Lisa Park",
}

// SeedDemo fills the backend with a small community around self: two
// friends, three suggestions and one unread message from Sarah.
func SeedDemo(b *Backend, self, selfName string) {
	online := map[string]bool{"sarah": true, "emma": true, "alex": true, "lisa": true}

	b.Seed(backend.TableProfiles, backend.Row{"user_id": self, "username": selfName, "full_name": selfName, "online": true})
	for id, name := range DemoPeople {
		b.Seed(backend.TableProfiles, backend.Row{"user_id": id, "username": name, "full_name": name, "online": online[id]})
	}
	for _, id := range []string{"sarah", "mike"} {
		b.Seed(backend.TableFriendships,
			backend.Row{"user_id": self, "friend_id": id, "status": "accepted"},
			backend.Row{"user_id": id, "friend_id": self, "status": "accepted"},
		)
	}

	now := time.Now().UTC()
	at := time.Date(now.Year(), now.Month(), now.Day(), 10, 30, 0, 0, time.UTC)
	b.Seed(backend.TableMessages, backend.Row{
		"id":          "demo-sarah-1",
		"sender_id":   "sarah",
		"receiver_id": self,
		"content":     "Hey! How was the yoga session today?",
		"read":        false,
		"created_at":  at.Format(time.RFC3339Nano),
	})
}
