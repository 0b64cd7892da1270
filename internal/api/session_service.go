package api

import (
	"context"
	"time"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/ingest"
	"github.com/bondly/bondly/internal/notify"
	"github.com/bondly/bondly/internal/readstate"
)

// SessionService implements the SessionService gRPC service.
type SessionService struct {
	bondlyv1.UnimplementedSessionServiceServer

	sessionName string
	backendKind string
	startedAt   time.Time
	channel     *ingest.Channel
	dir         *contacts.Directory
	conv        *conversation.Store
	tracker     *readstate.Tracker
	notes       *notify.Center
}

// NewSessionService creates a new session service.
func NewSessionService(sessionName, backendKind string, ch *ingest.Channel, dir *contacts.Directory, conv *conversation.Store, tracker *readstate.Tracker, notes *notify.Center) *SessionService {
	return &SessionService{
		sessionName: sessionName,
		backendKind: backendKind,
		startedAt:   time.Now(),
		channel:     ch,
		dir:         dir,
		conv:        conv,
		tracker:     tracker,
		notes:       notes,
	}
}

func (s *SessionService) GetStatus(_ context.Context, _ *bondlyv1.GetStatusRequest) (*bondlyv1.GetStatusResponse, error) {
	self := s.dir.Self()
	resp := &bondlyv1.GetStatusResponse{
		Session:       s.sessionName,
		UserId:        self,
		DisplayName:   s.dir.DisplayName(self),
		Backend:       s.backendKind,
		ChannelState:  string(s.channel.State()),
		UptimeMs:      time.Since(s.startedAt).Milliseconds(),
		Friends:       int32(len(s.dir.Friends())),
		Conversations: int32(len(s.conv.Conversations())),
		Unread:        int32(s.tracker.TotalUnread()),
		Notifications: int32(s.notes.UnreadCount()),
		PendingReads:  int32(s.tracker.Pending()),
		DroppedEvents: s.channel.Dropped(),
	}
	return resp, nil
}
