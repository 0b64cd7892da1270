package api

import (
	"context"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/readstate"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ContactService implements the ContactService gRPC service.
type ContactService struct {
	bondlyv1.UnimplementedContactServiceServer

	dir     *contacts.Directory
	tracker *readstate.Tracker
}

// NewContactService creates a new contact service.
func NewContactService(dir *contacts.Directory, tracker *readstate.Tracker) *ContactService {
	return &ContactService{dir: dir, tracker: tracker}
}

func (s *ContactService) ListFriends(_ context.Context, _ *bondlyv1.ListContactsRequest) (*bondlyv1.ListContactsResponse, error) {
	self := s.dir.Self()
	friends := s.dir.Friends()
	out := make([]*bondlyv1.Contact, 0, len(friends))
	for _, c := range friends {
		pc := contactToProto(c)
		pc.Unread = int32(s.tracker.UnreadCount(conversation.DirectKey(self, c.ID)))
		out = append(out, pc)
	}
	return &bondlyv1.ListContactsResponse{Contacts: out}, nil
}

func (s *ContactService) ListSuggestions(_ context.Context, _ *bondlyv1.ListContactsRequest) (*bondlyv1.ListContactsResponse, error) {
	suggestions := s.dir.Suggestions()
	out := make([]*bondlyv1.Contact, 0, len(suggestions))
	for _, c := range suggestions {
		out = append(out, contactToProto(c))
	}
	return &bondlyv1.ListContactsResponse{Contacts: out}, nil
}

func (s *ContactService) AddFriend(ctx context.Context, req *bondlyv1.ContactRequest) (*bondlyv1.ContactResponse, error) {
	if err := s.dir.AddFriend(ctx, req.GetContactId()); err != nil {
		return nil, toStatus(err)
	}
	c, _ := s.dir.Lookup(req.GetContactId())
	return &bondlyv1.ContactResponse{Contact: contactToProto(c)}, nil
}

func (s *ContactService) RemoveFriend(ctx context.Context, req *bondlyv1.ContactRequest) (*emptypb.Empty, error) {
	if err := s.dir.RemoveFriend(ctx, req.GetContactId()); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}
