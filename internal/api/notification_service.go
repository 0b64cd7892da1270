package api

import (
	"context"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"github.com/bondly/bondly/internal/notify"
	"google.golang.org/protobuf/types/known/emptypb"
)

// NotificationService implements the NotificationService gRPC service.
// Unknown ids are not errors.
type NotificationService struct {
	bondlyv1.UnimplementedNotificationServiceServer

	notes *notify.Center
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notes *notify.Center) *NotificationService {
	return &NotificationService{notes: notes}
}

func (s *NotificationService) ListNotifications(_ context.Context, _ *bondlyv1.ListNotificationsRequest) (*bondlyv1.ListNotificationsResponse, error) {
	items := s.notes.List()
	out := make([]*bondlyv1.Notification, 0, len(items))
	for _, n := range items {
		out = append(out, notificationToProto(n))
	}
	return &bondlyv1.ListNotificationsResponse{Notifications: out, Unread: int32(s.notes.UnreadCount())}, nil
}

func (s *NotificationService) MarkNotificationRead(_ context.Context, req *bondlyv1.NotificationRequest) (*emptypb.Empty, error) {
	s.notes.MarkRead(req.GetId())
	return &emptypb.Empty{}, nil
}

func (s *NotificationService) MarkAllNotificationsRead(_ context.Context, _ *emptypb.Empty) (*bondlyv1.MarkAllNotificationsReadResponse, error) {
	return &bondlyv1.MarkAllNotificationsReadResponse{Marked: int32(s.notes.MarkAllRead())}, nil
}

func (s *NotificationService) DismissNotification(_ context.Context, req *bondlyv1.NotificationRequest) (*emptypb.Empty, error) {
	s.notes.Dismiss(req.GetId())
	return &emptypb.Empty{}, nil
}
