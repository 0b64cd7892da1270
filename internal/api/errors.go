package api

import (
	"context"
	"errors"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/outbox"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

var errNoTarget = errors.New("counterpart or channel is required")

// toStatus maps core errors to gRPC status errors.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var code codes.Code
	switch {
	case errors.Is(err, outbox.ErrEmptyBody),
		errors.Is(err, outbox.ErrBodyTooLong),
		errors.Is(err, outbox.ErrInvalidConversation),
		errors.Is(err, contacts.ErrInvalidContact),
		errors.Is(err, errNoTarget):
		code = codes.InvalidArgument
	case errors.Is(err, conversation.ErrUnknownMessage),
		errors.Is(err, backend.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, outbox.ErrInFlight):
		code = codes.FailedPrecondition
	case errors.Is(err, backend.ErrUnauthorized):
		code = codes.Unauthenticated
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, backend.ErrTransient),
		errors.Is(err, backend.ErrConflict),
		errors.Is(err, backend.ErrRejected),
		errors.Is(err, outbox.ErrClosed):
		code = codes.Unavailable
	default:
		code = codes.Internal
	}
	return grpcstatus.Error(code, err.Error())
}
