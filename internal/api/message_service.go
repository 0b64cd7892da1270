package api

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/outbox"
	"github.com/bondly/bondly/internal/readstate"
	"github.com/bondly/bondly/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const defaultSearchLimit = 50

// MessageService implements the MessageService gRPC service.
type MessageService struct {
	bondlyv1.UnimplementedMessageServiceServer

	self    string
	conv    *conversation.Store
	dir     *contacts.Directory
	sender  *outbox.Sender
	tracker *readstate.Tracker
	db      *store.DB
	bus     *bus.Bus
	logger  *zap.Logger

	closing   chan struct{}
	closeOnce sync.Once
}

// NewMessageService creates a new message service. db may be nil, which
// disables search.
func NewMessageService(conv *conversation.Store, dir *contacts.Directory, sender *outbox.Sender, tracker *readstate.Tracker, db *store.DB, b *bus.Bus, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{
		self:    conv.Self(),
		conv:    conv,
		dir:     dir,
		sender:  sender,
		tracker: tracker,
		db:      db,
		bus:     b,
		logger:  logger,
		closing: make(chan struct{}),
	}
}

// Close ends every open WatchEvents and ViewConversation stream.
func (s *MessageService) Close() {
	s.closeOnce.Do(func() { close(s.closing) })
}

func (s *MessageService) ListConversations(_ context.Context, _ *bondlyv1.ListConversationsRequest) (*bondlyv1.ListConversationsResponse, error) {
	summaries := s.conv.Conversations()
	out := make([]*bondlyv1.Conversation, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, summaryToProto(s.self, sum))
	}
	return &bondlyv1.ListConversationsResponse{Conversations: out}, nil
}

func (s *MessageService) GetConversation(_ context.Context, req *bondlyv1.GetConversationRequest) (*bondlyv1.GetConversationResponse, error) {
	key, err := keyFor(s.self, req.GetTarget())
	if err != nil {
		return nil, toStatus(err)
	}
	msgs := s.conv.Conversation(key)
	if limit := int(req.GetLimit()); limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]*bondlyv1.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageToProto(s.self, m))
	}
	return &bondlyv1.GetConversationResponse{
		Key:      string(key),
		Title:    s.title(key),
		Unread:   int32(s.tracker.UnreadCount(key)),
		Messages: out,
	}, nil
}

func (s *MessageService) SendText(ctx context.Context, req *bondlyv1.SendTextRequest) (*bondlyv1.SendTextResponse, error) {
	key, err := keyFor(s.self, req.GetTarget())
	if err != nil {
		return nil, toStatus(err)
	}
	t, err := s.sender.Send(ctx, key, req.GetBody())
	if err != nil {
		return nil, toStatus(err)
	}
	return s.reply(ctx, t, req.GetWait())
}

func (s *MessageService) RetrySend(ctx context.Context, req *bondlyv1.RetrySendRequest) (*bondlyv1.SendTextResponse, error) {
	t, err := s.sender.Retry(ctx, req.GetLocalId())
	if err != nil {
		return nil, toStatus(err)
	}
	return s.reply(ctx, t, req.GetWait())
}

// reply returns the entry of t. With wait it first waits for the outcome; a
// failed send is reported through the entry's state, not as an RPC error.
func (s *MessageService) reply(ctx context.Context, t *outbox.Ticket, wait bool) (*bondlyv1.SendTextResponse, error) {
	if wait {
		if _, err := t.Wait(ctx); err != nil && ctx.Err() != nil {
			return nil, toStatus(ctx.Err())
		}
	}
	m, _, ok := s.conv.Get(t.LocalID)
	if !ok {
		return nil, grpcstatus.Errorf(codes.NotFound, "message %s not found", t.LocalID)
	}
	return &bondlyv1.SendTextResponse{Message: messageToProto(s.self, m)}, nil
}

// OpenConversation marks the conversation read. It does not keep it open;
// clients viewing a conversation use ViewConversation.
func (s *MessageService) OpenConversation(_ context.Context, req *bondlyv1.OpenConversationRequest) (*bondlyv1.OpenConversationResponse, error) {
	key, err := keyFor(s.self, req.GetTarget())
	if err != nil {
		return nil, toStatus(err)
	}
	flipped := s.tracker.OnConversationOpened(key)
	s.tracker.OnConversationClosed(key)
	return &bondlyv1.OpenConversationResponse{Key: string(key), MarkedRead: int32(len(flipped))}, nil
}

// ViewConversation holds the conversation open until the client cancels the
// stream or its connection goes away.
func (s *MessageService) ViewConversation(req *bondlyv1.OpenConversationRequest, stream grpc.ServerStreamingServer[bondlyv1.OpenConversationResponse]) error {
	key, err := keyFor(s.self, req.GetTarget())
	if err != nil {
		return toStatus(err)
	}
	flipped := s.tracker.OnConversationOpened(key)
	defer s.tracker.OnConversationClosed(key)

	if err := stream.Send(&bondlyv1.OpenConversationResponse{Key: string(key), MarkedRead: int32(len(flipped))}); err != nil {
		return err
	}
	select {
	case <-stream.Context().Done():
	case <-s.closing:
	}
	return nil
}

func (s *MessageService) SearchMessages(_ context.Context, req *bondlyv1.SearchMessagesRequest) (*bondlyv1.SearchMessagesResponse, error) {
	if s.db == nil {
		return nil, grpcstatus.Error(codes.Unavailable, "search needs the local cache")
	}
	if strings.TrimSpace(req.GetQuery()) == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "query is required")
	}
	var convKey string
	if t := req.GetTarget(); t.GetCounterpart() != "" || t.GetChannel() != "" {
		key, _ := keyFor(s.self, t)
		convKey = string(key)
	}
	limit := defaultSearchLimit
	if req.GetLimit() > 0 {
		limit = int(req.GetLimit())
	}

	results, err := s.db.SearchMessages(req.GetQuery(), convKey, limit)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "search messages: %v", err)
	}
	out := make([]*bondlyv1.SearchResult, 0, len(results))
	for _, r := range results {
		out = append(out, &bondlyv1.SearchResult{Message: cachedToProto(s.self, r.Message), Snippet: r.Snippet})
	}
	return &bondlyv1.SearchMessagesResponse{Results: out}, nil
}

func (s *MessageService) WatchEvents(req *bondlyv1.WatchEventsRequest, stream grpc.ServerStreamingServer[bondlyv1.Event]) error {
	ch, unsub := s.bus.Subscribe("", 256)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			if !wanted(req.GetPrefixes(), evt.Kind) {
				continue
			}
			payload, err := payloadStruct(evt.Payload)
			if err != nil {
				s.logger.Warn("skip event with unencodable payload", zap.String("kind", evt.Kind), zap.Error(err))
				continue
			}
			if err := stream.Send(&bondlyv1.Event{
				Id:           uuid.NewString(),
				Kind:         evt.Kind,
				OccurredAtMs: evt.Timestamp.UnixMilli(),
				Payload:      payload,
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		case <-s.closing:
			return nil
		}
	}
}

func (s *MessageService) title(key conversation.Key) string {
	if id := key.ChannelID(); id != "" {
		return "#" + id
	}
	return s.dir.DisplayName(key.Counterpart(s.self))
}

func wanted(prefixes []string, kind string) bool {
	return len(prefixes) == 0 || slices.ContainsFunc(prefixes, func(p string) bool { return strings.HasPrefix(kind, p) })
}

// payloadStruct converts an event payload to a protobuf Struct through its
// JSON form. Payloads that are not JSON objects are wrapped under "value".
func payloadStruct(v any) (*structpb.Struct, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	fields, ok := value.(map[string]any)
	if !ok {
		fields = map[string]any{"value": value}
	}
	return structpb.NewStruct(fields)
}
