// Package outbox sends composed messages. Every send is shown immediately as a
// pending entry, journaled in the local cache and delivered in order per
// conversation.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/store"
	"go.uber.org/zap"
)

// MaxBodyRunes is the longest body accepted by Send.
const MaxBodyRunes = 4000

const defaultAttemptTimeout = 15 * time.Second

var (
	ErrEmptyBody           = errors.New("message body is empty")
	ErrBodyTooLong         = fmt.Errorf("message body exceeds %d characters", MaxBodyRunes)
	ErrInvalidConversation = errors.New("invalid conversation")
	ErrInFlight            = errors.New("send already in flight")
	ErrClosed              = errors.New("sender closed")
)

// Gateway delivers one message to the backend and returns the stored record.
type Gateway interface {
	Deliver(ctx context.Context, msg conversation.Message) (conversation.Message, error)
}

// BackendGateway inserts messages into the backend's messages table.
type BackendGateway struct {
	Backend backend.Backend
}

// Deliver implements Gateway.
func (g BackendGateway) Deliver(ctx context.Context, msg conversation.Message) (conversation.Message, error) {
	row, err := g.Backend.Insert(ctx, backend.TableMessages, msg.Row())
	if err != nil {
		return conversation.Message{}, err
	}
	stored, err := conversation.FromRow(row)
	if err != nil {
		// Some servers answer with an empty representation.
		return conversation.Message{ID: msg.LocalID}, nil
	}
	return stored, nil
}

// SendAck is the payload of message.send_ack events.
type SendAck struct {
	Key     conversation.Key
	LocalID string
	ID      string
}

// SendFailed is the payload of message.send_failed events.
type SendFailed struct {
	Key     conversation.Key
	LocalID string
	Error   string
}

// Options tunes the sender.
type Options struct {
	AttemptTimeout time.Duration
}

// Ticket tracks one submitted send.
type Ticket struct {
	LocalID string
	Key     conversation.Key

	done chan struct{}
	msg  conversation.Message
	err  error
}

func newTicket(key conversation.Key, localID string) *Ticket {
	return &Ticket{LocalID: localID, Key: key, done: make(chan struct{})}
}

func (t *Ticket) finish(msg conversation.Message, err error) {
	t.msg, t.err = msg, err
	close(t.done)
}

// Done is closed once the send has been confirmed or has failed.
func (t *Ticket) Done() <-chan struct{} { return t.done }

// Wait blocks until the send completes or ctx ends. Giving up on the wait
// does not cancel the send.
func (t *Ticket) Wait(ctx context.Context) (conversation.Message, error) {
	select {
	case <-t.done:
		return t.msg, t.err
	case <-ctx.Done():
		return conversation.Message{}, ctx.Err()
	}
}

type job struct {
	ctx    context.Context
	key    conversation.Key
	msg    conversation.Message
	ticket *Ticket
}

type pipeline struct {
	queue []job
}

// Sender owns the per-conversation delivery pipelines.
type Sender struct {
	self   string
	conv   *conversation.Store
	gw     Gateway
	db     *store.DB
	bus    *bus.Bus
	opts   Options
	logger *zap.Logger

	mu     sync.Mutex
	pipes  map[conversation.Key]*pipeline
	closed bool
	wg     sync.WaitGroup
}

// NewSender creates a sender. db and b may be nil.
func NewSender(conv *conversation.Store, gw Gateway, db *store.DB, b *bus.Bus, opts Options, logger *zap.Logger) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = defaultAttemptTimeout
	}
	return &Sender{
		self:   conv.Self(),
		conv:   conv,
		gw:     gw,
		db:     db,
		bus:    b,
		opts:   opts,
		logger: logger,
		pipes:  make(map[conversation.Key]*pipeline),
	}
}

// Send validates body, shows it as a pending entry of key and queues its
// delivery. The returned ticket completes when the backend confirms or the
// attempt fails.
func (s *Sender) Send(ctx context.Context, key conversation.Key, body string) (*Ticket, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if utf8.RuneCountInString(body) > MaxBodyRunes {
		return nil, ErrBodyTooLong
	}
	draft, err := s.draft(key, body)
	if err != nil {
		return nil, err
	}
	if s.isClosed() {
		return nil, ErrClosed
	}

	msg := s.conv.AppendOutgoingOptimistic(key, draft)
	s.journal(key, msg)
	s.logger.Debug("message queued", zap.String("local_id", msg.LocalID), zap.String("conversation", string(key)))

	t := newTicket(key, msg.LocalID)
	if err := s.enqueue(job{ctx: ctx, key: key, msg: msg, ticket: t}); err != nil {
		return nil, err
	}
	return t, nil
}

// Retry re-submits a failed entry under its original local id. Retrying a
// confirmed entry returns a completed ticket.
func (s *Sender) Retry(ctx context.Context, localID string) (*Ticket, error) {
	msg, key, ok := s.conv.Get(localID)
	if !ok {
		return nil, conversation.ErrUnknownMessage
	}
	t := newTicket(key, localID)
	switch msg.State {
	case conversation.Confirmed:
		t.finish(msg, nil)
		return t, nil
	case conversation.Pending:
		return nil, ErrInFlight
	}
	if s.isClosed() {
		return nil, ErrClosed
	}

	if err := s.conv.MarkPending(localID); err != nil {
		return nil, err
	}
	msg.State = conversation.Pending
	msg.Error = ""
	s.journal(key, msg)
	s.logger.Info("retrying send", zap.String("local_id", localID))

	if err := s.enqueue(job{ctx: ctx, key: key, msg: msg, ticket: t}); err != nil {
		return nil, err
	}
	return t, nil
}

// Restore brings back journaled sends that never completed as failed
// entries, ready for Retry. It returns the number restored.
func (s *Sender) Restore() (int, error) {
	if s.db == nil {
		return 0, nil
	}
	entries, err := s.db.UnsentOutbox()
	if err != nil {
		return 0, fmt.Errorf("read outbox: %w", err)
	}
	n := 0
	for _, e := range entries {
		key := conversation.Key(e.ConvKey)
		reason := e.ErrorMessage
		if reason == "" {
			reason = "not sent before shutdown"
		}
		draft := conversation.Draft{SenderID: s.self, ReceiverID: e.ReceiverID, ChannelID: e.ChannelID, Body: e.Body}
		m := s.conv.RestoreFailed(key, draft, e.LocalID, time.UnixMilli(e.CreatedAt).UTC(), reason)
		if m.State == conversation.Confirmed {
			if err := s.db.MarkOutboxSent(e.LocalID); err != nil {
				s.logger.Error("failed to mark outbox sent", zap.Error(err), zap.String("local_id", e.LocalID))
			}
			continue
		}
		if err := s.db.MarkOutboxFailed(e.LocalID, reason); err != nil {
			s.logger.Error("failed to mark outbox failed", zap.Error(err), zap.String("local_id", e.LocalID))
		}
		n++
	}
	if n > 0 {
		s.logger.Info("restored unsent messages", zap.Int("count", n))
	}
	return n, nil
}

// Close stops accepting sends and waits for queued ones to finish.
func (s *Sender) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
}

// Pipelines returns the number of running conversation pipelines.
func (s *Sender) Pipelines() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pipes)
}

func (s *Sender) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Sender) draft(key conversation.Key, body string) (conversation.Draft, error) {
	d := conversation.Draft{SenderID: s.self, Body: body}
	if id := key.ChannelID(); id != "" {
		d.ChannelID = id
		return d, nil
	}
	peer := key.Counterpart(s.self)
	if !key.Valid() || peer == s.self || conversation.DirectKey(s.self, peer) != key {
		return d, ErrInvalidConversation
	}
	d.ReceiverID = peer
	return d, nil
}

func (s *Sender) journal(key conversation.Key, msg conversation.Message) {
	if s.db == nil {
		return
	}
	err := s.db.QueueOutbox(&store.OutboxEntry{
		LocalID:    msg.LocalID,
		ConvKey:    string(key),
		ReceiverID: msg.ReceiverID,
		ChannelID:  msg.ChannelID,
		Body:       msg.Body,
		CreatedAt:  msg.CreatedAt.UnixMilli(),
	})
	if err != nil {
		s.logger.Error("failed to journal send", zap.Error(err), zap.String("local_id", msg.LocalID))
	}
}

// enqueue submits j. A job the sender no longer accepts, because Close ran
// after the caller's check, fails like an attempt so the entry is not left
// pending.
func (s *Sender) enqueue(j job) error {
	err := s.submit(j)
	if err != nil {
		s.fail(j, err)
	}
	return err
}

func (s *Sender) submit(j job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	p, running := s.pipes[j.key]
	if !running {
		p = &pipeline{}
		s.pipes[j.key] = p
	}
	p.queue = append(p.queue, j)
	if !running {
		s.wg.Add(1)
		go s.run(j.key, p)
	}
	return nil
}

// run delivers the jobs of one conversation in order and exits when idle.
func (s *Sender) run(key conversation.Key, p *pipeline) {
	defer s.wg.Done()
	for {
		s.mu.Lock()
		if len(p.queue) == 0 {
			delete(s.pipes, key)
			s.mu.Unlock()
			return
		}
		j := p.queue[0]
		p.queue = p.queue[1:]
		s.mu.Unlock()

		s.deliver(j)
	}
}

func (s *Sender) deliver(j job) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(j.ctx), s.opts.AttemptTimeout)
	defer cancel()

	localID := j.msg.LocalID
	if s.db != nil {
		if err := s.db.MarkOutboxSending(localID); err != nil {
			s.logger.Error("failed to mark outbox sending", zap.Error(err), zap.String("local_id", localID))
		}
	}

	server, err := s.gw.Deliver(ctx, j.msg)
	if errors.Is(err, backend.ErrConflict) {
		// The id is ours, so a conflict means an earlier attempt landed.
		server, err = conversation.Message{ID: localID}, nil
	}
	if err != nil {
		s.fail(j, err)
		return
	}
	s.confirm(j, server)
}

func (s *Sender) confirm(j job, server conversation.Message) {
	localID := j.msg.LocalID
	if err := s.conv.Reconcile(localID, server); err != nil {
		s.logger.Warn("reconcile sent message", zap.Error(err), zap.String("local_id", localID))
	}
	stored, _, ok := s.conv.Get(localID)
	if !ok {
		stored = j.msg
		stored.ID = server.ID
		stored.State = conversation.Confirmed
	}
	if s.db != nil {
		if err := s.db.MarkOutboxSent(localID); err != nil {
			s.logger.Error("failed to mark outbox sent", zap.Error(err), zap.String("local_id", localID))
		}
		cached := stored.ToCache(s.self)
		if err := s.db.UpsertMessage(&cached); err != nil {
			s.logger.Error("failed to cache sent message", zap.Error(err), zap.String("local_id", localID))
		}
	}

	s.logger.Info("message sent", zap.String("local_id", localID), zap.String("id", stored.ID))
	if s.bus != nil {
		s.bus.Publish(bus.NewEvent(bus.KindSendAck, SendAck{Key: j.key, LocalID: localID, ID: stored.ID}))
	}
	j.ticket.finish(stored, nil)
}

func (s *Sender) fail(j job, cause error) {
	localID := j.msg.LocalID
	s.logger.Warn("failed to send message", zap.Error(cause), zap.String("local_id", localID))
	if err := s.conv.MarkFailed(localID, cause); err != nil {
		s.logger.Warn("mark message failed", zap.Error(err), zap.String("local_id", localID))
	}
	if s.db != nil {
		if err := s.db.MarkOutboxFailed(localID, cause.Error()); err != nil {
			s.logger.Error("failed to mark outbox failed", zap.Error(err), zap.String("local_id", localID))
		}
	}
	if s.bus != nil {
		s.bus.Publish(bus.NewEvent(bus.KindSendFailed, SendFailed{Key: j.key, LocalID: localID, Error: cause.Error()}))
	}

	failed, _, ok := s.conv.Get(localID)
	if !ok {
		failed = j.msg
	}
	j.ticket.finish(failed, fmt.Errorf("send message: %w", cause))
}
