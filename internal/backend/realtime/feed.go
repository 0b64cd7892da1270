// Package realtime implements backend.ChangeFeed over a Phoenix-channel
// websocket as served by BaaS realtime servers.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"
)

const (
	defaultHeartbeat = 25 * time.Second
	joinTimeout      = 10 * time.Second
	readLimit        = 1 << 20
)

// Config describes the realtime endpoint.
type Config struct {
	// URL is the backend base URL (http or https); the websocket path is
	// derived from it.
	URL         string
	APIKey      string
	AccessToken string
	Heartbeat   time.Duration
}

// Feed is a backend.ChangeFeed.
type Feed struct {
	cfg    Config
	logger *zap.Logger
	joins  atomic.Uint64
}

var _ backend.ChangeFeed = (*Feed)(nil)

// New creates a feed for cfg.
func New(cfg Config, logger *zap.Logger) *Feed {
	if cfg.Heartbeat <= 0 {
		cfg.Heartbeat = defaultHeartbeat
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{cfg: cfg, logger: logger}
}

// Endpoint returns the websocket URL for the configured base URL.
func (f *Feed) Endpoint() (string, error) {
	u, err := url.Parse(strings.TrimRight(f.cfg.URL, "/"))
	if err != nil {
		return "", fmt.Errorf("parse realtime url: %w", err)
	}
	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path += "/realtime/v1/websocket"
	q := u.Query()
	q.Set("apikey", f.cfg.APIKey)
	q.Set("vsn", "1.0.0")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// SubscribeChanges dials the server, joins one channel carrying every topic
// and waits for the join to be acknowledged.
func (f *Feed) SubscribeChanges(ctx context.Context, topics []backend.Topic, fn func(backend.Change)) (backend.Subscription, error) {
	endpoint, err := f.Endpoint()
	if err != nil {
		return nil, err
	}

	conn, resp, err := websocket.Dial(ctx, endpoint, nil)
	if err != nil {
		kind := backend.ErrTransient
		status := 0
		if resp != nil {
			status = resp.StatusCode
			kind = backend.KindForStatus(status)
		}
		return nil, &backend.Error{Op: "subscribe", Table: "realtime", Status: status, Message: err.Error(), Kind: kind}
	}
	conn.SetReadLimit(readLimit)

	n := f.joins.Add(1)
	topic := "realtime:bondly-" + strconv.FormatUint(n, 10)
	if err := f.join(ctx, conn, topic, topics); err != nil {
		_ = conn.CloseNow()
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s := &subscription{
		conn:   conn,
		topic:  topic,
		cancel: cancel,
		done:   make(chan struct{}),
		logger: f.logger.With(zap.String("topic", topic)),
	}
	go s.readLoop(runCtx, fn)
	go s.heartbeat(runCtx, f.cfg.Heartbeat)
	return s, nil
}

func (f *Feed) join(ctx context.Context, conn *websocket.Conn, topic string, topics []backend.Topic) error {
	ctx, cancel := context.WithTimeout(ctx, joinTimeout)
	defer cancel()

	payload, err := json.Marshal(newJoin(topics, f.cfg.AccessToken))
	if err != nil {
		return err
	}
	const ref = "1"
	if err := wsjson.Write(ctx, conn, envelope{Topic: topic, Event: eventJoin, Payload: payload, Ref: ref}); err != nil {
		return &backend.Error{Op: "join", Table: "realtime", Message: err.Error(), Kind: backend.ErrTransient}
	}

	for {
		var env envelope
		if err := wsjson.Read(ctx, conn, &env); err != nil {
			return &backend.Error{Op: "join", Table: "realtime", Message: err.Error(), Kind: backend.ErrTransient}
		}
		if env.Event != eventReply || env.Ref != ref {
			continue
		}
		var reply replyPayload
		_ = json.Unmarshal(env.Payload, &reply)
		if reply.Status != "ok" {
			kind := backend.ErrRejected
			if strings.Contains(strings.ToLower(reply.Response.Reason), "token") {
				kind = backend.ErrUnauthorized
			}
			return &backend.Error{Op: "join", Table: "realtime", Message: reply.Response.Reason, Kind: kind}
		}
		return nil
	}
}

type subscription struct {
	conn   *websocket.Conn
	topic  string
	cancel context.CancelFunc
	logger *zap.Logger

	once sync.Once
	done chan struct{}
	err  error
	ref  atomic.Uint64
}

func (s *subscription) finish(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
		s.cancel()
		_ = s.conn.CloseNow()
	})
}

func (s *subscription) Done() <-chan struct{} { return s.done }

func (s *subscription) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

func (s *subscription) Close() error {
	s.finish(nil)
	return nil
}

func (s *subscription) readLoop(ctx context.Context, fn func(backend.Change)) {
	for {
		var env envelope
		if err := wsjson.Read(ctx, s.conn, &env); err != nil {
			s.finish(&backend.Error{Op: "receive", Table: "realtime", Message: err.Error(), Kind: backend.ErrTransient})
			return
		}
		if env.Topic != s.topic {
			continue
		}
		switch env.Event {
		case eventChanges:
			change, ok := toChange(env.Payload)
			if !ok {
				s.logger.Debug("malformed change frame")
				continue
			}
			fn(change)
		case eventError, eventClose:
			s.finish(&backend.Error{Op: "receive", Table: "realtime", Message: "channel " + env.Event, Kind: backend.ErrTransient})
			return
		}
	}
}

func (s *subscription) heartbeat(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ref := "hb-" + strconv.FormatUint(s.ref.Add(1), 10)
			err := wsjson.Write(ctx, s.conn, envelope{Topic: topicPhoenix, Event: eventHeartbeat, Payload: json.RawMessage(`{}`), Ref: ref})
			if err != nil && !errors.Is(err, context.Canceled) {
				s.finish(&backend.Error{Op: "heartbeat", Table: "realtime", Message: err.Error(), Kind: backend.ErrTransient})
				return
			}
		}
	}
}
