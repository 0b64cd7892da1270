package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
)

// Loader fills the store after every successful subscribe: the initial load
// on first connect and a gap fill afterwards. Prepare runs before each
// subscribe and fixes the point the following Sync resumes from.
type Loader interface {
	Prepare()
	Sync(ctx context.Context) error
}

// Backoff configures resubscription delays.
type Backoff struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64
}

// DefaultBackoff is 1s doubling up to 30s with 50% jitter.
var DefaultBackoff = Backoff{Initial: time.Second, Max: 30 * time.Second, Multiplier: 2, Jitter: 0.5}

func (b Backoff) policy() *backoff.ExponentialBackOff {
	p := backoff.NewExponentialBackOff()
	p.InitialInterval = b.Initial
	p.MaxInterval = b.Max
	p.Multiplier = b.Multiplier
	p.RandomizationFactor = b.Jitter
	p.MaxElapsedTime = 0
	p.Reset()
	return p
}

// Supervisor keeps the channel subscribed, reconnecting after drops.
type Supervisor struct {
	ch     *Channel
	loader Loader
	cfg    Backoff
	logger *zap.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	attempts int
}

// NewSupervisor creates a supervisor. loader may be nil.
func NewSupervisor(ch *Channel, loader Loader, cfg Backoff, logger *zap.Logger) *Supervisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Initial <= 0 {
		cfg.Initial = DefaultBackoff.Initial
	}
	if cfg.Max <= 0 {
		cfg.Max = DefaultBackoff.Max
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = DefaultBackoff.Multiplier
	}
	if cfg.Jitter < 0 || cfg.Jitter >= 1 {
		cfg.Jitter = DefaultBackoff.Jitter
	}
	return &Supervisor{ch: ch, loader: loader, cfg: cfg, logger: logger}
}

// Start launches the supervision loop. Calling it twice is a no-op.
func (s *Supervisor) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
}

// Stop ends the loop and unsubscribes.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Attempts returns the number of subscribe attempts made so far.
func (s *Supervisor) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

func (s *Supervisor) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer s.ch.Unsubscribe()

	policy := s.cfg.policy()
	for {
		s.mu.Lock()
		s.attempts++
		s.mu.Unlock()

		if err := s.connect(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			wait := policy.NextBackOff()
			s.logger.Warn("realtime subscribe failed", zap.Error(err), zap.Duration("retry_in", wait))
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
			continue
		}

		policy.Reset()
		select {
		case <-ctx.Done():
			return
		case <-s.ch.Done():
		}
		s.logger.Info("realtime channel dropped, resubscribing")
	}
}

// connect subscribes, then loads. The subscription is opened first so that
// nothing committed during the load is missed; duplicates are absorbed by
// the store. The resume point is taken before either.
func (s *Supervisor) connect(ctx context.Context) error {
	if s.loader != nil {
		s.loader.Prepare()
	}
	if err := s.ch.Subscribe(ctx); err != nil {
		return err
	}
	if s.loader == nil {
		return nil
	}
	if err := s.loader.Sync(ctx); err != nil {
		s.ch.Unsubscribe()
		return err
	}
	return nil
}
