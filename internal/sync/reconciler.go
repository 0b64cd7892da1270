package sync

import (
	"fmt"
	gosync "sync"
	"time"

	"github.com/bondly/bondly/internal/store"
	"go.uber.org/zap"
)

// CheckpointLastSeen is the sync_state key holding the newest message
// timestamp ingested.
const CheckpointLastSeen = "messages.last_seen"

// Reconciler manages sync checkpoints. Without a cache the checkpoint lives
// in memory only.
type Reconciler struct {
	db     *store.DB
	logger *zap.Logger

	mu       gosync.Mutex
	lastSeen time.Time
	loaded   bool
}

// NewReconciler creates a new reconciler. db may be nil.
func NewReconciler(db *store.DB, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{db: db, logger: logger}
}

// UpdateCheckpoint updates a sync checkpoint value.
func (r *Reconciler) UpdateCheckpoint(key, value string) error {
	if r.db == nil {
		return nil
	}
	return r.db.SetSyncState(key, value)
}

// GetCheckpoint retrieves a sync checkpoint value; ok is false when unset.
func (r *Reconciler) GetCheckpoint(key string) (value string, ok bool, err error) {
	if r.db == nil {
		return "", false, nil
	}
	return r.db.SyncState(key)
}

// LastSeen returns the newest message timestamp ingested so far.
func (r *Reconciler) LastSeen() (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadLocked()
	return r.lastSeen, !r.lastSeen.IsZero()
}

// Advance moves the checkpoint forward to t. Older timestamps are ignored.
func (r *Reconciler) Advance(t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadLocked()
	if !t.After(r.lastSeen) {
		return
	}
	r.lastSeen = t
	if err := r.UpdateCheckpoint(CheckpointLastSeen, t.UTC().Format(time.RFC3339Nano)); err != nil {
		r.logger.Warn("store checkpoint", zap.Error(err))
	}
}

func (r *Reconciler) loadLocked() {
	if r.loaded {
		return
	}
	r.loaded = true
	v, ok, err := r.GetCheckpoint(CheckpointLastSeen)
	if err != nil {
		r.logger.Warn("read checkpoint", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		r.logger.Warn("bad checkpoint", zap.String("value", v), zap.Error(fmt.Errorf("parse: %w", err)))
		return
	}
	r.lastSeen = t
}
