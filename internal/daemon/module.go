package daemon

import (
	"context"
	"fmt"

	"github.com/bondly/bondly/internal/api"
	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/backend/memory"
	"github.com/bondly/bondly/internal/backend/postgrest"
	"github.com/bondly/bondly/internal/backend/realtime"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/config"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/ingest"
	"github.com/bondly/bondly/internal/lock"
	"github.com/bondly/bondly/internal/logging"
	"github.com/bondly/bondly/internal/notify"
	"github.com/bondly/bondly/internal/outbox"
	"github.com/bondly/bondly/internal/readstate"
	"github.com/bondly/bondly/internal/session"
	"github.com/bondly/bondly/internal/status"
	"github.com/bondly/bondly/internal/store"
	intsync "github.com/bondly/bondly/internal/sync"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string // optional override for testing; empty = use default
	// Stderr mirrors the log file on stderr.
	Stderr bool
}

// Remote is the backend the session talks to.
type Remote struct {
	Kind    string
	Self    string
	Backend backend.Backend
	Feed    backend.ChangeFeed
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideSettings,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideRemote,
			provideDirectory,
			provideConversations,
			provideTracker,
			provideNotifications,
			provideSender,
			provideEngine,
			provideLoader,
			provideChannel,
			provideSupervisor,
			provideSessionService,
			api.NewContactService,
			provideMessageService,
			api.NewNotificationService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideSettings(p Params) (*config.Settings, error) {
	if err := session.ValidateName(p.SessionName); err != nil {
		return nil, err
	}
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	return config.LoadSettings(session.SettingsPath(p.SessionName), session.EnvPath(p.SessionName))
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName, logging.Options{Stderr: p.Stderr})
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, _ *config.Settings, logger *zap.Logger) (*lock.Lock, error) {
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

// provideStore depends on the lock so only the lock holder opens the cache.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	dbPath := session.CachePath(p.SessionName)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideRemote(s *config.Settings, logger *zap.Logger) (*Remote, error) {
	switch s.Backend.Kind {
	case config.BackendMemory:
		be := memory.New()
		memory.SeedDemo(be, s.Backend.DemoUser, "You")
		logger.Info("using in-memory demo backend", zap.String("self", s.Backend.DemoUser))
		return &Remote{Kind: s.Backend.Kind, Self: s.Backend.DemoUser, Backend: be, Feed: be}, nil

	case config.BackendPostgREST:
		id, err := session.IdentityFromToken(s.Backend.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("session identity: %w", err)
		}
		logger.Info("using postgrest backend", zap.String("url", s.Backend.URL), zap.String("self", id.UserID))
		return &Remote{
			Kind: s.Backend.Kind,
			Self: id.UserID,
			Backend: postgrest.New(postgrest.Config{
				URL:         s.Backend.URL,
				APIKey:      s.Backend.APIKey,
				AccessToken: s.Backend.AccessToken,
				Timeout:     s.Outbox.AttemptTimeout.Duration,
			}, logger.Named("postgrest")),
			Feed: realtime.New(realtime.Config{
				URL:         s.Backend.URL,
				APIKey:      s.Backend.APIKey,
				AccessToken: s.Backend.AccessToken,
				Heartbeat:   s.Realtime.Heartbeat.Duration,
			}, logger.Named("realtime")),
		}, nil
	}
	return nil, fmt.Errorf("unknown backend kind %q", s.Backend.Kind)
}

func provideDirectory(r *Remote, db *store.DB, b *bus.Bus, logger *zap.Logger) *contacts.Directory {
	return contacts.New(r.Self, r.Backend, db, b, logger.Named("contacts"))
}

func provideConversations(r *Remote, b *bus.Bus, dir *contacts.Directory, logger *zap.Logger) *conversation.Store {
	return conversation.New(r.Self, b, dir, logger.Named("conversation"))
}

func provideTracker(conv *conversation.Store, r *Remote, db *store.DB, s *config.Settings, logger *zap.Logger) *readstate.Tracker {
	return readstate.New(conv, readstate.BackendPersister{Backend: r.Backend, Self: r.Self}, db,
		readstate.Options{MaxInterval: s.ReadState.RetryMaxInterval.Duration}, logger.Named("readstate"))
}

func provideNotifications(b *bus.Bus) *notify.Center {
	return notify.New(b)
}

func provideSender(conv *conversation.Store, r *Remote, db *store.DB, b *bus.Bus, s *config.Settings, logger *zap.Logger) *outbox.Sender {
	return outbox.NewSender(conv, outbox.BackendGateway{Backend: r.Backend}, db, b,
		outbox.Options{AttemptTimeout: s.Outbox.AttemptTimeout.Duration}, logger.Named("outbox"))
}

func provideEngine(r *Remote, conv *conversation.Store, dir *contacts.Directory, tracker *readstate.Tracker, notes *notify.Center, db *store.DB, b *bus.Bus, logger *zap.Logger) *intsync.Engine {
	return intsync.NewEngine(intsync.Deps{
		Self:      r.Self,
		Store:     conv,
		Directory: dir,
		Tracker:   tracker,
		Notes:     notes,
		DB:        db,
		Bus:       b,
	}, logger.Named("sync"))
}

func provideLoader(r *Remote, dir *contacts.Directory, engine *intsync.Engine, db *store.DB, logger *zap.Logger) *intsync.Loader {
	return intsync.NewLoader(r.Self, r.Backend, dir, engine, db, logger.Named("loader"))
}

func provideChannel(r *Remote, engine *intsync.Engine, m *status.Machine, logger *zap.Logger) *ingest.Channel {
	return ingest.NewChannel(r.Self, r.Feed, engine, m, logger.Named("ingest"))
}

func provideSupervisor(ch *ingest.Channel, loader *intsync.Loader, s *config.Settings, logger *zap.Logger) *ingest.Supervisor {
	cfg := ingest.DefaultBackoff
	cfg.Initial = s.Realtime.BackoffInitial.Duration
	cfg.Max = s.Realtime.BackoffMax.Duration
	return ingest.NewSupervisor(ch, loader, cfg, logger.Named("supervisor"))
}

func provideSessionService(p Params, r *Remote, ch *ingest.Channel, dir *contacts.Directory, conv *conversation.Store, tracker *readstate.Tracker, notes *notify.Center) *api.SessionService {
	return api.NewSessionService(p.SessionName, r.Kind, ch, dir, conv, tracker, notes)
}

func provideMessageService(conv *conversation.Store, dir *contacts.Directory, sender *outbox.Sender, tracker *readstate.Tracker, db *store.DB, b *bus.Bus, logger *zap.Logger) *api.MessageService {
	return api.NewMessageService(conv, dir, sender, tracker, db, b, logger.Named("api"))
}

type lifecycleParams struct {
	fx.In

	Server     *Server
	Messages   *api.MessageService
	Lock       *lock.Lock
	DB         *store.DB
	Loader     *intsync.Loader
	Engine     *intsync.Engine
	Tracker    *readstate.Tracker
	Sender     *outbox.Sender
	Channel    *ingest.Channel
	Supervisor *ingest.Supervisor
	Logger     *zap.Logger
}

func registerLifecycle(lc fx.Lifecycle, d lifecycleParams) {
	logger := d.Logger
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if _, err := d.Loader.Hydrate(); err != nil {
				logger.Warn("hydrate from cache failed", zap.Error(err))
			}
			if _, err := d.Sender.Restore(); err != nil {
				logger.Warn("restore outbox failed", zap.Error(err))
			}

			d.Engine.Start(context.Background())
			d.Tracker.Start()
			d.Supervisor.Start()

			// Start gRPC server in background.
			go func() {
				if err := d.Server.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Messages.Close()
			d.Server.Stop(ctx)
			d.Supervisor.Stop()
			d.Channel.Unsubscribe()
			d.Sender.Close()
			d.Tracker.Stop()
			d.Engine.Stop()
			if err := d.DB.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := d.Lock.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
