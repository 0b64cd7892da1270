package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Backend kinds.
const (
	BackendPostgREST = "postgrest"
	BackendMemory    = "memory"
)

// Environment overrides, read after the optional .env file is loaded.
const (
	EnvBackendURL  = "BONDLY_BACKEND_URL"
	EnvAPIKey      = "BONDLY_API_KEY"
	EnvAccessToken = "BONDLY_ACCESS_TOKEN"
)

// Duration is a time.Duration written as a string ("25s") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Settings is the per-session session.toml.
type Settings struct {
	Backend   BackendSettings   `toml:"backend"`
	Realtime  RealtimeSettings  `toml:"realtime"`
	Outbox    OutboxSettings    `toml:"outbox"`
	ReadState ReadStateSettings `toml:"readstate"`
}

type BackendSettings struct {
	Kind        string `toml:"kind"`
	URL         string `toml:"url"`
	APIKey      string `toml:"api_key"`
	AccessToken string `toml:"access_token"`
	// DemoUser is the self id used by the memory backend.
	DemoUser string `toml:"demo_user"`
}

type RealtimeSettings struct {
	Heartbeat      Duration `toml:"heartbeat"`
	BackoffInitial Duration `toml:"backoff_initial"`
	BackoffMax     Duration `toml:"backoff_max"`
}

type OutboxSettings struct {
	AttemptTimeout Duration `toml:"attempt_timeout"`
}

type ReadStateSettings struct {
	RetryMaxInterval Duration `toml:"retry_max_interval"`
}

// DefaultSettings returns settings for the demo memory backend.
func DefaultSettings() *Settings {
	return &Settings{
		Backend: BackendSettings{Kind: BackendMemory, DemoUser: "me"},
		Realtime: RealtimeSettings{
			Heartbeat:      Duration{25 * time.Second},
			BackoffInitial: Duration{time.Second},
			BackoffMax:     Duration{30 * time.Second},
		},
		Outbox:    OutboxSettings{AttemptTimeout: Duration{15 * time.Second}},
		ReadState: ReadStateSettings{RetryMaxInterval: Duration{time.Minute}},
	}
}

// LoadSettings reads session.toml over the defaults, then applies the
// optional .env file and environment overrides. A missing session.toml is
// not an error.
func LoadSettings(path, envPath string) (*Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, s); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if envPath != "" {
		// Existing environment variables win over the file.
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}
	if v := os.Getenv(EnvBackendURL); v != "" {
		s.Backend.URL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		s.Backend.APIKey = v
	}
	if v := os.Getenv(EnvAccessToken); v != "" {
		s.Backend.AccessToken = v
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the backend section is usable.
func (s *Settings) Validate() error {
	switch s.Backend.Kind {
	case BackendMemory:
		if s.Backend.DemoUser == "" {
			return errors.New("backend.demo_user is required for the memory backend")
		}
	case BackendPostgREST:
		if s.Backend.URL == "" {
			return errors.New("backend.url is required")
		}
		if s.Backend.APIKey == "" {
			return errors.New("backend.api_key is required")
		}
		if s.Backend.AccessToken == "" {
			return errors.New("backend.access_token is required")
		}
	default:
		return fmt.Errorf("unknown backend kind %q", s.Backend.Kind)
	}
	if s.Realtime.BackoffInitial.Duration <= 0 || s.Realtime.BackoffMax.Duration < s.Realtime.BackoffInitial.Duration {
		return errors.New("realtime backoff bounds are invalid")
	}
	return nil
}
