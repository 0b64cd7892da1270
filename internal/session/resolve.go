package session

import (
	"os"

	"github.com/bondly/bondly/internal/config"
)

const (
	DefaultSessionName = "main"
	// SessionEnv selects the session when no flag is given.
	SessionEnv = "BONDLY_SESSION"
)

// Resolve picks the active session name: the --session flag, then
// $BONDLY_SESSION, then default_session from config.toml, then "main".
func Resolve(flagOverride string) string {
	if flagOverride != "" {
		return flagOverride
	}
	if env := os.Getenv(SessionEnv); env != "" {
		return env
	}
	cfg, err := config.Load(ConfigPath())
	if err == nil && cfg.DefaultSession != "" {
		return cfg.DefaultSession
	}
	return DefaultSessionName
}
