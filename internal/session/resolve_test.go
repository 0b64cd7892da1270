package session

import (
	"path/filepath"
	"testing"

	"github.com/bondly/bondly/internal/config"
)

func TestResolvePrecedence(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())
	t.Setenv(SessionEnv, "")

	if got := Resolve(""); got != DefaultSessionName {
		t.Errorf("Resolve() with nothing set = %q, want %q", got, DefaultSessionName)
	}

	if err := config.Save(ConfigPath(), &config.Config{DefaultSession: "fromfile"}); err != nil {
		t.Fatal(err)
	}
	if got := Resolve(""); got != "fromfile" {
		t.Errorf("Resolve() = %q, want fromfile", got)
	}

	t.Setenv(SessionEnv, "fromenv")
	if got := Resolve(""); got != "fromenv" {
		t.Errorf("Resolve() = %q, want fromenv", got)
	}

	if got := Resolve("fromflag"); got != "fromflag" {
		t.Errorf("Resolve(fromflag) = %q", got)
	}
}

func TestConfigPathUnderBase(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(HomeEnv, tmp)
	if got := ConfigPath(); got != filepath.Join(tmp, "config.toml") {
		t.Errorf("ConfigPath() = %q", got)
	}
}
