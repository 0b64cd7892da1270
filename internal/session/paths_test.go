package session

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestDirDefault(t *testing.T) {
	t.Setenv(HomeEnv, "")
	home, _ := os.UserHomeDir()
	got := Dir("main")
	want := filepath.Join(home, ".bondly", "sessions", "main")
	if got != want {
		t.Errorf("Dir(main) = %q, want %q", got, want)
	}
}

func TestDirOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(HomeEnv, tmp)
	if got := Dir("work"); got != filepath.Join(tmp, "sessions", "work") {
		t.Errorf("Dir(work) = %q", got)
	}
}

func TestFilePaths(t *testing.T) {
	tests := []struct {
		name   string
		got    string
		suffix string
	}{
		{"socket", SocketPath("test"), filepath.Join("sessions", "test", "daemon.sock")},
		{"lock", LockPath("test"), filepath.Join("sessions", "test", "LOCK")},
		{"cache", CachePath("test"), filepath.Join("sessions", "test", "cache.db")},
		{"settings", SettingsPath("test"), filepath.Join("sessions", "test", "session.toml")},
		{"env", EnvPath("test"), filepath.Join("sessions", "test", ".env")},
		{"log", LogPath("test"), filepath.Join("sessions", "test", "logs", "bondlyd.log")},
	}
	for _, tt := range tests {
		if !strings.HasSuffix(tt.got, tt.suffix) {
			t.Errorf("%s path = %q, want suffix %q", tt.name, tt.got, tt.suffix)
		}
	}
}

func TestEnsureDirAndList(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	for _, name := range []string{"main", "work"} {
		if err := EnsureDir(name); err != nil {
			t.Fatal(err)
		}
	}
	info, err := os.Stat(LogDir("main"))
	if err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
	if info.Mode().Perm() != 0700 {
		t.Errorf("log dir perm = %o, want 0700", info.Mode().Perm())
	}

	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(names)
	if !slices.Equal(names, []string{"main", "work"}) {
		t.Errorf("List() = %v", names)
	}
}

func TestListMissingBase(t *testing.T) {
	t.Setenv(HomeEnv, filepath.Join(t.TempDir(), "absent"))
	names, err := List()
	if err != nil || len(names) != 0 {
		t.Errorf("List() = %v, %v; want empty, nil", names, err)
	}
}
