package tui

import (
	"testing"

	"github.com/bondly/bondly/internal/tui/model"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"quit", Command{Name: "quit"}},
		{"  Q ", Command{Name: "quit"}},
		{"open sarah", Command{Name: "open", Args: "sarah"}},
		{"chat #yoga", Command{Name: "open", Args: "#yoga"}},
		{"search   morning run  ", Command{Name: "search", Args: "morning run"}},
		{"", Command{}},
	}
	for _, tt := range tests {
		if got := ParseCommand(tt.in); got != tt.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestCommandTarget(t *testing.T) {
	got, err := ParseCommand("open #book-club").Target()
	if err != nil || got != (model.Target{Channel: "book-club"}) {
		t.Errorf("channel target = %+v, %v", got, err)
	}
	got, err = ParseCommand("open sarah").Target()
	if err != nil || got != (model.Target{Counterpart: "sarah"}) {
		t.Errorf("user target = %+v, %v", got, err)
	}
	for _, in := range []string{"open", "open #", "open a b"} {
		if _, err := ParseCommand(in).Target(); err == nil {
			t.Errorf("%q: expected usage error", in)
		}
	}
}
