package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPageBindingShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	var got string
	r.Global(&Action{Key: tcell.KeyRune, Rune: 'q', Label: "q", Help: "Quit", Handler: func() { got = "quit" }})
	r.Page("thread", &Action{Key: tcell.KeyRune, Rune: 'q', Label: "q", Help: "Back", Handler: func() { got = "back" }})

	ev := tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	if !r.Handle("thread", ev) || got != "back" {
		t.Errorf("thread page: got %q, want back", got)
	}
	if !r.Handle("friends", ev) || got != "quit" {
		t.Errorf("friends page: got %q, want quit", got)
	}
	if r.Handle("friends", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("unbound rune reported as handled")
	}
}

func TestSpecialKeyMatch(t *testing.T) {
	r := NewRegistry()
	hit := false
	r.Global(&Action{Key: tcell.KeyCtrlR, Label: "ctrl-r", Help: "Refresh", Handler: func() { hit = true }})
	if !r.Handle("x", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl)) || !hit {
		t.Error("ctrl-r did not dispatch")
	}
}

func TestHintsOrderAndHidden(t *testing.T) {
	r := NewRegistry()
	r.Global(&Action{Key: tcell.KeyRune, Rune: '?', Label: "?", Help: "Help"})
	r.Global(&Action{Key: tcell.KeyRune, Rune: 'z', Label: "z", Help: "Secret", Hidden: true})
	r.Page("friends", &Action{Key: tcell.KeyEnter, Label: "enter", Help: "Open"})

	hints := r.Hints("friends")
	if len(hints) != 2 {
		t.Fatalf("hints = %v, want 2", hints)
	}
	if hints[0].Description != "Open" || hints[1].Description != "Help" {
		t.Errorf("hints order = %v", hints)
	}
}
