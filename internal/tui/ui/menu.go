package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

const menuRows = 4

// Menu displays keyboard shortcut hints in columns.
type Menu struct {
	*tview.TextView
	theme *Theme
}

// NewMenu creates a new menu hint panel.
func NewMenu(theme *Theme) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 2, 0)

	return &Menu{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders hints column by column, menuRows per column.
func (m *Menu) Update(hints []MenuHint) {
	m.Clear()

	keyColor := ColorTag(m.theme.MenuKeyColor)
	lines := make([]strings.Builder, menuRows)
	for i, h := range hints {
		cell := fmt.Sprintf("[%s::b]%-8s[-:-:-]%-12s", keyColor, "<"+h.Key+">", h.Description)
		lines[i%menuRows].WriteString(cell)
	}
	for i := range lines {
		_, _ = fmt.Fprintln(m, lines[i].String())
	}
}
