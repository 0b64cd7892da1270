package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// Logo displays a compact ASCII art logo.
type Logo struct {
	*tview.TextView
}

// NewLogo creates a new logo component.
func NewLogo(theme *Theme) *Logo {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignRight)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 0, 1)

	title := ColorTag(theme.TitleColor)
	_, _ = fmt.Fprintf(tv,
		"[%s::b]╔╗ ╔═╗╔╗╔╔╦╗╦ ╦ ╦[-:-:-]\n"+
			"[%s::b]╠╩╗║ ║║║║ ║║║ ╚╦╝[-:-:-]\n"+
			"[%s::b]╚═╝╚═╝╝╚╝═╩╝╩═╝╩ [-:-:-]\n"+
			"[%s]stay close[-:-:-]",
		title, title, title, ColorTag(theme.FgColor),
	)
	return &Logo{TextView: tv}
}
