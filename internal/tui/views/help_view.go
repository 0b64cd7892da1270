package views

import (
	"fmt"
	"strings"

	"github.com/bondly/bondly/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView displays the key binding and command reference.
type HelpView struct {
	*tview.TextView
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)

	kc := ui.ColorTag(theme.MenuKeyColor)
	section := func(title string, rows [][2]string) string {
		var b strings.Builder
		fmt.Fprintf(&b, "\n  [::b]%s[-:-:-]\n\n", title)
		for _, r := range rows {
			fmt.Fprintf(&b, "  [%s]%-22s[-:-:-] %s\n", kc, tview.Escape(r[0]), r[1])
		}
		return b.String()
	}

	_, _ = fmt.Fprint(tv,
		section("Global", [][2]string{
			{":", "Command mode"},
			{"/", "Filter friends"},
			{"n", "Notifications"},
			{"s", "Search messages"},
			{"?", "Help"},
			{"esc", "Back"},
			{"q", "Quit"},
		}),
		section("Friends", [][2]string{
			{"enter", "Open conversation (marks it read)"},
			{"j/k", "Move down/up"},
		}),
		section("Conversation", [][2]string{
			{"i", "Focus composer"},
			{"enter", "Send (in composer)"},
			{"r", "Retry the last failed message"},
			{"esc", "Leave composer or close conversation"},
		}),
		section("Notifications", [][2]string{
			{"enter", "Open related conversation"},
			{"a", "Mark all read"},
			{"d", "Dismiss"},
		}),
		section("Commands", [][2]string{
			{":open <id|#channel>", "Open a conversation"},
			{":add <id>", "Add a friend"},
			{":remove <id>", "Remove a friend"},
			{":search <query>", "Search messages"},
			{":read-all", "Mark all notifications read"},
			{":help", "Show this help"},
			{":quit", "Quit"},
		}),
	)
	return &HelpView{TextView: tv}
}

// Name implements ui.Component.
func (hv *HelpView) Name() string { return "Help" }

// Hints implements ui.Component.
func (hv *HelpView) Hints() []ui.MenuHint { return nil }
