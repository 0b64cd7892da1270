package ui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// SessionData holds session information for display.
type SessionData struct {
	Session       string
	User          string
	Channel       string
	Friends       int
	Unread        int
	Notifications int
	Uptime        time.Duration
}

// SessionInfo displays session metadata in the header.
type SessionInfo struct {
	*tview.TextView
	theme *Theme
}

// NewSessionInfo creates a new session info panel.
func NewSessionInfo(theme *Theme) *SessionInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &SessionInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the session info.
func (si *SessionInfo) Update(data *SessionData) {
	si.Clear()
	if data == nil {
		return
	}

	fg := ColorTag(si.theme.FgColor)
	ct := ColorTag(si.theme.CounterColor)
	channel := ColorTag(si.theme.OfflineColor)
	if data.Channel == "SUBSCRIBED" {
		channel = ColorTag(si.theme.OnlineColor)
	}

	_, _ = fmt.Fprintf(si,
		"[%s::b]Session:[-:-:-] [%s]%s[-]\n"+
			"[%s::b]User:[-:-:-]    [%s]%s[-]\n"+
			"[%s::b]Channel:[-:-:-] [%s]%s[-]\n"+
			"[%s::b]Friends:[-:-:-] [%s]%d[-]  [%s::b]Unread:[-:-:-] [%s]%d[-]  [%s::b]Alerts:[-:-:-] [%s]%d[-]\n"+
			"[%s::b]Uptime:[-:-:-]  [%s]%s[-]",
		fg, ct, tview.Escape(data.Session),
		fg, ct, tview.Escape(data.User),
		fg, channel, data.Channel,
		fg, ct, data.Friends, fg, ct, data.Unread, fg, ct, data.Notifications,
		fg, ct, FormatDuration(data.Uptime),
	)
}

// FormatDuration renders d as hours and minutes.
func FormatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
