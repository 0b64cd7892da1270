package views

import (
	"fmt"
	"strings"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"github.com/bondly/bondly/internal/tui/model"
	"github.com/bondly/bondly/internal/tui/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NotificationList shows the notification center.
type NotificationList struct {
	*tview.Table
	theme *ui.Theme
	data  []*bondlyv1.Notification
}

// NewNotificationList creates an empty notification table.
func NewNotificationList(theme *ui.Theme) *NotificationList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetTitleColor(theme.TitleColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	return &NotificationList{Table: table, theme: theme}
}

// Name implements ui.Component.
func (nl *NotificationList) Name() string { return "Notifications" }

// Hints implements ui.Component.
func (nl *NotificationList) Hints() []ui.MenuHint {
	return []ui.MenuHint{{Key: "enter", Description: "Open"}}
}

// Update renders the notifications, newest first as the daemon lists them.
func (nl *NotificationList) Update(items []*bondlyv1.Notification, unread int) {
	nl.data = items
	nl.Clear()
	for col, h := range []string{"  ", " TYPE", " TITLE", " TIME"} {
		nl.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(nl.theme.TableHeaderFg).
			SetAttributes(tcell.AttrBold))
	}
	for i, n := range items {
		row := i + 1
		mark, attr := " ", tcell.AttrNone
		if !n.Read {
			mark, attr = "●", tcell.AttrBold
		}
		title := n.Title
		if n.Summary != "" {
			title += ": " + n.Summary
		}
		nl.SetCell(row, 0, tview.NewTableCell(" "+mark).SetTextColor(nl.theme.UnreadColor))
		nl.SetCell(row, 1, tview.NewTableCell(" "+n.Type).SetTextColor(nl.theme.FgColor))
		nl.SetCell(row, 2, tview.NewTableCell(" "+sanitize(oneLine(title))).SetExpansion(1).SetTextColor(nl.theme.FgColor).SetAttributes(attr))
		nl.SetCell(row, 3, tview.NewTableCell(" "+formatTimestamp(n.CreatedAtMs)).SetTextColor(nl.theme.FgColor))
	}
	nl.SetTitle(fmt.Sprintf(" Notifications (%d unread) ", unread))
}

// Selected returns the highlighted notification.
func (nl *NotificationList) Selected() (*bondlyv1.Notification, bool) {
	row, _ := nl.GetSelection()
	if row < 1 || row > len(nl.data) {
		return nil, false
	}
	return nl.data[row-1], true
}

// TargetOfNotification resolves the conversation a notification points at.
func TargetOfNotification(self string, n *bondlyv1.Notification) (model.Target, bool) {
	switch n.GetType() {
	case "friend":
		return model.Target{Counterpart: n.GetRef()}, n.GetRef() != ""
	case "message":
		return TargetOfKey(self, n.GetRef())
	}
	return model.Target{}, false
}

// TargetOfKey parses a conversation key.
func TargetOfKey(self, key string) (model.Target, bool) {
	if id, ok := strings.CutPrefix(key, "ch:"); ok && id != "" {
		return model.Target{Channel: id}, true
	}
	rest, ok := strings.CutPrefix(key, "dm:")
	if !ok {
		return model.Target{}, false
	}
	a, b, ok := strings.Cut(rest, ":")
	if !ok {
		return model.Target{}, false
	}
	if a == self {
		return model.Target{Counterpart: b}, true
	}
	return model.Target{Counterpart: a}, true
}
