package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/bondly/bondly/internal/tui/model"
	"github.com/bondly/bondly/internal/tui/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ConversationList shows friends and channels with presence and unread
// badges.
type ConversationList struct {
	*tview.Table
	theme   *ui.Theme
	rows    []model.Row
	visible []model.Row
	filter  string
}

// NewConversationList creates a new conversation list table.
func NewConversationList(theme *ui.Theme) *ConversationList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	table.SetTitleColor(theme.TitleColor)

	cl := &ConversationList{
		Table: table,
		theme: theme,
	}
	cl.render()
	return cl
}

// Name implements ui.Component.
func (cl *ConversationList) Name() string { return "Friends" }

// Hints implements ui.Component.
func (cl *ConversationList) Hints() []ui.MenuHint {
	return []ui.MenuHint{{Key: "enter", Description: "Open"}}
}

// Update replaces the rows, keeping the selected conversation selected.
func (cl *ConversationList) Update(rows []model.Row) {
	selected, ok := cl.Selected()
	cl.rows = rows
	cl.render()
	if !ok {
		return
	}
	for i, r := range cl.visible {
		if r.Target == selected.Target {
			cl.Select(i+1, 0)
			return
		}
	}
}

// SetFilter narrows the list to names containing filter; empty clears it.
func (cl *ConversationList) SetFilter(filter string) {
	cl.filter = filter
	cl.render()
	cl.Select(1, 0)
}

// Filter returns the active filter.
func (cl *ConversationList) Filter() string { return cl.filter }

// Selected returns the row under the cursor.
func (cl *ConversationList) Selected() (model.Row, bool) {
	row, _ := cl.GetSelection()
	return cl.At(row - 1)
}

// At returns the i-th visible row, zero-based.
func (cl *ConversationList) At(i int) (model.Row, bool) {
	if i < 0 || i >= len(cl.visible) {
		return model.Row{}, false
	}
	return cl.visible[i], true
}

func (cl *ConversationList) render() {
	cl.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" NAME", 1},
		{" STATUS", 0},
		{" LAST MESSAGE", 2},
		{" TIME", 0},
		{" NEW", 0},
	}
	for col, h := range headers {
		cl.SetCell(0, col, tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(cl.theme.TableHeaderFg).
			SetBackgroundColor(cl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp))
	}

	cl.visible = cl.visible[:0]
	for _, r := range cl.rows {
		if cl.filter != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(cl.filter)) {
			continue
		}
		cl.visible = append(cl.visible, r)
		row := len(cl.visible)

		presence, presenceColor := r.Presence, cl.theme.OfflineColor
		if r.Online {
			presenceColor = cl.theme.OnlineColor
		}
		if r.Target.Channel != "" {
			presence = "channel"
		}
		last := r.Last.GetBody()
		if r.Last.GetFromMe() && last != "" {
			last = "you: " + last
		}
		badge := ""
		switch {
		case r.Failed > 0:
			badge = "!"
		case r.Unread > 0:
			badge = fmt.Sprintf("%d", r.Unread)
		}
		nameAttr := tcell.AttrNone
		if r.Unread > 0 {
			nameAttr = tcell.AttrBold
		}

		cl.SetCell(row, 0, tview.NewTableCell(" "+sanitize(r.Name)).SetExpansion(1).SetTextColor(cl.theme.FgColor).SetAttributes(nameAttr))
		cl.SetCell(row, 1, tview.NewTableCell(" "+presence).SetTextColor(presenceColor))
		cl.SetCell(row, 2, tview.NewTableCell(" "+sanitize(oneLine(last))).SetExpansion(2).SetMaxWidth(60).SetTextColor(cl.theme.FgColor))
		cl.SetCell(row, 3, tview.NewTableCell(" "+formatTimestamp(r.Last.GetCreatedAtMs())).SetAlign(tview.AlignRight).SetTextColor(cl.theme.FgColor))
		badgeColor := cl.theme.UnreadColor
		if r.Failed > 0 {
			badgeColor = cl.theme.FailedColor
		}
		cl.SetCell(row, 4, tview.NewTableCell(" "+badge).SetAlign(tview.AlignRight).SetTextColor(badgeColor))
	}

	if cl.filter != "" {
		cl.SetTitle(fmt.Sprintf(" Friends (%d/%d) /%s ", len(cl.visible), len(cl.rows), tview.Escape(cl.filter)))
	} else {
		cl.SetTitle(fmt.Sprintf(" Friends (%d) ", len(cl.rows)))
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func formatTimestamp(ms int64) string {
	if ms == 0 {
		return ""
	}
	t := time.UnixMilli(ms)
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	return t.Format("01/02")
}
