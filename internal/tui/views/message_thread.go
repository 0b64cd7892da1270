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

// MessageThread displays one conversation and its composer.
type MessageThread struct {
	*tview.Flex
	theme    *ui.Theme
	messages *tview.TextView
	composer *tview.InputField
	title    string
	onSend   func(text string)
	onLeave  func()
}

// NewMessageThread creates a new message thread view.
func NewMessageThread(theme *ui.Theme) *MessageThread {
	messages := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	messages.SetBorder(true)
	messages.SetBorderColor(theme.BorderColor)
	messages.SetBackgroundColor(theme.BgColor)
	messages.SetTextColor(theme.FgColor)
	messages.SetTitleColor(theme.TitleColor)

	composer := tview.NewInputField().
		SetLabel(" > ").
		SetFieldWidth(0)
	composer.SetBorder(true)
	composer.SetBorderColor(theme.BorderColor)
	composer.SetBackgroundColor(theme.BgColor)
	composer.SetFieldBackgroundColor(theme.BgColor)
	composer.SetFieldTextColor(theme.FgColor)
	composer.SetLabelColor(theme.MenuKeyColor)
	composer.SetTitle(" Compose (i to focus, esc to leave) ")
	composer.SetTitleColor(theme.TitleColor)

	mt := &MessageThread{
		Flex: tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(messages, 0, 1, true).
			AddItem(composer, 3, 0, false),
		theme:    theme,
		messages: messages,
		composer: composer,
	}

	composer.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := strings.TrimSpace(composer.GetText())
			if text != "" && mt.onSend != nil {
				mt.onSend(text)
				composer.SetText("")
			}
		case tcell.KeyEscape:
			if mt.onLeave != nil {
				mt.onLeave()
			}
		}
	})

	return mt
}

// Name implements ui.Component.
func (mt *MessageThread) Name() string {
	if mt.title != "" {
		return mt.title
	}
	return "Messages"
}

// Hints implements ui.Component.
func (mt *MessageThread) Hints() []ui.MenuHint {
	return []ui.MenuHint{{Key: "enter", Description: "Send"}}
}

// SetOnSend sets the callback for composed text.
func (mt *MessageThread) SetOnSend(fn func(text string)) {
	mt.onSend = fn
}

// SetOnLeaveComposer sets the callback for escape in the composer.
func (mt *MessageThread) SetOnLeaveComposer(fn func()) {
	mt.onLeave = fn
}

// Update renders the thread, oldest message first.
func (mt *MessageThread) Update(th *model.Thread) {
	mt.messages.Clear()
	if th == nil {
		mt.title = ""
		mt.messages.SetTitle(" Messages ")
		return
	}
	mt.title = th.Title
	mt.messages.SetTitle(fmt.Sprintf(" %s ", tview.Escape(th.Title)))

	for _, m := range th.Messages {
		_, _ = fmt.Fprint(mt.messages, mt.line(m, th.Title))
	}
	mt.messages.ScrollToEnd()
}

func (mt *MessageThread) line(m *bondlyv1.Message, title string) string {
	sender, color := m.SenderId, mt.theme.PeerColor
	if m.FromMe {
		sender, color = "You", mt.theme.SelfColor
	} else if m.ChannelId == "" {
		sender = title
	}

	body := sanitize(m.Body)
	status := ""
	switch m.State {
	case "pending":
		status = fmt.Sprintf(" [%s]sending…[-]", ui.ColorTag(mt.theme.PendingColor))
		body = fmt.Sprintf("[%s]%s[-]", ui.ColorTag(mt.theme.PendingColor), body)
	case "failed":
		reason := m.Error
		if reason == "" {
			reason = "not sent"
		}
		status = fmt.Sprintf(" [%s]✗ %s (r to retry)[-]", ui.ColorTag(mt.theme.FailedColor), tview.Escape(reason))
	}

	return fmt.Sprintf("[%s::b]%s[-:-:-] [::d]%s[-:-:-]%s\n%s\n\n",
		ui.ColorTag(color), sanitize(sender), formatTimestamp(m.CreatedAtMs), status, body)
}

// Messages returns the message pane for focus management.
func (mt *MessageThread) Messages() *tview.TextView {
	return mt.messages
}

// Composer returns the composer input for focus management.
func (mt *MessageThread) Composer() *tview.InputField {
	return mt.composer
}
