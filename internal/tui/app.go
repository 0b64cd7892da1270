// Package tui is the terminal client for a running bondlyd.
package tui

import (
	"context"
	"fmt"
	"time"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"github.com/bondly/bondly/internal/apiv1"
	"github.com/bondly/bondly/internal/tui/keys"
	"github.com/bondly/bondly/internal/tui/model"
	"github.com/bondly/bondly/internal/tui/ui"
	"github.com/bondly/bondly/internal/tui/views"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	pageFriends       = "friends"
	pageThread        = "thread"
	pageSearch        = "search"
	pageNotifications = "notifications"
	pageHelp          = "help"

	rpcTimeout  = 10 * time.Second
	tickerEvery = 30 * time.Second
)

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	theme    *ui.Theme
	session  string
	vm       *model.ViewModel
	registry *keys.Registry
	flash    *ui.FlashModel

	body     *tview.Flex
	info     *ui.SessionInfo
	menu     *ui.Menu
	crumbs   *ui.Crumbs
	pages    *ui.Pages
	prompt   *ui.Prompt
	flashBar *ui.FlashBar

	list   *views.ConversationList
	thread *views.MessageThread
	search *views.SearchView
	notes  *views.NotificationList
	help   *views.HelpView

	components map[string]ui.Component
	refreshCh  chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(c *apiv1.Client, sessionName string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()

	a := &App{
		app:       tview.NewApplication(),
		theme:     theme,
		session:   sessionName,
		vm:        model.NewViewModel(c),
		registry:  keys.NewRegistry(),
		flash:     ui.NewFlashModel(),
		info:      ui.NewSessionInfo(theme),
		menu:      ui.NewMenu(theme),
		crumbs:    ui.NewCrumbs(theme),
		pages:     ui.NewPages(),
		prompt:    ui.NewPrompt(theme),
		flashBar:  ui.NewFlashBar(theme),
		list:      views.NewConversationList(theme),
		thread:    views.NewMessageThread(theme),
		search:    views.NewSearchView(theme),
		notes:     views.NewNotificationList(theme),
		help:      views.NewHelpView(theme),
		refreshCh: make(chan struct{}, 1),
		ctx:       ctx,
		cancel:    cancel,
	}
	a.components = map[string]ui.Component{
		pageFriends:       a.list,
		pageThread:        a.thread,
		pageSearch:        a.search,
		pageNotifications: a.notes,
		pageHelp:          a.help,
	}

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	return a
}

func key(r rune, help string, fn func()) *keys.Action {
	return &keys.Action{Key: tcell.KeyRune, Rune: r, Label: string(r), Help: help, Handler: fn}
}

func (a *App) setupBindings() {
	r := a.registry
	r.Global(key('q', "Quit", a.Stop))
	r.Global(key(':', "Command", func() { a.activatePrompt(ui.PromptCommand) }))
	r.Global(key('n', "Alerts", func() { a.push(pageNotifications) }))
	r.Global(key('s', "Search", func() { a.push(pageSearch) }))
	r.Global(key('?', "Help", func() { a.push(pageHelp) }))
	r.Global(&keys.Action{Key: tcell.KeyCtrlR, Label: "ctrl-r", Help: "Refresh", Handler: a.requestRefresh})

	r.Page(pageFriends, key('/', "Filter", func() { a.activatePrompt(ui.PromptFilter) }))
	down := key('j', "Down", func() { a.moveList(1) })
	up := key('k', "Up", func() { a.moveList(-1) })
	down.Hidden, up.Hidden = true, true
	r.Page(pageFriends, down)
	r.Page(pageFriends, up)

	r.Page(pageThread, key('i', "Compose", func() { a.app.SetFocus(a.thread.Composer()) }))
	r.Page(pageThread, key('r', "Retry", a.retryFailed))
	r.Page(pageThread, &keys.Action{Key: tcell.KeyEscape, Label: "esc", Help: "Close", Handler: a.closeThread})

	r.Page(pageNotifications, key('a', "Read all", a.markAllRead))
	r.Page(pageNotifications, key('d', "Dismiss", a.dismissNotification))
}

func (a *App) setupCallbacks() {
	a.pages.SetOnChange(func(stack []string) {
		names := make([]string, len(stack))
		for i, p := range stack {
			names[i] = a.components[p].Name()
		}
		a.crumbs.Update(names)
		a.menu.Update(append(a.components[a.pages.Current()].Hints(), a.registry.Hints(a.pages.Current())...))
	})

	a.list.SetSelectedFunc(func(_, _ int) {
		if row, ok := a.list.Selected(); ok {
			a.openThread(row.Target)
		}
	})

	a.thread.SetOnSend(func(text string) {
		a.background(func(ctx context.Context) error {
			m, err := a.vm.Send(ctx, text)
			if err == nil && m.GetState() == "failed" {
				a.flash.Warn("Send failed: " + m.GetError())
			}
			return err
		})
	})
	a.thread.SetOnLeaveComposer(func() { a.app.SetFocus(a.thread.Messages()) })

	a.search.SetOnQuery(a.runSearch)
	a.search.Results().SetSelectedFunc(func(_, _ int) {
		if t, ok := a.search.Selected(a.self()); ok {
			a.openThread(t)
		}
	})

	a.notes.SetSelectedFunc(func(_, _ int) {
		n, ok := a.notes.Selected()
		if !ok {
			return
		}
		if t, ok := views.TargetOfNotification(a.self(), n); ok {
			a.openThread(t)
		}
	})

	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.hidePrompt()
		switch mode {
		case ui.PromptFilter:
			a.list.SetFilter(text)
		case ui.PromptCommand:
			a.runCommand(ParseCommand(text))
		}
	})
	a.prompt.SetOnCancel(a.hidePrompt)
}

func (a *App) setupLayout() {
	header := tview.NewFlex().
		AddItem(a.info, 0, 1, false).
		AddItem(a.menu, 0, 2, false).
		AddItem(ui.NewLogo(a.theme), 20, 0, false)

	for name, c := range a.components {
		a.pages.AddPage(name, c, true, false)
	}

	a.body = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 5, 0, false).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.flashBar, 1, 0, false)
	a.app.SetRoot(a.body, true)
	a.pages.Reset(pageFriends)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Text inputs get every key.
		if _, ok := a.app.GetFocus().(*tview.InputField); ok {
			if event.Key() == tcell.KeyEscape && a.app.GetFocus() == a.search.Input() {
				a.back()
				return nil
			}
			return event
		}
		if a.registry.Handle(a.pages.Current(), event) {
			return nil
		}
		if event.Key() == tcell.KeyEscape {
			a.back()
			return nil
		}
		return event
	})
}

func (a *App) push(page string) {
	a.pages.Push(page)
	a.focusPage()
}

func (a *App) back() {
	if a.pages.Current() == pageThread {
		a.closeThread()
		return
	}
	a.pages.Pop()
	a.focusPage()
}

func (a *App) focusPage() {
	switch a.pages.Current() {
	case pageThread:
		a.app.SetFocus(a.thread.Messages())
	case pageSearch:
		a.app.SetFocus(a.search.Input())
	default:
		a.app.SetFocus(a.components[a.pages.Current()])
	}
}

func (a *App) activatePrompt(mode ui.PromptMode) {
	a.prompt.Activate(mode)
	if mode == ui.PromptFilter {
		a.prompt.SetText(a.list.Filter())
	}
	a.body.RemoveItem(a.prompt)
	a.body.AddItem(a.prompt, 3, 0, true)
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	a.body.RemoveItem(a.prompt)
	a.focusPage()
}

func (a *App) moveList(delta int) {
	row, _ := a.list.GetSelection()
	if row+delta >= 1 {
		a.list.Select(row+delta, 0)
	}
}

func (a *App) runSearch(query string) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		results, err := a.vm.Search(ctx, query)
		if err != nil {
			a.flash.Err(err)
			a.draw()
			return
		}
		a.app.QueueUpdateDraw(func() {
			a.search.Update(results)
			a.app.SetFocus(a.search.Results())
		})
	}()
}

func (a *App) self() string {
	if st := a.vm.Status(); st != nil {
		return st.UserId
	}
	return ""
}

func (a *App) openThread(t model.Target) {
	a.background(func(ctx context.Context) error {
		if err := a.vm.OpenThread(ctx, t); err != nil {
			return err
		}
		a.app.QueueUpdateDraw(func() {
			a.thread.Update(a.vm.Thread())
			a.push(pageThread)
		})
		return nil
	})
}

func (a *App) closeThread() {
	a.vm.CloseThread()
	a.thread.Update(nil)
	a.pages.Pop()
	a.focusPage()
}

func (a *App) retryFailed() {
	a.background(func(ctx context.Context) error {
		found, err := a.vm.RetryLastFailed(ctx)
		if !found && err == nil {
			a.flash.Info("Nothing to retry")
		}
		return err
	})
}

func (a *App) markAllRead() {
	a.background(func(ctx context.Context) error {
		n, err := a.vm.MarkAllNotificationsRead(ctx)
		if err == nil {
			a.flash.Info(fmt.Sprintf("Marked %d notification(s) read", n))
		}
		return err
	})
}

func (a *App) dismissNotification() {
	n, ok := a.notes.Selected()
	if !ok {
		return
	}
	a.background(func(ctx context.Context) error {
		return a.vm.DismissNotification(ctx, n.GetId())
	})
}

func (a *App) runCommand(cmd Command) {
	switch cmd.Name {
	case "quit":
		a.Stop()
	case "help":
		a.push(pageHelp)
	case "friends":
		a.pages.Reset(pageFriends)
		a.focusPage()
	case "notifications":
		a.push(pageNotifications)
	case "read-all":
		a.markAllRead()
	case "search":
		a.push(pageSearch)
		if cmd.Args != "" {
			a.search.SetQuery(cmd.Args)
			a.runSearch(cmd.Args)
		}
	case "open":
		t, err := cmd.Target()
		if err != nil {
			a.flash.Warn(err.Error())
			return
		}
		a.openThread(t)
	case "add":
		if cmd.Args == "" {
			a.flash.Warn("usage: :add <user-id>")
			return
		}
		a.background(func(ctx context.Context) error {
			c, err := a.vm.AddFriend(ctx, cmd.Args)
			if err == nil {
				a.flash.Info(c.DisplayName + " is now your friend")
			}
			return err
		})
	case "remove":
		if cmd.Args == "" {
			a.flash.Warn("usage: :remove <user-id>")
			return
		}
		a.background(func(ctx context.Context) error {
			err := a.vm.RemoveFriend(ctx, cmd.Args)
			if err == nil {
				a.flash.Info("Removed " + cmd.Args)
			}
			return err
		})
	default:
		a.flash.Warn("unknown command: " + cmd.Name)
	}
	a.renderFlash()
}

// background runs fn off the UI goroutine, reports its error and schedules
// a refresh.
func (a *App) background(fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		if err := fn(ctx); err != nil && a.ctx.Err() == nil {
			a.flash.Err(err)
		}
		a.requestRefresh()
	}()
}

func (a *App) requestRefresh() {
	select {
	case a.refreshCh <- struct{}{}:
	default:
	}
}

// refreshLoop coalesces refresh requests from events, actions and the
// ticker.
func (a *App) refreshLoop() {
	ticker := time.NewTicker(tickerEvery)
	defer ticker.Stop()
	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
		case <-a.refreshCh:
		}
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		err := a.vm.Refresh(ctx)
		if err == nil {
			err = a.vm.ReloadThread(ctx)
		}
		cancel()
		if err != nil && a.ctx.Err() == nil {
			a.flash.Err(err)
		}
		a.draw()
	}
}

func (a *App) onEvent(*bondlyv1.Event) {
	a.requestRefresh()
}

func (a *App) draw() {
	a.app.QueueUpdateDraw(a.render)
}

// render copies view model state into the widgets. It runs on the UI
// goroutine.
func (a *App) render() {
	if st := a.vm.Status(); st != nil {
		a.info.Update(&ui.SessionData{
			Session:       st.Session,
			User:          fmt.Sprintf("%s (%s)", st.DisplayName, st.UserId),
			Channel:       st.ChannelState,
			Friends:       int(st.Friends),
			Unread:        int(st.Unread),
			Notifications: int(st.Notifications),
			Uptime:        time.Duration(st.UptimeMs) * time.Millisecond,
		})
	}
	a.list.Update(a.vm.Rows())
	if a.pages.Current() == pageThread {
		a.thread.Update(a.vm.Thread())
	}
	a.notes.Update(a.vm.Notifications())
	a.renderFlash()
}

func (a *App) renderFlash() {
	a.flashBar.Update(a.flash.Current())
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	a.info.Update(&ui.SessionData{Session: a.session, Channel: "CONNECTING"})
	go a.refreshLoop()
	go a.vm.Watch(a.ctx, a.onEvent)
	a.requestRefresh()
	return a.app.Run()
}

// Stop closes the open conversation and shuts down the TUI.
func (a *App) Stop() {
	a.vm.CloseThread()
	a.cancel()
	a.app.Stop()
}
