package model

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	apiv1 "github.com/bondly/bondly/internal/apiv1"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Row is one entry of the conversation list: a friend or a channel.
type Row struct {
	Target   Target
	Name     string
	Presence string
	Online   bool
	Unread   int
	Failed   int
	Last     *bondlyv1.Message
}

// Thread is the open conversation.
type Thread struct {
	Target   Target
	Key      string
	Title    string
	Messages []*bondlyv1.Message
}

// ViewModel caches daemon state for the views. Every method is safe to call
// from a background goroutine.
type ViewModel struct {
	mu sync.RWMutex

	client        *apiv1.Client
	status        *bondlyv1.GetStatusResponse
	rows          []Row
	thread        *Thread
	stopView      context.CancelFunc
	notifications []*bondlyv1.Notification
	unreadNotes   int
}

// NewViewModel creates a new view model connected to the daemon client.
func NewViewModel(c *apiv1.Client) *ViewModel {
	return &ViewModel{client: c}
}

// LoadStatus fetches the daemon status.
func (vm *ViewModel) LoadStatus(ctx context.Context) error {
	resp, err := vm.client.Session.GetStatus(ctx, &bondlyv1.GetStatusRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.status = resp
	vm.mu.Unlock()
	return nil
}

// LoadRows refreshes the conversation list from friends and conversations.
func (vm *ViewModel) LoadRows(ctx context.Context) error {
	friends, err := vm.client.Contact.ListFriends(ctx, &bondlyv1.ListContactsRequest{})
	if err != nil {
		return err
	}
	convs, err := vm.client.Message.ListConversations(ctx, &bondlyv1.ListConversationsRequest{})
	if err != nil {
		return err
	}
	rows := BuildRows(friends.Contacts, convs.Conversations)
	vm.mu.Lock()
	vm.rows = rows
	vm.mu.Unlock()
	return nil
}

// BuildRows merges friends with conversation summaries. Friends come first,
// ordered by latest activity then name, followed by channels.
func BuildRows(friends []*bondlyv1.Contact, convs []*bondlyv1.Conversation) []Row {
	byPeer := make(map[string]*bondlyv1.Conversation, len(convs))
	var rows, channels []Row
	for _, c := range convs {
		if c.Counterpart != "" {
			byPeer[c.Counterpart] = c
			continue
		}
		channels = append(channels, Row{
			Target: Target{Channel: strings.TrimPrefix(c.Key, "ch:")},
			Name:   c.Title,
			Unread: int(c.Unread),
			Failed: int(c.Failed),
			Last:   c.Last,
		})
	}
	for _, f := range friends {
		r := Row{
			Target:   Target{Counterpart: f.Id},
			Name:     f.DisplayName,
			Presence: f.Presence,
			Online:   f.Online,
			Unread:   int(f.Unread),
		}
		if c, ok := byPeer[f.Id]; ok {
			r.Last = c.Last
			r.Failed = int(c.Failed)
		}
		rows = append(rows, r)
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(b.Last.GetCreatedAtMs(), a.Last.GetCreatedAtMs()); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return append(rows, channels...)
}

// LoadNotifications refreshes the notification center.
func (vm *ViewModel) LoadNotifications(ctx context.Context) error {
	resp, err := vm.client.Notification.ListNotifications(ctx, &bondlyv1.ListNotificationsRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.notifications = resp.Notifications
	vm.unreadNotes = int(resp.Unread)
	vm.mu.Unlock()
	return nil
}

// Refresh reloads everything the list screen shows.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	return errors.Join(vm.LoadStatus(ctx), vm.LoadRows(ctx), vm.LoadNotifications(ctx))
}

// OpenThread opens a conversation, which marks it read, and loads its
// messages. The daemon keeps the conversation open until CloseThread or
// until this client goes away.
func (vm *ViewModel) OpenThread(ctx context.Context, t Target) error {
	viewCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stopWaiting := context.AfterFunc(ctx, cancel)
	stream, err := vm.client.Message.ViewConversation(viewCtx, &bondlyv1.OpenConversationRequest{Target: t.Proto()})
	if err == nil {
		_, err = stream.Recv()
	}
	stopWaiting()
	if err != nil {
		cancel()
		return err
	}
	go func() {
		for {
			if _, err := stream.Recv(); err != nil {
				return
			}
		}
	}()

	vm.mu.Lock()
	if vm.stopView != nil {
		vm.stopView()
	}
	vm.stopView = cancel
	vm.mu.Unlock()
	if err := vm.loadThread(ctx, t); err != nil {
		vm.CloseThread()
		return err
	}
	return nil
}

// ReloadThread refetches the open conversation, if any.
func (vm *ViewModel) ReloadThread(ctx context.Context) error {
	th := vm.Thread()
	if th == nil {
		return nil
	}
	return vm.loadThread(ctx, th.Target)
}

func (vm *ViewModel) loadThread(ctx context.Context, t Target) error {
	resp, err := vm.client.Message.GetConversation(ctx, &bondlyv1.GetConversationRequest{Target: t.Proto()})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.thread = &Thread{Target: t, Key: resp.Key, Title: resp.Title, Messages: resp.Messages}
	vm.mu.Unlock()
	return nil
}

// CloseThread ends the view stream, which tells the daemon the
// conversation is no longer visible.
func (vm *ViewModel) CloseThread() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.thread = nil
	if vm.stopView != nil {
		vm.stopView()
		vm.stopView = nil
	}
}

// Send queues text for the open conversation. The reply carries the
// optimistic entry; confirmation arrives as an event.
func (vm *ViewModel) Send(ctx context.Context, text string) (*bondlyv1.Message, error) {
	th := vm.Thread()
	if th == nil {
		return nil, errors.New("no conversation open")
	}
	resp, err := vm.client.Message.SendText(ctx, &bondlyv1.SendTextRequest{Target: th.Target.Proto(), Body: text})
	if err != nil {
		return nil, err
	}
	return resp.Message, vm.loadThread(ctx, th.Target)
}

// RetryLastFailed retries the newest failed message in the open thread.
func (vm *ViewModel) RetryLastFailed(ctx context.Context) (bool, error) {
	th := vm.Thread()
	if th == nil {
		return false, nil
	}
	localID := LastFailed(th.Messages)
	if localID == "" {
		return false, nil
	}
	if _, err := vm.client.Message.RetrySend(ctx, &bondlyv1.RetrySendRequest{LocalId: localID}); err != nil {
		return true, err
	}
	return true, vm.loadThread(ctx, th.Target)
}

// LastFailed returns the local id of the newest failed entry.
func LastFailed(msgs []*bondlyv1.Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].GetState() == "failed" {
			return msgs[i].GetLocalId()
		}
	}
	return ""
}

// Search runs a message search across all cached conversations.
func (vm *ViewModel) Search(ctx context.Context, query string) ([]*bondlyv1.SearchResult, error) {
	resp, err := vm.client.Message.SearchMessages(ctx, &bondlyv1.SearchMessagesRequest{Query: query})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// AddFriend adds id as a friend and returns the resulting contact.
func (vm *ViewModel) AddFriend(ctx context.Context, id string) (*bondlyv1.Contact, error) {
	resp, err := vm.client.Contact.AddFriend(ctx, &bondlyv1.ContactRequest{ContactId: id})
	if err != nil {
		return nil, err
	}
	return resp.Contact, nil
}

// RemoveFriend removes id from the friend list.
func (vm *ViewModel) RemoveFriend(ctx context.Context, id string) error {
	_, err := vm.client.Contact.RemoveFriend(ctx, &bondlyv1.ContactRequest{ContactId: id})
	return err
}

// MarkAllNotificationsRead clears the notification badge.
func (vm *ViewModel) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	resp, err := vm.client.Notification.MarkAllNotificationsRead(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, err
	}
	return int(resp.Marked), nil
}

// DismissNotification removes one notification.
func (vm *ViewModel) DismissNotification(ctx context.Context, id string) error {
	_, err := vm.client.Notification.DismissNotification(ctx, &bondlyv1.NotificationRequest{Id: id})
	return err
}

// Watch streams daemon events to fn until ctx ends, reopening the stream
// after errors.
func (vm *ViewModel) Watch(ctx context.Context, fn func(*bondlyv1.Event)) {
	for ctx.Err() == nil {
		stream, err := vm.client.Message.WatchEvents(ctx, &bondlyv1.WatchEventsRequest{})
		for err == nil {
			var evt *bondlyv1.Event
			if evt, err = stream.Recv(); err == nil {
				fn(evt)
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

// Status returns the last fetched daemon status.
func (vm *ViewModel) Status() *bondlyv1.GetStatusResponse {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.status
}

// Rows returns a snapshot of the conversation list.
func (vm *ViewModel) Rows() []Row {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.rows
}

// Thread returns the open conversation, or nil.
func (vm *ViewModel) Thread() *Thread {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.thread
}

// Notifications returns the notification list and its unread count.
func (vm *ViewModel) Notifications() ([]*bondlyv1.Notification, int) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.notifications, vm.unreadNotes
}
