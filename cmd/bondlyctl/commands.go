package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	apiv1 "github.com/bondly/bondly/internal/apiv1"
	"github.com/bondly/bondly/internal/lock"
	"github.com/bondly/bondly/internal/session"
	"github.com/skip2/go-qrcode"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type cli struct {
	c       *apiv1.Client
	session string
	json    bool
}

// fail reports an RPC error. An unreachable daemon is explained using the
// session lock.
func (x *cli) fail(err error) {
	if status.Code(err) == codes.Unavailable && strings.Contains(err.Error(), "connect") {
		if holder, held := lock.Inspect(session.Dir(x.session)); held {
			fatalf("daemon for session %q (pid %d) is not responding", x.session, holder.PID)
		}
		fatalf("daemon for session %q is not running; start it with: bondlyd --session %s", x.session, x.session)
	}
	if st, ok := status.FromError(err); ok {
		fatalf("%s", st.Message())
	}
	fatalf("%v", err)
}

// target parses "#channel" or a user id.
func target(arg string) *bondlyv1.Target {
	if id, ok := strings.CutPrefix(arg, "#"); ok {
		return &bondlyv1.Target{Channel: id}
	}
	return &bondlyv1.Target{Counterpart: arg}
}

func need(args []string, n int, usage string) {
	if len(args) < n {
		fmt.Fprintln(os.Stderr, "usage: bondlyctl "+usage)
		os.Exit(1)
	}
}

func (x *cli) status(ctx context.Context) {
	resp, err := x.c.Session.GetStatus(ctx, &bondlyv1.GetStatusRequest{})
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(resp)
		return
	}
	fmt.Printf("Session:        %s\n", resp.Session)
	fmt.Printf("User:           %s (%s)\n", resp.DisplayName, resp.UserId)
	fmt.Printf("Backend:        %s\n", resp.Backend)
	fmt.Printf("Channel:        %s\n", resp.ChannelState)
	fmt.Printf("Uptime:         %s\n", (time.Duration(resp.UptimeMs) * time.Millisecond).Round(time.Second))
	fmt.Printf("Friends:        %d\n", resp.Friends)
	fmt.Printf("Conversations:  %d (%d unread)\n", resp.Conversations, resp.Unread)
	fmt.Printf("Notifications:  %d unread\n", resp.Notifications)
	if resp.PendingReads > 0 {
		fmt.Printf("Pending reads:  %d\n", resp.PendingReads)
	}
}

func (x *cli) whoami(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	qr := fs.Bool("qr", false, "print the user id as a QR code")
	_ = fs.Parse(args)

	resp, err := x.c.Session.GetStatus(ctx, &bondlyv1.GetStatusRequest{})
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(map[string]string{"user_id": resp.UserId, "display_name": resp.DisplayName})
		return
	}
	fmt.Printf("%s (%s)\n", resp.DisplayName, resp.UserId)
	if *qr {
		code, err := qrcode.New("bondly:user:"+resp.UserId, qrcode.Medium)
		if err != nil {
			fatalf("encode qr: %v", err)
		}
		fmt.Print(code.ToSmallString(false))
	}
}

func cmdSessions(jsonOut bool) {
	names, err := session.List()
	if err != nil {
		fatalf("list sessions: %v", err)
	}
	type entry struct {
		Name    string `json:"name"`
		Running bool   `json:"running"`
		PID     int    `json:"pid,omitempty"`
	}
	out := make([]entry, 0, len(names))
	for _, n := range names {
		holder, held := lock.Inspect(session.Dir(n))
		e := entry{Name: n, Running: held}
		if held {
			e.PID = holder.PID
		}
		out = append(out, e)
	}
	if jsonOut {
		outputJSON(out)
		return
	}
	if len(out) == 0 {
		fmt.Println("No sessions found.")
		return
	}
	for _, e := range out {
		state := "stopped"
		if e.Running {
			state = fmt.Sprintf("running (pid %d)", e.PID)
		}
		fmt.Printf("%-20s %s\n", e.Name, state)
	}
}

func (x *cli) friends(ctx context.Context) {
	resp, err := x.c.Contact.ListFriends(ctx, &bondlyv1.ListContactsRequest{})
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(resp)
		return
	}
	if len(resp.Contacts) == 0 {
		fmt.Println("No friends yet. Try: bondlyctl suggestions")
		return
	}
	for _, c := range resp.Contacts {
		badge := ""
		if c.Unread > 0 {
			badge = fmt.Sprintf("  [%d]", c.Unread)
		}
		fmt.Printf("%-12s %-20s %s%s\n", c.Id, c.DisplayName, c.Presence, badge)
	}
}

func (x *cli) suggestions(ctx context.Context) {
	resp, err := x.c.Contact.ListSuggestions(ctx, &bondlyv1.ListContactsRequest{})
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(resp)
		return
	}
	for _, c := range resp.Contacts {
		fmt.Printf("%-12s %-20s %s\n", c.Id, c.DisplayName, c.Presence)
	}
}

func (x *cli) add(ctx context.Context, args []string) {
	need(args, 1, "add <user-id>")
	resp, err := x.c.Contact.AddFriend(ctx, &bondlyv1.ContactRequest{ContactId: args[0]})
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(resp)
		return
	}
	fmt.Printf("%s is now your friend\n", resp.Contact.DisplayName)
}

func (x *cli) remove(ctx context.Context, args []string) {
	need(args, 1, "remove <user-id>")
	if _, err := x.c.Contact.RemoveFriend(ctx, &bondlyv1.ContactRequest{ContactId: args[0]}); err != nil {
		x.fail(err)
	}
	if !x.json {
		fmt.Println("Removed.")
	}
}

func (x *cli) chats(ctx context.Context) {
	resp, err := x.c.Message.ListConversations(ctx, &bondlyv1.ListConversationsRequest{})
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(resp)
		return
	}
	if len(resp.Conversations) == 0 {
		fmt.Println("No conversations.")
		return
	}
	for _, c := range resp.Conversations {
		who := c.Counterpart
		if who == "" {
			who = c.Title
		}
		badge := ""
		if c.Unread > 0 {
			badge = fmt.Sprintf(" [%d]", c.Unread)
		}
		fmt.Printf("%-12s %-20s %s %s%s\n", who, c.Title, clock(c.GetLast().GetCreatedAtMs()), preview(c.GetLast().GetBody()), badge)
	}
}

func (x *cli) messages(ctx context.Context, args []string) {
	need(args, 1, "messages <who> [limit]")
	req := &bondlyv1.GetConversationRequest{Target: target(args[0])}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fatalf("invalid limit %q", args[1])
		}
		req.Limit = int32(n)
	}
	resp, err := x.c.Message.GetConversation(ctx, req)
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(resp)
		return
	}
	fmt.Printf("%s\n\n", resp.Title)
	for _, m := range resp.Messages {
		printMessage(m)
	}
}

func (x *cli) send(ctx context.Context, args []string) {
	need(args, 2, "send <who> <text...>")
	resp, err := x.c.Message.SendText(ctx, &bondlyv1.SendTextRequest{
		Target: target(args[0]),
		Body:   strings.Join(args[1:], " "),
		Wait:   true,
	})
	if err != nil {
		x.fail(err)
	}
	x.reportSend(resp.Message)
}

func (x *cli) retry(ctx context.Context, args []string) {
	need(args, 1, "retry <local-id>")
	resp, err := x.c.Message.RetrySend(ctx, &bondlyv1.RetrySendRequest{LocalId: args[0], Wait: true})
	if err != nil {
		x.fail(err)
	}
	x.reportSend(resp.Message)
}

func (x *cli) reportSend(m *bondlyv1.Message) {
	if x.json {
		outputJSON(m)
	}
	switch m.State {
	case "failed":
		if !x.json {
			fmt.Fprintf(os.Stderr, "send failed: %s\nretry with: bondlyctl retry %s\n", m.Error, m.LocalId)
		}
		os.Exit(1)
	case "pending":
		if !x.json {
			fmt.Printf("queued %s (still sending)\n", m.LocalId)
		}
	default:
		if !x.json {
			fmt.Printf("sent %s\n", m.LocalId)
		}
	}
}

func (x *cli) open(ctx context.Context, args []string) {
	need(args, 1, "open <who>")
	resp, err := x.c.Message.OpenConversation(ctx, &bondlyv1.OpenConversationRequest{Target: target(args[0])})
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(resp)
		return
	}
	fmt.Printf("marked %d message(s) read\n", resp.MarkedRead)
}

func (x *cli) search(ctx context.Context, args []string) {
	need(args, 1, "search <query>")
	resp, err := x.c.Message.SearchMessages(ctx, &bondlyv1.SearchMessagesRequest{Query: strings.Join(args, " ")})
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(resp)
		return
	}
	if len(resp.Results) == 0 {
		fmt.Println("No matches.")
		return
	}
	for _, r := range resp.Results {
		fmt.Printf("%s  %-12s %s\n", clock(r.GetMessage().GetCreatedAtMs()), r.GetMessage().GetSenderId(), r.Snippet)
	}
}

func (x *cli) notifications(ctx context.Context, args []string) {
	n := x.c.Notification
	if len(args) > 0 {
		var err error
		switch args[0] {
		case "read":
			need(args, 2, "notifications read <id>")
			_, err = n.MarkNotificationRead(ctx, &bondlyv1.NotificationRequest{Id: args[1]})
		case "read-all":
			var resp *bondlyv1.MarkAllNotificationsReadResponse
			resp, err = n.MarkAllNotificationsRead(ctx, &emptypb.Empty{})
			if err == nil && !x.json {
				fmt.Printf("marked %d notification(s) read\n", resp.Marked)
			}
		case "dismiss":
			need(args, 2, "notifications dismiss <id>")
			_, err = n.DismissNotification(ctx, &bondlyv1.NotificationRequest{Id: args[1]})
		default:
			fatalf("unknown notifications subcommand: %s", args[0])
		}
		if err != nil {
			x.fail(err)
		}
		return
	}

	resp, err := n.ListNotifications(ctx, &bondlyv1.ListNotificationsRequest{})
	if err != nil {
		x.fail(err)
	}
	if x.json {
		outputJSON(resp)
		return
	}
	if len(resp.Notifications) == 0 {
		fmt.Println("No notifications.")
		return
	}
	for _, item := range resp.Notifications {
		mark := " "
		if !item.Read {
			mark = "*"
		}
		line := item.Title
		if item.Summary != "" {
			line += ": " + item.Summary
		}
		fmt.Printf("%s %s  %-8s %s  (%s)\n", mark, clock(item.CreatedAtMs), item.Type, line, item.Id)
	}
}

func cmdWatch(ctx context.Context, c *apiv1.Client, prefixes []string, jsonOut bool) {
	stream, err := c.Message.WatchEvents(ctx, &bondlyv1.WatchEventsRequest{Prefixes: prefixes})
	if err != nil {
		fatalf("watch: %v", err)
	}
	for {
		evt, err := stream.Recv()
		if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
			return
		}
		if err != nil {
			fatalf("watch: %v", err)
		}
		if jsonOut {
			outputJSON(evt)
			continue
		}
		fmt.Printf("%s  %-24s %s\n", clock(evt.OccurredAtMs), evt.Kind, payloadText(evt.GetPayload()))
	}
}

func printMessage(m *bondlyv1.Message) {
	who := m.SenderId
	if m.FromMe {
		who = "you"
	}
	marker := ""
	switch m.State {
	case "pending":
		marker = "  (sending)"
	case "failed":
		marker = fmt.Sprintf("  (failed: %s; retry %s)", m.Error, m.LocalId)
	}
	fmt.Printf("%s  %-10s %s%s\n", clock(m.CreatedAtMs), who, m.Body, marker)
}

func clock(ms int64) string {
	if ms == 0 {
		return "     "
	}
	return time.UnixMilli(ms).Local().Format("15:04")
}

func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > 40 {
		return string(r[:39]) + "…"
	}
	return s
}

func payloadText(p *structpb.Struct) string {
	if p == nil {
		return ""
	}
	b, err := protojson.Marshal(p)
	if err != nil {
		return p.String()
	}
	return string(b)
}
