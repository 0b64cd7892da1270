package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	apiv1 "github.com/bondly/bondly/internal/apiv1"
	"github.com/bondly/bondly/internal/session"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const callTimeout = 20 * time.Second

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Usage = printUsage
	flag.Parse()

	sessionName := session.Resolve(*sessionFlag)
	if err := session.ValidateName(sessionName); err != nil {
		fatalf("%v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	// Commands that do not need the daemon.
	if args[0] == "sessions" {
		cmdSessions(*jsonFlag)
		return
	}

	c, err := apiv1.NewClient(session.SocketPath(sessionName))
	if err != nil {
		fatalf("cannot connect to daemon for session %q: %v", sessionName, err)
	}
	defer func() { _ = c.Close() }()

	if args[0] == "watch" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		cmdWatch(ctx, c, args[1:], *jsonFlag)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	cli := &cli{c: c, session: sessionName, json: *jsonFlag}
	switch args[0] {
	case "status":
		cli.status(ctx)
	case "whoami":
		cli.whoami(ctx, args[1:])
	case "friends":
		cli.friends(ctx)
	case "suggestions":
		cli.suggestions(ctx)
	case "add":
		cli.add(ctx, args[1:])
	case "remove":
		cli.remove(ctx, args[1:])
	case "chats":
		cli.chats(ctx)
	case "messages":
		cli.messages(ctx, args[1:])
	case "send":
		cli.send(ctx, args[1:])
	case "retry":
		cli.retry(ctx, args[1:])
	case "open":
		cli.open(ctx, args[1:])
	case "search":
		cli.search(ctx, args[1:])
	case "notifications":
		cli.notifications(ctx, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: bondlyctl [--session <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                       Show daemon and channel status")
	fmt.Fprintln(os.Stderr, "  whoami [--qr]                Show the signed-in user")
	fmt.Fprintln(os.Stderr, "  sessions                     List local sessions")
	fmt.Fprintln(os.Stderr, "  friends                      List friends with presence and unread counts")
	fmt.Fprintln(os.Stderr, "  suggestions                  List people you may know")
	fmt.Fprintln(os.Stderr, "  add <user-id>                Add a friend")
	fmt.Fprintln(os.Stderr, "  remove <user-id>             Remove a friend")
	fmt.Fprintln(os.Stderr, "  chats                        List conversations")
	fmt.Fprintln(os.Stderr, "  messages <who> [limit]       Show a conversation (#id for a channel)")
	fmt.Fprintln(os.Stderr, "  send <who> <text...>         Send a message")
	fmt.Fprintln(os.Stderr, "  retry <local-id>             Retry a failed send")
	fmt.Fprintln(os.Stderr, "  open <who>                   Mark a conversation read")
	fmt.Fprintln(os.Stderr, "  search <query>               Search cached messages")
	fmt.Fprintln(os.Stderr, "  notifications [read <id>|read-all|dismiss <id>]")
	fmt.Fprintln(os.Stderr, "  watch [prefix...]            Stream daemon events")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func outputJSON(v any) {
	if m, ok := v.(proto.Message); ok {
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
			return
		}
		fmt.Println(string(b))
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}
