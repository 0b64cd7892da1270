package tui

import (
	"fmt"
	"strings"

	"github.com/bondly/bondly/internal/tui/model"
)

// Command represents a parsed ':' command.
type Command struct {
	Name string
	Args string
}

var aliases = map[string]string{
	"q": "quit", "h": "help", "o": "open", "chat": "open",
	"s": "search", "n": "notifications", "f": "friends",
}

// ParseCommand parses a command string without the leading ':'.
func ParseCommand(input string) Command {
	name, args, _ := strings.Cut(strings.TrimSpace(input), " ")
	name = strings.ToLower(name)
	if full, ok := aliases[name]; ok {
		name = full
	}
	return Command{Name: name, Args: strings.TrimSpace(args)}
}

// Target parses the argument of :open, where "#id" names a channel.
func (c Command) Target() (model.Target, error) {
	if c.Args == "" || strings.ContainsAny(c.Args, " \t") {
		return model.Target{}, fmt.Errorf("usage: :%s <user-id|#channel>", c.Name)
	}
	if id, ok := strings.CutPrefix(c.Args, "#"); ok {
		if id == "" {
			return model.Target{}, fmt.Errorf("usage: :%s <user-id|#channel>", c.Name)
		}
		return model.Target{Channel: id}, nil
	}
	return model.Target{Counterpart: c.Args}, nil
}
