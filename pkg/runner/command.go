package runner

import (
	"errors"
	"fmt"
	"strings"
)

// CommandKind identifies what a command line asks the runner to do.
type CommandKind string

const (
	CommandNext    CommandKind = "next"
	CommandReset   CommandKind = "reset"
	CommandRestart CommandKind = "restart"
	CommandSet     CommandKind = "set"
	CommandHelp    CommandKind = "help"
	CommandQuit    CommandKind = "quit"
)

// Usage lists the accepted commands.
const Usage = "commands: <enter>|n|next, r|reset, restart, set <expression>, help, q|quit"

// ErrUnknownCommand is returned by ParseCommand for unrecognized input.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a parsed command line.
type Command struct {
	Kind CommandKind
	// Arg holds the expression of a set command.
	Arg string
}

// ParseCommand reads one command line. Keywords are case-insensitive and may be
// indented. The set argument is everything after the single space that follows
// the keyword, blanks included, since every character consumes a step.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimLeft(strings.TrimRight(line, "\r\n"), " \t")
	word, rest, _ := strings.Cut(line, " ")

	switch strings.ToLower(strings.TrimRight(word, "\t")) {
	case "", "n", "next":
		if strings.TrimSpace(rest) != "" {
			break
		}
		return Command{Kind: CommandNext}, nil
	case "r", "reset":
		return Command{Kind: CommandReset}, nil
	case "restart":
		return Command{Kind: CommandRestart}, nil
	case "set":
		return Command{Kind: CommandSet, Arg: rest}, nil
	case "h", "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}
