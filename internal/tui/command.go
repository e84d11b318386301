package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandRestart
	CommandQuit
	CommandHelp
)

// Command is one parsed line of terminal input.
type Command struct {
	Kind     CommandKind
	Row, Col int
}

var ErrUnknownCommand = errors.New("unknown command")

const helpText = `Enter a cell number 1-9 (left to right, top to bottom) or "row col" (0-2).
  r  restart the game
  h  show this help
  q  quit`

// ParseCommand reads a single input line. Coordinates are not range
// checked beyond the keypad form; the game rejects out-of-range moves.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	switch len(fields) {
	case 1:
		switch fields[0] {
		case "q", "quit", "exit":
			return Command{Kind: CommandQuit}, nil
		case "r", "restart":
			return Command{Kind: CommandRestart}, nil
		case "h", "help", "?":
			return Command{Kind: CommandHelp}, nil
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
		}
		if n < 1 || n > 9 {
			return Command{}, fmt.Errorf("%w: cells are numbered 1-9", ErrUnknownCommand)
		}
		return Command{Kind: CommandMove, Row: (n - 1) / 3, Col: (n - 1) % 3}, nil
	case 2:
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
		}
		return Command{Kind: CommandMove, Row: row, Col: col}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}
