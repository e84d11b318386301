package tui

import (
	"bufio"
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

const prompt = "> "

// Run plays sess in the terminal until the input ends, the player quits or
// ctx is cancelled. Each line is handled to completion, computer reply
// included, before the next one is read.
func Run(ctx context.Context, in io.Reader, out *termenv.Output, sess *session.Session) error {
	r := NewRenderer(out)
	r.Println(helpText)
	r.Draw(sess.State())

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.out.WriteString(prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		if scanner.Text() == "" {
			continue
		}

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			r.Notice(err.Error())
			continue
		}

		switch cmd.Kind {
		case CommandQuit:
			return nil
		case CommandHelp:
			r.Println(helpText)
		case CommandRestart:
			r.Draw(sess.Reset(ctx))
		case CommandMove:
			snap, err := sess.ApplyHumanMove(ctx, cmd.Row, cmd.Col)
			if err != nil {
				slog.DebugContext(ctx, "move rejected", "row", cmd.Row, "col", cmd.Col, "error", err)
				r.Notice(err.Error())
				continue
			}
			r.Draw(snap)
			if snap.IsOver() {
				r.Println(`Press "r" to play again or "q" to quit.`)
			}
		}
	}
}
