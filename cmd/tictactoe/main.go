package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/bot"
	"ctchen222/Tic-Tac-Toe-Solo/internal/config"
	"ctchen222/Tic-Tac-Toe-Solo/internal/logger"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"ctchen222/Tic-Tac-Toe-Solo/internal/tui"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/muesli/termenv"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The board owns stdout; logs go to stderr.
	logger.Init(logger.Options{
		Level:  cfg.SlogLevel(),
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})

	out := termenv.NewOutput(os.Stdout)
	sess := session.New(ctx, uuid.NewString(), bot.NewRandomChooser(nil))

	if err := tui.Run(ctx, os.Stdin, out, sess); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}
