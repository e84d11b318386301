package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Solo/internal/bot"
	"ctchen222/Tic-Tac-Toe-Solo/internal/config"
	"ctchen222/Tic-Tac-Toe-Solo/internal/hub"
	"ctchen222/Tic-Tac-Toe-Solo/internal/logger"
	"ctchen222/Tic-Tac-Toe-Solo/internal/server"
	"ctchen222/Tic-Tac-Toe-Solo/internal/telemetry"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", envOr("CONFIG_PATH", "config.yml"), "path to the YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry before the logger so the otel bridge has a provider
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(logger.Options{
		Level:  cfg.SlogLevel(),
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})

	// Create hub
	gameHub := hub.NewHub(bot.NewRandomChooser(nil), cfg.Session.IdleTTL)
	go gameHub.RunSweeper(ctx, cfg.Session.SweepInterval)

	// Create the Gin-based server
	srv := server.NewServer(gameHub, controller.NewGameController(gameHub))

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
	}

	go func() {
		slog.Info("http server started", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("ListenAndServe failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
