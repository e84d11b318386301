package hub

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// RunSweeper evicts idle sessions every interval until ctx is done.
func (h *Hub) RunSweeper(ctx context.Context, interval time.Duration) {
	if h.idleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "session sweeper started", "interval", interval, "idle_ttl", h.idleTTL)
	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopping")
			return
		case now := <-ticker.C:
			h.Sweep(ctx, now)
		}
	}
}

// Sweep removes every session whose last activity is older than the idle
// TTL as of now, and returns how many were removed.
func (h *Hub) Sweep(ctx context.Context, now time.Time) int {
	ctx, span := tracer.Start(ctx, "hub.Sweep")
	defer span.End()

	if h.idleTTL <= 0 {
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for id, s := range h.sessions {
		if now.Sub(s.LastActive()) > h.idleTTL {
			delete(h.sessions, id)
			removed++
			slog.InfoContext(ctx, "Game exceeded idle period. Removing.", "game.id", id)
		}
	}

	span.SetAttributes(
		attribute.Int("sessions.removed", removed),
		attribute.Int("sessions.remaining", len(h.sessions)),
	)
	return removed
}

