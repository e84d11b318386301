package hub

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hub")

// ErrSessionNotFound is returned for unknown or evicted game IDs.
var ErrSessionNotFound = errors.New("game not found")

// Hub keeps every live game session, keyed by ID. Sessions are independent;
// the hub only guards its own map.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	chooser  session.MoveChooser
	idleTTL  time.Duration
}

// NewHub creates a hub whose sessions share chooser. The chooser must be
// safe for concurrent use. Sessions idle longer than idleTTL are evicted by
// the sweeper; a zero idleTTL disables eviction.
func NewHub(chooser session.MoveChooser, idleTTL time.Duration) *Hub {
	return &Hub{
		sessions: make(map[string]*session.Session),
		chooser:  chooser,
		idleTTL:  idleTTL,
	}
}

// Create starts a new game under a fresh ID.
func (h *Hub) Create(ctx context.Context) *session.Session {
	ctx, span := tracer.Start(ctx, "hub.Create")
	defer span.End()

	id := uuid.New().String()
	span.SetAttributes(attribute.String("game.id", id))

	s := session.New(ctx, id, h.chooser)

	h.mu.Lock()
	h.sessions[id] = s
	h.mu.Unlock()

	return s
}

// Get returns the session with the given ID.
func (h *Hub) Get(id string) (*session.Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove discards a session.
func (h *Hub) Remove(ctx context.Context, id string) error {
	_, span := tracer.Start(ctx, "hub.Remove", trace.WithAttributes(
		attribute.String("game.id", id),
	))
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(h.sessions, id)
	slog.InfoContext(ctx, "game removed", "game.id", id)
	return nil
}

// Len reports how many sessions are live.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
