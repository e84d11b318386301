package session

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/telemetry"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("session")

// MoveChooser picks the computer's move for the given board.
type MoveChooser interface {
	ChooseMove(board game.Board) (row, col int, err error)
}

// Session is one human-versus-computer game. The human plays X, the
// computer answers as O within the same call, so callers never observe a
// state where the computer still has to move.
type Session struct {
	ID string

	mu         sync.Mutex
	game       *game.Game
	chooser    MoveChooser
	lastActive time.Time
	now        func() time.Time
}

// New creates a session holding a fresh game.
func New(ctx context.Context, id string, chooser MoveChooser) *Session {
	s := &Session{
		ID:      id,
		game:    game.NewGame(),
		chooser: chooser,
		now:     time.Now,
	}
	s.lastActive = s.now()

	telemetry.RecordGameStarted(ctx)
	slog.InfoContext(ctx, "game started", "game.id", id)
	return s
}

// ApplyHumanMove places X at (row, col) and, when the game goes on, lets the
// computer reply. An invalid move returns an error matching
// game.ErrInvalidMove together with the unchanged state.
func (s *Session) ApplyHumanMove(ctx context.Context, row, col int) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "session.ApplyHumanMove", trace.WithAttributes(
		attribute.String("game.id", s.ID),
		attribute.Int("move.row", row),
		attribute.Int("move.col", col),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = s.now()

	if err := s.game.Place(row, col, game.PlayerX); err != nil {
		slog.WarnContext(ctx, "invalid move from player", "game.id", s.ID, "move.row", row, "move.col", col, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		telemetry.RecordMoveRejected(ctx, rejectReason(err))
		return s.snapshotLocked(), err
	}
	span.SetAttributes(attribute.Bool("move.valid", true))

	if !s.game.IsOver() && s.game.CurrentTurn == game.PlayerO {
		if err := s.computerMoveLocked(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Computer move failed")
			return s.snapshotLocked(), err
		}
	}

	if s.game.IsOver() {
		s.recordFinishedLocked(ctx)
	}
	return s.snapshotLocked(), nil
}

// computerMoveLocked asks the chooser for O's move and applies it.
func (s *Session) computerMoveLocked(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "session.computerMove", trace.WithAttributes(
		attribute.String("game.id", s.ID),
	))
	defer span.End()

	row, col, err := s.chooser.ChooseMove(s.game.Board)
	if err != nil {
		slog.ErrorContext(ctx, "computer could not choose a move", "game.id", s.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "No move chosen")
		return fmt.Errorf("computer move: %w", err)
	}
	span.SetAttributes(attribute.Int("move.row", row), attribute.Int("move.col", col))

	if err := s.game.Place(row, col, game.PlayerO); err != nil {
		slog.ErrorContext(ctx, "computer chose an illegal move", "game.id", s.ID, "move.row", row, "move.col", col, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Illegal computer move")
		return fmt.Errorf("computer move: %w", err)
	}

	slog.DebugContext(ctx, "computer moved", "game.id", s.ID, "move.row", row, "move.col", col)
	return nil
}

func (s *Session) recordFinishedLocked(ctx context.Context) {
	outcome := "draw"
	switch s.game.Winner {
	case game.PlayerX:
		outcome = "x"
	case game.PlayerO:
		outcome = "o"
	}
	telemetry.RecordGameFinished(ctx, outcome)
	slog.InfoContext(ctx, "game finished", "game.id", s.ID, "game.outcome", outcome)
}

// State returns a read-only snapshot for rendering.
func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Reset starts the game over: empty board, X to move.
func (s *Session) Reset(ctx context.Context) Snapshot {
	ctx, span := tracer.Start(ctx, "session.Reset", trace.WithAttributes(
		attribute.String("game.id", s.ID),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.Reset()
	s.lastActive = s.now()

	telemetry.RecordGameStarted(ctx)
	slog.InfoContext(ctx, "game restarted", "game.id", s.ID)
	return s.snapshotLocked()
}

// LastActive is the time of the last move or reset.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) snapshotLocked() Snapshot {
	return NewSnapshot(s.ID, s.game)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, game.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, game.ErrCellOccupied):
		return "occupied"
	case errors.Is(err, game.ErrGameFinished):
		return "finished"
	case errors.Is(err, game.ErrNotYourTurn):
		return "not_your_turn"
	default:
		return "unknown"
	}
}
