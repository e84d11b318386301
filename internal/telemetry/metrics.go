package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "ctchen222/Tic-Tac-Toe-Solo"

// Instruments are created against the global meter provider, which forwards
// to the SDK provider once InitOtel installs it.
var (
	meter = otel.Meter(instrumentationName)

	gamesStarted  = mustCounter("games.started", "Games started, including restarts.")
	gamesFinished = mustCounter("games.finished", "Games that reached a win or a draw.")
	movesRejected = mustCounter("moves.rejected", "Human moves rejected as invalid.")
)

func mustCounter(name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		otel.Handle(err)
	}
	return counter
}

// RecordGameStarted counts a new or restarted game.
func RecordGameStarted(ctx context.Context) {
	if gamesStarted != nil {
		gamesStarted.Add(ctx, 1)
	}
}

// RecordGameFinished counts a finished game by outcome ("x", "o", "draw").
func RecordGameFinished(ctx context.Context, outcome string) {
	if gamesFinished != nil {
		gamesFinished.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
}

// RecordMoveRejected counts a rejected human move by reason.
func RecordMoveRejected(ctx context.Context, reason string) {
	if movesRejected != nil {
		movesRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	}
}
