package game

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is matched by every rejected move; the more specific
// errors below wrap it.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrOutOfRange   = fmt.Errorf("%w: position out of range", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell already occupied", ErrInvalidMove)
	ErrGameFinished = fmt.Errorf("%w: game already finished", ErrInvalidMove)
	ErrNotYourTurn  = fmt.Errorf("%w: not your turn", ErrInvalidMove)
)
