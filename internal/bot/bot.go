package bot

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"errors"
	"math/rand/v2"
)

// ErrNoLegalMove is returned when asked to move on a full board.
var ErrNoLegalMove = errors.New("no legal move")

// Random is the source of randomness used to pick a move. *rand.Rand from
// math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

// globalRandom uses the math/rand/v2 top-level generator, which is safe for
// concurrent use.
type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// RandomChooser picks the computer's move uniformly among the empty cells.
// It implements the session.MoveChooser interface.
type RandomChooser struct {
	random Random
}

// NewRandomChooser creates a chooser drawing from rnd. A nil rnd selects the
// process-wide generator. A non-nil rnd is used as is and must not be shared
// between goroutines unless it is itself safe for concurrent use.
func NewRandomChooser(rnd Random) *RandomChooser {
	if rnd == nil {
		rnd = globalRandom{}
	}
	return &RandomChooser{random: rnd}
}

// ChooseMove returns the coordinates of an empty cell.
func (c *RandomChooser) ChooseMove(board game.Board) (row, col int, err error) {
	return randomMove(board, c.random)
}

// RandomMove picks a uniformly random empty cell using the process-wide
// generator.
func RandomMove(board game.Board) (row, col int, err error) {
	return randomMove(board, globalRandom{})
}
