package bot

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

// randomMove samples from the explicit list of empty cells, so it always
// terminates after a single draw.
func randomMove(board game.Board, rnd Random) (row, col int, err error) {
	availableMoves := game.EmptyCells(board)
	if len(availableMoves) == 0 {
		return -1, -1, ErrNoLegalMove
	}

	move := availableMoves[rnd.IntN(len(availableMoves))]
	return move.Row, move.Col, nil
}
