package game

import "fmt"

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// Phase is the terminal/non-terminal status of a game.
type Phase string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Game phases
	InProgress Phase = "in_progress"
	Won        Phase = "won"
	Draw       Phase = "draw"

	// Board boundaries
	Size      = 3
	BorderMin = 0
	BorderMax = Size - 1
)

// Board is the 3x3 grid, indexed [row][col].
type Board [Size][Size]PlayerMark

// Game holds the state of a single match. The human always plays X and
// moves first; the computer plays O.
type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Phase       Phase
	Winner      PlayerMark
}

func NewGame() *Game {
	return &Game{
		Board:       Board{},
		CurrentTurn: PlayerX,
		Phase:       InProgress,
		Winner:      None,
	}
}

// Place puts mark at (row, col). Nothing is mutated when the move is
// rejected. On success the phase is recomputed, and the turn passes to the
// other player only while the game is still in progress.
func (g *Game) Place(row, col int, mark PlayerMark) error {
	if g.Phase != InProgress {
		return ErrGameFinished
	}
	if row < BorderMin || row > BorderMax || col < BorderMin || col > BorderMax {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	if mark != g.CurrentTurn {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.CurrentTurn)
	}
	if g.Board[row][col] != None {
		return fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, row, col)
	}

	g.Board[row][col] = mark

	if winner := CheckWinner(g.Board); winner != None {
		g.Phase = Won
		g.Winner = winner
		return nil
	}
	if IsBoardFull(g.Board) {
		g.Phase = Draw
		return nil
	}

	g.CurrentTurn = mark.Opponent()
	return nil
}

// IsFull reports whether all nine cells are marked.
func (g *Game) IsFull() bool {
	return IsBoardFull(g.Board)
}

// IsOver reports whether the game reached a terminal phase.
func (g *Game) IsOver() bool {
	return g.Phase != InProgress
}

// Reset returns the game to the state produced by NewGame.
func (g *Game) Reset() {
	*g = *NewGame()
}

// BoardAsSlice converts the game board to a dynamic slice of slices, the
// shape used on the wire.
func (g *Game) BoardAsSlice() [][]PlayerMark {
	board := make([][]PlayerMark, Size)
	for i := range [Size]int{} {
		board[i] = make([]PlayerMark, Size)
		copy(board[i], g.Board[i][:])
	}
	return board
}

// Status is the human readable status line shown above the board.
func (g *Game) Status() string {
	switch g.Phase {
	case Won:
		return fmt.Sprintf("Player %s wins!", g.Winner)
	case Draw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("Player %s's Turn", g.CurrentTurn)
	}
}

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}
