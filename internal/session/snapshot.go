package session

import "ctchen222/Tic-Tac-Toe-Solo/internal/game"

// Snapshot is a detached copy of a session's game, safe to hand to any
// renderer.
type Snapshot struct {
	ID          string              `json:"id"`
	Board       [][]game.PlayerMark `json:"board"`
	Next        game.PlayerMark     `json:"next"`
	Phase       game.Phase          `json:"phase"`
	Winner      game.PlayerMark     `json:"winner,omitempty"`
	WinningLine []game.Cell         `json:"winning_line,omitempty"`
	Status      string              `json:"status"`
}

func NewSnapshot(id string, g *game.Game) Snapshot {
	snap := Snapshot{
		ID:     id,
		Board:  g.BoardAsSlice(),
		Next:   g.CurrentTurn,
		Phase:  g.Phase,
		Winner: g.Winner,
		Status: g.Status(),
	}
	if line, ok := game.WinningLine(g.Board); ok {
		snap.WinningLine = line[:]
	}
	return snap
}

// Grid returns the board back as a fixed-size array.
func (s Snapshot) Grid() game.Board {
	var b game.Board
	for r := range s.Board {
		copy(b[r][:], s.Board[r])
	}
	return b
}

// IsOver reports whether the snapshot shows a finished game.
func (s Snapshot) IsOver() bool {
	return s.Phase != game.InProgress
}

// InWinningLine reports whether (row, col) belongs to the completed line.
func (s Snapshot) InWinningLine(row, col int) bool {
	for _, c := range s.WinningLine {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}
