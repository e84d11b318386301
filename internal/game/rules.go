package game

// Cell is a board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Line is a triple of cells that wins the game when uniformly marked.
type Line [Size]Cell

// Lines enumerates the eight winning lines: rows top to bottom, columns
// left to right, then the main and anti diagonals. CheckWinner and
// WinningLine report the first completed line in this order.
var Lines = func() []Line {
	lines := make([]Line, 0, 2*Size+2)
	for r := range [Size]int{} {
		lines = append(lines, Line{{r, 0}, {r, 1}, {r, 2}})
	}
	for c := range [Size]int{} {
		lines = append(lines, Line{{0, c}, {1, c}, {2, c}})
	}
	lines = append(lines,
		Line{{0, 0}, {1, 1}, {2, 2}},
		Line{{0, 2}, {1, 1}, {2, 0}},
	)
	return lines
}()

// CheckWinner returns the mark occupying the first completed line, or None.
// A full board without a completed line is a draw and also yields None.
func CheckWinner(board Board) PlayerMark {
	line, ok := WinningLine(board)
	if !ok {
		return None
	}
	return board.At(line[0])
}

// WinningLine returns the coordinates of the first completed line.
func WinningLine(board Board) (Line, bool) {
	for _, line := range Lines {
		first := board.At(line[0])
		if first != None && first == board.At(line[1]) && first == board.At(line[2]) {
			return line, true
		}
	}
	return Line{}, false
}

// IsBoardFull checks if no empty cell remains.
func IsBoardFull(board Board) bool {
	for r := range [Size]int{} {
		for c := range [Size]int{} {
			if board[r][c] == None {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists the unmarked cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for r, rowData := range board {
		for c, mark := range rowData {
			if mark == None {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// At returns the mark at cell.
func (b Board) At(cell Cell) PlayerMark {
	return b[cell.Row][cell.Col]
}

// Count returns how many cells hold mark.
func (b Board) Count(mark PlayerMark) int {
	n := 0
	for _, rowData := range b {
		for _, m := range rowData {
			if m == mark {
				n++
			}
		}
	}
	return n
}
