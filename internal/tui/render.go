package tui

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ANSI palette indices.
const (
	colorRed   = "1"
	colorGreen = "2"
	colorBlue  = "4"
)

// Renderer draws boards and messages to a terminal. Colors degrade to
// plain text when the output profile is Ascii.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(out *termenv.Output) *Renderer {
	return &Renderer{out: out}
}

// Board renders the grid. Empty cells show their cell number, X is red,
// O is blue and the winning line sits on a green background.
func (r *Renderer) Board(snap session.Snapshot) string {
	var sb strings.Builder
	grid := snap.Grid()
	for row := range game.Size {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		cells := make([]string, 0, game.Size)
		for col := range game.Size {
			cells = append(cells, r.cell(snap, grid[row][col], row, col))
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) cell(snap session.Snapshot, mark game.PlayerMark, row, col int) string {
	text := " " + string(mark) + " "
	style := r.out.String(text)

	switch mark {
	case game.PlayerX:
		style = style.Foreground(r.out.Color(colorRed)).Bold()
	case game.PlayerO:
		style = style.Foreground(r.out.Color(colorBlue)).Bold()
	default:
		style = r.out.String(" " + strconv.Itoa(row*game.Size+col+1) + " ").Faint()
	}
	if snap.InWinningLine(row, col) {
		style = style.Background(r.out.Color(colorGreen))
	}
	return style.String()
}

// Status renders the status line, emphasized once the game is over.
func (r *Renderer) Status(snap session.Snapshot) string {
	style := r.out.String(snap.Status)
	if snap.IsOver() {
		style = style.Bold()
	}
	return style.String()
}

// Draw writes the board followed by its status line.
func (r *Renderer) Draw(snap session.Snapshot) {
	fmt.Fprintf(r.out, "\n%s\n%s\n", r.Board(snap), r.Status(snap))
}

// Notice writes a highlighted one-line message.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.out, r.out.String(msg).Foreground(r.out.Color(colorRed)).String())
}

// Println writes plain text.
func (r *Renderer) Println(msg string) {
	fmt.Fprintln(r.out, msg)
}
