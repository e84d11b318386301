package bot

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom always returns the same index, clamped to n.
type fixedRandom int

func (f fixedRandom) IntN(n int) int {
	return min(int(f), n-1)
}

func TestRandomMove(t *testing.T) {
	t.Run("Only one spot left", func(t *testing.T) {
		board := game.Board{
			{game.PlayerX, game.PlayerO, game.PlayerX},
			{game.PlayerO, game.PlayerX, game.PlayerO},
			{game.PlayerX, game.None, game.PlayerO},
		}
		row, col, err := RandomMove(board)
		require.NoError(t, err)
		if row != 2 || col != 1 {
			t.Errorf("RandomMove should pick the only available spot (2,1), but got (%d, %d)", row, col)
		}
	})

	t.Run("Always an empty cell", func(t *testing.T) {
		board := game.Board{
			{game.PlayerX, game.None, game.None},
			{game.None, game.PlayerO, game.None},
			{game.None, game.None, game.PlayerX},
		}
		for i := 0; i < 200; i++ {
			row, col, err := RandomMove(board)
			require.NoError(t, err)
			if board[row][col] != game.None {
				t.Fatalf("RandomMove returned an occupied cell (%d, %d)", row, col)
			}
		}
	})

	t.Run("Full board", func(t *testing.T) {
		board := game.Board{
			{game.PlayerX, game.PlayerO, game.PlayerX},
			{game.PlayerO, game.PlayerX, game.PlayerO},
			{game.PlayerX, game.PlayerO, game.PlayerX},
		}
		row, col, err := RandomMove(board)
		assert.ErrorIs(t, err, ErrNoLegalMove)
		assert.Equal(t, -1, row)
		assert.Equal(t, -1, col)
	})
}

func TestRandomChooser_ChooseMove(t *testing.T) {
	board := game.Board{
		{game.PlayerX, game.None, game.PlayerO},
		{game.None, game.PlayerX, game.None},
		{game.PlayerO, game.None, game.None},
	}
	// Empty cells in row-major order: (0,1) (1,0) (1,2) (2,1) (2,2).
	tests := []struct {
		index            int
		wantRow, wantCol int
	}{
		{0, 0, 1},
		{1, 1, 0},
		{2, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
	}

	for _, tt := range tests {
		c := NewRandomChooser(fixedRandom(tt.index))
		row, col, err := c.ChooseMove(board)
		require.NoError(t, err)
		assert.Equal(t, [2]int{tt.wantRow, tt.wantCol}, [2]int{row, col}, "index %d", tt.index)
	}
}

func TestRandomChooser_Uniform(t *testing.T) {
	c := NewRandomChooser(rand.New(rand.NewPCG(7, 11)))
	board := game.Board{
		{game.PlayerX, game.None, game.None},
		{game.None, game.PlayerO, game.None},
		{game.None, game.None, game.None},
	}

	const draws = 7000
	counts := map[[2]int]int{}
	for range draws {
		row, col, err := c.ChooseMove(board)
		require.NoError(t, err)
		counts[[2]int{row, col}]++
	}

	// Seven empty cells, about 1000 draws each.
	require.Len(t, counts, 7)
	for cell, n := range counts {
		assert.InDelta(t, draws/7, n, 200, "cell %v drawn %d times", cell, n)
	}
}

func TestNewRandomChooser_NilUsesGlobal(t *testing.T) {
	c := NewRandomChooser(nil)
	row, col, err := c.ChooseMove(game.Board{})
	require.NoError(t, err)
	assert.True(t, row >= game.BorderMin && row <= game.BorderMax)
	assert.True(t, col >= game.BorderMin && col <= game.BorderMax)
}
