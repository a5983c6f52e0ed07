package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	// When: a new grid is created
	grid := NewGrid()

	// Then: every cell is empty and every column is playable
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			require.Equal(t, Empty, grid[row][col])
		}
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, PlayableColumns(&grid))
	require.False(t, IsGridFull(&grid))
}

func TestIsColumnPlayable(t *testing.T) {
	t.Run("Out of range columns are rejected", func(t *testing.T) {
		grid := NewGrid()

		assert.False(t, IsColumnPlayable(&grid, -1))
		assert.False(t, IsColumnPlayable(&grid, Columns))
		assert.False(t, IsColumnPlayable(&grid, 100))
	})

	t.Run("Full column is not playable", func(t *testing.T) {
		// Given: column 2 filled to the top
		grid := NewGrid()
		for row := 0; row < Rows; row++ {
			PlacePiece(&grid, row, 2, Player1)
		}

		// Then: only column 2 is closed
		assert.False(t, IsColumnPlayable(&grid, 2))
		assert.True(t, IsColumnPlayable(&grid, 1))
		assert.Equal(t, []int{0, 1, 3, 4, 5, 6}, PlayableColumns(&grid))
	})
}

func TestLowestOpenRow(t *testing.T) {
	grid := NewGrid()

	row, ok := LowestOpenRow(&grid, 3)
	require.True(t, ok)
	require.Equal(t, 0, row)

	PlacePiece(&grid, 0, 3, Player1)
	PlacePiece(&grid, 1, 3, Player2)

	row, ok = LowestOpenRow(&grid, 3)
	require.True(t, ok)
	require.Equal(t, 2, row)

	t.Run("Full column reports none without mutating", func(t *testing.T) {
		full := NewGrid()
		for r := 0; r < Rows; r++ {
			PlacePiece(&full, r, 0, Player2)
		}
		snapshot := full

		row, ok := LowestOpenRow(&full, 0)

		assert.False(t, ok)
		assert.Equal(t, -1, row)
		assert.Equal(t, snapshot, full)
	})

	t.Run("Out of range column reports none", func(t *testing.T) {
		_, ok := LowestOpenRow(&grid, -1)
		assert.False(t, ok)

		_, ok = LowestOpenRow(&grid, Columns)
		assert.False(t, ok)
	})
}

func TestPlacePiece(t *testing.T) {
	// Given: an empty grid
	grid := NewGrid()

	// When: a piece is placed
	PlacePiece(&grid, 4, 6, Player2)

	// Then: only the target cell changes
	expected := NewGrid()
	expected[4][6] = Player2
	require.Equal(t, expected, grid)
}

func TestIsGridFull(t *testing.T) {
	grid := NewGrid()
	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows; row++ {
			PlacePiece(&grid, row, col, Player1)
		}
		if col < Columns-1 {
			require.False(t, IsGridFull(&grid))
		}
	}

	require.True(t, IsGridFull(&grid))
	require.Empty(t, PlayableColumns(&grid))
}

func TestGravityInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		grid := NewGrid()
		player := Player1

		for {
			open := PlayableColumns(&grid)
			if len(open) == 0 {
				break
			}
			col := open[rng.Intn(len(open))]
			row, ok := LowestOpenRow(&grid, col)
			require.True(t, ok)
			PlacePiece(&grid, row, col, player)
			player = player.Opponent()

			requireStacked(t, &grid)
		}
	}
}

// requireStacked fails when any column has an empty cell under a piece.
func requireStacked(t *testing.T, grid *Grid) {
	t.Helper()

	for col := 0; col < Columns; col++ {
		seenEmpty := false
		for row := 0; row < Rows; row++ {
			if grid[row][col] == Empty {
				seenEmpty = true
				continue
			}
			require.False(t, seenEmpty, "gap below row %d in column %d", row, col)
		}
	}
}
