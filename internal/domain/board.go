package domain

// Grid holds the cells of the board. Row 0 is the bottom row, so pieces
// stack upward from index 0 in every column.
type Grid [Rows][Columns]PlayerID

func NewGrid() Grid {
	return Grid{}
}

func IsColumnPlayable(grid *Grid, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// the top row is the last one to fill up
	return grid[Rows-1][column] == Empty
}

// LowestOpenRow returns the first empty row of column, scanning up from
// the bottom. It reports false for a full or out of range column.
func LowestOpenRow(grid *Grid, column int) (int, bool) {
	if column < 0 || column >= Columns {
		return -1, false
	}

	for row := 0; row < Rows; row++ {
		if grid[row][column] == Empty {
			return row, true
		}
	}

	return -1, false
}

// PlacePiece writes player into the cell without any validation.
// Callers pick the row with LowestOpenRow to keep pieces stacked.
func PlacePiece(grid *Grid, row, column int, player PlayerID) {
	grid[row][column] = player
}

func IsGridFull(grid *Grid) bool {
	for c := 0; c < Columns; c++ {
		if IsColumnPlayable(grid, c) {
			return false
		}
	}

	return true
}

func PlayableColumns(grid *Grid) []int {
	columns := []int{}
	for col := 0; col < Columns; col++ {
		if IsColumnPlayable(grid, col) {
			columns = append(columns, col)
		}
	}
	return columns
}
