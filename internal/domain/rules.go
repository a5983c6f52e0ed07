package domain

// row/column steps for every line direction
var directions = [][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal rising
	{-1, 1}, // diagonal falling
}

// HasWinningLine reports whether player owns ToWin cells in a row in any
// direction. Every window that fits on the grid is checked, so the result
// does not depend on where the last piece landed.
func HasWinningLine(grid *Grid, player PlayerID) bool {
	for _, dir := range directions {
		deltaRow, deltaCol := dir[0], dir[1]

		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				if !windowFits(row, col, deltaRow, deltaCol) {
					continue
				}
				if ownsWindow(grid, row, col, deltaRow, deltaCol, player) {
					return true
				}
			}
		}
	}

	return false
}

// windowFits checks that both ends of the window starting at (row, col)
// are on the grid.
func windowFits(row, col, deltaRow, deltaCol int) bool {
	endRow := row + deltaRow*(ToWin-1)
	endCol := col + deltaCol*(ToWin-1)
	return isInBounds(row, col) && isInBounds(endRow, endCol)
}

func ownsWindow(grid *Grid, row, col, deltaRow, deltaCol int, player PlayerID) bool {
	for i := 0; i < ToWin; i++ {
		if grid[row+deltaRow*i][col+deltaCol*i] != player {
			return false
		}
	}
	return true
}

func isInBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}
