package input

import "github.com/iamasit07/4-in-a-row/desktop/internal/domain"

// Geometry maps between board cells and window pixels. The window has one
// extra row of squares on top for the preview strip.
type Geometry struct {
	SquareSize int
}

func (g Geometry) Width() int {
	return domain.Columns * g.SquareSize
}

func (g Geometry) Height() int {
	return (domain.Rows + 1) * g.SquareSize
}

// ColumnAt returns the column under pixel x. Pixels left of the window map
// to -1 and pixels right of it to Columns or more, so the board rejects them.
func (g Geometry) ColumnAt(x int) int {
	if x < 0 {
		return -1
	}
	return x / g.SquareSize
}

// CellOrigin returns the top-left pixel of a cell. Row 0 is drawn at the
// bottom of the window.
func (g Geometry) CellOrigin(row, col int) (int, int) {
	x := col * g.SquareSize
	y := (domain.Rows - row) * g.SquareSize
	return x, y
}

func (g Geometry) CellCenter(row, col int) (int, int) {
	x, y := g.CellOrigin(row, col)
	return x + g.SquareSize/2, y + g.SquareSize/2
}

func (g Geometry) PieceRadius() int {
	return g.SquareSize/2 - 5
}

// StripHeight is the height of the preview strip above the board.
func (g Geometry) StripHeight() int {
	return g.SquareSize
}
