package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iamasit07/4-in-a-row/desktop/internal/domain"
	"github.com/iamasit07/4-in-a-row/desktop/internal/service/game"
	"github.com/iamasit07/4-in-a-row/desktop/internal/transport/input"
)

var (
	boardColor   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	emptyColor   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	player1Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	player2Color = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// bannerFace is 7x13 pixels per glyph before scaling.
var bannerFace = text.NewGoXFace(basicfont.Face7x13)

func pieceColor(player domain.PlayerID) color.Color {
	switch player {
	case domain.Player1:
		return player1Color
	case domain.Player2:
		return player2Color
	default:
		return emptyColor
	}
}

// Canvas keeps the last painted frame. Each Painter call only touches the
// part of the image it owns, the window copies the whole image every frame.
// The image is allocated on first use so nothing touches the GPU before
// the game loop runs.
type Canvas struct {
	image    *ebiten.Image
	geometry input.Geometry
}

func NewCanvas(geometry input.Geometry) *Canvas {
	return &Canvas{geometry: geometry}
}

func (c *Canvas) Image() *ebiten.Image {
	if c.image == nil {
		c.image = ebiten.NewImage(c.geometry.Width(), c.geometry.Height())
		c.image.Fill(emptyColor)
	}
	return c.image
}

func (c *Canvas) ClearPreview() {
	vector.DrawFilledRect(c.Image(), 0, 0,
		float32(c.geometry.Width()), float32(c.geometry.StripHeight()), emptyColor, false)
}

func (c *Canvas) DrawPreview(x int, player domain.PlayerID) {
	cy := c.geometry.StripHeight() / 2
	vector.DrawFilledCircle(c.Image(), float32(x), float32(cy),
		float32(c.geometry.PieceRadius()), pieceColor(player), true)
}

func (c *Canvas) DrawGrid(grid *domain.Grid) {
	size := float32(c.geometry.SquareSize)
	radius := float32(c.geometry.PieceRadius())

	for col := 0; col < domain.Columns; col++ {
		for row := 0; row < domain.Rows; row++ {
			x, y := c.geometry.CellOrigin(row, col)
			vector.DrawFilledRect(c.Image(), float32(x), float32(y), size, size, boardColor, false)

			cx, cy := c.geometry.CellCenter(row, col)
			vector.DrawFilledCircle(c.Image(), float32(cx), float32(cy), radius, pieceColor(grid[row][col]), true)
		}
	}
}

func (c *Canvas) DrawBanner(banner game.Banner) {
	clr := color.Color(boardColor)
	if banner.Player != domain.Empty {
		clr = pieceColor(banner.Player)
	}

	// scale the bitmap font so a line takes most of the strip height
	scale := float64(c.geometry.StripHeight()) * 0.6 / float64(basicfont.Face7x13.Height)
	width, height := text.Measure(banner.Text, bannerFace, 0)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(c.geometry.Width())-width*scale)/2,
		(float64(c.geometry.StripHeight())-height*scale)/2,
	)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(c.Image(), banner.Text, bannerFace, op)
}
