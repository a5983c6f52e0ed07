package game

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iamasit07/4-in-a-row/desktop/internal/domain"
	"github.com/iamasit07/4-in-a-row/desktop/pkg/uid"
)

const (
	ReasonConnectFour = "connect_four"
	ReasonDraw        = "draw"
)

// Banner is the result line shown in the preview strip when the game ends.
// Player is Empty for a draw.
type Banner struct {
	Text   string
	Player domain.PlayerID
}

// Painter draws the game. The session calls it after every state change
// and never reads anything back.
type Painter interface {
	ClearPreview()
	DrawPreview(x int, player domain.PlayerID)
	DrawGrid(grid *domain.Grid)
	DrawBanner(banner Banner)
}

type GameSession struct {
	GameID     string
	Game       *domain.Game
	Reason     string
	CreatedAt  time.Time
	FinishedAt time.Time
	painter    Painter
	log        logrus.FieldLogger
	now        func() time.Time
}

func NewGameSession(painter Painter, logger logrus.FieldLogger) *GameSession {
	gameID := uid.GenerateGameID()

	gs := &GameSession{
		GameID:    gameID,
		Game:      domain.NewGame(),
		CreatedAt: time.Now(),
		painter:   painter,
		log:       logger.WithField("game_id", gameID),
		now:       time.Now,
	}

	return gs
}

// Start paints the empty board.
func (gs *GameSession) Start() {
	gs.painter.ClearPreview()
	gs.painter.DrawGrid(&gs.Game.Grid)

	gs.log.Infof("[GAME] Game started, %s to move", gs.Game.CurrentPlayer)
}

func (gs *GameSession) IsFinished() bool {
	return gs.Game.IsFinished()
}

// HandleMove follows the pointer with a preview piece in the current
// player's color. Nothing is drawn once the game is over.
func (gs *GameSession) HandleMove(x int) {
	if gs.IsFinished() {
		return
	}

	gs.painter.ClearPreview()
	gs.painter.DrawPreview(x, gs.Game.CurrentPlayer)
}

// HandlePress drops a piece for the current player into column and
// reports whether the game has ended. Presses on a full or out of range
// column are ignored.
func (gs *GameSession) HandlePress(column int) bool {
	if gs.IsFinished() {
		return true
	}

	gs.painter.ClearPreview()

	if !domain.IsColumnPlayable(&gs.Game.Grid, column) {
		gs.log.WithField("column", column).Debug("[GAME] Ignoring press on unplayable column")
		return false
	}

	player := gs.Game.CurrentPlayer
	row, err := gs.Game.MakeMove(column)
	if err != nil {
		// IsColumnPlayable already passed, so this only fires on a broken grid
		gs.log.WithError(err).WithField("column", column).Warn("[GAME] Move rejected")
		return false
	}

	gs.painter.DrawGrid(&gs.Game.Grid)

	gs.log.WithFields(logrus.Fields{
		"player": player.String(),
		"row":    row,
		"column": column,
		"moves":  gs.Game.MoveCount,
	}).Debug("[GAME] Piece dropped")

	switch gs.Game.Status {
	case domain.StatusWon:
		gs.finish(ReasonConnectFour, Banner{
			Text:   fmt.Sprintf("%s wins!", gs.Game.Winner),
			Player: gs.Game.Winner,
		})
		return true
	case domain.StatusDraw:
		gs.finish(ReasonDraw, Banner{Text: "Draw!", Player: domain.Empty})
		return true
	}

	return false
}

func (gs *GameSession) finish(reason string, banner Banner) {
	gs.Reason = reason
	gs.FinishedAt = gs.now()

	gs.painter.ClearPreview()
	gs.painter.DrawBanner(banner)

	duration := gs.FinishedAt.Sub(gs.CreatedAt).Round(time.Second)
	gs.log.WithFields(logrus.Fields{
		"reason":   reason,
		"winner":   gs.Game.Winner.String(),
		"moves":    gs.Game.MoveCount,
		"duration": duration.String(),
	}).Info("[GAME] Game over")
}
