package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/iamasit07/4-in-a-row/desktop/internal/service/game"
	"github.com/iamasit07/4-in-a-row/desktop/internal/transport/input"
)

// Window runs one game session in a desktop window. It implements
// ebiten.Game.
type Window struct {
	title    string
	geometry input.Geometry
	canvas   *Canvas
	session  *game.GameSession
	router   *input.Router
	log      logrus.FieldLogger

	started bool
	lastX   int
	lastY   int
}

func New(title string, geometry input.Geometry, endDelay time.Duration, logger logrus.FieldLogger) *Window {
	canvas := NewCanvas(geometry)
	session := game.NewGameSession(canvas, logger)

	return &Window{
		title:    title,
		geometry: geometry,
		canvas:   canvas,
		session:  session,
		router:   input.NewRouter(session, geometry, endDelay, logger),
		log:      logger.WithField("game_id", session.GameID),
		lastX:    -1,
		lastY:    -1,
	}
}

func (w *Window) Session() *game.GameSession {
	return w.session
}

// Run blocks until the game has ended or the window is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.geometry.Width(), w.geometry.Height())
	ebiten.SetWindowTitle(w.title)

	w.log.Infof("[WINDOW] Opening %dx%d window", w.geometry.Width(), w.geometry.Height())

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}

	return nil
}

func (w *Window) Update() error {
	if !w.started {
		w.session.Start()
		w.started = true
	}

	now := time.Now()
	for _, ev := range w.pollEvents() {
		w.router.Dispatch(ev, now)
	}

	if w.router.Done(now) {
		w.log.Info("[WINDOW] Closing after game over")
		return ebiten.Termination
	}

	return nil
}

// pollEvents turns this tick's pointer state into events. A cursor that
// moved since the last tick yields a move, a fresh left click a press.
func (w *Window) pollEvents() []input.Event {
	var events []input.Event

	x, y := ebiten.CursorPosition()
	if x != w.lastX || y != w.lastY {
		w.lastX, w.lastY = x, y
		events = append(events, input.Event{Kind: input.EventMove, X: x, Y: y})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, input.Event{Kind: input.EventPress, X: x, Y: y})
	}

	return events
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.canvas.Image(), nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.geometry.Width(), w.geometry.Height()
}
