package input

import (
	"time"

	"github.com/sirupsen/logrus"
)

type EventKind int

const (
	EventMove EventKind = iota
	EventPress
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventPress:
		return "press"
	default:
		return "unknown"
	}
}

// Event is a pointer event in window pixels.
type Event struct {
	Kind EventKind
	X    int
	Y    int
}

// Session is the game the router feeds.
type Session interface {
	HandleMove(x int)
	HandlePress(column int) bool
}

// Router turns pointer events into session calls and keeps the result
// banner up for EndDelay once the game is over.
type Router struct {
	session    Session
	geometry   Geometry
	endDelay   time.Duration
	finishedAt time.Time
	log        logrus.FieldLogger
}

func NewRouter(session Session, geometry Geometry, endDelay time.Duration, logger logrus.FieldLogger) *Router {
	return &Router{
		session:  session,
		geometry: geometry,
		endDelay: endDelay,
		log:      logger,
	}
}

func (r *Router) Dispatch(ev Event, now time.Time) {
	if !r.finishedAt.IsZero() {
		return
	}

	switch ev.Kind {
	case EventMove:
		r.session.HandleMove(ev.X)
	case EventPress:
		column := r.geometry.ColumnAt(ev.X)
		if r.session.HandlePress(column) {
			r.finishedAt = now
			r.log.Debugf("[INPUT] Game finished, closing in %s", r.endDelay)
		}
	default:
		r.log.Warnf("[INPUT] Unknown event kind %d", ev.Kind)
	}
}

// Done reports whether the game is over and the banner has been shown
// for the full delay.
func (r *Router) Done(now time.Time) bool {
	if r.finishedAt.IsZero() {
		return false
	}
	return now.Sub(r.finishedAt) >= r.endDelay
}
