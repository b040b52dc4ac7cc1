package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/Letter-Maze/internal/game"
)

// eventBuffer matches the channel size the poll goroutine can run ahead by.
const eventBuffer = 100

// Result is how a terminal run ended.
type Result struct {
	Won bool
	// Dest is the reward destination once navigation fired, else empty.
	Dest string
}

// Frontend runs one session on a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	session *game.Session
	hold    *HoldTracker
	clock   game.Clock
	logger  *log.Logger
	events  chan tcell.Event

	quit bool
	dest string
}

// NewFrontend wires the screen to a fresh session on g. The screen must
// already be initialised.
func NewFrontend(screen tcell.Screen, g *game.Grid, cfg game.SessionConfig, hold time.Duration, logger *log.Logger, opts ...game.SessionOption) *Frontend {
	f := &Frontend{
		screen: screen,
		hold:   NewHoldTracker(hold),
		clock:  time.Now,
		logger: logger,
		events: make(chan tcell.Event, eventBuffer),
	}
	opts = append(opts,
		game.WithLogger(logger),
		game.WithNavigator(game.NavigatorFunc(func(dest string) { f.dest = dest })),
	)
	f.session = game.NewSession(g, cfg, opts...)
	return f
}

// Session returns the running session.
func (f *Frontend) Session() *game.Session { return f.session }

// Run polls terminal events on a separate goroutine and drives the session
// from sched until the player quits, the reward navigation fires, or ctx
// ends.
func (f *Frontend) Run(ctx context.Context, sched game.Scheduler) (Result, error) {
	go f.poll()
	err := game.Loop(ctx, sched, f.Step, f.Render)
	f.session.CancelRedirect()
	return Result{Won: f.session.State().Won, Dest: f.dest}, err
}

func (f *Frontend) poll() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		f.events <- ev
	}
}

// Step drains pending events and advances the session one frame. It
// returns false once the run should end.
func (f *Frontend) Step() bool {
	for drained := false; !drained; {
		select {
		case ev := <-f.events:
			f.HandleEvent(ev)
		default:
			drained = true
		}
	}
	if f.quit {
		return false
	}
	f.session.Tick(f.hold.Held(f.clock()))
	return f.dest == ""
}

// HandleEvent applies one terminal event.
func (f *Frontend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			f.logger.Debug("quit requested")
			f.quit = true
			return
		}
		if d, ok := KeyDirection(ev); ok {
			f.hold.Press(d, f.clock())
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

// Render draws the current view and flushes it.
func (f *Frontend) Render() {
	Draw(f.screen, f.session.View())
	f.screen.Show()
}
