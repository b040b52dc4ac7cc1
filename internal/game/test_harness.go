package game

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// TestSim is a headless session harness used by tests and the headless
// report. It mirrors what a frontend does each frame but has no Ebiten
// dependency, uses a manual clock and records every event.
type TestSim struct {
	Grid      *Grid
	Session   *Session
	SimLog    *SimLog
	Clock     *ManualClock
	Attempts  *MemoryAttempts
	Navigated []string // destinations passed to the navigator, in order

	// FramePeriod is how far the clock advances per frame.
	FramePeriod time.Duration

	layout      []string
	canvasWidth float64
	cfg         SessionConfig
	verbose     bool
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	now time.Time
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// SimOption is a builder function applied to a TestSim before the session
// is created.
type SimOption func(*TestSim)

// WithLayout replaces the reference maze.
func WithLayout(rows ...string) SimOption {
	return func(ts *TestSim) { ts.layout = rows }
}

// WithCanvasWidth sets the canvas width the cell size is derived from.
func WithCanvasWidth(w float64) SimOption {
	return func(ts *TestSim) { ts.canvasWidth = w }
}

// WithStart sets the player's starting cell.
func WithStart(row, col int) SimOption {
	return func(ts *TestSim) {
		ts.cfg.StartRow = row
		ts.cfg.StartCol = col
	}
}

// WithGoalPlacement overrides the goal placement parameters.
func WithGoalPlacement(p GoalPlacement) SimOption {
	return func(ts *TestSim) { ts.cfg.Goal = p }
}

// WithRedirectDelay sets the delay between the win and the navigation.
func WithRedirectDelay(d time.Duration) SimOption {
	return func(ts *TestSim) { ts.cfg.RedirectDelay = d }
}

// WithAttemptsText seeds the attempt counter text.
func WithAttemptsText(text string) SimOption {
	return func(ts *TestSim) { ts.Attempts.Text = text }
}

// WithVerbose enables per-frame position logging.
func WithVerbose(v bool) SimOption {
	return func(ts *TestSim) { ts.verbose = v }
}

// NewTestSim builds a session on the reference maze (512px canvas) unless
// options say otherwise. It panics on an invalid layout; tests that expect
// layout errors should call NewGrid directly.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Clock:       &ManualClock{now: time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)},
		Attempts:    &MemoryAttempts{},
		FramePeriod: DefaultFramePeriod,
		layout:      referenceLayout,
		canvasWidth: 512,
		cfg:         DefaultSessionConfig(),
	}
	for _, o := range opts {
		o(ts)
	}
	g, err := NewGrid(ts.layout, ts.canvasWidth)
	if err != nil {
		panic(err)
	}
	ts.Grid = g
	ts.SimLog = NewSimLog(ts.verbose)

	quiet := log.New()
	quiet.SetOutput(io.Discard)
	ts.Session = NewSession(g, ts.cfg,
		WithClock(ts.Clock.Now),
		WithSimLog(ts.SimLog),
		WithAttemptCounter(ts.Attempts),
		WithLogger(quiet),
		WithNavigator(NavigatorFunc(func(dest string) {
			ts.Navigated = append(ts.Navigated, dest)
		})),
	)
	return ts
}

// State returns the session state.
func (ts *TestSim) State() *State { return ts.Session.State() }

// Player returns the current player entity.
func (ts *TestSim) Player() Entity { return ts.Session.State().Player }

// Hold runs n frames with keys held, advancing the clock one period per frame.
func (ts *TestSim) Hold(keys KeySet, n int) {
	for i := 0; i < n; i++ {
		ts.Clock.Advance(ts.FramePeriod)
		ts.Session.Tick(keys)
	}
}

// RunUntil runs frames with keys chosen by input until predicate holds or
// maxFrames pass. Returns the frame at which the predicate held, or -1.
func (ts *TestSim) RunUntil(input func(*TestSim) KeySet, predicate func(*TestSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		ts.Clock.Advance(ts.FramePeriod)
		ts.Session.Tick(input(ts))
		if predicate(ts) {
			return ts.Session.State().Frame
		}
	}
	return -1
}

// RunAutopilot steers the player to the goal. Returns the win frame, or -1
// if the goal is unreachable or not reached within maxFrames.
func (ts *TestSim) RunAutopilot(maxFrames int) int {
	st := ts.Session.State()
	ap := NewAutopilot(ts.Grid, st.Player, st.Goal)
	if ap == nil {
		return -1
	}
	return ts.RunUntil(
		func(ts *TestSim) KeySet { return ap.Keys(ts.Player()) },
		func(ts *TestSim) bool { return ts.State().Won },
		maxFrames,
	)
}
