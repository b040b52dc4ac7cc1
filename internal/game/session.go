package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Navigator moves the player to the reward destination once the maze is won.
type Navigator interface {
	Navigate(dest string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(dest string)

func (f NavigatorFunc) Navigate(dest string) { f(dest) }

// SessionConfig describes one play-through of a maze.
type SessionConfig struct {
	StartRow, StartCol int
	Goal               GoalPlacement
	RedirectDelay      time.Duration
	RewardDest         string
}

// DefaultRedirectDelay is how long the win overlay stays up before navigating.
const DefaultRedirectDelay = 1200 * time.Millisecond

// DefaultSessionConfig matches the reference maze.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		StartRow:      1,
		StartCol:      1,
		Goal:          DefaultGoalPlacement(),
		RedirectDelay: DefaultRedirectDelay,
		RewardDest:    "letters.txt",
	}
}

// Session owns the simulation state and executes the commands Step emits.
// It is not safe for concurrent use; a frontend drives it from one goroutine.
type Session struct {
	ID string

	cfg      SessionConfig
	state    *State
	nav      Navigator
	counter  AttemptCounter
	clock    Clock
	simLog   *SimLog
	logger   *log.Entry
	redirect *Deferred

	attempts int
	started  time.Time
	wonAt    time.Time
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithNavigator sets the collaborator that receives the reward navigation.
func WithNavigator(n Navigator) SessionOption {
	return func(s *Session) { s.nav = n }
}

// WithAttemptCounter enables the attempt counter.
func WithAttemptCounter(c AttemptCounter) SessionOption {
	return func(s *Session) { s.counter = c }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(c Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

// WithSimLog records session events into sl.
func WithSimLog(sl *SimLog) SessionOption {
	return func(s *Session) { s.simLog = sl }
}

// WithLogger sets the base logger; the session id is added as a field.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) { s.logger = log.NewEntry(l) }
}

// NewSession builds the state for g and prepares the collaborators.
func NewSession(g *Grid, cfg SessionConfig, opts ...SessionOption) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		cfg:    cfg,
		state:  NewState(g, cfg.StartRow, cfg.StartCol, cfg.Goal),
		clock:  time.Now,
		simLog: NewSimLog(false),
		logger: log.NewEntry(log.StandardLogger()),
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.WithField("session", s.ID)
	s.started = s.clock()
	if s.counter != nil {
		if text, err := s.counter.Load(); err == nil {
			s.attempts = ParseAttempts(text)
		}
	}
	s.logger.WithFields(log.Fields{
		"goal_x": s.state.Goal.X,
		"goal_y": s.state.Goal.Y,
		"cell":   g.CellSize(),
	}).Debug("session started")
	return s
}

// Tick runs one frame: sample the held keys, step the simulation, execute
// any commands and poll the pending redirect. Input is ignored once won.
func (s *Session) Tick(keys KeySet) {
	if s.state.Won {
		keys = 0
	}
	intent := SampleIntent(keys, s.state.Player.Speed)
	rejectedBefore := s.state.Rejected
	cmds := Step(s.state, intent)
	if s.state.Rejected != rejectedBefore {
		s.simLog.AddVerbose(s.state.Frame, "move", "rejected",
			fmt.Sprintf("(%.1f,%.1f)", s.state.Player.X+intent.DX, s.state.Player.Y+intent.DY), 0)
	}
	s.simLog.AddVerbose(s.state.Frame, "move", "position",
		fmt.Sprintf("(%.1f,%.1f)", s.state.Player.X, s.state.Player.Y), 0)
	for _, c := range cmds {
		s.exec(c)
	}
	s.redirect.Poll(s.clock())
}

func (s *Session) exec(c Command) {
	switch c := c.(type) {
	case WinCommand:
		s.wonAt = s.clock()
		s.simLog.Add(c.Frame, "win", "reached", fmt.Sprintf("%.2fs", s.wonAt.Sub(s.started).Seconds()), float64(c.Frame))
		s.logger.WithField("frame", c.Frame).Info("goal reached")
		s.bumpAttempts(c.Frame)
		s.redirect = NewDeferred(s.wonAt, s.cfg.RedirectDelay, s.navigate)
	}
}

func (s *Session) bumpAttempts(frame int) {
	if s.counter == nil {
		return
	}
	n, err := IncrementAttempts(s.counter)
	s.attempts = n
	if err != nil {
		s.logger.WithError(err).Warn("attempt counter not saved")
		return
	}
	s.simLog.Add(frame, "attempts", "increment", fmt.Sprint(n), float64(n))
}

func (s *Session) navigate() {
	s.simLog.Add(s.state.Frame, "nav", "redirect", s.cfg.RewardDest, 0)
	s.logger.WithField("dest", s.cfg.RewardDest).Info("navigating to reward")
	if s.nav != nil {
		s.nav.Navigate(s.cfg.RewardDest)
	}
}

// CancelRedirect stops a pending reward navigation, e.g. on shutdown.
func (s *Session) CancelRedirect() { s.redirect.Cancel() }

// RedirectPending reports whether the reward navigation is scheduled but has
// not fired.
func (s *Session) RedirectPending() bool { return s.redirect.Pending() }

// Redirected reports whether the reward navigation has fired.
func (s *Session) Redirected() bool { return s.redirect.Fired() }

// State exposes the simulation state. Callers must treat it as read-only.
func (s *Session) State() *State { return s.state }

// SimLog returns the session event log.
func (s *Session) SimLog() *SimLog { return s.simLog }

// Config returns the session configuration.
func (s *Session) Config() SessionConfig { return s.cfg }

// View is a read-only snapshot handed to renderers.
type View struct {
	Grid     *Grid
	Player   Entity
	Goal     Entity
	Won      bool
	Frame    int
	Attempts int
	// SinceWin is the time elapsed since the win; zero while playing.
	SinceWin time.Duration
}

// View snapshots the state for rendering.
func (s *Session) View() View {
	v := View{
		Grid:     s.state.Grid,
		Player:   s.state.Player,
		Goal:     s.state.Goal,
		Won:      s.state.Won,
		Frame:    s.state.Frame,
		Attempts: s.attempts,
	}
	if s.state.Won {
		v.SinceWin = s.clock().Sub(s.wonAt)
	}
	return v
}
