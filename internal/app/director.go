// Package app is the desktop frontend: an ebiten.Game with a maze scene and
// a reward scene.
package app

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/Letter-Maze/internal/audio"
	"github.com/Garsondee/Letter-Maze/internal/game"
)

// Scene is the screen currently shown.
type Scene uint8

const (
	SceneMaze Scene = iota
	SceneReward
)

func (s Scene) String() string {
	if s == SceneReward {
		return "reward"
	}
	return "maze"
}

// MissingReward is shown when the reward destination cannot be read.
const MissingReward = "Your letter could not be opened."

// Director owns the current session and switches scenes. It has no ebiten
// dependency so it can be driven from tests.
type Director struct {
	grid       *game.Grid
	cfg        game.SessionConfig
	counter    game.AttemptCounter
	music      *audio.Background
	logger     *log.Logger
	clock      game.Clock
	readReward func(path string) (string, error)

	session *game.Session
	scene   Scene
	reward  string
	arrived string // destination reported by the navigator, consumed by Update
	rounds  int
}

// DirectorOption configures a Director.
type DirectorOption func(*Director)

// WithMusic attaches the background track.
func WithMusic(b *audio.Background) DirectorOption {
	return func(d *Director) { d.music = b }
}

// WithCounter enables the attempt counter for every session.
func WithCounter(c game.AttemptCounter) DirectorOption {
	return func(d *Director) { d.counter = c }
}

// WithDirectorLogger sets the logger handed to each session.
func WithDirectorLogger(l *log.Logger) DirectorOption {
	return func(d *Director) { d.logger = l }
}

// WithDirectorClock replaces time.Now for every session.
func WithDirectorClock(c game.Clock) DirectorOption {
	return func(d *Director) { d.clock = c }
}

// WithRewardReader replaces os.ReadFile for the reward destination.
func WithRewardReader(f func(path string) (string, error)) DirectorOption {
	return func(d *Director) { d.readReward = f }
}

// NewDirector starts the first session and attempts music autoplay.
func NewDirector(g *game.Grid, cfg game.SessionConfig, opts ...DirectorOption) *Director {
	d := &Director{
		grid:       g,
		cfg:        cfg,
		logger:     log.StandardLogger(),
		readReward: readFile,
	}
	for _, o := range opts {
		o(d)
	}
	d.newSession()
	if d.music != nil {
		d.music.Start()
	}
	return d
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func (d *Director) newSession() {
	opts := []game.SessionOption{
		game.WithLogger(d.logger),
		game.WithNavigator(game.NavigatorFunc(func(dest string) { d.arrived = dest })),
	}
	if d.counter != nil {
		opts = append(opts, game.WithAttemptCounter(d.counter))
	}
	if d.clock != nil {
		opts = append(opts, game.WithClock(d.clock))
	}
	d.session = game.NewSession(d.grid, d.cfg, opts...)
	d.scene = SceneMaze
	d.rounds++
}

// Update advances one frame. keys are the held directions; restart is true
// on the frame the restart key went down.
func (d *Director) Update(keys game.KeySet, restart bool) {
	switch d.scene {
	case SceneMaze:
		d.session.Tick(keys)
		if d.arrived != "" {
			d.enterReward(d.arrived)
			d.arrived = ""
		}
	case SceneReward:
		if restart {
			d.logger.WithField("round", d.rounds+1).Info("back to the maze")
			d.newSession()
			if d.music != nil {
				d.music.Resume()
			}
		}
	}
}

func (d *Director) enterReward(dest string) {
	body, err := d.readReward(dest)
	if err != nil {
		d.logger.WithError(err).WithField("dest", dest).Warn("reward unavailable")
		body = MissingReward
	}
	d.reward = strings.TrimRight(body, "\n")
	d.scene = SceneReward
}

// Scene returns the current scene.
func (d *Director) Scene() Scene { return d.scene }

// Session returns the current session.
func (d *Director) Session() *game.Session { return d.session }

// Reward returns the text shown in the reward scene.
func (d *Director) Reward() string { return d.reward }

// Rounds counts sessions started, including the current one.
func (d *Director) Rounds() int { return d.rounds }

// Close cancels any pending navigation and stops the music.
func (d *Director) Close() {
	d.session.CancelRedirect()
	if d.music != nil {
		d.music.Close()
	}
}
