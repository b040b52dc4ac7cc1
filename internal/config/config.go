// Package config loads game settings from a YAML file, an optional .env file
// and MAZE_* environment variables, in that order of precedence (lowest
// first).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Letter-Maze/internal/game"
)

// Environment variables consulted by Load.
const (
	EnvConfigPath   = "MAZE_CONFIG"
	EnvAudioEnabled = "MAZE_AUDIO_ENABLED"
	EnvMusicVolume  = "MAZE_MUSIC_VOLUME" // 0-100
	EnvLogLevel     = "MAZE_LOG_LEVEL"
	EnvAttemptsFile = "MAZE_ATTEMPTS_FILE"
)

var (
	ErrStartBlocked = errors.New("start cell is not a path cell")
	ErrBadVolume    = errors.New("music volume must be within [0,1]")
	ErrBadDelay     = errors.New("reward delay must not be negative")
	ErrBadWindow    = errors.New("window dimensions must be positive")
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Maze     MazeConfig     `yaml:"maze"`
	Assets   AssetsConfig   `yaml:"assets"`
	Reward   RewardConfig   `yaml:"reward"`
	Terminal TerminalConfig `yaml:"terminal"`
	// AttemptsFile stores the win counter. Empty disables the counter.
	AttemptsFile string `yaml:"attempts_file"`
	LogLevel     string `yaml:"log_level"`
}

type WindowConfig struct {
	Title        string  `yaml:"title"`
	CanvasWidth  int     `yaml:"canvas_width"`
	CanvasHeight int     `yaml:"canvas_height"`
	Scale        float64 `yaml:"scale"`
}

type CellRef struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type GoalConfig struct {
	Row       int     `yaml:"row"`
	Col       int     `yaml:"col"`
	FallbackX float64 `yaml:"fallback_x"`
	FallbackY float64 `yaml:"fallback_y"`
}

type MazeConfig struct {
	// Layout rows use '1'/'#' for walls and '0'/'.' for paths.
	Layout []string   `yaml:"layout"`
	Start  CellRef    `yaml:"start"`
	Goal   GoalConfig `yaml:"goal"`
}

type AssetsConfig struct {
	PlayerImage  string  `yaml:"player_image"`
	GoalImage    string  `yaml:"goal_image"`
	Music        string  `yaml:"music"`
	MusicVolume  float64 `yaml:"music_volume"`
	AudioEnabled bool    `yaml:"audio_enabled"`
}

type RewardConfig struct {
	Destination string        `yaml:"destination"`
	Delay       time.Duration `yaml:"delay"`
}

type TerminalConfig struct {
	// HoldWindow is how long a key counts as held after its last press;
	// terminals report presses and repeats but not releases.
	HoldWindow  time.Duration `yaml:"hold_window"`
	FramePeriod time.Duration `yaml:"frame_period"`
}

// Default returns the settings of the shipped game.
func Default() *Config {
	gp := game.DefaultGoalPlacement()
	return &Config{
		Window: WindowConfig{
			Title:        "Letter Maze",
			CanvasWidth:  512,
			CanvasHeight: 512,
			Scale:        1,
		},
		Maze: MazeConfig{
			Layout: game.ReferenceLayout(),
			Start:  CellRef{Row: 1, Col: 1},
			Goal: GoalConfig{
				Row:       gp.PreferredRow,
				Col:       gp.PreferredCol,
				FallbackX: gp.FallbackX,
				FallbackY: gp.FallbackY,
			},
		},
		Assets: AssetsConfig{
			PlayerImage:  "chara.png",
			GoalImage:    "goal.png",
			Music:        "music.wav",
			MusicVolume:  0.6,
			AudioEnabled: true,
		},
		Reward: RewardConfig{
			Destination: "letters.txt",
			Delay:       game.DefaultRedirectDelay,
		},
		Terminal: TerminalConfig{
			HoldWindow:  150 * time.Millisecond,
			FramePeriod: game.DefaultFramePeriod,
		},
		AttemptsFile: "attempts.txt",
		LogLevel:     "info",
	}
}

// Load reads .env (if present), then the YAML file at path (if non-empty;
// falls back to $MAZE_CONFIG), then applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates. It does not consult
// the environment.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Assets.AudioEnabled = b
		}
	}
	if v := os.Getenv(EnvMusicVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Assets.MusicVolume = min(max(float64(n)/100, 0), 1)
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvAttemptsFile); ok {
		c.AttemptsFile = v
	}
}

// Validate checks that the maze can be built and the settings are usable.
func (c *Config) Validate() error {
	if c.Window.CanvasWidth <= 0 || c.Window.CanvasHeight <= 0 || c.Window.Scale <= 0 {
		return ErrBadWindow
	}
	g, err := c.Grid()
	if err != nil {
		return err
	}
	if g.CellKind(c.Maze.Start.Row, c.Maze.Start.Col) != game.Path {
		return fmt.Errorf("start (%d,%d): %w", c.Maze.Start.Row, c.Maze.Start.Col, ErrStartBlocked)
	}
	if c.Assets.MusicVolume < 0 || c.Assets.MusicVolume > 1 {
		return ErrBadVolume
	}
	if c.Reward.Delay < 0 {
		return ErrBadDelay
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Grid builds the maze grid for the configured canvas.
func (c *Config) Grid() (*game.Grid, error) {
	return game.NewGrid(c.Maze.Layout, float64(c.Window.CanvasWidth))
}

// Session returns the per-session settings.
func (c *Config) Session() game.SessionConfig {
	return game.SessionConfig{
		StartRow: c.Maze.Start.Row,
		StartCol: c.Maze.Start.Col,
		Goal: game.GoalPlacement{
			PreferredRow: c.Maze.Goal.Row,
			PreferredCol: c.Maze.Goal.Col,
			FallbackX:    c.Maze.Goal.FallbackX,
			FallbackY:    c.Maze.Goal.FallbackY,
		},
		RedirectDelay: c.Reward.Delay,
		RewardDest:    c.Reward.Destination,
	}
}

// Level returns the parsed log level; Validate has already checked it.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// AttemptCounter returns the configured counter, or nil when disabled.
func (c *Config) AttemptCounter() game.AttemptCounter {
	if c.AttemptsFile == "" {
		return nil
	}
	return game.FileAttempts{Path: c.AttemptsFile}
}
