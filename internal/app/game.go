package app

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/Letter-Maze/internal/assets"
	"github.com/Garsondee/Letter-Maze/internal/audio"
	"github.com/Garsondee/Letter-Maze/internal/config"
	"github.com/Garsondee/Letter-Maze/internal/game"
	"github.com/Garsondee/Letter-Maze/internal/render"
)

// reportFrames is how many recent frames of events F2 copies.
const reportFrames = 300

// Game implements ebiten.Game.
type Game struct {
	width, height int
	director      *Director
	renderer      *render.Renderer
	logger        *log.Logger
}

// New loads fonts, starts the sprite loads and the music, and opens the
// first session. Only font and grid errors are returned; asset and audio
// failures fall back silently.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Game, error) {
	grid, err := cfg.Grid()
	if err != nil {
		return nil, fmt.Errorf("build maze: %w", err)
	}
	fonts, err := render.LoadFonts()
	if err != nil {
		return nil, err
	}
	player := render.NewSprite(assets.LoadImage(ctx, cfg.Assets.PlayerImage))
	goal := render.NewSprite(assets.LoadImage(ctx, cfg.Assets.GoalImage))

	opener := audio.Disabled
	if cfg.Assets.AudioEnabled && cfg.Assets.Music != "" {
		opener = audio.EbitenFile(ebaudio.NewContext(audio.SampleRate), cfg.Assets.Music)
	}
	music := audio.NewBackground(opener, cfg.Assets.MusicVolume, logger)

	opts := []DirectorOption{WithMusic(music), WithDirectorLogger(logger)}
	if c := cfg.AttemptCounter(); c != nil {
		opts = append(opts, WithCounter(c))
	}
	return &Game{
		width:    cfg.Window.CanvasWidth,
		height:   cfg.Window.CanvasHeight,
		director: NewDirector(grid, cfg.Session(), opts...),
		renderer: render.NewRenderer(fonts, player, goal),
		logger:   logger,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyReport()
	}
	g.director.Update(heldKeys(), inpututil.IsKeyJustPressed(ebiten.KeyR))
	return nil
}

// heldKeys samples the movement keys currently down.
func heldKeys() game.KeySet {
	var ks game.KeySet
	for _, k := range inpututil.AppendPressedKeys(nil) {
		if d, ok := game.DirectionForKey(k.String()); ok {
			ks = ks.With(d)
		}
	}
	return ks
}

func (g *Game) copyReport() {
	report := g.director.Session().DebugReport(reportFrames)
	if err := clipboard.WriteAll(report); err != nil {
		g.logger.WithError(err).Warn("copy debug report")
		return
	}
	g.logger.Info("debug report copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.director.Scene() {
	case SceneReward:
		g.renderer.DrawReward(screen, g.director.Reward())
	default:
		g.renderer.DrawMaze(screen, g.director.Session().View())
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Close releases the audio and cancels pending navigation.
func (g *Game) Close() { g.director.Close() }
