package main

import (
	"context"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/Letter-Maze/internal/app"
	"github.com/Garsondee/Letter-Maze/internal/config"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "YAML config file (default $MAZE_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.Level())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := app.New(ctx, cfg, log.StandardLogger())
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(
		int(float64(cfg.Window.CanvasWidth)*cfg.Window.Scale),
		int(float64(cfg.Window.CanvasHeight)*cfg.Window.Scale),
	)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
