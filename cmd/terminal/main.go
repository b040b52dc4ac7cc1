package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/Letter-Maze/internal/audio"
	"github.com/Garsondee/Letter-Maze/internal/config"
	"github.com/Garsondee/Letter-Maze/internal/game"
	"github.com/Garsondee/Letter-Maze/internal/tui"
)

func main() {
	var configPath string
	var logPath string
	flag.StringVar(&configPath, "config", "", "YAML config file (default $MAZE_CONFIG)")
	flag.StringVar(&logPath, "log", "maze-terminal.log", "log file; the terminal is taken by the maze")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := log.New()
	logger.SetLevel(cfg.Level())
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
		defer f.Close()
		logger.SetOutput(f)
	} else {
		fmt.Fprintf(os.Stderr, "warning: cannot open log file: %v\n", err)
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	grid, err := cfg.Grid()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	opener := audio.Disabled
	if cfg.Assets.AudioEnabled && cfg.Assets.Music != "" {
		opener = audio.BeepFile(cfg.Assets.Music)
	}
	music := audio.NewBackground(opener, cfg.Assets.MusicVolume, logger)
	music.Start()

	var opts []game.SessionOption
	if c := cfg.AttemptCounter(); c != nil {
		opts = append(opts, game.WithAttemptCounter(c))
	}
	fe := tui.NewFrontend(screen, grid, cfg.Session(), cfg.Terminal.HoldWindow, logger, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := fe.Run(ctx, game.TickerScheduler{Period: cfg.Terminal.FramePeriod})

	screen.Fini()
	music.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if res.Dest == "" {
		return nil
	}

	body, err := os.ReadFile(res.Dest)
	if err != nil {
		logger.WithError(err).WithField("dest", res.Dest).Warn("reward unavailable")
		fmt.Println("You Won! Your letter could not be opened.")
		return nil
	}
	fmt.Printf("You Won!\n\n%s", body)
	return nil
}
