package main

import (
	"flag"
	"log/slog"
	"os"

	"chosenoffset.com/tracy/internal/config"
	"chosenoffset.com/tracy/internal/game"
	ebitenrender "chosenoffset.com/tracy/internal/render/ebiten"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	// Flags override the environment.
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines used to cast rays (0 = GOMAXPROCS)")
	debug := flag.Bool("debug", false, "log every ray cast")
	flag.Parse()

	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.New(cfg, renderer, inputMgr, logger)
	if err != nil {
		slog.Error("create game", "error", err)
		os.Exit(1)
	}

	engine.SetWindowSize(cfg.Width, cfg.Height)
	engine.SetWindowTitle(cfg.Title)
	engine.SetWindowResizable(false)

	slog.Info("starting", "width", cfg.Width, "height", cfg.Height)
	if err := engine.RunGame(g); err != nil {
		slog.Error("run game", "error", err)
		os.Exit(1)
	}
}
