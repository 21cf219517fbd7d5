//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"toruslife/internal/app"
	"toruslife/internal/ctxlog"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err := cfg.Load(flag.CommandLine); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger = app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	session, err := app.NewSession(ctx, cfg)
	if err != nil {
		logger.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	layout := cfg.Layout()
	game := app.New(ctx, session, layout)
	w, h := layout.CanvasSize(session.Universe().Size())

	ebiten.SetWindowTitle("toruslife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("Game loop failed", "error", err)
		os.Exit(1)
	}
}
