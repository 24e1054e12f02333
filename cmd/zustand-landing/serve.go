package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	landing "github.com/acebook/zustand-landing"
)

// ServeCmd runs the HTTP server until SIGINT or SIGTERM.
type ServeCmd struct {
	Addr string `help:"Listen address, overrides the configuration"`
}

func (s *ServeCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Addr = s.Addr
	}

	logger := landing.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	landing.SetGlobalLogger(logger)

	app, err := landing.New(cfg, landing.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Start(ctx)
}
