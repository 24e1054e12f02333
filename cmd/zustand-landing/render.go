package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	landing "github.com/acebook/zustand-landing"
)

// RenderCmd prints the landing page markup, e.g. for snapshot review.
type RenderCmd struct {
	Output string `short:"o" help:"Output file (default stdout)"`
}

func (r *RenderCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	app, err := landing.New(cfg, landing.WithLogger(landing.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)))
	if err != nil {
		return err
	}
	if r.Output == "" {
		return renderTo(app, os.Stdout)
	}
	f, err := os.Create(r.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := renderTo(app, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderTo(app *landing.App, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := app.RenderPage(context.Background(), bw); err != nil {
		return err
	}
	return bw.Flush()
}
