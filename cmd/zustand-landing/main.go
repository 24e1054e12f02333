// Command zustand-landing serves the Zustand 中文文档 landing page.
package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	landing "github.com/acebook/zustand-landing"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultConfigPath = "config.yaml"

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"config.yaml"`
	EnvFile string           `name:"env-file" help:"Dotenv file loaded before reading the environment"`
	Verbose bool             `short:"v" help:"Enable debug logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Serve  ServeCmd  `cmd:"" default:"1" help:"Serve the landing page over HTTP"`
	Render RenderCmd `cmd:"" help:"Write the rendered landing page to stdout or a file"`
}

// loadConfig reads the configuration the flags point at. The default
// config file is optional; an explicitly named one must exist.
func (c *CLI) loadConfig() (landing.SiteConfig, error) {
	path := c.Config
	if path == defaultConfigPath {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := landing.LoadConfig(path, c.EnvFile)
	if err != nil {
		return cfg, err
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("zustand-landing"),
		kong.Description("Landing page server for the Zustand 中文文档 site."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli); err != nil {
		log.Fatal().Err(err).Str(landing.FieldFunc, "main").Msg(ctx.Command() + " failed")
	}
}
