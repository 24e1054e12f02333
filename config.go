package landing

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/acebook/zustand-landing/views"
)

// EnvPrefix prefixes every environment variable SiteConfig reads.
const EnvPrefix = "ZUSTAND_"

var (
	ErrMissingTitle   = errors.New("landing: site title is required")
	ErrInvalidVariant = errors.New("landing: meta_variant must be \"full\" or \"minimal\"")
)

// SiteConfig holds all configuration for the landing site.
type SiteConfig struct {
	Title string `yaml:"title" env:"SITE_TITLE"` // Required: page <title>
	URL   string `yaml:"url" env:"SITE_URL"`     // Canonical URL (default "https://zustand.acebook.cc")
	Lang  string `yaml:"lang" env:"LANG"`        // BCP 47 tag (default "zh-CN")

	Addr            string        `yaml:"addr" env:"ADDR"`                         // Listen address (default ":3000")
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"` // default 10s

	StaticDir     string `yaml:"static_dir" env:"STATIC_DIR"`           // Replaces the embedded static tree
	DocsDir       string `yaml:"docs_dir" env:"DOCS_DIR"`               // Served under /docs when set
	CodeSample    string `yaml:"code_sample" env:"CODE_SAMPLE"`         // Markdown file for the code viewer
	MetaVariant   string `yaml:"meta_variant" env:"META_VARIANT"`       // "full" (default) or "minimal"
	ImageMaxWidth int    `yaml:"image_max_width" env:"IMAGE_MAX_WIDTH"` // default 1600

	Metrics   bool   `yaml:"metrics" env:"METRICS"`       // Expose /metrics
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`   // zerolog level (default "info")
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"` // "console" (default) or "json"
}

// LoadConfig builds a SiteConfig from the YAML file at path, then the
// optional dotenv file, then the process environment. Later sources win.
// Empty paths are skipped; a named file that does not exist is an error.
func LoadConfig(path, envFile string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("landing: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("landing: parse config %s: %w", path, err)
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, fmt.Errorf("landing: load env file: %w", err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("landing: parse env: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = views.DefaultURL
	}
	if c.Lang == "" {
		c.Lang = "zh-CN"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.MetaVariant == "" {
		c.MetaVariant = string(views.MetaFull)
	}
	if c.ImageMaxWidth == 0 {
		c.ImageMaxWidth = 1600
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
}

// Validate reports the first invalid field. Lang is rewritten to its
// canonical form.
func (c *SiteConfig) Validate() error {
	if c.Title == "" {
		return ErrMissingTitle
	}
	switch views.MetaVariant(c.MetaVariant) {
	case views.MetaFull, views.MetaMinimal:
	default:
		return ErrInvalidVariant
	}
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("landing: url %q must be absolute", c.URL)
	}
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return fmt.Errorf("landing: lang %q: %w", c.Lang, err)
	}
	c.Lang = tag.String()
	if c.ImageMaxWidth < 0 {
		return fmt.Errorf("landing: image_max_width must be positive, got %d", c.ImageMaxWidth)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("landing: log_level: %w", err)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("landing: log_format must be \"console\" or \"json\", got %q", c.LogFormat)
	}
	return nil
}

// View returns the subset of the configuration templates read.
func (c SiteConfig) View() views.SiteConfig {
	return views.SiteConfig{
		Title:   c.Title,
		URL:     c.URL,
		Lang:    c.Lang,
		Variant: views.MetaVariant(c.MetaVariant),
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger replaces the logger built from LogLevel and LogFormat.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}

// WithRecorder sets the metrics recorder (default: Prometheus when Metrics
// is enabled, otherwise a no-op).
func WithRecorder(r Recorder) Option {
	return func(a *App) {
		a.Recorder = r
	}
}
