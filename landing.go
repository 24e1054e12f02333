// Package landing serves the Zustand 中文文档 landing page with Echo and templ.
// It resolves the page's static assets, renders the markdown code sample and
// composes the page once per configuration; every request after the first
// is served from memory.
package landing

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/acebook/zustand-landing/codeshow"
)

// App is the landing site. It wires together configuration, assets, the
// rendered page cache, middleware and routes.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Log      zerolog.Logger
	Recorder Recorder
	Assets   *AssetSet
	Cache    *PageCache

	code         templ.Component
	customRoutes []func(*App)
}

// New validates cfg, resolves assets and the code sample, and registers
// middleware and routes. Missing configuration or content fails here,
// before the server accepts any request.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Log:      NewLogger(cfg.LogLevel, cfg.LogFormat, nil),
		Recorder: NoopRecorder{},
	}
	if cfg.Metrics {
		a.Recorder = NewPrometheusRecorder(prometheus.NewRegistry())
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	static, err := staticFS(cfg.StaticDir)
	if err != nil {
		return nil, err
	}

	assets, err := LoadAssets(static, cfg.ImageMaxWidth)
	if err != nil {
		return nil, err
	}
	a.Assets = assets

	sample, err := codeshow.Load(cfg.CodeSample)
	if err != nil {
		return nil, err
	}
	code, err := codeshow.Render(sample)
	if err != nil {
		return nil, err
	}
	a.code = code

	a.Cache = NewPageCache(a.RenderPage, a.Recorder)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.Log.Debug().
		Str(FieldFunc, "landing.New").
		Str("bear", assets.Bear.URL).
		Int("bear_width", assets.Bear.Width).
		Str("stylesheet", assets.Stylesheet.URL).
		Msg("assets resolved")
	return a, nil
}

func staticFS(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(EmbeddedStatic, "static")
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("landing: static dir: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("landing: static dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/", a.handleHome)
	e.GET("/assets/:hash/:name", a.handleAsset)
	e.GET("/bear.jpg", a.handleOGImage)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	if a.Config.DocsDir != "" {
		e.Static("/docs", a.Config.DocsDir)
	}

	if a.Config.Metrics {
		if pr, ok := a.Recorder.(*PrometheusRecorder); ok {
			e.GET("/metrics", pr.Handler())
		}
	}
}

// Start serves HTTP on Config.Addr until ctx is cancelled, then shuts the
// server down gracefully.
func (a *App) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	a.Log.Info().Str(FieldFunc, "landing.Start").Str("addr", a.Config.Addr).Msg("listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	a.Log.Info().Str(FieldFunc, "landing.Start").Msg("shutting down")
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("landing: shutdown: %w", err)
	}
	return nil
}

// Close releases the server's listeners.
func (a *App) Close() error {
	return a.Echo.Close()
}
