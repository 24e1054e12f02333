package landing

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsSubsystem = "landing"

// Recorder receives page measurements. NoopRecorder is used when metrics
// are disabled.
type Recorder interface {
	ObservePageRender(d time.Duration)
	IncCacheHit()
}

// NoopRecorder discards all measurements.
type NoopRecorder struct{}

func (NoopRecorder) ObservePageRender(time.Duration) {}
func (NoopRecorder) IncCacheHit()                    {}

// PrometheusRecorder implements Recorder using Prometheus metrics. Request
// counts and latencies come from the echoprometheus middleware registered
// on the same registry.
type PrometheusRecorder struct {
	registry  *prometheus.Registry
	renders   prometheus.Counter
	renderDur prometheus.Histogram
	cacheHits prometheus.Counter
}

// NewPrometheusRecorder registers the landing metrics on reg. A nil reg
// gets a fresh registry.
func NewPrometheusRecorder(reg *prometheus.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	r := &PrometheusRecorder{
		registry: reg,
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "landing_page_renders_total",
			Help: "Number of landing page renders.",
		}),
		renderDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "landing_page_render_seconds",
			Help:    "Landing page render latency.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "landing_page_cache_hits_total",
			Help: "Landing page requests served from the rendered page cache.",
		}),
	}
	reg.MustRegister(r.renders, r.renderDur, r.cacheHits)
	return r
}

func (r *PrometheusRecorder) ObservePageRender(d time.Duration) {
	r.renders.Inc()
	r.renderDur.Observe(d.Seconds())
}

func (r *PrometheusRecorder) IncCacheHit() {
	r.cacheHits.Inc()
}

// Middleware records per-route request metrics (landing_requests_total,
// landing_request_duration_seconds and friends) on the recorder's registry.
// Scrapes of /metrics are not counted.
func (r *PrometheusRecorder) Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: r.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}

// Handler serves the recorder's registry in the Prometheus exposition format.
func (r *PrometheusRecorder) Handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: r.registry,
	})
}
