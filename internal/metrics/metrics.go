// Package metrics defines the Prometheus metrics exported by textlens.
package metrics

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "textlens"

// NewRegistry creates a Prometheus registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler returns an http.Handler that serves Prometheus metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Metrics holds the analysis pipeline metrics.
type Metrics struct {
	AnalysesTotal       *prometheus.CounterVec
	AnalysisDuration    prometheus.Histogram
	TranslationFailures prometheus.Counter
	SentenceFallbacks   prometheus.Counter
	CacheLookups        *prometheus.CounterVec
	BreakerState        *prometheus.GaugeVec
}

// New creates and registers the pipeline metrics on reg. A nil reg leaves
// the metrics unregistered, which is what tests and the CLI use.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total analyses by outcome.",
		}, []string{"outcome"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duration of a full analysis including translation.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
		TranslationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "translation_failures_total",
			Help:      "Translations that failed and fell back to the original text.",
		}),
		SentenceFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sentence_scoring_fallbacks_total",
			Help:      "Sentences whose sentiment could not be scored.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "translation_cache_lookups_total",
			Help:      "Translation cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
		BreakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Current circuit breaker state (0=closed, 1=half-open, 2=open).",
		}, []string{"name"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.AnalysesTotal,
			m.AnalysisDuration,
			m.TranslationFailures,
			m.SentenceFallbacks,
			m.CacheLookups,
			m.BreakerState,
		)
	}
	return m
}

// HTTPMetrics holds Prometheus metrics for HTTP request tracking.
type HTTPMetrics struct {
	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
}

// NewHTTPMetrics creates and registers HTTP metrics on the given registry.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status_code"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status_code"}),
	}

	reg.MustRegister(m.RequestDuration, m.RequestsTotal)
	return m
}

// Middleware returns an Echo middleware that records HTTP metrics.
// It skips /metrics and /health/* endpoints.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "/metrics" || strings.HasPrefix(path, "/health/") {
				return next(c)
			}

			timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
				status := strconv.Itoa(c.Response().Status)
				m.RequestDuration.WithLabelValues(c.Request().Method, path, status).Observe(v)
			}))
			err := next(c)
			timer.ObserveDuration()

			status := strconv.Itoa(c.Response().Status)
			m.RequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			return err
		}
	}
}
