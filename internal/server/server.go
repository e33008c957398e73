package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"codeberg.org/snonux/textlens/internal/metrics"
	"codeberg.org/snonux/textlens/internal/processor"
)

// Analyzer runs an analysis
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*processor.Result, error)
}

// HealthCheck is a named health check function.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Config holds server settings
type Config struct {
	Addr      string
	BodyLimit string
	// RequestTimeout bounds a single analysis including translation
	RequestTimeout time.Duration
}

// DefaultConfig returns default server settings
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		BodyLimit:      "1M",
		RequestTimeout: 60 * time.Second,
	}
}

type Server struct {
	echo     *echo.Echo
	config   Config
	analyzer Analyzer

	registry     *prometheus.Registry
	healthChecks []HealthCheck
	startTime    time.Time
}

// NewServer creates the server and registers its routes. reg may be nil, in
// which case /metrics is not served.
func NewServer(cfg Config, analyzer Analyzer, reg *prometheus.Registry, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		analyzer:     analyzer,
		registry:     reg,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	slog.Info("Starting server", "addr", s.config.Addr)
	if err := s.echo.Start(s.config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) httpMetrics() *metrics.HTTPMetrics {
	if s.registry == nil {
		return nil
	}
	return metrics.NewHTTPMetrics(s.registry)
}
