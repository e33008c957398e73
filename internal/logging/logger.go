// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps "debug", "info", "warn" and "error" onto slog levels,
// defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler returns a JSON handler for format "json" and a colored tint
// handler otherwise.
func NewHandler(w io.Writer, level, format string) slog.Handler {
	lvl := ParseLevel(level)
	if format == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})
}

// InitLogger installs the default logger. Logs go to stderr so that the CLI
// report on stdout stays clean.
func InitLogger(level, format string) *slog.Logger {
	logger := slog.New(NewHandler(os.Stderr, level, format))
	slog.SetDefault(logger)
	return logger
}
