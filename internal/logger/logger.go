// Package logger builds the diagnostic logger used by the cv-bank CLIs.
// Diagnostics go to stderr so they never mix with report output on stdout.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Config selects the level and format of the logger
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Debug  bool   // forces debug level
}

// New creates a logger writing to w. Unknown levels fall back to warn, which
// keeps normal runs quiet.
func New(cfg Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
