package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/nestlingapp/nestling-backend/internal/config"
)

// NewLogger creates a *slog.Logger from the log configuration and
// installs it as the process default via slog.SetDefault.
//
// Format "json" produces structured output for production; "text"
// produces human-readable output with source locations for development.
// Level is one of debug/info/warn/error (case-insensitive), defaulting
// to info. Output always goes to os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
