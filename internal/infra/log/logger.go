// Package log provides structured logging via slog.
package log

import (
	"log/slog"
	"os"
	"strings"

	"steakz/config"

	"go.uber.org/fx"
)

// Params defines logger dependencies
type Params struct {
	fx.In

	Config *config.Config
}

// New creates a slog.Logger configured from the environment settings.
func New(params Params) *slog.Logger {
	level := parseLogLevel(params.Config.Env.Log.Level)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		slog.String("service", params.Config.Env.ServiceName),
		slog.String("env", params.Config.Env.Env),
	)

	return logger
}

func parseLogLevel(level string) slog.Level {
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
