// Package logger provides the slog setup shared by every package of the website.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger creates the root logger.
//
// LOG_LEVEL selects the minimum level (debug, info, warn|warning, error;
// case-insensitive, defaults to info). ENVIRONMENT=production switches the
// output to JSON, anything else uses the human readable text handler.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("ENVIRONMENT"), "production") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// Scope tags log records with the component that produced them.
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

// Error wraps an error as a structured attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
