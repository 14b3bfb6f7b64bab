// Package logger configures the process-wide log/slog logger.
// JSON output is the default; text output is meant for local runs.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the default slog logger writing to stdout.
func Setup(level slog.Level, format string) {
	slog.SetDefault(New(os.Stdout, level, format))
}

// New builds a logger with source locations for the given format.
// Any format other than "text" produces JSON.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel converts a string log level to slog.Level.
// Valid values: "debug", "info", "warn", "error".
// Unrecognized values default to info level.
func ParseLevel(level string) slog.Level {
	switch level {
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
