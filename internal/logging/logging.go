// Package logging builds the structured loggers loom's demo and
// introspection binaries hand to a Coordinator, an admin.Server, or a
// diagnostics.Sink. The scheduling core never imports this package — it
// only ever receives the *slog.Logger this package constructs, tagged
// per-component the same way everywhere it is attached.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process-wide logger for a loomctl invocation: level
// and format come from the --log-level/--log-format flags, which default
// to the same values as config.DefaultEngineConfig. Output goes to stderr
// so stdout stays free for a scenario or bench command's own report.
func NewLogger(level slog.Level, format string) *slog.Logger {
	return NewLoggerWithWriter(level, format, os.Stderr)
}

// NewLoggerWithWriter is NewLogger with an explicit destination, for tests
// and for any caller that wants output somewhere other than stderr.
func NewLoggerWithWriter(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a --log-level flag value to a slog.Level, defaulting
// to slog.LevelInfo for an empty or unrecognized string — the same level
// config.DefaultEngineConfig sets as its zero-value default, so a flag
// left unset and a flag that's misspelled behave identically.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ForComponent tags logger with the "component" key that every long-lived
// piece of loom uses to label its own records: the Coordinator logs as
// "engine" (see engine.WithLogger), the admin server as "admin", the
// diagnostics sink as "diagnostics". The admin server and the diagnostics
// sink tag through this helper; the engine package does not import it and
// sets the same key itself in New and WithLogger.
func ForComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}
