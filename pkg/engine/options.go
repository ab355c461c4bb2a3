package engine

import (
	"io"
	"log/slog"
)

// Option configures a Coordinator at construction time.
type Option func(*Coordinator)

// WithEventSink attaches sink to receive per-job lifecycle notifications.
// The default is a no-op sink.
func WithEventSink(sink EventSink) Option {
	return func(c *Coordinator) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithLogger attaches a logger used for diagnostic warnings (nil wait
// input, late dependant registration). The default logs to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger.With("component", "engine")
		}
	}
}

// WithUtilizationWriter sets the writer PrintThreadUtilization writes to.
// The default is os.Stderr.
func WithUtilizationWriter(w io.Writer) Option {
	return func(c *Coordinator) {
		if w != nil {
			c.utilWriter = w
		}
	}
}
