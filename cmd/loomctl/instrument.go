package main

import (
	"fmt"
	"net/http"

	"github.com/loomwork/loom/internal/admin"
	"github.com/loomwork/loom/internal/diagnostics"
	"github.com/loomwork/loom/pkg/engine"
)

// buildInstrumentedCoordinator constructs a Coordinator, optionally
// wired to a SQLite-backed diagnostics.Sink (when dbPath is non-empty)
// and an admin.Server introspection endpoint (when addr is non-empty).
// The returned close func flushes and closes the diagnostics sink, if
// any; it is always safe to call.
func buildInstrumentedCoordinator(dbPath, addr string) (*engine.Coordinator, func(), error) {
	var opts []engine.Option
	closeSink := func() {}

	if dbPath != "" {
		sink, err := diagnostics.Open(dbPath, 1024, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open diagnostics sink: %w", err)
		}
		opts = append(opts, engine.WithEventSink(sink))
		closeSink = func() {
			if err := sink.Close(); err != nil {
				logger.Error("close diagnostics sink", "error", err)
			}
		}
	}

	c := newCoordinator(opts...)

	if addr != "" {
		srv := admin.New(c, logger)
		go func() {
			logger.Info("admin server listening", "addr", addr)
			if err := http.ListenAndServe(addr, srv); err != nil {
				logger.Error("admin server stopped", "error", err)
			}
		}()
	}

	return c, closeSink, nil
}
