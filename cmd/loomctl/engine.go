package main

import (
	"runtime"

	"github.com/loomwork/loom/pkg/engine"
)

// resolvedWorkers returns flagWorkers, substituting runtime.NumCPU()
// when the flag is left at its zero-value default.
func resolvedWorkers() int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	return runtime.NumCPU()
}

// newCoordinator builds a Coordinator using the shared --workers/--log-*
// flags and the process logger, and resumes it immediately (loomctl has
// no interactive pause/resume controls of its own).
func newCoordinator(opts ...engine.Option) *engine.Coordinator {
	opts = append([]engine.Option{engine.WithLogger(logger)}, opts...)
	c := engine.New(resolvedWorkers(), opts...)
	c.Resume()
	return c
}
