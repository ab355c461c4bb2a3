package engine

import "errors"

// ErrNilJob is returned by Submit and SubmitWithDependencies when called
// with a nil job handle.
var ErrNilJob = errors.New("engine: nil job")

// ErrShutdown is returned by Submit and SubmitWithDependencies once the
// Coordinator has been closed; no further work can be scheduled.
var ErrShutdown = errors.New("engine: coordinator is shut down")
