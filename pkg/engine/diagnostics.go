package engine

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	humanize "github.com/dustin/go-humanize"
)

// EventSink receives per-job lifecycle notifications. It is the engine's
// conditional logging facility: the default sink is a no-op with no
// runtime cost, so attaching diagnostics is strictly opt-in.
type EventSink interface {
	// OnStart is called on the resolving worker, immediately before a
	// job's work is invoked.
	OnStart(job *Job)

	// OnFinish is called on the resolving worker, immediately after a
	// job's work returns.
	OnFinish(job *Job)
}

// noopSink is the default EventSink: every call is a no-op.
type noopSink struct{}

func (noopSink) OnStart(*Job)  {}
func (noopSink) OnFinish(*Job) {}

// workerProfile tracks one worker's active and idle time accumulators.
// Both fields are stored as int64 nanoseconds so they can be updated and
// read atomically without a lock.
type workerProfile struct {
	activeNanos atomic.Int64
	idleNanos   atomic.Int64
}

func (p *workerProfile) addActive(d time.Duration) {
	p.activeNanos.Add(int64(d))
}

func (p *workerProfile) addIdle(d time.Duration) {
	p.idleNanos.Add(int64(d))
}

// WorkerUtilization is a snapshot of one worker's active/idle time.
type WorkerUtilization struct {
	Index  int
	Active time.Duration
	Idle   time.Duration
}

// ActivePercent returns the fraction of (active+idle) time spent active,
// as a percentage in [0, 100]. It returns 0 if the worker has neither
// recorded active nor idle time yet.
func (w WorkerUtilization) ActivePercent() float64 {
	total := w.Active + w.Idle
	if total == 0 {
		return 0
	}
	return 100 * float64(w.Active) / float64(total)
}

// IdlePercent returns the fraction of (active+idle) time spent idle, as
// a percentage in [0, 100]: 100 minus ActivePercent once any time has
// been recorded, and 0 (like ActivePercent) before that.
func (w WorkerUtilization) IdlePercent() float64 {
	total := w.Active + w.Idle
	if total == 0 {
		return 0
	}
	return 100 * float64(w.Idle) / float64(total)
}

// Utilization returns a per-worker snapshot of active/idle time.
func (c *Coordinator) Utilization() []WorkerUtilization {
	out := make([]WorkerUtilization, len(c.profile))
	for i, p := range c.profile {
		out[i] = WorkerUtilization{
			Index:  i,
			Active: time.Duration(p.activeNanos.Load()),
			Idle:   time.Duration(p.idleNanos.Load()),
		}
	}
	return out
}

// PrintThreadUtilization writes one line per worker (active%/idle%) plus
// a submission/completion summary to the Coordinator's configured
// utilization writer (os.Stderr by default; see WithUtilizationWriter).
func (c *Coordinator) PrintThreadUtilization() {
	c.PrintThreadUtilizationTo(c.utilWriter)
}

// PrintThreadUtilizationTo writes the same report as
// PrintThreadUtilization to an explicit writer, mainly for tests.
func (c *Coordinator) PrintThreadUtilizationTo(w io.Writer) {
	fmt.Fprintf(w, "jobs submitted: %s, completed: %s\n",
		humanize.Comma(c.totalSubmitted.Load()),
		humanize.Comma(c.totalCompleted.Load()),
	)
	for _, u := range c.Utilization() {
		fmt.Fprintf(w, "worker %d: active %.1f%% idle %.1f%% (active=%s idle=%s)\n",
			u.Index, u.ActivePercent(), u.IdlePercent(), u.Active, u.Idle,
		)
	}
}
