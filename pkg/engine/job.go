package engine

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Job is a handle carrying a user-supplied work closure, a name for
// diagnostics, a remaining-dependency counter, the list of downstream
// dependants, and a finished flag.
//
// A Job's Work is invoked at most once, and only once its dependency
// counter reaches zero. A Job must not be copied after construction.
type Job struct {
	// ID is a stable diagnostic identifier, independent of Name.
	ID uuid.UUID

	// Name is a human-readable identifier used only for diagnostics; it
	// plays no role in scheduling.
	Name string

	work func()

	// onReady is settable via SetOnReady but is never invoked by the
	// Coordinator. It is part of the public contract, reserved for
	// future use.
	onReady func()

	remaining atomic.Int64

	// mu guards dependants and finished together: a late AddDependant
	// must never race the finish-time snapshot taken by execute.
	mu         sync.Mutex
	dependants []*Job
	finished   bool
}

// NewJob creates a Job with the given diagnostic name and work closure.
// work must be invocable with no arguments and must not capture a
// reference to the returned Job.
func NewJob(name string, work func()) *Job {
	return &Job{
		ID:   uuid.New(),
		Name: name,
		work: work,
	}
}

// SetOnReady installs a hook to be invoked when the job's dependency
// counter reaches zero. Reserved for future use: the Coordinator never
// calls it today.
func (j *Job) SetOnReady(fn func()) {
	j.onReady = fn
}

// Finished reports whether the job's work has returned.
func (j *Job) Finished() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.finished
}

// remainingDependencies returns the current value of the dependency
// counter. Used by the pending registry to filter already-ready entries.
func (j *Job) remainingDependencies() int64 {
	return j.remaining.Load()
}

// addDependency increments the counter. Issued from within AddDependant,
// under the predecessor's dependants lock, and by SubmitWithDependencies
// to hold the counter above zero while edges are being registered; never
// called from outside the package.
func (j *Job) addDependency() {
	j.remaining.Add(1)
}

// AddDependant registers d as a downstream dependant of j. If j has
// already finished, the edge is rejected: AddDependant returns false and
// the caller must treat j as already satisfied, expecting no later
// decrement. Otherwise it appends d to j's dependant list, increments d's
// dependency counter, and returns true: a decrement is still owed to d.
func (j *Job) AddDependant(d *Job) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.finished {
		return false
	}
	j.dependants = append(j.dependants, d)
	d.addDependency()
	return true
}

// resolveDependency decrements the counter and reports whether it reached
// zero, i.e. whether the caller should now run the job. The decrement
// uses the same total ordering sync/atomic guarantees for all operations
// on the word, which is sufficient to make the predecessor's writes
// visible to whichever goroutine observes the counter at zero.
func (j *Job) resolveDependency() bool {
	return j.remaining.Add(-1) == 0
}

// execute runs work, marks the job finished, and returns a snapshot of
// its dependants for the caller to resolve. Resolution is deliberately
// left to the caller (see Coordinator.runChain) rather than performed
// recursively here, so that deep dependency chains are drained by
// iteration instead of recursion.
func (j *Job) execute() []*Job {
	j.work()

	j.mu.Lock()
	j.finished = true
	deps := j.dependants
	j.dependants = nil
	j.mu.Unlock()

	return deps
}
