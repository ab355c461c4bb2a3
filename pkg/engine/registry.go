package engine

// pendingRegistry is the global collection of jobs submitted with at
// least one unresolved predecessor at submission time. It exists so that
// quiescence detection (GetPendingJobs) can count jobs that are not on
// any ready queue because they are still gated behind a dependency.
//
// All methods assume the caller already holds the Coordinator's mutex;
// the registry has no lock of its own.
type pendingRegistry struct {
	jobs map[*Job]struct{}
}

func newPendingRegistry() *pendingRegistry {
	return &pendingRegistry{jobs: make(map[*Job]struct{})}
}

// add inserts job into the registry.
func (r *pendingRegistry) add(job *Job) {
	r.jobs[job] = struct{}{}
}

// remove deletes job from the registry, if present.
func (r *pendingRegistry) remove(job *Job) {
	delete(r.jobs, job)
}

// countPending returns the number of registry entries whose dependency
// counter is still greater than zero, pruning every entry it finds
// already at zero along the way. Pruning happens here, lazily on read,
// rather than eagerly on the resolving worker's path, which would
// require taking the Coordinator's mutex from inside Job.execute.
func (r *pendingRegistry) countPending() int {
	n := 0
	for job := range r.jobs {
		if job.remainingDependencies() > 0 {
			n++
		} else {
			delete(r.jobs, job)
		}
	}
	return n
}
