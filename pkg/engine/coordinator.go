package engine

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
)

// Coordinator is the top-level scheduling engine: it owns the worker
// pool, the ready-queue array, the pending-dependency registry, the
// pause flag, the progress counters, and the condition variable workers
// park on when idle.
//
// A Coordinator must be constructed with New and stopped with Close
// exactly once. It is safe for concurrent use by any number of callers.
type Coordinator struct {
	queues  []*queue
	profile []*workerProfile

	// parkMu and parkCond implement the global condition-variable wait:
	// workers park here when neither a local pop nor a steal produced
	// work. It also guards the pending registry; the shutdown flag is
	// atomic and is read under parkMu by parked workers.
	parkMu   sync.Mutex
	parkCond *sync.Cond
	registry *pendingRegistry

	paused   atomic.Bool
	shutdown atomic.Bool

	nextQueue      atomic.Int64
	totalSubmitted atomic.Int64
	totalCompleted atomic.Int64

	sink       EventSink
	logger     *slog.Logger
	utilWriter io.Writer

	wg sync.WaitGroup
}

// New constructs a Coordinator with n worker goroutines and starts them;
// workers begin paused. n must be > 0.
func New(n int, opts ...Option) *Coordinator {
	if n <= 0 {
		panic("engine: worker count must be > 0")
	}

	c := &Coordinator{
		queues:     make([]*queue, n),
		profile:    make([]*workerProfile, n),
		registry:   newPendingRegistry(),
		sink:       noopSink{},
		logger:     slog.Default().With("component", "engine"),
		utilWriter: os.Stderr,
	}
	c.parkCond = sync.NewCond(&c.parkMu)
	c.paused.Store(true)

	for i := range n {
		c.queues[i] = newQueue()
		c.profile[i] = &workerProfile{}
	}

	for _, opt := range opts {
		opt(c)
	}

	for i := range n {
		c.wg.Add(1)
		go c.workerLoop(i)
	}

	return c
}

// Close requests shutdown: it sets the shutdown flag, broadcasts so
// every parked worker re-checks its exit condition, and joins all
// workers. Workers drain remaining work before exiting — Close blocks
// until every previously submitted job has completed.
func (c *Coordinator) Close() {
	c.shutdown.Store(true)

	c.parkMu.Lock()
	c.parkCond.Broadcast()
	c.parkMu.Unlock()

	c.wg.Wait()
}

// Submit enqueues job round-robin across the ready queues, increments
// the submitted counter, and wakes any parked worker. The counter is
// incremented strictly before the wake broadcast so that a worker
// re-checking its park predicate after waking always observes the
// submission it is being woken for.
func (c *Coordinator) Submit(job *Job) error {
	if job == nil {
		return ErrNilJob
	}
	if c.shutdown.Load() {
		return ErrShutdown
	}
	c.totalSubmitted.Add(1)
	c.enqueueRoundRobin(job)
	return nil
}

// enqueueRoundRobin pushes job onto the next queue in round-robin order
// and broadcasts the wake condition. It does not touch the submitted
// counter, so callers that already accounted for the job (e.g.
// SubmitWithDependencies resolving its last edge) can reuse it.
func (c *Coordinator) enqueueRoundRobin(job *Job) {
	idx := int(uint64(c.nextQueue.Add(1)) % uint64(len(c.queues)))
	c.queues[idx].push(job)

	c.parkMu.Lock()
	c.parkCond.Broadcast()
	c.parkMu.Unlock()
}

// SubmitWithDependencies submits job gated behind preds. If preds is
// empty it behaves like Submit. Otherwise it registers job with each
// non-nil predecessor via AddDependant; a predecessor that has already
// finished silently drops that edge. If every edge is satisfied once
// registration ends, job is enqueued immediately; otherwise it is left in
// the pending registry and will run inline, on whichever worker resolves
// its last outstanding dependency.
func (c *Coordinator) SubmitWithDependencies(job *Job, preds []*Job) error {
	if job == nil {
		return ErrNilJob
	}
	if len(preds) == 0 {
		return c.Submit(job)
	}
	if c.shutdown.Load() {
		return ErrShutdown
	}

	c.totalSubmitted.Add(1)

	c.parkMu.Lock()
	c.registry.add(job)
	c.parkMu.Unlock()

	// Hold one extra count on job while its edges are registered, so a
	// predecessor that finishes mid-registration cannot bring the counter
	// to zero (and run job) before a later edge is added.
	job.addDependency()
	for _, p := range preds {
		if p == nil {
			continue
		}
		if !p.AddDependant(job) {
			c.logger.Debug("late dependant registration: predecessor already finished",
				"job", job.Name, "predecessor", p.Name)
		}
	}

	if !job.resolveDependency() {
		return nil
	}

	// Every edge was already satisfied by the time registration ended.
	// Drop the registry entry and enqueue now.
	c.parkMu.Lock()
	c.registry.remove(job)
	c.parkMu.Unlock()

	c.enqueueRoundRobin(job)
	return nil
}

// Pause sets the advisory pause flag. In-flight jobs always run to
// completion; workers stop picking up new work until Resume is called.
func (c *Coordinator) Pause() {
	c.paused.Store(true)
}

// Resume clears the pause flag and wakes parked workers.
func (c *Coordinator) Resume() {
	c.paused.Store(false)
	c.parkMu.Lock()
	c.parkCond.Broadcast()
	c.parkMu.Unlock()
}

// Wait resumes the pool, then busy-yields until job's finished flag is
// true. A nil job is logged and ignored.
func (c *Coordinator) Wait(job *Job) {
	if job == nil {
		c.logger.Warn("wait called with nil job")
		return
	}
	c.Resume()
	for !job.Finished() {
		runtime.Gosched()
	}
}

// WaitForAllJobs resumes the pool, then busy-yields until GetPendingJobs
// returns 0 and every submitted job has completed. It does not account
// for dependants added after the call returns.
func (c *Coordinator) WaitForAllJobs() {
	c.Resume()
	for {
		if c.GetPendingJobs() == 0 && c.totalSubmitted.Load() == c.totalCompleted.Load() {
			return
		}
		runtime.Gosched()
	}
}

// GetPendingJobs returns the sum of all ready-queue sizes plus the
// number of registry entries whose dependency counter is still above
// zero.
func (c *Coordinator) GetPendingJobs() int {
	n := 0
	for _, q := range c.queues {
		n += q.len()
	}

	c.parkMu.Lock()
	n += c.registry.countPending()
	c.parkMu.Unlock()

	return n
}

// TotalSubmitted returns the monotone count of jobs ever handed to the
// Coordinator.
func (c *Coordinator) TotalSubmitted() int64 { return c.totalSubmitted.Load() }

// TotalCompleted returns the monotone count of jobs whose work has
// returned.
func (c *Coordinator) TotalCompleted() int64 { return c.totalCompleted.Load() }

// runChain executes start and then iteratively drains every dependant
// that becomes ready as a result, in place of the recursive
// "resolve_dependency calls execute calls resolve_dependency..." chain a
// naive inline implementation would produce. This bounds stack depth to
// O(1) regardless of DAG depth.
func (c *Coordinator) runChain(start *Job) {
	pending := []*Job{start}
	for len(pending) > 0 {
		job := pending[0]
		pending = pending[1:]

		c.sink.OnStart(job)
		deps := job.execute()
		c.sink.OnFinish(job)

		c.totalCompleted.Add(1)

		for _, d := range deps {
			if d == nil {
				continue
			}
			if d.resolveDependency() {
				pending = append(pending, d)
			}
		}

		c.parkMu.Lock()
		c.parkCond.Broadcast()
		c.parkMu.Unlock()
	}
}
