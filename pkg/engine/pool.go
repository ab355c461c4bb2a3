package engine

import (
	"runtime"
	"time"
)

// workerLoop is the body run by each of the Coordinator's worker
// goroutines: pause check, local pop, steal attempt, park, execute.
func (c *Coordinator) workerLoop(idx int) {
	defer c.wg.Done()
	prof := c.profile[idx]

	for {
		if c.shutdown.Load() && c.quiescent() {
			return
		}

		if c.paused.Load() {
			runtime.Gosched()
			continue
		}

		idleStart := time.Now()

		job := c.queues[idx].popFront()
		if job == nil {
			job = c.steal(idx)
		}

		if job == nil {
			prof.addIdle(time.Since(idleStart))
			if c.park() {
				return
			}
			// park returning false means either we were woken by a
			// broadcast or the predicate was already satisfied without
			// ever sleeping (e.g. the only outstanding job is gated
			// behind a dependency someone else is about to resolve).
			// Yield before retrying so that case doesn't spin hot.
			runtime.Gosched()
			continue
		}

		activeStart := time.Now()
		c.runChain(job)
		prof.addActive(time.Since(activeStart))
	}
}

// steal iterates every queue other than idx, in index order, and takes
// the first job it finds at the front. Same-end stealing: the stealer
// pops from the same end the owner does.
func (c *Coordinator) steal(idx int) *Job {
	for i, q := range c.queues {
		if i == idx {
			continue
		}
		if job := q.popFront(); job != nil {
			return job
		}
	}
	return nil
}

// park blocks on the global condition variable until either shutdown has
// been requested and the engine is quiescent (return true: the worker
// should exit), or the pool is unpaused and there is submitted-but-
// uncompleted work (return false: the worker should retry its pop/steal
// attempt).
func (c *Coordinator) park() bool {
	c.parkMu.Lock()
	defer c.parkMu.Unlock()

	for {
		if c.shutdown.Load() && c.quiescent() {
			return true
		}
		if !c.paused.Load() && c.hasWork() {
			return false
		}
		c.parkCond.Wait()
	}
}

// quiescent reports whether every submitted job has completed.
func (c *Coordinator) quiescent() bool {
	return c.totalSubmitted.Load() == c.totalCompleted.Load()
}

// hasWork reports whether any job has been submitted but not yet
// completed.
func (c *Coordinator) hasWork() bool {
	return c.totalSubmitted.Load() > c.totalCompleted.Load()
}
