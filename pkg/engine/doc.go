// Package engine implements an in-process, work-stealing job scheduler.
//
// Callers submit closures ("jobs"), optionally gated behind explicit
// predecessor jobs, to a Coordinator backed by a fixed pool of worker
// goroutines. Each worker owns one ready queue and steals from its peers
// when idle. A job whose dependencies resolve to zero is run inline by
// whichever worker resolved the last one, so chains of unit-fan-out jobs
// drain without an extra round trip through a queue.
//
// The engine targets embarrassingly-parallel, dynamically-formed work
// graphs where throughput and core utilization matter more than latency.
// It does not prioritize work, cancel jobs mid-flight, detect cycles (the
// caller must submit a DAG), or coordinate across processes.
package engine
