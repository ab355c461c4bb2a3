package engine

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
)

func TestWorkerUtilization_Percentages(t *testing.T) {
	u := WorkerUtilization{Active: 75, Idle: 25}
	if got := u.ActivePercent(); got != 75 {
		t.Fatalf("ActivePercent = %v, want 75", got)
	}
	if got := u.IdlePercent(); got != 25 {
		t.Fatalf("IdlePercent = %v, want 25", got)
	}
}

func TestWorkerUtilization_ZeroTotal(t *testing.T) {
	u := WorkerUtilization{}
	if got := u.ActivePercent(); got != 0 {
		t.Fatalf("ActivePercent = %v, want 0", got)
	}
}

// TestStress submits a large number of independent jobs and runs them
// to completion, exercising PrintThreadUtilization against a buffer
// afterward.
func TestStress(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress scenario in -short mode")
	}

	const n = 100_000
	c := New(8, WithUtilizationWriter(&bytes.Buffer{}))
	c.Resume()
	t.Cleanup(c.Close)

	var completed atomic.Int64
	for i := 0; i < n; i++ {
		must(t, c.Submit(NewJob("stress", func() { completed.Add(1) })))
	}

	c.WaitForAllJobs()

	if got := completed.Load(); got != n {
		t.Fatalf("completed = %d, want %d", got, n)
	}
	if got := c.TotalCompleted(); got != n {
		t.Fatalf("total completed = %d, want %d", got, n)
	}

	var buf bytes.Buffer
	c.PrintThreadUtilizationTo(&buf)
	if !strings.Contains(buf.String(), "jobs submitted") {
		t.Fatalf("utilization report missing summary line: %q", buf.String())
	}
}
