package engine

import (
	"sync/atomic"
	"testing"
)

func TestJob_AddDependantIncrementsCounter(t *testing.T) {
	p := NewJob("p", func() {})
	d := NewJob("d", func() {})

	if got := d.remainingDependencies(); got != 0 {
		t.Fatalf("remainingDependencies = %d, want 0", got)
	}
	if !p.AddDependant(d) {
		t.Fatal("AddDependant on a fresh job should return true")
	}
	if got := d.remainingDependencies(); got != 1 {
		t.Fatalf("remainingDependencies = %d, want 1", got)
	}
}

func TestJob_AddDependantAfterFinishReturnsFalse(t *testing.T) {
	p := NewJob("p", func() {})
	p.execute()

	d := NewJob("d", func() {})
	if p.AddDependant(d) {
		t.Fatal("AddDependant on a finished job should return false")
	}
	if got := d.remainingDependencies(); got != 0 {
		t.Fatalf("remainingDependencies = %d, want 0 (edge must be rejected)", got)
	}
}

func TestJob_ResolveDependencyReachesZero(t *testing.T) {
	d := NewJob("d", func() {})
	d.addDependency()
	d.addDependency()

	if d.resolveDependency() {
		t.Fatal("resolveDependency should not report ready after first decrement of two")
	}
	if !d.resolveDependency() {
		t.Fatal("resolveDependency should report ready after the second decrement")
	}
}

func TestJob_ExecuteRunsWorkExactlyOnce(t *testing.T) {
	var calls atomic.Int64
	j := NewJob("j", func() { calls.Add(1) })

	j.execute()
	if got := calls.Load(); got != 1 {
		t.Fatalf("work ran %d times, want 1", got)
	}
	if !j.Finished() {
		t.Fatal("Finished() should be true after execute")
	}
}

func TestJob_ExecuteSnapshotsAndClearsDependants(t *testing.T) {
	p := NewJob("p", func() {})
	d1 := NewJob("d1", func() {})
	d2 := NewJob("d2", func() {})
	p.AddDependant(d1)
	p.AddDependant(d2)

	deps := p.execute()
	if len(deps) != 2 {
		t.Fatalf("execute returned %d dependants, want 2", len(deps))
	}

	p.mu.Lock()
	remaining := len(p.dependants)
	p.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("dependants not cleared after execute: %d left", remaining)
	}
}

func TestJob_OnReadyIsNeverInvokedByTheJobItself(t *testing.T) {
	var invoked atomic.Bool
	j := NewJob("j", func() {})
	j.SetOnReady(func() { invoked.Store(true) })

	j.addDependency()
	j.resolveDependency()
	j.execute()

	if invoked.Load() {
		t.Fatal("onReady must not be invoked by Job or Coordinator machinery")
	}
}
