package engine

import "testing"

func TestPendingRegistry_CountPendingFiltersReady(t *testing.T) {
	r := newPendingRegistry()

	blocked := NewJob("blocked", func() {})
	blocked.addDependency()

	ready := NewJob("ready", func() {})

	r.add(blocked)
	r.add(ready)

	if got := r.countPending(); got != 1 {
		t.Fatalf("countPending = %d, want 1 (only blocked has counter > 0)", got)
	}

	blocked.resolveDependency()
	if got := r.countPending(); got != 0 {
		t.Fatalf("countPending = %d, want 0 after blocked resolves", got)
	}
}

func TestPendingRegistry_Remove(t *testing.T) {
	r := newPendingRegistry()
	j := NewJob("j", func() {})
	j.addDependency()

	r.add(j)
	if got := r.countPending(); got != 1 {
		t.Fatalf("countPending = %d, want 1", got)
	}

	r.remove(j)
	if got := r.countPending(); got != 0 {
		t.Fatalf("countPending = %d, want 0 after remove", got)
	}
}
