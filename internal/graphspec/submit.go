package graphspec

import (
	"fmt"
	"time"

	"github.com/loomwork/loom/pkg/engine"
)

// Submit creates a Job for every node in g (each sleeping for the
// node's configured duration to simulate work and recording its name
// to record) and submits every one of them through c, exactly the way
// any other caller would: via Submit or SubmitWithDependencies on the
// public Coordinator API. Job handles are all constructed before any
// submission occurs, so "after" references may name nodes declared
// later in the fixture.
//
// It returns the constructed Job handles keyed by name, so callers can
// Wait on individual nodes.
func Submit(c *engine.Coordinator, g *Graph, record func(name string)) (map[string]*engine.Job, error) {
	jobs := make(map[string]*engine.Job, len(g.Nodes))
	for _, n := range g.Nodes {
		name := n.Name
		dur := n.Duration()
		jobs[name] = engine.NewJob(name, func() {
			if dur > 0 {
				time.Sleep(dur)
			}
			if record != nil {
				record(name)
			}
		})
	}

	for _, n := range g.Nodes {
		job := jobs[n.Name]
		if len(n.After) == 0 {
			if err := c.Submit(job); err != nil {
				return nil, fmt.Errorf("submit %q: %w", n.Name, err)
			}
			continue
		}

		preds := make([]*engine.Job, len(n.After))
		for i, dep := range n.After {
			preds[i] = jobs[dep]
		}
		if err := c.SubmitWithDependencies(job, preds); err != nil {
			return nil, fmt.Errorf("submit %q: %w", n.Name, err)
		}
	}

	return jobs, nil
}
