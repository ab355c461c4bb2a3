// Package graphspec parses the demo harness's YAML job-graph fixture
// format: a flat list of named nodes, each with a simulated work
// duration and a list of predecessor names. It exists only for the
// demo/benchmark binaries — the engine's public Coordinator API never
// sees YAML, only Job handles and []*Job predecessor slices.
package graphspec

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Node is one job in a fixture graph.
type Node struct {
	Name       string   `yaml:"name"`
	DurationMS int      `yaml:"duration_ms"`
	After      []string `yaml:"after"`
}

// Graph is a parsed fixture: a flat node list describing a DAG by name.
type Graph struct {
	Nodes []Node `yaml:"nodes"`
}

// Load reads and parses a fixture file from path.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph fixture %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals fixture YAML and validates it: every name must be
// unique and every "after" reference must name a node declared
// somewhere in the same fixture (declaration order does not matter —
// the demo harness resolves names to Job handles before submitting
// anything, the same way §8 scenario S3 interleaves dependants before
// predecessors).
func Parse(data []byte) (*Graph, error) {
	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse graph fixture: %w", err)
	}

	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("graph fixture: node with empty name")
		}
		if seen[n.Name] {
			return nil, fmt.Errorf("graph fixture: duplicate node name %q", n.Name)
		}
		seen[n.Name] = true
	}
	for _, n := range g.Nodes {
		for _, dep := range n.After {
			if !seen[dep] {
				return nil, fmt.Errorf("graph fixture: node %q depends on undeclared node %q", n.Name, dep)
			}
			if dep == n.Name {
				return nil, fmt.Errorf("graph fixture: node %q depends on itself", n.Name)
			}
		}
	}

	return &g, nil
}

// Duration returns the simulated work duration for n, defaulting to
// zero when unset.
func (n Node) Duration() time.Duration {
	return time.Duration(n.DurationMS) * time.Millisecond
}
