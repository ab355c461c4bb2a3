package main

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/loomwork/loom/pkg/engine"
	"github.com/spf13/cobra"
)

func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "scenario {chain|diamond|graph7|stress|late-edge|pause-resume}",
		Short:     "Run one of the named scenarios from the engine's testable-properties list",
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{"chain", "diamond", "graph7", "stress", "late-edge", "pause-resume"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "chain":
				return scenarioChain()
			case "diamond":
				return scenarioDiamond()
			case "graph7":
				return scenarioGraph7()
			case "stress":
				return scenarioStress()
			case "late-edge":
				return scenarioLateEdge()
			case "pause-resume":
				return scenarioPauseResume()
			}
			return fmt.Errorf("unknown scenario %q", args[0])
		},
	}
	return cmd
}

// scenarioChain is S1: a linear chain A -> B -> C -> D.
func scenarioChain() error {
	c := newCoordinator()
	defer c.Close()

	var mu sync.Mutex
	var log []string
	record := func(name string) func() {
		return func() {
			mu.Lock()
			log = append(log, name)
			mu.Unlock()
		}
	}

	a := engine.NewJob("A", record("A"))
	b := engine.NewJob("B", record("B"))
	d := engine.NewJob("C", record("C"))
	e := engine.NewJob("D", record("D"))

	if err := c.Submit(a); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(b, []*engine.Job{a}); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(d, []*engine.Job{b}); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(e, []*engine.Job{d}); err != nil {
		return err
	}

	c.WaitForAllJobs()
	fmt.Printf("chain: %v\n", log)
	return nil
}

// scenarioDiamond is S2: A; B and C each depend on A; D depends on both.
func scenarioDiamond() error {
	c := newCoordinator()
	defer c.Close()

	var mu sync.Mutex
	var log []string
	record := func(name string) func() {
		return func() {
			mu.Lock()
			log = append(log, name)
			mu.Unlock()
		}
	}

	a := engine.NewJob("A", record("A"))
	b := engine.NewJob("B", record("B"))
	d := engine.NewJob("C", record("C"))
	e := engine.NewJob("D", record("D"))

	if err := c.Submit(a); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(b, []*engine.Job{a}); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(d, []*engine.Job{a}); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(e, []*engine.Job{b, d}); err != nil {
		return err
	}

	c.WaitForAllJobs()
	fmt.Printf("diamond: %v\n", log)
	return nil
}

// scenarioGraph7 is S3: the seven-job graph with dependants submitted
// before their predecessors.
func scenarioGraph7() error {
	c := newCoordinator()
	defer c.Close()

	var mu sync.Mutex
	finishedAt := map[string]int{}
	seq := 0
	record := func(name string) func() {
		return func() {
			mu.Lock()
			seq++
			finishedAt[name] = seq
			mu.Unlock()
		}
	}

	jobs := map[string]*engine.Job{}
	for _, name := range []string{"J1", "J2", "J3", "J4", "J5", "J6", "J7"} {
		jobs[name] = engine.NewJob(name, record(name))
	}

	if err := c.SubmitWithDependencies(jobs["J4"], []*engine.Job{jobs["J3"]}); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(jobs["J5"], []*engine.Job{jobs["J3"], jobs["J4"]}); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(jobs["J6"], []*engine.Job{jobs["J3"], jobs["J4"]}); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(jobs["J7"], []*engine.Job{jobs["J1"], jobs["J2"]}); err != nil {
		return err
	}
	if err := c.SubmitWithDependencies(jobs["J3"], []*engine.Job{jobs["J1"], jobs["J2"]}); err != nil {
		return err
	}
	if err := c.Submit(jobs["J1"]); err != nil {
		return err
	}
	if err := c.Submit(jobs["J2"]); err != nil {
		return err
	}

	c.WaitForAllJobs()

	mu.Lock()
	defer mu.Unlock()
	fmt.Printf("graph7 completion order: %v\n", finishedAt)
	return nil
}

// scenarioStress is S4: 1,000,000 independent jobs.
func scenarioStress() error {
	c := newCoordinator()
	defer c.Close()

	const n = 1_000_000
	var completed atomic.Int64
	for i := 0; i < n; i++ {
		if err := c.Submit(engine.NewJob("stress", func() { completed.Add(1) })); err != nil {
			return err
		}
	}

	c.WaitForAllJobs()
	fmt.Printf("stress: completed %d/%d\n", completed.Load(), n)
	c.PrintThreadUtilization()
	return nil
}

// scenarioLateEdge is S5: a predecessor that has already finished
// before a dependant tries to register against it.
func scenarioLateEdge() error {
	c := newCoordinator()
	defer c.Close()

	a := engine.NewJob("A", func() {})
	if err := c.Submit(a); err != nil {
		return err
	}
	c.Wait(a)

	var ran atomic.Bool
	z := engine.NewJob("Z", func() { ran.Store(true) })
	if err := c.SubmitWithDependencies(z, []*engine.Job{a}); err != nil {
		return err
	}
	c.Wait(z)

	fmt.Printf("late-edge: Z ran = %v\n", ran.Load())
	return nil
}

// scenarioPauseResume is S6: pause, submit 100 jobs, confirm no
// progress, resume, confirm completion.
func scenarioPauseResume() error {
	c := engine.New(resolvedWorkers(), engine.WithLogger(logger))
	defer c.Close()

	var count atomic.Int64
	for i := 0; i < 100; i++ {
		if err := c.Submit(engine.NewJob("job", func() { count.Add(1) })); err != nil {
			return err
		}
	}

	time.Sleep(20 * time.Millisecond)
	fmt.Printf("pause-resume: completed while paused = %d (want 0)\n", c.TotalCompleted())

	c.Resume()
	c.WaitForAllJobs()
	fmt.Printf("pause-resume: completed after resume = %d (want 100)\n", count.Load())
	return nil
}
