package main

import (
	"fmt"
	"sync/atomic"

	"github.com/loomwork/loom/pkg/engine"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var n int
	var diagnosticsDB string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Submit many independent jobs (the stress scenario, S4) and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeSink, err := buildInstrumentedCoordinator(diagnosticsDB, "")
			if err != nil {
				return err
			}
			defer closeSink()
			defer c.Close()

			var completed atomic.Int64
			for i := 0; i < n; i++ {
				if err := c.Submit(engine.NewJob("bench", func() { completed.Add(1) })); err != nil {
					return err
				}
			}

			c.WaitForAllJobs()

			fmt.Printf("completed %d/%d jobs\n", completed.Load(), n)
			c.PrintThreadUtilization()
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "jobs", 1_000_000, "number of independent jobs to submit")
	cmd.Flags().StringVar(&diagnosticsDB, "diagnostics-db", "", "optional SQLite path recording job lifecycle events")

	return cmd
}
