package main

import (
	"fmt"
	"sync"

	"github.com/loomwork/loom/internal/graphspec"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var diagnosticsDB string
	var adminAddr string

	cmd := &cobra.Command{
		Use:   "run <fixture.yaml>",
		Short: "Submit a YAML job-graph fixture and wait for it to complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphspec.Load(args[0])
			if err != nil {
				return err
			}

			c, closeSink, err := buildInstrumentedCoordinator(diagnosticsDB, adminAddr)
			if err != nil {
				return err
			}
			defer closeSink()
			defer c.Close()

			var mu sync.Mutex
			var order []string
			jobs, err := graphspec.Submit(c, g, func(name string) {
				mu.Lock()
				order = append(order, name)
				mu.Unlock()
			})
			if err != nil {
				return err
			}
			logger.Info("fixture submitted", "nodes", len(jobs))

			c.WaitForAllJobs()

			mu.Lock()
			fmt.Printf("completed %d nodes: %v\n", len(order), order)
			mu.Unlock()
			c.PrintThreadUtilization()
			return nil
		},
	}

	cmd.Flags().StringVar(&diagnosticsDB, "diagnostics-db", "", "optional SQLite path recording job lifecycle events")
	cmd.Flags().StringVar(&adminAddr, "admin-addr", "", "optional address to serve read-only introspection HTTP on, e.g. :8090")

	return cmd
}
