// loomctl is the demo/benchmark CLI for the loom job scheduler: it
// submits named scenarios or YAML job-graph fixtures to a Coordinator
// and reports on completion and worker utilization. It is a
// demonstration harness only — an external collaborator of the
// scheduling core, never part of it.
package main

import (
	"log/slog"
	"os"

	"github.com/loomwork/loom/internal/config"
	"github.com/loomwork/loom/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagWorkers   int
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "loomctl",
		Short: "loomctl — demo and benchmark harness for the loom job scheduler",
		Long:  "loomctl submits named scenarios or YAML job-graph fixtures to a loom Coordinator and reports on completion and worker utilization.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
		},
		SilenceUsage: true,
	}

	cfg := config.DefaultEngineConfig()
	root.PersistentFlags().IntVar(&flagWorkers, "workers", cfg.Workers, "worker goroutine count (0 = runtime.NumCPU())")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", cfg.LogFormat, "log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newBenchCmd(),
		newScenarioCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
