package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess      = 0
	ExitConfigFailed = 1 // one or more configurations produced no metrics
	ExitError        = 2
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "parabench",
	Short: "Benchmark harness for parallel computational kernels",
	Long: "parabench drives an external kernel executable across an algorithm-variant\n" +
		"and thread-count matrix, aggregates repeated trials, and derives speedup and\n" +
		"parallel-efficiency metrics against the sequential baseline.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)
		logrus.SetOutput(os.Stderr)
		return nil
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log verbosity: debug, info, warn, error")
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCompareCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}
