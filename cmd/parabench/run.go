package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"parabench/internal/config"
	"parabench/internal/driver"
	"parabench/internal/pacing"
	"parabench/internal/progress"
	"parabench/internal/report"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		kernel     string
		executable string
		threads    []int
		runs       int
		timeout    time.Duration
		cooldown   time.Duration
		csvPath    string
		jsonPath   string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full benchmark matrix and print the results table",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &config.Options{}
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				opts = loaded
			}

			// CLI flags override config file values.
			if kernel != "" {
				opts.Kernel = kernel
			}
			if executable != "" {
				opts.Executable = executable
			}
			if len(threads) > 0 {
				opts.Threads = threads
			}
			if runs > 0 {
				opts.Runs = runs
			}
			if timeout > 0 {
				opts.Timeout = config.Duration(timeout)
			}
			if cooldown > 0 {
				opts.Cooldown = config.Duration(cooldown)
			}

			spec, err := opts.Spec()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				<-sigCh
				if !quiet {
					fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, finishing current trial...")
				}
				cancel()
			}()

			tracker := &progress.Tracker{}
			prog := progress.NewProgress(tracker, quiet)

			prog.Printf("Parabench starting: %s, %d configurations, %d runs each",
				spec.Name, spec.ConfigCount(), spec.Repeats)

			d := &driver.Driver{
				Spec: spec,
				Invoker: &driver.KernelInvoker{
					Spec:  spec,
					Pacer: pacing.NewPacer(time.Duration(opts.Cooldown)),
				},
				Tracker: tracker,
				Logf:    prog.Printf,
			}

			prog.Start()
			records, failures, err := d.Run(ctx)
			prog.Stop()
			if err != nil {
				return err
			}

			report.FormatText(os.Stdout, spec, records, failures)

			if csvPath != "" {
				if err := writeArtifact(csvPath, func(f *os.File) error {
					return report.WriteCSV(f, spec, records)
				}); err != nil {
					return err
				}
				fmt.Printf("\nResults saved to %s\n", csvPath)
			}
			if jsonPath != "" {
				if err := writeArtifact(jsonPath, func(f *os.File) error {
					return report.WriteJSON(f, spec, records, failures)
				}); err != nil {
					return err
				}
				fmt.Printf("Report saved to %s\n", jsonPath)
			}

			if len(failures) > 0 {
				os.Exit(ExitConfigFailed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML options file")
	cmd.Flags().StringVar(&kernel, "kernel", "", "kernel family: integration or matmul")
	cmd.Flags().StringVar(&executable, "executable", "", "path to the kernel executable")
	cmd.Flags().IntSliceVar(&threads, "threads", nil, "thread-count sweep (default 1,2,4,8,16)")
	cmd.Flags().IntVar(&runs, "runs", 0, "trials per configuration (default 3)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-trial wall-clock budget")
	cmd.Flags().DurationVar(&cooldown, "cooldown", 0, "pause between trials")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write a CSV artifact to this path")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write a JSON report to this path")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress progress output during the sweep")

	return cmd
}

func writeArtifact(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
