package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"parabench/internal/report"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <old.json> <new.json>",
		Short: "Compare two JSON reports of the same benchmark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldJSON, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			newJSON, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[1], err)
			}

			deltas, err := report.Compare(oldJSON, newJSON)
			if err != nil {
				return err
			}

			report.FormatDeltas(os.Stdout, gjson.GetBytes(newJSON, "benchmark").String(), deltas)
			return nil
		},
	}
}
