// Package report renders benchmark results as tables and artifacts for
// external plotting tools.
package report

import (
	"fmt"
	"io"

	"parabench/internal/core"
	"parabench/internal/driver"
)

// FormatText writes the terminal summary: run parameters, every failed
// configuration by name, then the results table. Records are printed in
// input order, which groups them by method.
func FormatText(w io.Writer, spec core.BenchmarkSpec, records []core.MetricsRecord, failures []driver.Failure) {
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Parabench - %s Results\n", spec.Name)
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Executable:   %s\n", spec.Executable)
	fmt.Fprintf(w, "Parameters:   %v\n", spec.FixedArgs)
	fmt.Fprintf(w, "Threads:      %v\n", spec.Threads)
	fmt.Fprintf(w, "Runs/config:  %d\n", spec.Repeats)

	if len(failures) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Failed configurations:")
		for _, f := range failures {
			fmt.Fprintf(w, "  ✗ %s\n", f)
		}
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "No results collected")
		return
	}

	withResult := spec.Accuracy != nil

	fmt.Fprintln(w, "")
	if withResult {
		fmt.Fprintf(w, "%-26s %7s %12s %14s %8s %11s\n",
			"Method", "Threads", "Time (s)", "Result", "Speedup", "Efficiency")
	} else {
		fmt.Fprintf(w, "%-26s %7s %12s %8s %11s\n",
			"Method", "Threads", "Time (s)", "Speedup", "Efficiency")
	}

	for _, r := range records {
		if withResult {
			fmt.Fprintf(w, "%-26s %7d %12.6f %14s %7.2fx %11.2f\n",
				r.Method, r.Threads, r.Seconds, formatResult(r.Result), r.Speedup, r.Efficiency)
		} else {
			fmt.Fprintf(w, "%-26s %7d %12.6f %7.2fx %11.2f\n",
				r.Method, r.Threads, r.Seconds, r.Speedup, r.Efficiency)
		}
	}
}

func formatResult(r *float64) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%.8f", *r)
}
