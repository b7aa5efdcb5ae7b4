package report

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// Delta is the change in one configuration between two JSON reports.
type Delta struct {
	Method     string
	Threads    int
	OldTime    float64
	NewTime    float64
	OldSpeedup float64
	NewSpeedup float64
}

// TimePct returns the relative time change in percent; negative is faster.
func (d Delta) TimePct() float64 {
	if d.OldTime == 0 {
		return 0
	}
	return (d.NewTime - d.OldTime) / d.OldTime * 100
}

// Compare matches the records of two JSON reports by (method, threads) and
// returns the per-configuration deltas, in the new report's record order.
// Configurations present in only one report are skipped.
func Compare(oldJSON, newJSON []byte) ([]Delta, error) {
	if !gjson.ValidBytes(oldJSON) {
		return nil, fmt.Errorf("old report is not valid JSON")
	}
	if !gjson.ValidBytes(newJSON) {
		return nil, fmt.Errorf("new report is not valid JSON")
	}

	oldBench := gjson.GetBytes(oldJSON, "benchmark").String()
	newBench := gjson.GetBytes(newJSON, "benchmark").String()
	if oldBench != newBench {
		return nil, fmt.Errorf("reports describe different benchmarks: %q vs %q", oldBench, newBench)
	}

	oldRecords := gjson.GetBytes(oldJSON, "records").Array()
	newRecords := gjson.GetBytes(newJSON, "records").Array()
	if len(newRecords) == 0 {
		return nil, fmt.Errorf("new report has no records")
	}

	var deltas []Delta
	for _, rec := range newRecords {
		method := rec.Get("method").String()
		threads := int(rec.Get("threads").Int())

		match, ok := findRecord(oldRecords, method, threads)
		if !ok {
			continue
		}

		deltas = append(deltas, Delta{
			Method:     method,
			Threads:    threads,
			OldTime:    match.Get("time").Float(),
			NewTime:    rec.Get("time").Float(),
			OldSpeedup: match.Get("speedup").Float(),
			NewSpeedup: rec.Get("speedup").Float(),
		})
	}
	return deltas, nil
}

func findRecord(records []gjson.Result, method string, threads int) (gjson.Result, bool) {
	for _, r := range records {
		if r.Get("method").String() == method && int(r.Get("threads").Int()) == threads {
			return r, true
		}
	}
	return gjson.Result{}, false
}

// FormatDeltas writes a comparison table for two runs of the same benchmark.
func FormatDeltas(w io.Writer, benchmark string, deltas []Delta) {
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Parabench - %s Comparison\n", benchmark)
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "")

	if len(deltas) == 0 {
		fmt.Fprintln(w, "No matching configurations")
		return
	}

	fmt.Fprintf(w, "%-26s %7s %12s %12s %8s %9s %9s\n",
		"Method", "Threads", "Old (s)", "New (s)", "Time", "Old spd", "New spd")
	for _, d := range deltas {
		fmt.Fprintf(w, "%-26s %7d %12.6f %12.6f %+7.1f%% %8.2fx %8.2fx\n",
			d.Method, d.Threads, d.OldTime, d.NewTime, d.TimePct(), d.OldSpeedup, d.NewSpeedup)
	}
}
