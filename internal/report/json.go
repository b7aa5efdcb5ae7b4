package report

import (
	"encoding/json"
	"io"

	"parabench/internal/core"
	"parabench/internal/driver"
)

type jsonRecord struct {
	Method     string   `json:"method"`
	Threads    int      `json:"threads"`
	Time       float64  `json:"time"`
	Result     *float64 `json:"result,omitempty"`
	Speedup    float64  `json:"speedup"`
	Efficiency float64  `json:"efficiency"`
}

// WriteJSON writes a self-describing report: benchmark identity and
// parameters alongside the records, so two reports can be compared later
// without the original config file.
func WriteJSON(w io.Writer, spec core.BenchmarkSpec, records []core.MetricsRecord, failures []driver.Failure) error {
	output := struct {
		Benchmark  string       `json:"benchmark"`
		Executable string       `json:"executable"`
		Parameters []string     `json:"parameters"`
		Threads    []int        `json:"threads"`
		Runs       int          `json:"runs"`
		Records    []jsonRecord `json:"records"`
		Failures   []string     `json:"failures,omitempty"`
	}{
		Benchmark:  spec.Name,
		Executable: spec.Executable,
		Parameters: spec.FixedArgs,
		Threads:    spec.Threads,
		Runs:       spec.Repeats,
		Records:    make([]jsonRecord, 0, len(records)),
	}

	for _, r := range records {
		output.Records = append(output.Records, jsonRecord{
			Method:     r.Method,
			Threads:    r.Threads,
			Time:       r.Seconds,
			Result:     r.Result,
			Speedup:    r.Speedup,
			Efficiency: r.Efficiency,
		})
	}
	for _, f := range failures {
		output.Failures = append(output.Failures, f.String())
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
