package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"parabench/internal/core"
	"parabench/internal/driver"
)

func reportJSON(t *testing.T, spec core.BenchmarkSpec, records []core.MetricsRecord, failures []driver.Failure) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteJSON(&buf, spec, records, failures); err != nil {
		t.Fatalf("writing report: %v", err)
	}
	return buf.Bytes()
}

func TestWriteJSON_Shape(t *testing.T) {
	failures := []driver.Failure{{Method: "Blocked", Threads: 16, Reason: "no successful trials"}}
	raw := reportJSON(t, sampleSpec(false), sampleRecords(), failures)

	var decoded struct {
		Benchmark string `json:"benchmark"`
		Records   []struct {
			Method  string  `json:"method"`
			Threads int     `json:"threads"`
			Speedup float64 `json:"speedup"`
		} `json:"records"`
		Failures []string `json:"failures"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.Benchmark != "Matrix Multiplication" {
		t.Errorf("expected benchmark name, got %q", decoded.Benchmark)
	}
	if len(decoded.Records) != 3 {
		t.Errorf("expected 3 records, got %d", len(decoded.Records))
	}
	if len(decoded.Failures) != 1 || !strings.Contains(decoded.Failures[0], "Blocked with 16 threads") {
		t.Errorf("unexpected failures: %v", decoded.Failures)
	}
}

func TestCompare_MatchesByMethodAndThreads(t *testing.T) {
	spec := sampleSpec(false)
	oldRecords := sampleRecords()
	newRecords := []core.MetricsRecord{
		{Method: "Sequential", Threads: 1, Seconds: 1.0, Speedup: 1.0, Efficiency: 1.0},
		{Method: "Blocked", Threads: 2, Seconds: 0.4, Speedup: 2.5, Efficiency: 1.25},
		{Method: "Blocked", Threads: 8, Seconds: 0.2, Speedup: 5.0, Efficiency: 0.625},
	}

	deltas, err := Compare(reportJSON(t, spec, oldRecords, nil), reportJSON(t, spec, newRecords, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Blocked@8 has no counterpart in the old report and is skipped.
	if len(deltas) != 2 {
		t.Fatalf("expected 2 matched configurations, got %d", len(deltas))
	}

	blocked := deltas[1]
	if blocked.Method != "Blocked" || blocked.Threads != 2 {
		t.Fatalf("unexpected delta: %+v", blocked)
	}
	if blocked.OldTime != 0.52 || blocked.NewTime != 0.4 {
		t.Errorf("expected times 0.52 -> 0.4, got %v -> %v", blocked.OldTime, blocked.NewTime)
	}
	wantPct := (0.4 - 0.52) / 0.52 * 100
	if math.Abs(blocked.TimePct()-wantPct) > 1e-9 {
		t.Errorf("expected %.2f%% time change, got %.2f%%", wantPct, blocked.TimePct())
	}
}

func TestCompare_DifferentBenchmarks(t *testing.T) {
	oldJSON := reportJSON(t, sampleSpec(false), sampleRecords(), nil)
	newJSON := reportJSON(t, sampleSpec(true), sampleRecords(), nil)

	if _, err := Compare(oldJSON, newJSON); err == nil {
		t.Error("expected error for mismatched benchmarks")
	}
}

func TestCompare_InvalidJSON(t *testing.T) {
	valid := reportJSON(t, sampleSpec(false), sampleRecords(), nil)

	if _, err := Compare([]byte("{broken"), valid); err == nil {
		t.Error("expected error for invalid old report")
	}
	if _, err := Compare(valid, []byte("{broken")); err == nil {
		t.Error("expected error for invalid new report")
	}
}

func TestCompare_EmptyNewReport(t *testing.T) {
	valid := reportJSON(t, sampleSpec(false), sampleRecords(), nil)
	empty := reportJSON(t, sampleSpec(false), nil, nil)

	if _, err := Compare(valid, empty); err == nil {
		t.Error("expected error for a new report with no records")
	}
}

func TestFormatDeltas_Table(t *testing.T) {
	deltas := []Delta{
		{Method: "Blocked", Threads: 4, OldTime: 0.3, NewTime: 0.27, OldSpeedup: 3.33, NewSpeedup: 3.7},
	}

	var buf strings.Builder
	FormatDeltas(&buf, "Matrix Multiplication", deltas)
	out := buf.String()

	for _, want := range []string{"Comparison", "Blocked", "-10.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDeltas_Empty(t *testing.T) {
	var buf strings.Builder
	FormatDeltas(&buf, "Matrix Multiplication", nil)
	if !strings.Contains(buf.String(), "No matching configurations") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
