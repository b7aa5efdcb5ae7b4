package report

import (
	"strings"
	"testing"
	"time"

	"parabench/internal/core"
	"parabench/internal/driver"
)

func floatPtr(f float64) *float64 { return &f }

func sampleSpec(withResult bool) core.BenchmarkSpec {
	spec := core.BenchmarkSpec{
		Name:       "Matrix Multiplication",
		Executable: "./blocked-matrix-multiplication",
		FixedArgs:  []string{"1024", "128"},
		Threads:    []int{1, 2, 4},
		Repeats:    3,
		Timeout:    60 * time.Second,
		Fields:     3,
	}
	if withResult {
		spec.Name = "Numerical Integration"
		spec.Fields = 4
		spec.Accuracy = &core.Accuracy{Expected: 2.0, Tolerance: 0.01}
	}
	return spec
}

func sampleRecords() []core.MetricsRecord {
	return []core.MetricsRecord{
		{Method: "Sequential", Threads: 1, Seconds: 1.0, Speedup: 1.0, Efficiency: 1.0},
		{Method: "Blocked", Threads: 2, Seconds: 0.52, Speedup: 1.92, Efficiency: 0.96},
		{Method: "Blocked", Threads: 4, Seconds: 0.3, Speedup: 3.33, Efficiency: 0.83},
	}
}

func TestFormatText_Table(t *testing.T) {
	var buf strings.Builder
	FormatText(&buf, sampleSpec(false), sampleRecords(), nil)
	out := buf.String()

	for _, want := range []string{"Matrix Multiplication", "Method", "Speedup", "Efficiency", "Sequential", "Blocked"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Result") {
		t.Error("matmul table must not have a Result column")
	}
	if strings.Contains(out, "Failed configurations") {
		t.Error("no failures section expected")
	}
}

func TestFormatText_FailuresListedBeforeTable(t *testing.T) {
	failures := []driver.Failure{
		{Method: "Blocked", Threads: 8, Reason: "no successful trials"},
	}

	var buf strings.Builder
	FormatText(&buf, sampleSpec(false), sampleRecords(), failures)
	out := buf.String()

	failIdx := strings.Index(out, "Failed configurations")
	tableIdx := strings.Index(out, "Speedup")
	if failIdx == -1 {
		t.Fatalf("failures section missing:\n%s", out)
	}
	if !strings.Contains(out, "Blocked with 8 threads") {
		t.Errorf("failure must be named, got:\n%s", out)
	}
	if tableIdx != -1 && failIdx > tableIdx {
		t.Error("failed configurations must be listed before the results table")
	}
}

func TestFormatText_ResultColumn(t *testing.T) {
	records := []core.MetricsRecord{
		{Method: "Rectangle (Sequential)", Threads: 1, Seconds: 1.0, Result: floatPtr(1.99998), Speedup: 1.0, Efficiency: 1.0},
	}

	var buf strings.Builder
	FormatText(&buf, sampleSpec(true), records, nil)
	out := buf.String()

	if !strings.Contains(out, "Result") {
		t.Errorf("integration table must have a Result column:\n%s", out)
	}
	if !strings.Contains(out, "1.99998") {
		t.Errorf("result value missing:\n%s", out)
	}
}

func TestFormatText_NoRecords(t *testing.T) {
	var buf strings.Builder
	FormatText(&buf, sampleSpec(false), nil, nil)
	if !strings.Contains(buf.String(), "No results collected") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
