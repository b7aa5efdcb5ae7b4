// Package config handles benchmark options and YAML configuration parsing.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"parabench/internal/core"
)

// Kernel identifiers accepted in configuration.
const (
	KernelIntegration = "integration"
	KernelMatMul      = "matmul"
)

var defaultThreads = []int{1, 2, 4, 8, 16}

const (
	defaultRuns               = 3
	defaultIntegrationTimeout = 30 * time.Second
	defaultMatMulTimeout      = 60 * time.Second
)

// Duration wraps time.Duration so YAML can say "30s" instead of raw
// nanoseconds.
type Duration time.Duration

// UnmarshalYAML parses either a duration string or an integer second count.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parsing duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var secs int64
	if err := value.Decode(&secs); err != nil {
		return fmt.Errorf("invalid duration value on line %d", value.Line)
	}
	*d = Duration(time.Duration(secs) * time.Second)
	return nil
}

// Options is the caller-supplied benchmark surface: kernel parameters, the
// thread sweep and trials per configuration. Nothing here is baked into the
// core.
type Options struct {
	Kernel      string             `yaml:"kernel"`
	Executable  string             `yaml:"executable"`
	Threads     []int              `yaml:"threads,omitempty"`
	Runs        int                `yaml:"runs,omitempty"`
	Timeout     Duration           `yaml:"timeout,omitempty"`
	Cooldown    Duration           `yaml:"cooldown,omitempty"` // pause between trials
	Integration *IntegrationParams `yaml:"integration,omitempty"`
	MatMul      *MatMulParams      `yaml:"matmul,omitempty"`
}

// IntegrationParams fixes the numerical-integration kernel: bounds, step
// size and the analytically known answer used for accuracy validation.
type IntegrationParams struct {
	Lower     float64 `yaml:"lower"`
	Upper     float64 `yaml:"upper"`
	Step      float64 `yaml:"step"`
	Expected  float64 `yaml:"expected"`
	Tolerance float64 `yaml:"tolerance"`
}

// MatMulParams fixes the matrix-multiplication kernel.
type MatMulParams struct {
	Size  int `yaml:"size"`
	Block int `yaml:"block"`
}

// Load reads and parses a YAML options file.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &opts, nil
}

// Spec validates the options and builds the immutable BenchmarkSpec.
func (o *Options) Spec() (core.BenchmarkSpec, error) {
	if o.Executable == "" {
		return core.BenchmarkSpec{}, fmt.Errorf("executable is required")
	}
	threads := o.Threads
	if len(threads) == 0 {
		threads = defaultThreads
	}
	for _, t := range threads {
		if t < 1 {
			return core.BenchmarkSpec{}, fmt.Errorf("thread count must be >= 1, got %d", t)
		}
	}
	runs := o.Runs
	if runs == 0 {
		runs = defaultRuns
	}
	if runs < 1 {
		return core.BenchmarkSpec{}, fmt.Errorf("runs must be >= 1, got %d", runs)
	}

	switch o.Kernel {
	case KernelIntegration:
		return o.integrationSpec(threads, runs)
	case KernelMatMul:
		return o.matmulSpec(threads, runs)
	default:
		return core.BenchmarkSpec{}, fmt.Errorf("unknown kernel %q (want %q or %q)",
			o.Kernel, KernelIntegration, KernelMatMul)
	}
}

func (o *Options) integrationSpec(threads []int, runs int) (core.BenchmarkSpec, error) {
	p := IntegrationParams{}
	if o.Integration != nil {
		p = *o.Integration
	}
	// Defaults match the classic sin(x) over [0, pi] setup.
	if p.Upper == 0 && p.Lower == 0 {
		p.Upper = 3.14159
	}
	if p.Step == 0 {
		p.Step = 0.0001
	}
	if p.Expected == 0 {
		p.Expected = 2.0
	}
	if p.Tolerance == 0 {
		p.Tolerance = 0.01
	}

	if p.Step <= 0 {
		return core.BenchmarkSpec{}, fmt.Errorf("integration step must be > 0, got %g", p.Step)
	}
	if p.Upper <= p.Lower {
		return core.BenchmarkSpec{}, fmt.Errorf("integration bounds invalid: [%g, %g]", p.Lower, p.Upper)
	}

	timeout := time.Duration(o.Timeout)
	if timeout == 0 {
		timeout = defaultIntegrationTimeout
	}

	return core.BenchmarkSpec{
		Name:       "Numerical Integration",
		Executable: o.Executable,
		FixedArgs: []string{
			formatFloat(p.Lower),
			formatFloat(p.Upper),
			formatFloat(p.Step),
		},
		Variants: []core.Variant{
			{ID: 1, Label: "Rectangle (OpenMP)", Family: "rectangle"},
			{ID: 2, Label: "Trapezoidal (OpenMP)", Family: "trapezoid"},
			{ID: 3, Label: "Rectangle (Sequential)", Family: "rectangle", Sequential: true},
			{ID: 4, Label: "Trapezoidal (Sequential)", Family: "trapezoid", Sequential: true},
		},
		Threads: threads,
		Repeats: runs,
		Timeout: timeout,
		Fields:  4, // method,threads,time,area
		Accuracy: &core.Accuracy{
			Expected:  p.Expected,
			Tolerance: p.Tolerance,
		},
	}, nil
}

func (o *Options) matmulSpec(threads []int, runs int) (core.BenchmarkSpec, error) {
	p := MatMulParams{}
	if o.MatMul != nil {
		p = *o.MatMul
	}
	if p.Size == 0 {
		p.Size = 1024
	}
	if p.Block == 0 {
		p.Block = 128
	}

	if p.Size < 1 || p.Block < 1 {
		return core.BenchmarkSpec{}, fmt.Errorf("matrix size and block size must be >= 1")
	}
	if p.Size%p.Block != 0 {
		return core.BenchmarkSpec{}, fmt.Errorf("matrix size (%d) must be divisible by block size (%d)", p.Size, p.Block)
	}

	timeout := time.Duration(o.Timeout)
	if timeout == 0 {
		timeout = defaultMatMulTimeout
	}

	return core.BenchmarkSpec{
		Name:       "Matrix Multiplication",
		Executable: o.Executable,
		FixedArgs: []string{
			strconv.Itoa(p.Size),
			strconv.Itoa(p.Block),
		},
		Variants: []core.Variant{
			{ID: 1, Label: "Blocked", Family: "matmul"},
			{ID: 2, Label: "Standard", Family: "matmul"},
			{ID: 3, Label: "Sequential", Family: "matmul", Sequential: true},
		},
		Threads: threads,
		Repeats: runs,
		Timeout: timeout,
		Fields:  3, // method,threads,time
	}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
