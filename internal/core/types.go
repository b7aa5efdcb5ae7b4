// Package core defines the fundamental types shared by the benchmark harness.
package core

import (
	"context"
	"strconv"
	"time"
)

// Variant identifies one algorithmic approach under test.
type Variant struct {
	ID         int    // numeric id passed to the kernel executable
	Label      string // human-readable name, e.g. "Rectangle (OpenMP)"
	Family     string // baseline family; a parallel variant is compared against the sequential variant of the same family
	Sequential bool
}

// Accuracy describes the analytically known answer a kernel must reproduce.
type Accuracy struct {
	Expected  float64
	Tolerance float64 // relative tolerance, e.g. 0.01 for 1%
}

// BenchmarkSpec is the immutable description of one kernel family:
// the executable, its fixed parameters, the variant set and the thread sweep.
type BenchmarkSpec struct {
	Name       string
	Executable string
	FixedArgs  []string // kernel-specific leading argv (bounds+step, or size+block)
	Variants   []Variant
	Threads    []int // ordered sweep, every entry >= 1
	Repeats    int   // trials per configuration
	Timeout    time.Duration
	Fields     int       // expected CSV field count on stdout
	Accuracy   *Accuracy // nil when the kernel reports no result value
}

// Args builds the positional argument vector for one invocation:
// <fixed-params...> <variant_id> <thread_count>.
func (s BenchmarkSpec) Args(v Variant, threads int) []string {
	args := make([]string, 0, len(s.FixedArgs)+2)
	args = append(args, s.FixedArgs...)
	args = append(args, strconv.Itoa(v.ID), strconv.Itoa(threads))
	return args
}

// ConfigCount returns the number of configurations in the full matrix:
// one per sequential variant plus a full thread sweep per parallel variant.
func (s BenchmarkSpec) ConfigCount() int {
	n := 0
	for _, v := range s.Variants {
		if v.Sequential {
			n++
		} else {
			n += len(s.Threads)
		}
	}
	return n
}

// SequentialVariants returns the baseline variants in declaration order.
func (s BenchmarkSpec) SequentialVariants() []Variant {
	var out []Variant
	for _, v := range s.Variants {
		if v.Sequential {
			out = append(out, v)
		}
	}
	return out
}

// ParallelVariants returns the non-baseline variants in declaration order.
func (s BenchmarkSpec) ParallelVariants() []Variant {
	var out []Variant
	for _, v := range s.Variants {
		if !v.Sequential {
			out = append(out, v)
		}
	}
	return out
}

// Trial is one raw kernel invocation. Trials live only inside a single
// aggregation step and are never persisted.
type Trial struct {
	Variant Variant
	Threads int
	Seconds float64  // kernel-reported wall-clock time
	Result  *float64 // computed value, nil for kernels that report none
	OK      bool
	Err     string // diagnostic when !OK
}

// AggregateSample reduces the successful trials of one (variant, threads)
// configuration to mean time and mean result.
type AggregateSample struct {
	Variant    Variant
	Threads    int
	MeanTime   float64
	MeanResult *float64
	Successes  int // always >= 1; zero successes is an aggregation failure
}

// MetricsRecord is the final persisted unit for one configuration.
type MetricsRecord struct {
	Method     string
	Threads    int
	Seconds    float64
	Result     *float64
	Speedup    float64
	Efficiency float64
}

// Invoker runs one trial of a configuration. Implementations issue exactly
// one child process per call and block until it completes, times out or
// fails to launch. The returned error is reserved for failures fatal to the
// whole run (a missing or unexecutable kernel); ordinary trial failures are
// reported through Trial.OK.
type Invoker interface {
	Invoke(ctx context.Context, v Variant, threads int) (Trial, error)
}
