// Package driver enumerates the benchmark configuration matrix and
// orchestrates trial aggregation and metrics computation.
package driver

import (
	"context"
	"errors"
	"fmt"

	"parabench/internal/core"
	"parabench/internal/progress"
	"parabench/internal/stats"
)

// Failure names one configuration that produced no metrics record.
type Failure struct {
	Method  string
	Threads int
	Reason  string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s with %d threads: %s", f.Method, f.Threads, f.Reason)
}

// Driver runs the full (variant x thread-count) matrix for one spec.
// Configurations are never run concurrently against each other; wall-clock
// timing fidelity depends on one child process at a time.
type Driver struct {
	Spec    core.BenchmarkSpec
	Invoker core.Invoker
	Tracker *progress.Tracker                // optional live status
	Logf    func(format string, args ...any) // optional console lines
}

// Run executes sequential baselines first, then routes every parallel sweep
// to its own family's baseline. Per-configuration failures are recorded and
// skipped; the run aborts early only for a fatal launch error. On context
// cancellation the records collected so far are returned.
func (d *Driver) Run(ctx context.Context) ([]core.MetricsRecord, []Failure, error) {
	records := make([]core.MetricsRecord, 0, d.Spec.ConfigCount())
	var failures []Failure
	baselines := make(map[string]*core.AggregateSample)

	d.Tracker.SetTotal(d.Spec.ConfigCount())
	invoker := &countingInvoker{inner: d.Invoker, tracker: d.Tracker}

	for _, v := range d.Spec.SequentialVariants() {
		if ctx.Err() != nil {
			return records, failures, nil
		}
		d.logf("Testing %s...", v.Label)
		d.Tracker.SetCurrent(v.Label, 1)

		sample, err := stats.Aggregate(ctx, invoker, v, 1, d.Spec.Repeats)
		d.Tracker.ConfigDone()
		if err != nil {
			var aggErr *core.AggregationError
			if errors.As(err, &aggErr) {
				failures = append(failures, Failure{Method: v.Label, Threads: 1, Reason: aggErr.Error()})
				d.logf("  %s: FAILED", v.Label)
				continue
			}
			if errors.Is(err, context.Canceled) {
				return records, failures, nil
			}
			return records, failures, err
		}

		baselines[v.Family] = &sample
		rec, err := stats.ComputeMetrics(sample, &sample)
		if err != nil {
			return records, failures, err
		}
		records = append(records, rec)
		d.logf("  %s (baseline)", describeSample(sample))
	}

	for _, v := range d.Spec.ParallelVariants() {
		baseline := baselines[v.Family]
		d.logf("Testing %s...", v.Label)

		for _, threads := range d.Spec.Threads {
			if ctx.Err() != nil {
				return records, failures, nil
			}
			if baseline == nil {
				failures = append(failures, Failure{
					Method:  v.Label,
					Threads: threads,
					Reason:  "no sequential baseline for family " + v.Family,
				})
				d.Tracker.ConfigDone()
				continue
			}
			d.Tracker.SetCurrent(v.Label, threads)

			sample, err := stats.Aggregate(ctx, invoker, v, threads, d.Spec.Repeats)
			d.Tracker.ConfigDone()
			if err != nil {
				var aggErr *core.AggregationError
				if errors.As(err, &aggErr) {
					failures = append(failures, Failure{Method: v.Label, Threads: threads, Reason: aggErr.Error()})
					d.logf("  %2d threads: FAILED", threads)
					continue
				}
				if errors.Is(err, context.Canceled) {
					return records, failures, nil
				}
				return records, failures, err
			}

			rec, err := stats.ComputeMetrics(sample, baseline)
			if err != nil {
				return records, failures, err
			}
			records = append(records, rec)
			d.logf("  %2d threads: %.6fs, speedup: %.2fx, efficiency: %.2f",
				threads, rec.Seconds, rec.Speedup, rec.Efficiency)
		}
	}

	return records, failures, nil
}

// countingInvoker records one trial per invocation, so the progress trial
// counter reflects what actually ran rather than the configured repeat count.
type countingInvoker struct {
	inner   core.Invoker
	tracker *progress.Tracker
}

func (c *countingInvoker) Invoke(ctx context.Context, v core.Variant, threads int) (core.Trial, error) {
	c.tracker.TrialDone()
	return c.inner.Invoke(ctx, v, threads)
}

func (d *Driver) logf(format string, args ...any) {
	if d.Logf != nil {
		d.Logf(format, args...)
	}
}

func describeSample(s core.AggregateSample) string {
	if s.MeanResult != nil {
		return fmt.Sprintf("%s: %.6fs, result: %.8f", s.Variant.Label, s.MeanTime, *s.MeanResult)
	}
	return fmt.Sprintf("%s: %.6fs", s.Variant.Label, s.MeanTime)
}
