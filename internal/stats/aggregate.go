package stats

import (
	"context"

	"github.com/sirupsen/logrus"

	"parabench/internal/core"
)

// MinSuccess is the explicit floor on surviving trials per configuration.
// Fewer successes than this is an AggregationError, not a thinner mean.
const MinSuccess = 1

// Aggregate runs repeats independent trials of one configuration, strictly
// one at a time (concurrent children would contend for CPU and corrupt the
// timing), drops failed trials, and reduces the survivors to arithmetic
// means. A non-nil error is either a *core.AggregationError (zero
// survivors) or a fatal launch error propagated from the invoker.
func Aggregate(ctx context.Context, invoke core.Invoker, v core.Variant, threads, repeats int) (core.AggregateSample, error) {
	var (
		timeSum   float64
		resultSum float64
		results   int
		successes int
	)

	for i := 0; i < repeats; i++ {
		trial, err := invoke.Invoke(ctx, v, threads)
		if err != nil {
			return core.AggregateSample{}, err
		}
		if !trial.OK {
			logrus.Warnf("dropping failed trial: %s threads=%d run=%d/%d: %s",
				v.Label, threads, i+1, repeats, trial.Err)
			continue
		}
		logrus.Debugf("trial %s threads=%d run=%d/%d: %.6fs",
			v.Label, threads, i+1, repeats, trial.Seconds)
		successes++
		timeSum += trial.Seconds
		if trial.Result != nil {
			results++
			resultSum += *trial.Result
		}
	}

	if successes < MinSuccess {
		return core.AggregateSample{}, &core.AggregationError{Variant: v, Threads: threads}
	}

	sample := core.AggregateSample{
		Variant:   v,
		Threads:   threads,
		MeanTime:  timeSum / float64(successes),
		Successes: successes,
	}
	if results > 0 {
		mean := resultSum / float64(results)
		sample.MeanResult = &mean
	}
	return sample, nil
}
