package stats

import (
	"fmt"

	"parabench/internal/core"
)

// ComputeMetrics derives the speedup and efficiency record for one
// aggregated sample. Sequential samples are their own baseline: speedup and
// efficiency are fixed at 1.0 by definition rather than computed, so a
// noisy self-division never shows up in the output. Parallel samples
// require the matching family's sequential sample; the caller is
// responsible for correct family pairing.
func ComputeMetrics(sample core.AggregateSample, baseline *core.AggregateSample) (core.MetricsRecord, error) {
	rec := core.MetricsRecord{
		Method:  sample.Variant.Label,
		Threads: sample.Threads,
		Seconds: sample.MeanTime,
		Result:  sample.MeanResult,
	}

	if sample.Variant.Sequential {
		rec.Speedup = 1.0
		rec.Efficiency = 1.0
		return rec, nil
	}

	if baseline == nil {
		return core.MetricsRecord{}, fmt.Errorf("%s with %d threads: %w",
			sample.Variant.Label, sample.Threads, core.ErrMissingBaseline)
	}

	rec.Speedup = baseline.MeanTime / sample.MeanTime
	rec.Efficiency = rec.Speedup / float64(sample.Threads)
	return rec, nil
}
