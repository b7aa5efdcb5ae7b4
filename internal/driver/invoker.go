package driver

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"parabench/internal/core"
	"parabench/internal/pacing"
	"parabench/internal/parser"
	"parabench/internal/runner"
	"parabench/internal/stats"
)

// KernelInvoker runs one trial against the real kernel executable:
// process invocation, output parsing and accuracy validation.
type KernelInvoker struct {
	Spec  core.BenchmarkSpec
	Pacer *pacing.Pacer
}

// Invoke issues a single child process and turns its outcome into a Trial.
// Sequential variants are always invoked with one thread; the kernel still
// requires the argument positionally.
func (k *KernelInvoker) Invoke(ctx context.Context, v core.Variant, threads int) (core.Trial, error) {
	if v.Sequential {
		threads = 1
	}
	if err := k.Pacer.Wait(ctx); err != nil {
		return core.Trial{}, err
	}

	trial := core.Trial{Variant: v, Threads: threads}
	args := k.Spec.Args(v, threads)

	outcome := runner.Run(ctx, k.Spec.Executable, args, k.Spec.Timeout)
	switch outcome.Status {
	case runner.LaunchFailed:
		return core.Trial{}, &core.LaunchError{Executable: k.Spec.Executable, Err: outcome.Err}
	case runner.TimedOut:
		trial.Err = fmt.Sprintf("timed out after %v", k.Spec.Timeout)
		return trial, nil
	}

	if outcome.ExitCode != 0 {
		trial.Err = fmt.Sprintf("exit status %d: %s", outcome.ExitCode, firstLine(outcome.Stderr))
		return trial, nil
	}

	rec, err := parser.Parse(outcome.Stdout, k.Spec.Fields)
	if err != nil {
		trial.Err = err.Error()
		return trial, nil
	}

	trial.Seconds = rec.Seconds
	trial.Result = rec.Result
	trial.OK = true

	if k.Spec.Accuracy != nil && rec.Result != nil {
		check := stats.Validate(*rec.Result, k.Spec.Accuracy.Expected, k.Spec.Accuracy.Tolerance)
		if !check.OK {
			logrus.Warnf("large numerical error (%.3f) for %s with %d threads",
				check.RelativeError, v.Label, threads)
		}
	}
	return trial, nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' || r == '\r' {
			return s[:i]
		}
	}
	return s
}
