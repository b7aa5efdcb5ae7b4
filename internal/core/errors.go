package core

import (
	"errors"
	"fmt"
)

// ErrMissingBaseline indicates a parallel sample was presented for metrics
// computation before its family's sequential baseline existed. Correct
// driver logic never produces this; treat it as a programmer error.
var ErrMissingBaseline = errors.New("missing sequential baseline")

// AggregationError reports that every trial of one configuration failed,
// leaving nothing to average. The driver skips the configuration and
// continues with the rest of the matrix.
type AggregationError struct {
	Variant Variant
	Threads int
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("no successful trials for %s with %d threads", e.Variant.Label, e.Threads)
}

// LaunchError reports that the kernel executable could not be started at
// all (missing or unexecutable). Fatal to the whole run.
type LaunchError struct {
	Executable string
	Err        error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching %s: %v", e.Executable, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
