// Package stats aggregates repeated trials and derives performance metrics.
package stats

import "math"

// Validation is the outcome of checking a measured value against the
// analytically known answer.
type Validation struct {
	OK            bool
	RelativeError float64
}

// Validate compares measured against expected within a relative tolerance.
// Equality with the tolerance passes; only a strictly larger error is
// flagged. The caller surfaces a warning when OK is false but keeps the
// trial — accuracy violations never discard a timing measurement.
// Expected must be non-zero (kernels validate against non-zero analytic
// constants).
func Validate(measured, expected, tolerance float64) Validation {
	relErr := math.Abs(measured-expected) / math.Abs(expected)
	return Validation{
		OK:            relErr <= tolerance,
		RelativeError: relErr,
	}
}
