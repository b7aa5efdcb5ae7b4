// Package parser interprets the kernel wire format: a single CSV line on
// stdout of the form variant_id,thread_count,elapsed_seconds[,result_value].
package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is the typed form of one kernel output line.
type Record struct {
	Variant int
	Threads int
	Seconds float64
	Result  *float64 // present only when the kernel reports a computed value
}

// ParseError carries the offending raw text so failures can be diagnosed
// without rerunning the kernel.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected kernel output %q: %s", e.Raw, e.Reason)
}

// Parse interprets raw stdout as exactly one CSV line with the given field
// count. Malformed output never yields a partial record.
func Parse(raw string, fields int) (Record, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Record{}, &ParseError{Raw: raw, Reason: "empty output"}
	}
	if strings.ContainsAny(trimmed, "\r\n") {
		return Record{}, &ParseError{Raw: raw, Reason: "expected a single line"}
	}

	parts := strings.Split(trimmed, ",")
	if len(parts) != fields {
		return Record{}, &ParseError{
			Raw:    raw,
			Reason: fmt.Sprintf("expected %d fields, got %d", fields, len(parts)),
		}
	}

	variant, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Record{}, &ParseError{Raw: raw, Reason: "non-numeric variant id"}
	}
	threads, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Record{}, &ParseError{Raw: raw, Reason: "non-numeric thread count"}
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return Record{}, &ParseError{Raw: raw, Reason: "non-numeric elapsed time"}
	}

	rec := Record{Variant: variant, Threads: threads, Seconds: seconds}
	if fields >= 4 {
		result, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return Record{}, &ParseError{Raw: raw, Reason: "non-numeric result value"}
		}
		rec.Result = &result
	}
	return rec, nil
}
