// Package batch collects per-item results so one failure does not hide its
// siblings. Statements in a file and files in a build are both aggregated
// this way.
package batch

import (
	"fmt"
	"strings"
)

// Result is one item's outcome.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail wraps a failure.
func Fail[T any](err error) Result[T] {
	var zero T
	return Result[T]{Value: zero, Err: err}
}

// Error lists every failure of a batch, with each item's index.
type Error struct {
	Failures []IndexedError
}

// IndexedError is one failure plus the index of the item that produced it.
type IndexedError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of the items failed:", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n  %d: %s", f.Index, f.Err)
	}
	return b.String()
}

// Unwrap exposes the individual failures so errors.Is and errors.As can
// match against any of them.
func (e *Error) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

// Collect partitions results into successes and failures. If any item failed
// it returns the successes it found together with a non-nil *Error listing
// every failure; callers may inspect the successes even on failure.
func Collect[T any](results []Result[T]) ([]T, error) {
	var values []T
	var failures []IndexedError
	for i, r := range results {
		if r.Err != nil {
			failures = append(failures, IndexedError{Index: i, Err: r.Err})
			continue
		}
		values = append(values, r.Value)
	}
	if len(failures) > 0 {
		return values, &Error{Failures: failures}
	}
	return values, nil
}
