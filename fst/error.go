package fst

import (
	"errors"
	"fmt"
)

// Common fst errors.
var (
	// ErrEmptyInput indicates AddArc was called with a zero-length input
	// label, which would violate the "non-empty input label" invariant.
	ErrEmptyInput = errors.New("fst: arc input label must be non-empty")

	// ErrDuplicateInput indicates AddArc would add a second arc leaving the
	// same state with an identical input label, violating the
	// determinism invariant.
	ErrDuplicateInput = errors.New("fst: duplicate input label at state")
)

// InvalidInputError is returned by Consume when no arc at the current state
// matches the remaining input.
type InvalidInputError struct {
	Input Word
	Pos   int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("fst: invalid input %v: no matching arc at position %d", e.Input, e.Pos)
}

// Is allows errors.Is(err, fst.ErrInvalidInput) to match any
// *InvalidInputError, matching the Kind-comparison pattern the teacher uses
// for its own structured errors.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ErrInvalidInput is the sentinel matched by InvalidInputError.Is, so
// callers that don't need the offending position can still write
// errors.Is(err, fst.ErrInvalidInput).
var ErrInvalidInput = errors.New("fst: invalid input")

// MalformedError wraps a parse failure in the text save/load format, with
// the offending line number and raw text for diagnostics.
type MalformedError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("fst: malformed line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, fst.ErrMalformed) to match any *MalformedError.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// ErrMalformed is the sentinel matched by MalformedError.Is.
var ErrMalformed = errors.New("fst: malformed external data")
