package learner

import (
	"errors"
	"fmt"
)

// ErrUnsupportedStrategy indicates a learner was constructed with a
// Strategy value not handled by this package. This is a fatal,
// surface-immediately error (spec: "unsupported-strategy ... fatal").
var ErrUnsupportedStrategy = errors.New("learner: unsupported counterexample processing strategy")

// ErrEmptyAlphabet indicates a learner was constructed with no input
// alphabet.
var ErrEmptyAlphabet = errors.New("learner: input alphabet must be non-empty")

// strategyError wraps ErrUnsupportedStrategy with the offending value.
type strategyError struct {
	got Strategy
}

func (e *strategyError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnsupportedStrategy, int(e.got))
}

func (e *strategyError) Unwrap() error {
	return ErrUnsupportedStrategy
}

// errTableNotClosed indicates a logic error: hypothesis construction found
// a row with no recorded equivalence class, or Rivest-Schapire processing
// could not simulate the hypothesis up to its split index. Neither happens
// when the outer loop closes the table first. It is not swallowed: Learn
// returns it to its caller, and the loop does not retry.
var errTableNotClosed = errors.New("learner: hypothesis construction attempted on non-closed table")
