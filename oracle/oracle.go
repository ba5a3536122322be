// Package oracle defines the two abstract queries an active learner uses
// to interact with an unknown target function, plus small helpers for
// building equivalence oracles out of random sampling.
//
// Both Membership and Equivalence are borrowed for the duration of a
// single Learn call; neither is expected to be stateful between calls (a
// caller that needs caching wraps its own implementation — the engine has
// none of its own).
package oracle

import "github.com/gofst/fstlearn/fst"

// Membership answers "what does the target emit on this input word?".
// Implementations must be pure and deterministic: the same input must
// always produce the same output.
type Membership interface {
	Query(input fst.Word) (fst.Word, error)
}

// MembershipFunc adapts a plain function to the Membership interface.
type MembershipFunc func(fst.Word) (fst.Word, error)

// Query calls f.
func (f MembershipFunc) Query(input fst.Word) (fst.Word, error) {
	return f(input)
}

// Equivalence answers "does this hypothesis match the target everywhere?".
// When it does not, Query returns a counterexample word on which the
// hypothesis and the target disagree. The learner trusts that the
// counterexample is faithful (spec: "the learner assumes this faithfully").
type Equivalence interface {
	Query(hypothesis *fst.Transducer) (ok bool, counterexample fst.Word, err error)
}

// EquivalenceFunc adapts a plain function to the Equivalence interface.
type EquivalenceFunc func(*fst.Transducer) (bool, fst.Word, error)

// Query calls f.
func (f EquivalenceFunc) Query(hypothesis *fst.Transducer) (bool, fst.Word, error) {
	return f(hypothesis)
}
