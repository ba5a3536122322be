// Package learner implements the L*-style active learning algorithms that
// infer a fst.Transducer from membership and equivalence oracles: the
// Mealy-machine learner (MealyLearner in spec terms) and its
// bounded-lookahead extension. It plays the orchestrator role the teacher
// assigns to package meta, coordinating the lower-level internal/table and
// fst packages to a result.
package learner

import "github.com/gofst/fstlearn/fst"

// Strategy selects the counterexample-processing procedure used by Mealy.
// The Lookahead learner always uses Shahbaz-Groz after its lookahead pass,
// per spec, so Strategy only applies to Mealy.
type Strategy int

const (
	// RivestSchapire performs a binary search over the counterexample and
	// adds exactly one distinguishing suffix per counterexample, using
	// O(log n) membership queries. This is the default: it is
	// exponentially better in query usage than Shahbaz-Groz.
	RivestSchapire Strategy = iota

	// ShahbazGroz adds every suffix of the counterexample past the longest
	// shared access-string prefix. Simpler, but can add many suffixes per
	// counterexample.
	ShahbazGroz
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case RivestSchapire:
		return "RivestSchapire"
	case ShahbazGroz:
		return "ShahbazGroz"
	default:
		return "Unknown"
	}
}

// Config controls learner construction.
type Config struct {
	// Alphabet is the finite input alphabet the target function is
	// defined over. Must be non-empty.
	Alphabet []fst.Symbol

	// Strategy selects the counterexample-processing procedure used by
	// Mealy. Ignored by Lookahead, which always uses Shahbaz-Groz.
	// Default: RivestSchapire.
	Strategy Strategy
}

// DefaultConfig returns a Config using RivestSchapire counterexample
// processing for the given alphabet.
func DefaultConfig(alphabet []fst.Symbol) Config {
	return Config{Alphabet: alphabet, Strategy: RivestSchapire}
}
