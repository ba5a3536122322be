package learner

import (
	"github.com/gofst/fstlearn/fst"
	"github.com/gofst/fstlearn/internal/table"
)

// Stats counts the oracle interaction a Learn call performed. The Python
// original surfaced this kind of detail through log lines
// ("Generated conjecture machine with %d states", one debug line per
// membership query); since this module carries no logging dependency
// (matching the teacher, which has none in its core packages), the same
// observability is exposed as plain returned data instead.
type Stats struct {
	// MembershipQueries counts calls made to the membership oracle.
	MembershipQueries int
	// EquivalenceQueries counts calls made to the equivalence oracle.
	EquivalenceQueries int
	// Counterexamples counts counterexamples processed.
	Counterexamples int
	// Closures counts the Promote calls made to close the observation
	// table.
	Closures int
}

// countingMQ wraps a table.MembershipFunc to tally queries into stats.
func countingMQ(stats *Stats, mq table.MembershipFunc) table.MembershipFunc {
	return func(w fst.Word) (fst.Word, error) {
		stats.MembershipQueries++
		return mq(w)
	}
}
