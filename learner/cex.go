package learner

import (
	"github.com/gofst/fstlearn/fst"
	"github.com/gofst/fstlearn/internal/table"
)

// checkSuffix implements spec §4.6's "different at i" predicate: it
// compares the suffix the target emits past access_string+ce[index:]
// (relative to what access_string alone emits) against the suffix the
// target emits past ce (relative to what ce[:index] alone emits), and
// reports whether they disagree.
func checkSuffix(tbl *table.Table, ce, accessString fst.Word, index int, mq table.MembershipFunc) (bool, error) {
	prefixAS, err := mq(accessString)
	if err != nil {
		return false, err
	}
	fullAS, err := mq(accessString.Concat(ce[index:]))
	if err != nil {
		return false, err
	}
	prefixInp, err := mq(ce[:index])
	if err != nil {
		return false, err
	}
	fullInp, err := mq(ce)
	if err != nil {
		return false, err
	}

	asSuffix := fullAS[fst.CommonPrefixLen(prefixAS, fullAS):]
	inpSuffix := fullInp[fst.CommonPrefixLen(prefixInp, fullInp):]
	return !asSuffix.Equal(inpSuffix), nil
}

// processRS implements Rivest-Schapire counterexample processing (spec
// §4.6): binary search on an index into ce, maintaining same=0 (known
// equal) and diff=len(ce) (known different) until they are adjacent, then
// adding ce[diff:] as a new distinguishing suffix. This requires the
// current hypothesis since it simulates prefixes of ce against it; hyp
// must have single-symbol arcs only (the Mealy learner's invariant), which
// is why Lookahead never selects this strategy.
func processRS(tbl *table.Table, hyp *fst.Transducer, ce fst.Word, mq table.MembershipFunc) error {
	same, diff := 0, len(ce)
	for diff-same != 1 {
		i := (same + diff) / 2
		accessString, ok := runInHypothesis(hyp, tbl, ce, i)
		if !ok {
			// Spec §4.8: this path never occurs inside the Mealy
			// learner by construction - every (s, a) has a defined row.
			return errTableNotClosed
		}
		isDiff, err := checkSuffix(tbl, ce, accessString, i, mq)
		if err != nil {
			return err
		}
		if isDiff {
			diff = i
		} else {
			same = i
		}
	}
	exp := ce[diff:]
	_, err := tbl.AddSuffix(exp, mq)
	return err
}

// processSG implements Shahbaz-Groz counterexample processing (spec
// §4.7): find the longest prefix ce shares with any non-empty access
// string, then add every suffix of ce past that point, shortest first,
// refilling the table for each.
func processSG(tbl *table.Table, ce fst.Word, mq table.MembershipFunc) error {
	maxLen := 0
	for _, row := range tbl.AccessStrings() {
		if len(row) == 0 {
			continue
		}
		if n := fst.CommonPrefixLen(ce, row); n > maxLen {
			maxLen = n
		}
	}

	var suffix fst.Word
	for i := len(ce) - 1; i >= maxLen; i-- {
		suffix = append(fst.Word{ce[i]}, suffix...)
		if _, err := tbl.AddSuffix(suffix, mq); err != nil {
			return err
		}
	}
	return nil
}
