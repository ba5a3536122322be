package learner

import (
	"github.com/gofst/fstlearn/fst"
	"github.com/gofst/fstlearn/internal/table"
)

// buildHypothesis constructs a Transducer from a closed observation table
// (spec §4.5). State indices are assigned in the order tbl.AccessStrings()
// reports them, so a state's StateID always equals its index into that
// slice - this is what lets runInHypothesis map a reached state back to
// its access string without any extra bookkeeping.
//
// When withLookahead is true, every recorded lookahead triple also becomes
// an arc (spec §4.5, "For each lookahead triple... add arc").
func buildHypothesis(tbl *table.Table, withLookahead bool) (*fst.Transducer, error) {
	h := fst.New()
	accessStrings := tbl.AccessStrings()

	for srcIdx, acc := range accessStrings {
		for _, a := range tbl.Alphabet() {
			trans := acc.Concat(fst.Word{a})
			dst, ok := tbl.EquivClassOf(trans)
			if !ok {
				return nil, errTableNotClosed
			}
			dstIdx, ok := tbl.IndexOfAccessString(dst)
			if !ok {
				return nil, errTableNotClosed
			}
			out, _ := tbl.Cell(acc, fst.Word{a})
			if err := h.AddArc(fst.StateID(srcIdx), fst.StateID(dstIdx), fst.Word{a}, out); err != nil {
				return nil, err
			}
		}
	}

	if withLookahead {
		for _, la := range tbl.Lookaheads() {
			srcIdx, ok := tbl.IndexOfAccessString(la.S)
			if !ok {
				return nil, errTableNotClosed
			}
			dst, ok := tbl.EquivClassOf(la.S.Concat(la.U))
			if !ok {
				return nil, errTableNotClosed
			}
			dstIdx, ok := tbl.IndexOfAccessString(dst)
			if !ok {
				return nil, errTableNotClosed
			}
			if err := h.AddArc(fst.StateID(srcIdx), fst.StateID(dstIdx), la.U, la.V); err != nil {
				return nil, err
			}
		}
	}

	return h, nil
}

// runInHypothesis simulates hyp on inp using longest-match dispatch,
// stopping once the cursor reaches or passes index, and returns the
// access string for the state reached (spec §4.6/§4.4 "_run_in_hypothesis").
// ok is false if the simulation got stuck before reaching index - the
// "invalid-input" signal spec §4.8 says can only occur on the
// lookahead-detection path, where it means the access string is currently
// wrong and the evidence should be skipped.
func runInHypothesis(hyp *fst.Transducer, tbl *table.Table, inp fst.Word, index int) (acc fst.Word, ok bool) {
	accessStrings := tbl.AccessStrings()
	var state fst.StateID
	i := 0
	for i < len(inp) && i < index {
		arc, found := hyp.StepFrom(state, inp[i:])
		if !found {
			return nil, false
		}
		state = arc.Dst
		i += len(arc.In)
	}
	if int(state) >= len(accessStrings) {
		return nil, false
	}
	return accessStrings[state], true
}
