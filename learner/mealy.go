package learner

import (
	"context"

	"github.com/gofst/fstlearn/fst"
	"github.com/gofst/fstlearn/internal/table"
	"github.com/gofst/fstlearn/oracle"
)

// Mealy implements spec §4.3: the L* main loop for transducers without
// lookahead, i.e. one that produces only single-symbol-input arcs.
type Mealy struct {
	cfg   Config
	mq    oracle.Membership
	eq    oracle.Equivalence
	stats Stats
}

// NewMealy constructs a Mealy learner. It returns ErrEmptyAlphabet if
// cfg.Alphabet is empty, and a wrapped ErrUnsupportedStrategy if
// cfg.Strategy is not one of RivestSchapire or ShahbazGroz.
func NewMealy(cfg Config, mq oracle.Membership, eq oracle.Equivalence) (*Mealy, error) {
	if len(cfg.Alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	switch cfg.Strategy {
	case RivestSchapire, ShahbazGroz:
	default:
		return nil, &strategyError{got: cfg.Strategy}
	}
	return &Mealy{cfg: cfg, mq: mq, eq: eq}, nil
}

// Stats returns the oracle-interaction counters accumulated by the most
// recent Learn call.
func (m *Mealy) Stats() Stats {
	return m.stats
}

// Learn runs the outer loop described in spec §4.3 to completion: init,
// then repeatedly close/hypothesize/equivalence-query/process-counterexample
// until the equivalence oracle accepts. ctx is checked once per iteration
// of the outer loop and before every membership query, so a caller can
// cancel a run against a slow external oracle; this is additive behaviour,
// not part of the original algorithm.
func (m *Mealy) Learn(ctx context.Context) (*fst.Transducer, error) {
	m.stats = Stats{}
	mq := m.membershipFunc(ctx)

	tbl := table.New(m.cfg.Alphabet)
	if err := tbl.Init(mq); err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, context.Cause(ctx)
		}

		for {
			closed, escaping := tbl.IsClosed()
			if closed {
				break
			}
			m.stats.Closures++
			if err := tbl.Promote(escaping, mq); err != nil {
				return nil, err
			}
		}

		hyp, err := buildHypothesis(tbl, false)
		if err != nil {
			return nil, err
		}

		m.stats.EquivalenceQueries++
		ok, ce, err := m.eq.Query(hyp)
		if err != nil {
			return nil, err
		}
		if ok {
			return hyp, nil
		}

		m.stats.Counterexamples++
		switch m.cfg.Strategy {
		case RivestSchapire:
			err = processRS(tbl, hyp, ce, mq)
		case ShahbazGroz:
			err = processSG(tbl, ce, mq)
		}
		if err != nil {
			return nil, err
		}
	}
}

// membershipFunc adapts m.mq into a counting, context-aware
// table.MembershipFunc.
func (m *Mealy) membershipFunc(ctx context.Context) table.MembershipFunc {
	return countingMQ(&m.stats, func(w fst.Word) (fst.Word, error) {
		if err := ctx.Err(); err != nil {
			return nil, context.Cause(ctx)
		}
		return m.mq.Query(w)
	})
}
