// Package fst implements the transducer data structure learned and produced
// by the engine in package learner: a finite set of states connected by
// arcs labelled with multi-symbol input and output words.
//
// A Transducer is deterministic by construction: at most one arc leaving a
// state may match any given input word, with ties (an arc's input label
// being a prefix of another) resolved by preferring the longest matching
// label. State 0 is always the initial state and every state is final.
package fst

import "sort"

// Symbol is a single element of the input or output alphabet.
type Symbol int32

// Epsilon is the reserved sentinel denoting "no output". It is never a
// member of a caller-supplied input alphabet; it only ever appears as the
// sole element of an arc's output word.
const Epsilon Symbol = 0xFFFF

// Word is a sequence of symbols. Two words are equal when their elements
// are equal in order; the zero-length Word is the empty word.
type Word []Symbol

// Equal reports whether w and other contain the same symbols in the same
// order.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is a prefix of w.
func (w Word) HasPrefix(prefix Word) bool {
	if len(prefix) > len(w) {
		return false
	}
	for i := range prefix {
		if w[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	if w == nil {
		return nil
	}
	out := make(Word, len(w))
	copy(out, w)
	return out
}

// Concat returns a new word containing w followed by other. Neither
// argument is mutated.
func (w Word) Concat(other Word) Word {
	out := make(Word, 0, len(w)+len(other))
	out = append(out, w...)
	out = append(out, other...)
	return out
}

// CommonPrefixLen returns the length of the longest common prefix of a and b.
func CommonPrefixLen(a, b Word) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// isEpsilonOutput reports whether out is the canonical "empty output"
// encoding: a single Epsilon symbol.
func isEpsilonOutput(out Word) bool {
	return len(out) == 1 && out[0] == Epsilon
}

// StateID uniquely identifies a state within a Transducer.
type StateID uint32

// InvalidState is returned where no valid state exists.
const InvalidState StateID = 0xFFFFFFFF

// Arc is a labelled transition from a source state to a destination state.
type Arc struct {
	Src StateID
	Dst StateID
	// In is the input word consumed by this arc. Always non-empty.
	In Word
	// Out is the output word emitted by this arc. Either non-empty or
	// exactly {Epsilon}.
	Out Word
}

// state holds the outgoing arcs for one state. All states are final
// (spec: "Every state is final"); there is no separate accepting flag.
type state struct {
	arcs []Arc
}

// Transducer is a finite-state transducer: a deterministic set of states
// and arcs, simulated by longest-match input consumption.
type Transducer struct {
	states []state
}

// New returns a fresh Transducer with state 0 already present as the
// initial state.
func New() *Transducer {
	return &Transducer{states: make([]state, 1)}
}

// growTo ensures that state indices up to and including id exist.
func (t *Transducer) growTo(id StateID) {
	for StateID(len(t.states)) <= id {
		t.states = append(t.states, state{})
	}
}

// AddArc appends an arc from src to dst labelled (in, out). States
// referenced by src or dst that do not yet exist are created with default
// (final, empty) properties, matching the behaviour of an incrementally
// built hypothesis where states are discovered in arbitrary order.
//
// AddArc returns ErrEmptyInput if in is empty, and ErrDuplicateInput if src
// already has an outgoing arc with an identical input label (this would
// violate the determinism invariant).
func (t *Transducer) AddArc(src, dst StateID, in, out Word) error {
	if len(in) == 0 {
		return ErrEmptyInput
	}
	if len(out) == 0 {
		out = Word{Epsilon}
	}

	top := src
	if dst > top {
		top = dst
	}
	t.growTo(top)

	for _, existing := range t.states[src].arcs {
		if existing.In.Equal(in) {
			return ErrDuplicateInput
		}
	}

	t.states[src].arcs = append(t.states[src].arcs, Arc{
		Src: src,
		Dst: dst,
		In:  in.Clone(),
		Out: out.Clone(),
	})
	return nil
}

// StateCount returns the number of states currently in the transducer,
// including state 0.
func (t *Transducer) StateCount() int {
	return len(t.states)
}

// ArcsOf returns the arcs leaving the given state, longest input label
// first, matching the order Consume uses for matching.
func (t *Transducer) ArcsOf(s StateID) []Arc {
	if int(s) >= len(t.states) {
		return nil
	}
	arcs := append([]Arc(nil), t.states[s].arcs...)
	sort.SliceStable(arcs, func(i, j int) bool {
		return len(arcs[i].In) > len(arcs[j].In)
	})
	return arcs
}

// Consume runs the simulation semantics described in the package doc: from
// state 0, repeatedly take the matching arc with the longest input label,
// append its output (dropping Epsilon), and advance. It returns
// ErrInvalidInput, wrapped with the stuck cursor position, if no arc
// matches at some point.
func (t *Transducer) Consume(input Word) (Word, error) {
	out := make(Word, 0, len(input))
	var cur StateID
	i := 0
	for i < len(input) {
		arc, ok := t.matchAt(cur, input[i:])
		if !ok {
			return nil, &InvalidInputError{Input: input.Clone(), Pos: i}
		}
		if !isEpsilonOutput(arc.Out) {
			out = append(out, arc.Out...)
		}
		i += len(arc.In)
		cur = arc.Dst
	}
	return out, nil
}

// StepFrom returns the longest-input-label arc leaving state s whose input
// label is a prefix of remaining, if any. It is the single-step building
// block Consume uses internally, exposed so callers driving a partial
// simulation (e.g. to locate the access string reached after some prefix
// of an input, as the counterexample processors do) don't have to
// reimplement longest-match dispatch.
func (t *Transducer) StepFrom(s StateID, remaining Word) (Arc, bool) {
	return t.matchAt(s, remaining)
}

// matchAt returns the longest-input-label arc leaving state s whose input
// label is a prefix of remaining, if any.
func (t *Transducer) matchAt(s StateID, remaining Word) (Arc, bool) {
	if int(s) >= len(t.states) {
		return Arc{}, false
	}
	var best Arc
	found := false
	for _, arc := range t.states[s].arcs {
		if len(arc.In) > len(remaining) {
			continue
		}
		if !remaining[:len(arc.In)].Equal(arc.In) {
			continue
		}
		if !found || len(arc.In) > len(best.In) {
			best = arc
			found = true
		}
	}
	return best, found
}

// Alphabet returns the sorted, de-duplicated set of input symbols that
// appear in any arc's input label.
func (t *Transducer) Alphabet() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, st := range t.states {
		for _, arc := range st.arcs {
			for _, sym := range arc.In {
				seen[sym] = struct{}{}
			}
		}
	}
	out := make([]Symbol, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether a and b are structurally identical from state 0:
// walking both graphs in lockstep, every pair of reached states must have
// the same number of arcs with equal input and output labels. Structurally
// equal transducers simulate identically; transducers that simulate
// identically but split their arcs differently are reported as not Equal.
// It is used to check the "idempotence" and "round-trip" properties
// (save/load or two independent learning runs should agree).
func Equal(a, b *Transducer) bool {
	if a == nil || b == nil {
		return a == b
	}
	type pair struct{ as, bs StateID }
	visited := make(map[pair]bool)
	var walk func(as, bs StateID) bool
	walk = func(as, bs StateID) bool {
		p := pair{as, bs}
		if visited[p] {
			return true
		}
		visited[p] = true

		aArcs := a.ArcsOf(as)
		bArcs := b.ArcsOf(bs)
		if len(aArcs) != len(bArcs) {
			return false
		}
		sort.SliceStable(aArcs, func(i, j int) bool { return lessArc(aArcs[i], aArcs[j]) })
		sort.SliceStable(bArcs, func(i, j int) bool { return lessArc(bArcs[i], bArcs[j]) })
		for i := range aArcs {
			if !aArcs[i].In.Equal(bArcs[i].In) || !aArcs[i].Out.Equal(bArcs[i].Out) {
				return false
			}
			if !walk(aArcs[i].Dst, bArcs[i].Dst) {
				return false
			}
		}
		return true
	}
	return walk(0, 0)
}

func lessArc(a, b Arc) bool {
	n := len(a.In)
	if len(b.In) < n {
		n = len(b.In)
	}
	for i := 0; i < n; i++ {
		if a.In[i] != b.In[i] {
			return a.In[i] < b.In[i]
		}
	}
	return len(a.In) < len(b.In)
}
