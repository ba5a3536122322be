// Package table implements the L*-style observation table used by the
// learners in package learner. It is an internal bookkeeping structure:
// callers of this module only ever see package learner's public API, the
// same way the teacher keeps its NFA determinization bookkeeping
// (internal/sparse) unexported behind the public dfa/lazy package.
package table

import (
	"github.com/gofst/fstlearn/fst"
	"github.com/gofst/fstlearn/internal/wordset"
)

// MembershipFunc answers a single membership query. It mirrors
// oracle.Membership.Query without this package depending on the public
// oracle package.
type MembershipFunc func(fst.Word) (fst.Word, error)

// Lookahead is a discovered multi-symbol transition: taking input U from
// the state reached by access string S emits output V.
type Lookahead struct {
	S fst.Word
	U fst.Word
	V fst.Word
}

// Table is the two-dimensional observation table: S (access strings), T
// (one-step transitions), E (distinguishing suffixes), and for the
// lookahead learner L (discovered multi-symbol lookahead transitions).
type Table struct {
	alphabet []fst.Symbol

	s *wordset.Set
	t *wordset.Set
	e *wordset.Set
	l []Lookahead

	cells      map[string]fst.Word
	equivClass map[string]fst.Word
}

func cellKey(row, col fst.Word) string {
	// A length-prefixed encoding keeps rows/cols unambiguous even when
	// symbols could otherwise make a naive concatenation collide.
	b := make([]byte, 0, (len(row)+len(col))*4+8)
	b = appendWord(b, row)
	b = appendWord(b, col)
	return string(b)
}

func appendWord(b []byte, w fst.Word) []byte {
	n := len(w)
	b = append(b, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	for _, sym := range w {
		b = append(b, byte(sym>>24), byte(sym>>16), byte(sym>>8), byte(sym))
	}
	return b
}

func rowKey(w fst.Word) string {
	return cellKey(w, nil)
}

// New returns an initialized, empty Table for the given input alphabet.
// Callers must still call Init to perform the spec's initialization step
// (S={epsilon}, T={(a)}, E={(a)}, all rows filled).
func New(alphabet []fst.Symbol) *Table {
	return &Table{
		alphabet:   append([]fst.Symbol(nil), alphabet...),
		s:          wordset.New(),
		t:          wordset.New(),
		e:          wordset.New(),
		cells:      make(map[string]fst.Word),
		equivClass: make(map[string]fst.Word),
	}
}

// Alphabet returns the table's input alphabet.
func (tbl *Table) Alphabet() []fst.Symbol {
	return tbl.alphabet
}

// Init performs the spec's table initialization: S = {epsilon}, T = { (a) |
// a in I }, E = { (a) | a in I }, with every row filled across every
// column.
func (tbl *Table) Init(mq MembershipFunc) error {
	tbl.s.Insert(fst.Word{})
	for _, a := range tbl.alphabet {
		tbl.t.Insert(fst.Word{a})
		tbl.e.Insert(fst.Word{a})
	}
	for _, col := range tbl.e.Items() {
		if err := tbl.Fill(fst.Word{}, col, mq); err != nil {
			return err
		}
	}
	for _, row := range tbl.t.Items() {
		for _, col := range tbl.e.Items() {
			if err := tbl.Fill(row, col, mq); err != nil {
				return err
			}
		}
	}
	return nil
}

// Fill computes and stores the suffix-isolated table entry for (row, col):
// let p = MQ(row), f = MQ(row++col); the entry is f with the longest
// common prefix of p and f stripped.
func (tbl *Table) Fill(row, col fst.Word, mq MembershipFunc) error {
	prefix, err := mq(row)
	if err != nil {
		return err
	}
	full, err := mq(row.Concat(col))
	if err != nil {
		return err
	}
	n := fst.CommonPrefixLen(prefix, full)
	tbl.cells[cellKey(row, col)] = full[n:].Clone()
	return nil
}

// Cell returns the entry at (row, col) and whether it has been filled.
func (tbl *Table) Cell(row, col fst.Word) (fst.Word, bool) {
	v, ok := tbl.cells[cellKey(row, col)]
	return v, ok
}

// rowVector returns the concatenation of row's cells across every
// distinguishing suffix, in E's insertion order. Two rows with identical
// rowVectors are equivalent.
func (tbl *Table) rowVector(row fst.Word) string {
	var b []byte
	for _, col := range tbl.e.Items() {
		v, _ := tbl.Cell(row, col)
		b = appendWord(b, v)
	}
	return string(b)
}

// IsClosed scans every transition row and every lookahead-extension row
// (s++u for each recorded lookahead (s,u,_)); it returns (true, nil) if
// each one's row vector matches some access row's, otherwise (false, row)
// for the first escaping row found. Matches found along the way are
// recorded in the equivalence-class map even if a later row ends up
// escaping, mirroring the original implementation's incremental
// bookkeeping.
func (tbl *Table) IsClosed() (bool, fst.Word) {
	check := func(row fst.Word) (fst.Word, bool) {
		rv := tbl.rowVector(row)
		for _, acc := range tbl.s.Items() {
			if tbl.rowVector(acc) == rv {
				return acc, true
			}
		}
		return nil, false
	}

	for _, trans := range tbl.t.Items() {
		acc, ok := check(trans)
		if !ok {
			return false, trans
		}
		tbl.equivClass[rowKey(trans)] = acc
	}
	for _, la := range tbl.l {
		row := la.S.Concat(la.U)
		acc, ok := check(row)
		if !ok {
			return false, row
		}
		tbl.equivClass[rowKey(row)] = acc
	}
	return true, nil
}

// EquivClassOf returns the access string row is equivalent to, as recorded
// by the most recent IsClosed call.
func (tbl *Table) EquivClassOf(row fst.Word) (fst.Word, bool) {
	acc, ok := tbl.equivClass[rowKey(row)]
	return acc, ok
}

// AddSuffix appends col to E if not already present, filling the new
// column across every access row, transition row, and lookahead-extension
// row. It reports whether col was newly added.
func (tbl *Table) AddSuffix(col fst.Word, mq MembershipFunc) (bool, error) {
	if !tbl.e.Insert(col) {
		return false, nil
	}
	for _, row := range tbl.allRows() {
		if err := tbl.Fill(row, col, mq); err != nil {
			return true, err
		}
	}
	return true, nil
}

// allRows returns every row the table currently tracks: access strings,
// transitions, and lookahead-extension rows.
func (tbl *Table) allRows() []fst.Word {
	rows := make([]fst.Word, 0, tbl.s.Len()+tbl.t.Len()+len(tbl.l))
	rows = append(rows, tbl.s.Items()...)
	rows = append(rows, tbl.t.Items()...)
	for _, la := range tbl.l {
		rows = append(rows, la.S.Concat(la.U))
	}
	return rows
}

// Promote adds row (a transition row) to S, and appends its one-symbol
// extensions to T, filling each across every distinguishing suffix. The
// row itself stays in T as well, so IsClosed keeps recording its
// equivalence class.
func (tbl *Table) Promote(row fst.Word, mq MembershipFunc) error {
	tbl.s.Insert(row)
	for _, a := range tbl.alphabet {
		ext := row.Concat(fst.Word{a})
		tbl.t.Insert(ext)
		for _, col := range tbl.e.Items() {
			if err := tbl.Fill(ext, col, mq); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddLookahead idempotently records a lookahead triple (s, u, v). It
// reports whether the triple was newly added; the caller is responsible
// for filling the new row (s++u) across E afterward, e.g. via FillRow.
func (tbl *Table) AddLookahead(s, u, v fst.Word) bool {
	for _, la := range tbl.l {
		if la.S.Equal(s) && la.U.Equal(u) && la.V.Equal(v) {
			return false
		}
	}
	tbl.l = append(tbl.l, Lookahead{S: s.Clone(), U: u.Clone(), V: v.Clone()})
	return true
}

// FillRow fills row across every current distinguishing suffix. It is
// used after AddLookahead to populate the new s++u row.
func (tbl *Table) FillRow(row fst.Word, mq MembershipFunc) error {
	for _, col := range tbl.e.Items() {
		if err := tbl.Fill(row, col, mq); err != nil {
			return err
		}
	}
	return nil
}

// AccessStrings returns S in insertion order.
func (tbl *Table) AccessStrings() []fst.Word { return tbl.s.Items() }

// Transitions returns T in insertion order.
func (tbl *Table) Transitions() []fst.Word { return tbl.t.Items() }

// Suffixes returns E in insertion order.
func (tbl *Table) Suffixes() []fst.Word { return tbl.e.Items() }

// Lookaheads returns L in insertion order.
func (tbl *Table) Lookaheads() []Lookahead { return tbl.l }

// IndexOfAccessString returns the position of acc within S, used by
// hypothesis construction to map access strings to dense state indices.
func (tbl *Table) IndexOfAccessString(acc fst.Word) (int, bool) {
	for i, s := range tbl.s.Items() {
		if s.Equal(acc) {
			return i, true
		}
	}
	return 0, false
}
