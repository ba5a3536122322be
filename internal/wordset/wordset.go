// Package wordset provides an insertion-order-stable set of fst.Word
// values.
//
// The observation table indexes its rows and columns by word, and the
// learner's outer loop must produce the same hypothesis across repeated
// runs against a deterministic oracle (spec: "containers indexed by words
// must preserve insertion order"). A plain map does not guarantee
// iteration order; wordset pairs a map (for O(1) membership testing,
// grounded on the teacher's internal/sparse.SparseSet dense/sparse-index
// design) with a dense slice that is only ever appended to, so Items
// always replays insertion order.
package wordset

import (
	"encoding/binary"

	"github.com/gofst/fstlearn/fst"
)

// key turns a Word into a comparable map key. fst.Word is a slice and
// cannot be used as a map key directly. Each symbol is encoded as a fixed
// 4-byte big-endian block so no delimiter is needed and no two distinct
// words collide.
func key(w fst.Word) string {
	b := make([]byte, len(w)*4)
	for i, sym := range w {
		binary.BigEndian.PutUint32(b[i*4:], uint32(sym))
	}
	return string(b)
}

// Set is a set of words that supports O(1) membership testing while
// preserving insertion order for iteration, mirroring the dense/sparse
// split of a classic sparse set.
type Set struct {
	index map[string]int // word key -> index in dense
	dense []fst.Word
}

// New returns an empty Set.
func New() *Set {
	return &Set{index: make(map[string]int)}
}

// Insert adds w to the set if not already present. It reports whether w
// was newly inserted.
func (s *Set) Insert(w fst.Word) bool {
	k := key(w)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.dense)
	s.dense = append(s.dense, w.Clone())
	return true
}

// Contains reports whether w is in the set.
func (s *Set) Contains(w fst.Word) bool {
	_, ok := s.index[key(w)]
	return ok
}

// Items returns the set's elements in insertion order. The returned slice
// must not be mutated by the caller.
func (s *Set) Items() []fst.Word {
	return s.dense
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}
