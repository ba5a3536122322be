package fst

import (
	"errors"
	"testing"
)

func TestTransducer_AddArc_GrowsStates(t *testing.T) {
	tr := New()
	if tr.StateCount() != 1 {
		t.Fatalf("expected 1 state initially, got %d", tr.StateCount())
	}
	if err := tr.AddArc(0, 3, Word{1}, Word{1}); err != nil {
		t.Fatalf("AddArc: %v", err)
	}
	if tr.StateCount() != 4 {
		t.Fatalf("expected 4 states after AddArc(0,3,...), got %d", tr.StateCount())
	}
}

func TestTransducer_AddArc_EmptyInputRejected(t *testing.T) {
	tr := New()
	err := tr.AddArc(0, 0, Word{}, Word{1})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestTransducer_AddArc_DuplicateInputRejected(t *testing.T) {
	tr := New()
	if err := tr.AddArc(0, 1, Word{1}, Word{1}); err != nil {
		t.Fatalf("AddArc: %v", err)
	}
	err := tr.AddArc(0, 2, Word{1}, Word{2})
	if !errors.Is(err, ErrDuplicateInput) {
		t.Fatalf("expected ErrDuplicateInput, got %v", err)
	}
}

func TestTransducer_AddArc_EmptyOutputBecomesEpsilon(t *testing.T) {
	tr := New()
	if err := tr.AddArc(0, 0, Word{1}, Word{}); err != nil {
		t.Fatalf("AddArc: %v", err)
	}
	arcs := tr.ArcsOf(0)
	if len(arcs) != 1 {
		t.Fatalf("expected 1 arc, got %d", len(arcs))
	}
	if !arcs[0].Out.Equal(Word{Epsilon}) {
		t.Errorf("expected output to be {Epsilon}, got %v", arcs[0].Out)
	}
}

func TestTransducer_Consume_Identity(t *testing.T) {
	tr := New()
	for _, a := range []Symbol{0, 1} {
		if err := tr.AddArc(0, 0, Word{a}, Word{a}); err != nil {
			t.Fatalf("AddArc: %v", err)
		}
	}
	got, err := tr.Consume(Word{0, 1, 1, 0})
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if !got.Equal(Word{0, 1, 1, 0}) {
		t.Errorf("got %v, want %v", got, Word{0, 1, 1, 0})
	}
}

func TestTransducer_Consume_LongestMatchWins(t *testing.T) {
	tr := New()
	// A short arc and a longer arc sharing a prefix at the same state;
	// the longer one must be preferred when it matches.
	if err := tr.AddArc(0, 0, Word{1}, Word{9}); err != nil {
		t.Fatal(err)
	}
	if err := tr.AddArc(0, 0, Word{1, 2}, Word{8, 8}); err != nil {
		t.Fatal(err)
	}

	got, err := tr.Consume(Word{1, 2})
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if !got.Equal(Word{8, 8}) {
		t.Errorf("expected longest-match arc to win, got %v", got)
	}

	got, err = tr.Consume(Word{1, 1})
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if !got.Equal(Word{9, 9}) {
		t.Errorf("expected short arc when long one does not match, got %v", got)
	}
}

func TestTransducer_Consume_InvalidInput(t *testing.T) {
	tr := New()
	if err := tr.AddArc(0, 0, Word{1}, Word{1}); err != nil {
		t.Fatal(err)
	}
	_, err := tr.Consume(Word{1, 2})
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidInputError, got %v", err)
	}
	if invalid.Pos != 1 {
		t.Errorf("expected failure at position 1, got %d", invalid.Pos)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected errors.Is(err, ErrInvalidInput) to hold")
	}
}

func TestTransducer_Alphabet(t *testing.T) {
	tr := New()
	tr.AddArc(0, 1, Word{5}, Word{5})
	tr.AddArc(1, 0, Word{2}, Word{2})
	tr.AddArc(0, 0, Word{2, 5}, Word{1})

	got := tr.Alphabet()
	want := []Symbol{2, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestEqual(t *testing.T) {
	a := New()
	a.AddArc(0, 0, Word{1}, Word{1})
	a.AddArc(0, 1, Word{2}, Word{})
	a.AddArc(1, 0, Word{1}, Word{1, 1})

	b := New()
	b.AddArc(0, 0, Word{1}, Word{1})
	b.AddArc(0, 1, Word{2}, Word{})
	b.AddArc(1, 0, Word{1}, Word{1, 1})

	if !Equal(a, b) {
		t.Error("expected structurally identical transducers to be Equal")
	}

	c := New()
	c.AddArc(0, 0, Word{1}, Word{2}) // different output than a's arc for symbol 1
	c.AddArc(0, 1, Word{2}, Word{})
	c.AddArc(1, 0, Word{1}, Word{1, 1})
	if Equal(a, c) {
		t.Error("expected transducers with different outputs to not be Equal")
	}
}

func TestWord_HasPrefix(t *testing.T) {
	tests := []struct {
		w, prefix Word
		want      bool
	}{
		{Word{1, 2, 3}, Word{1, 2}, true},
		{Word{1, 2, 3}, Word{1, 2, 3}, true},
		{Word{1, 2, 3}, Word{}, true},
		{Word{1, 2}, Word{1, 2, 3}, false},
		{Word{1, 2, 3}, Word{2}, false},
		{Word{}, Word{}, true},
	}
	for _, tt := range tests {
		if got := tt.w.HasPrefix(tt.prefix); got != tt.want {
			t.Errorf("%v.HasPrefix(%v) = %v, want %v", tt.w, tt.prefix, got, tt.want)
		}
	}
}

func TestCommonPrefixLen(t *testing.T) {
	tests := []struct {
		a, b Word
		want int
	}{
		{Word{1, 2, 3}, Word{1, 2, 4}, 2},
		{Word{1, 2}, Word{1, 2}, 2},
		{Word{}, Word{1}, 0},
		{Word{1, 2, 3}, Word{}, 0},
	}
	for _, tt := range tests {
		if got := CommonPrefixLen(tt.a, tt.b); got != tt.want {
			t.Errorf("CommonPrefixLen(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
