package learner

import (
	"bytes"
	"context"
	"testing"

	"github.com/gofst/fstlearn/fst"
	"github.com/gofst/fstlearn/oracle"
)

// TestLearnedTransducer_SurvivesSaveLoadRoundTrip covers spec §8's save/load
// scenario: a learned hypothesis must behave identically after being
// serialized and re-parsed.
func TestLearnedTransducer_SurvivesSaveLoadRoundTrip(t *testing.T) {
	alphabet := []fst.Symbol{0, 1}
	mq := oracle.MembershipFunc(doublingMQ)
	eq := exhaustiveEquivalence(alphabet, mq, 5)

	m, err := NewMealy(DefaultConfig(alphabet), mq, eq)
	if err != nil {
		t.Fatalf("NewMealy: %v", err)
	}
	hyp, err := m.Learn(context.Background())
	if err != nil {
		t.Fatalf("Learn: %v", err)
	}

	var buf bytes.Buffer
	if err := hyp.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := fst.Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !fst.Equal(hyp, loaded) {
		t.Fatal("expected the loaded transducer to be structurally Equal to the original")
	}

	words := []fst.Word{{}, {0}, {1}, {0, 1}, {1, 0}, {0, 0, 1, 1}, {1, 1, 1, 0, 0}}
	for _, w := range words {
		got, gotErr := loaded.Consume(w)
		want, wantErr := hyp.Consume(w)
		if (gotErr == nil) != (wantErr == nil) {
			t.Fatalf("Consume(%v): error mismatch got=%v want=%v", w, gotErr, wantErr)
		}
		if gotErr == nil && !got.Equal(want) {
			t.Errorf("Consume(%v) = %v, want %v", w, got, want)
		}
	}
}
