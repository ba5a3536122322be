package oracle

import (
	"math/rand"

	"github.com/gofst/fstlearn/fst"
)

// Sample draws a random word of length in [1, maxLen] over alphabet, using
// rng for all random choices. It mirrors the random.randint/random.choice
// sampling every equivalence-query example in the original implementation
// performs by hand; it is a test/example helper, not an Equivalence
// implementation itself — callers still decide how many samples to draw
// and what to do when consume output disagrees with the membership oracle.
func Sample(rng *rand.Rand, alphabet []fst.Symbol, maxLen int) fst.Word {
	if len(alphabet) == 0 || maxLen <= 0 {
		return nil
	}
	n := rng.Intn(maxLen) + 1
	w := make(fst.Word, n)
	for i := range w {
		w[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return w
}

// RandomEquivalence builds an Equivalence oracle that draws numTests random
// words (each of length up to maxLen over alphabet) and compares the
// hypothesis's Consume output against mq. It reports the first
// disagreement found, or ok=true if none of the samples disagree -
// the same "declare correct if no counterexample is found after N random
// tests" strategy used by every example oracle in the original
// implementation's examples directory.
func RandomEquivalence(rng *rand.Rand, alphabet []fst.Symbol, mq Membership, numTests, maxLen int) EquivalenceFunc {
	return func(h *fst.Transducer) (bool, fst.Word, error) {
		for i := 0; i < numTests; i++ {
			w := Sample(rng, alphabet, maxLen)
			got, err := h.Consume(w)
			if err != nil {
				return false, w, nil
			}
			want, err := mq.Query(w)
			if err != nil {
				return false, nil, err
			}
			if !got.Equal(want) {
				return false, w, nil
			}
		}
		return true, nil, nil
	}
}
