package prompt

import (
	"math/rand"
	"sort"
	"time"
)

// DefaultExampleCount is the number of few-shot examples requested when the
// caller does not say otherwise.
const DefaultExampleCount = 5

// relevantShare is the fraction of the requested examples taken from the
// most similar end of the pool. The rest is drawn at random for diversity.
const relevantShare = 0.6

// Selector picks few-shot examples for a sentence. It is not safe for
// concurrent use because it advances its random source.
type Selector struct {
	rng *rand.Rand
}

// NewSelector returns a selector drawing from rng. A nil rng is replaced by
// one seeded from the clock.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// NewSeededSelector returns a selector whose choices are reproducible for
// the given seed.
func NewSeededSelector(seed int64) *Selector {
	return NewSelector(rand.New(rand.NewSource(seed)))
}

type scoredExample struct {
	score   float64
	example Example
}

// Select returns up to k examples for sentence. A pool of at most k examples
// is returned whole, in pool order. Otherwise the RelevantCount(k) most
// similar examples are kept, the remainder is filled with a uniform random
// draw without replacement from the rest of the pool, and the combined set is
// shuffled so similarity rank does not leak into position.
//
// The result may hold fewer than k examples, and always holds at least one
// example when the pool is larger than k, even for k <= 0.
func (s *Selector) Select(sentence string, examples []Example, k int) []Example {
	if len(examples) <= k {
		out := make([]Example, len(examples))
		copy(out, examples)
		return out
	}

	input := tokenSet(sentence)
	scored := make([]scoredExample, len(examples))
	for i, ex := range examples {
		scored[i] = scoredExample{
			score:   jaccard(input, tokenSet(ex.Source)),
			example: ex,
		}
	}
	// Ties keep pool order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	topN := min(RelevantCount(k), len(scored))
	selected := make([]Example, 0, max(k, topN))
	for _, se := range scored[:topN] {
		selected = append(selected, se.example)
	}

	rest := scored[topN:]
	want := max(0, min(len(rest), k-topN))
	for _, idx := range s.rng.Perm(len(rest))[:want] {
		selected = append(selected, rest[idx].example)
	}

	s.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}

// RelevantCount is the size of the similarity-ranked tranche for a request
// of k examples: max(1, floor(0.6k)).
func RelevantCount(k int) int {
	return max(1, int(float64(k)*relevantShare))
}

// Jaccard returns the Jaccard similarity of the lower-cased token sets of a
// and b. Two texts without tokens have similarity 0.
func Jaccard(a, b string) float64 {
	return jaccard(tokenSet(a), tokenSet(b))
}

func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(max(1, union))
}
