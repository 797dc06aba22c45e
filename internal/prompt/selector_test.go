package prompt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWords = []string{
	"আমি", "তুমি", "সে", "আমরা", "বই", "কলম", "ভাত", "মাছ", "জল", "ঘর",
	"গাছ", "ফুল", "পাখি", "নদী", "আকাশ", "মাটি", "রাস্তা", "গ্রাম", "শহর", "বাজার",
}

// testPool returns n examples with pairwise disjoint two-word sources.
func testPool(n int) []Example {
	pool := make([]Example, n)
	for i := range pool {
		pool[i] = Example{
			Source: testWords[(2*i)%len(testWords)] + " " + testWords[(2*i+1)%len(testWords)],
			Target: fmt.Sprintf("target-%d", i),
		}
	}
	return pool
}

func TestSelect_SmallPoolReturnedWhole(t *testing.T) {
	pool := testPool(3)
	got := NewSeededSelector(1).Select("আমি বই পড়ি", pool, 5)
	assert.Equal(t, pool, got)

	got[0].Target = "changed"
	assert.Equal(t, "target-0", pool[0].Target, "result must not alias the pool")
}

func TestSelect_PoolEqualToK(t *testing.T) {
	pool := testPool(5)
	assert.Equal(t, pool, NewSeededSelector(1).Select("x", pool, 5))
}

func TestSelect_EmptyPool(t *testing.T) {
	assert.Empty(t, NewSeededSelector(1).Select("আমি", nil, 5))
	assert.Empty(t, NewSeededSelector(1).Select("আমি", nil, 0))
	assert.Empty(t, NewSeededSelector(1).Select("আমি", nil, -2))
}

func TestSelect_IdenticalSentenceAlwaysChosen(t *testing.T) {
	pool := testPool(10)
	for seed := int64(0); seed < 50; seed++ {
		got := NewSeededSelector(seed).Select(pool[3].Source, pool, 5)
		require.Len(t, got, 5)
		assert.Contains(t, got, pool[3], "seed %d", seed)
	}
}

func TestSelect_Sizes(t *testing.T) {
	pool := testPool(10)
	tests := []struct {
		k    int
		want int
	}{
		{k: 1, want: 1},
		{k: 2, want: 2},
		{k: 5, want: 5},
		{k: 9, want: 9},
		{k: 0, want: 1},
		{k: -3, want: 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("k=%d", tt.k), func(t *testing.T) {
			got := NewSeededSelector(7).Select("আমি", pool, tt.k)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSelect_NoDuplicates(t *testing.T) {
	pool := testPool(10)
	got := NewSeededSelector(3).Select("আমি তুমি সে", pool, 8)
	seen := map[string]bool{}
	for _, ex := range got {
		assert.False(t, seen[ex.Target], "duplicate %s", ex.Target)
		seen[ex.Target] = true
	}
}

func TestSelect_TopTrancheIsStable(t *testing.T) {
	// Every example scores 0, so the top tranche is the head of the pool.
	pool := testPool(10)
	for seed := int64(0); seed < 20; seed++ {
		got := NewSeededSelector(seed).Select("hello", pool, 5)
		for _, ex := range pool[:RelevantCount(5)] {
			assert.Contains(t, got, ex, "seed %d", seed)
		}
	}
}

func TestSelect_SameSeedSameResult(t *testing.T) {
	pool := testPool(10)
	a := NewSeededSelector(42).Select("আমি বই", pool, 5)
	b := NewSeededSelector(42).Select("আমি বই", pool, 5)
	assert.Equal(t, a, b)
}

func TestSelect_DoesNotModifyPool(t *testing.T) {
	pool := testPool(10)
	before := append([]Example(nil), pool...)
	NewSeededSelector(5).Select("গাছ ফুল", pool, 4)
	assert.Equal(t, before, pool)
}

func TestNewSelector_NilRand(t *testing.T) {
	s := NewSelector(nil)
	require.NotNil(t, s.rng)
	assert.Len(t, s.Select("আমি", testPool(10), 3), 3)
}

func TestRelevantCount(t *testing.T) {
	tests := []struct{ k, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 2}, {5, 3}, {10, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelevantCount(tt.k), "k=%d", tt.k)
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "আমার বই আছে", "আমার বই আছে", 1},
		{"disjoint", "আমি", "তুমি", 0},
		{"both empty", "hello", "world", 0},
		{"one empty", "", "আমি", 0},
		{"half overlap", "আমি বই", "আমি কলম", 1.0 / 3.0},
		{"repeated tokens count once", "বই বই বই", "বই", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Jaccard(tt.a, tt.b), 1e-12)
		})
	}
}
