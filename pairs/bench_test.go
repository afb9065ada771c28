package pairs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlekit/pairs"
)

// benchLists builds two deterministic pseudo-random lists of length n.
func benchLists(n int) (l1, l2 []int) {
	rng := rand.New(rand.NewSource(42))
	l1 = make([]int, n)
	l2 = make([]int, n)
	for i := 0; i < n; i++ {
		l1[i] = rng.Intn(100_000)
		l2[i] = rng.Intn(100_000)
	}
	return l1, l2
}

// BenchmarkTotalDistance measures the sort-dominated kernel on 100k pairs.
// Complexity: O(n log n)
func BenchmarkTotalDistance(b *testing.B) {
	l1, l2 := benchLists(100_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pairs.TotalDistance(l1, l2); err != nil {
			b.Fatalf("TotalDistance failed: %v", err)
		}
	}
}

// BenchmarkSimilarityScore measures the frequency-map kernel on 100k pairs.
// Complexity: O(n)
func BenchmarkSimilarityScore(b *testing.B) {
	l1, l2 := benchLists(100_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pairs.SimilarityScore(l1, l2); err != nil {
			b.Fatalf("SimilarityScore failed: %v", err)
		}
	}
}
