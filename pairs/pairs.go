// Package pairs defines the distance/similarity kernels and their sentinel errors.
package pairs

import (
	"errors"
	"sort"
)

// ErrLengthMismatch indicates the two input lists differ in length.
// The pairing is positional, so unequal lengths have no meaningful answer;
// silently zipping to the shorter list would hide data loss.
var ErrLengthMismatch = errors.New("pairs: input lists must have equal length")

// ErrBadLine indicates an input line without exactly two integer fields.
var ErrBadLine = errors.New("pairs: line must hold exactly two integers")

// TotalDistance returns the sum of absolute pairwise differences between
// the two lists after sorting each independently in ascending order.
// The inputs are not mutated. Empty lists yield 0.
//
// Complexity: O(n log n) time, O(n) memory.
func TotalDistance(l1, l2 []int) (int, error) {
	if len(l1) != len(l2) {
		return 0, ErrLengthMismatch
	}

	// Sort private copies; callers keep their original order.
	s1 := append([]int(nil), l1...)
	s2 := append([]int(nil), l2...)
	sort.Ints(s1)
	sort.Ints(s2)

	total := 0
	for i := range s1 {
		d := s2[i] - s1[i]
		if d < 0 {
			d = -d
		}
		total += d
	}

	return total, nil
}

// SimilarityScore returns the sum over every value v in l1 of
// v multiplied by the number of times v occurs in l2.
// Order is irrelevant to the sum. Empty lists yield 0.
//
// Complexity: O(n) time, O(n) memory.
func SimilarityScore(l1, l2 []int) (int, error) {
	if len(l1) != len(l2) {
		return 0, ErrLengthMismatch
	}

	freq := make(map[int]int, len(l2))
	for _, v := range l2 {
		freq[v]++
	}

	score := 0
	for _, v := range l1 {
		score += v * freq[v]
	}

	return score, nil
}

// Scores returns TotalDistance and SimilarityScore in one call.
//
// Example:
//
//	distance, similarity, err := pairs.Scores(l1, l2)
func Scores(l1, l2 []int) (distance, similarity int, err error) {
	if distance, err = TotalDistance(l1, l2); err != nil {
		return 0, 0, err
	}
	if similarity, err = SimilarityScore(l1, l2); err != nil {
		return 0, 0, err
	}

	return distance, similarity, nil
}
