// Package pairs computes distance and similarity scores over two paired
// lists of integers, the classic "reconcile two columns of location IDs"
// puzzle (Advent of Code 2024, day 1).
//
// What:
//
//   - TotalDistance(l1, l2): sort copies of both lists ascending and sum
//     the absolute pairwise differences.
//   - SimilarityScore(l1, l2): sum v × count(v in l2) over every v in l1.
//   - Scores(l1, l2): both results in one call.
//   - ParsePairs(r): read "a b" whitespace pairs, one per line, into the
//     two lists.
//
// Why:
//
//   - Reconciliation: how far apart are two independently produced
//     rankings, and how much do they agree element-wise?
//   - A compact sorting + frequency-map exercise with fixed reference
//     answers, handy as a correctness fixture.
//
// Complexity:
//
//   - TotalDistance:   O(n log n) time (two sorts), O(n) memory.
//   - SimilarityScore: O(n) time, O(n) memory for the frequency map.
//   - ParsePairs:      O(total input size).
//
// Errors:
//
//   - ErrLengthMismatch: the two lists differ in length.
//   - ErrBadLine: an input line does not hold exactly two integers.
//
// Inputs are never mutated: sorting happens on private copies.
package pairs
