// Package wordsearch counts occurrences of target words in a rectangular
// letter grid, the way a word-search puzzle is solved (Advent of Code
// 2024, day 4).
//
// What:
//
//   - Grid wraps a rectangular block of single-character rows, validated
//     and deep-copied at construction.
//   - Count scans every row, column, and both diagonal directions for
//     windows equal to the target word or its reversal — one equality
//     test covers both reading directions.
//   - CrossCount finds "X-shaped" placements: 3×3 sub-grids whose two
//     diagonals each spell the 3-letter cross word, forward or backward.
//   - Counts returns both totals in one call; ParseGrid reads the
//     newline-delimited puzzle format.
//
// Why:
//
//   - Puzzle solving: the straight count and the cross count are the two
//     halves of the day-4 puzzle.
//   - A compact window-enumeration exercise: all bounds are computed up
//     front from height, width, and word length, never discovered by
//     running off an edge.
//
// Complexity:
//
//   - Count:      O(H×W×k) time, k = len(Word). Memory: O(k) per window.
//   - CrossCount: O(H×W) time. Memory: O(1) per anchor.
//
// Options:
//
//   - Options.Word: straight/diagonal target (default "XMAS").
//   - Options.CrossWord: X-shape target, exactly 3 letters (default "MAS").
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadWord: target word too short, or cross word not 3 letters.
package wordsearch
