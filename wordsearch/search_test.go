package wordsearch_test

import (
	"testing"

	"github.com/katalvlaran/puzzlekit/wordsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// puzzleRows is the canonical 10×10 example grid for this puzzle:
// 18 straight/diagonal XMAS placements and 9 X-shaped MAS placements.
var puzzleRows = []string{
	"MMMSXXMASM",
	"MSAMXMSMSA",
	"AMXSXMAAMM",
	"MSAMASMSMX",
	"XMASAMXAMM",
	"XXAMMXXAMA",
	"SMSMSASXSS",
	"SAXAMASAAA",
	"MAMMMXMMMM",
	"MXMXAXMASX",
}

func mustGrid(t *testing.T, rows []string) *wordsearch.Grid {
	t.Helper()
	g, err := wordsearch.NewGrid(rows)
	require.NoError(t, err, "fixture grid must construct")
	return g
}

// TestCount_SingleDirections pins down each direction in isolation:
// one horizontal, one vertical, one per diagonal, and the reversed target.
func TestCount_SingleDirections(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"Horizontal", []string{"XMAS"}, 1},
		{"HorizontalReversed", []string{"SAMX"}, 1},
		{"Vertical", []string{"X", "M", "A", "S"}, 1},
		{"DiagonalDownRight", []string{"X...", ".M..", "..A.", "...S"}, 1},
		{"DiagonalDownLeft", []string{"...X", "..M.", ".A..", "S..."}, 1},
		{"NoMatch", []string{"AAAA", "AAAA", "AAAA", "AAAA"}, 0},
		{"TooNarrow", []string{"XMA", "XMA", "XMA"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mustGrid(t, tc.rows).Count(nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestCount_SmallFixture enumerates the 4×4 fixture by hand:
// row "XMAS", row "SAMX", and column 0 top-to-bottom — three placements.
func TestCount_SmallFixture(t *testing.T) {
	g := mustGrid(t, []string{"XMAS", "MSAM", "AMXM", "SAMX"})

	got, err := g.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

// TestCount_PuzzleReference pins the canonical example answer.
func TestCount_PuzzleReference(t *testing.T) {
	got, err := mustGrid(t, puzzleRows).Count(nil)
	require.NoError(t, err)
	assert.Equal(t, 18, got, "canonical example straight/diagonal count")
}

// TestCount_ReversedTargetEquivalent verifies that searching for the
// reversed word counts exactly the same placements.
func TestCount_ReversedTargetEquivalent(t *testing.T) {
	g := mustGrid(t, puzzleRows)

	forward, err := g.Count(&wordsearch.Options{Word: "XMAS", CrossWord: "MAS"})
	require.NoError(t, err)
	reversed, err := g.Count(&wordsearch.Options{Word: "SAMX", CrossWord: "MAS"})
	require.NoError(t, err)

	assert.Equal(t, forward, reversed)
}

// TestCount_BadWord rejects targets shorter than two letters.
func TestCount_BadWord(t *testing.T) {
	g := mustGrid(t, []string{"AB", "CD"})

	var opts wordsearch.Options
	wordsearch.WithWord("A")(&opts)
	wordsearch.WithCrossWord("MAS")(&opts)

	_, err := g.Count(&opts)
	assert.ErrorIs(t, err, wordsearch.ErrBadWord)
}

// TestCount_Idempotent ensures repeated scans of one Grid agree.
func TestCount_Idempotent(t *testing.T) {
	g := mustGrid(t, puzzleRows)

	first, err := g.Count(nil)
	require.NoError(t, err)
	second, err := g.Count(nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
