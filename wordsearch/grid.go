package wordsearch

import (
	"bufio"
	"fmt"
	"io"
)

// NewGrid constructs a Grid from a non-empty, rectangular slice of rows.
// It copies the slice to ensure immutability.
// Returns ErrEmptyGrid if rows is empty or the first row is empty,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(H×W) time and memory.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Copy to prevent external mutation; row strings are immutable already.
	copied := make([]string, h)
	copy(copied, rows)

	return &Grid{Width: w, Height: h, rows: copied}, nil
}

// ParseGrid reads newline-delimited rows into a Grid.
// Blank lines are skipped, so trailing newlines in puzzle files are harmless.
// Validation follows NewGrid.
// Complexity: O(H×W).
func ParseGrid(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	var rows []string
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordsearch: read input: %w", err)
	}

	return NewGrid(rows)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Rows returns a copy of the grid rows in top-to-bottom order.
// Complexity: O(H).
func (g *Grid) Rows() []string {
	out := make([]string, len(g.rows))
	copy(out, g.rows)

	return out
}

// at returns the character at (x,y). Callers guarantee bounds.
func (g *Grid) at(x, y int) byte {
	return g.rows[y][x]
}
