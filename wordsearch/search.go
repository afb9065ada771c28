package wordsearch

// Count returns the number of straight and diagonal occurrences of the
// target word in the grid. Every row, column, and both diagonal directions
// are scanned; a window counts when it equals the word forward or backward.
// A nil opts is equivalent to DefaultOptions().
//
// Scanning each direction once covers both reading orientations, so no
// placement is counted twice. Window bounds are derived from Height,
// Width, and the word length before scanning.
//
// Returns ErrBadWord when the target word is shorter than two letters.
// Complexity: O(H×W×k) time, k = len(word).
func (g *Grid) Count(opts *Options) (int, error) {
	word := DefaultWord
	if opts != nil {
		word = opts.Word
	}
	if len(word) < 2 {
		return 0, ErrBadWord
	}

	// One pass per direction: right, down, down-right, down-left.
	total := 0
	for _, d := range [4][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}} {
		total += g.countDirection(d[0], d[1], word)
	}

	return total, nil
}

// countDirection counts matches of word along a single (dx,dy) direction.
// Start-cell ranges are clamped so every window fits entirely on the grid.
func (g *Grid) countDirection(dx, dy int, word string) int {
	k := len(word)

	x0, x1 := 0, g.Width-1
	if dx == 1 {
		x1 = g.Width - k
	} else if dx == -1 {
		x0 = k - 1
	}
	y0, y1 := 0, g.Height-1
	if dy == 1 {
		y1 = g.Height - k
	}

	count := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.matchAt(x, y, dx, dy, word) {
				count++
			}
		}
	}

	return count
}

// matchAt reports whether the window of len(word) cells starting at (x,y)
// and stepping by (dx,dy) spells word forward or backward.
// Callers guarantee the whole window is in bounds.
func (g *Grid) matchAt(x, y, dx, dy int, word string) bool {
	k := len(word)
	forward, backward := true, true
	for t := 0; t < k; t++ {
		c := g.at(x+t*dx, y+t*dy)
		if c != word[t] {
			forward = false
		}
		if c != word[k-1-t] {
			backward = false
		}
		if !forward && !backward {
			return false
		}
	}

	return forward || backward
}
