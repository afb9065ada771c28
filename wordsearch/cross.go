package wordsearch

// CrossCount returns the number of X-shaped placements of the cross word:
// 3×3 sub-grids whose two diagonals each spell the cross word, forward or
// backward. A nil opts is equivalent to DefaultOptions().
//
// Returns ErrBadWord when the cross word is not exactly three letters —
// the X shape needs a shared center cell, so only odd, length-3 targets
// fit the puzzle's geometry.
// Complexity: O(H×W) time.
func (g *Grid) CrossCount(opts *Options) (int, error) {
	cross := DefaultCrossWord
	if opts != nil {
		cross = opts.CrossWord
	}
	if len(cross) != crossSize {
		return 0, ErrBadWord
	}

	count := 0
	for y := 0; y+crossSize <= g.Height; y++ {
		for x := 0; x+crossSize <= g.Width; x++ {
			// Down-right diagonal from the top-left anchor, and
			// up-right diagonal from the bottom-left corner.
			if g.matchAt(x, y, 1, 1, cross) && g.matchAt(x, y+crossSize-1, 1, -1, cross) {
				count++
			}
		}
	}

	return count, nil
}

// Counts returns the straight/diagonal total and the X-shape total in one
// call. Both target words are validated before any scanning happens.
//
// Example:
//
//	straight, cross, err := g.Counts(nil) // original puzzle words
func (g *Grid) Counts(opts *Options) (straight, cross int, err error) {
	if straight, err = g.Count(opts); err != nil {
		return 0, 0, err
	}
	if cross, err = g.CrossCount(opts); err != nil {
		return 0, 0, err
	}

	return straight, cross, nil
}
