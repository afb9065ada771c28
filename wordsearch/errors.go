// Package wordsearch defines sentinel errors for grid construction and search.
package wordsearch

import (
	"errors"
)

// Sentinel errors for wordsearch operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("wordsearch: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("wordsearch: all rows must have the same length")
	// ErrBadWord indicates an unusable target word: the straight word is
	// shorter than two letters, or the cross word is not exactly three.
	ErrBadWord = errors.New("wordsearch: target word has unusable length")
)
