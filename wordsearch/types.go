package wordsearch

// DefaultWord is the straight/diagonal target of the original puzzle.
const DefaultWord = "XMAS"

// DefaultCrossWord is the 3-letter X-shape target of the original puzzle.
const DefaultCrossWord = "MAS"

// crossSize is the span of an X-shape anchor; fixed by the 3-letter cross word.
const crossSize = 3

// Options selects the target words for a search.
//
// Fields:
//
//	Word      string — straight/diagonal target, at least 2 letters.
//	CrossWord string — X-shape target, exactly 3 letters.
//
// A word always matches in both reading directions: a window counts when
// it equals the word or its reversal, so "XMAS" and "SAMX" are the same
// target. Use DefaultOptions() for the original puzzle's words.
type Options struct {
	// Word is the straight/diagonal target word.
	Word string

	// CrossWord is the X-shape target word.
	CrossWord string
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithWord returns an Option that sets the straight/diagonal target.
func WithWord(w string) Option {
	return func(opts *Options) {
		opts.Word = w
	}
}

// WithCrossWord returns an Option that sets the X-shape target.
func WithCrossWord(w string) Option {
	return func(opts *Options) {
		opts.CrossWord = w
	}
}

// DefaultOptions returns Options for the original puzzle:
//
//	– Word      = "XMAS"
//	– CrossWord = "MAS"
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Word:      DefaultWord,
		CrossWord: DefaultCrossWord,
	}
}

// Grid is an immutable rectangular block of single-character rows.
// Width and Height define dimensions; rows are deep-copied at construction
// so later mutation of the caller's slice cannot reach the Grid.
type Grid struct {
	Width, Height int
	rows          []string
}
