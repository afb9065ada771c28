// Package ackermann defines evaluation modes, options, and sentinel errors
// for the Ackermann–Péter evaluator.
package ackermann

import "errors"

// ErrNegativeArgument indicates that m or n is negative.
// The Ackermann–Péter function is defined on non-negative integers only.
var ErrNegativeArgument = errors.New("ackermann: arguments must be non-negative")

// ErrDepthExceeded indicates the evaluation depth passed Options.MaxDepth.
// It surfaces resource exhaustion as an ordinary error instead of letting
// deep recursion take down the host process.
var ErrDepthExceeded = errors.New("ackermann: evaluation depth exceeds MaxDepth")

// EvalMode controls how the recurrence is driven.
//
//   - ExplicitStack — simulate the recursion on a heap-allocated stack.
//     Depth is limited only by MaxDepth (and memory), never by the
//     goroutine stack. Preferred for large arguments.
//
//   - Recursive — native recursive calls. Matches the reference behavior
//     exactly and is the mode to use when benchmarking call overhead,
//     at the cost of real stack growth proportional to the result.
type EvalMode int

const (
	// ExplicitStack mode: heap-stack simulation, safe for deep evaluations.
	ExplicitStack EvalMode = iota

	// Recursive mode: plain recursive calls, for call-overhead benchmarks.
	Recursive
)

// DefaultMaxDepth is the default evaluation-depth watermark.
// A(3, 10) needs a depth just above its result (8189), so the default
// leaves generous headroom for every argument pair that terminates in
// reasonable time at all.
const DefaultMaxDepth = 1 << 20

// Options configures Ackermann evaluation.
//
// Fields:
//
//	Mode     EvalMode — ExplicitStack or Recursive.
//	MaxDepth int      — maximum simultaneous pending evaluations; ≤ 0 means DefaultMaxDepth.
//
// Use DefaultOptions() for a safe setup (ExplicitStack, DefaultMaxDepth).
type Options struct {
	// Mode selects the evaluation strategy.
	Mode EvalMode

	// MaxDepth bounds the evaluation depth in both modes.
	MaxDepth int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMode returns an Option that sets the evaluation Mode.
func WithMode(m EvalMode) Option {
	return func(opts *Options) {
		opts.Mode = m
	}
}

// WithMaxDepth returns an Option that sets the depth watermark.
func WithMaxDepth(d int) Option {
	return func(opts *Options) {
		opts.MaxDepth = d
	}
}

// DefaultOptions returns Options initialized for safe evaluation:
//
//	– Mode     = ExplicitStack
//	– MaxDepth = DefaultMaxDepth
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Mode:     ExplicitStack,
		MaxDepth: DefaultMaxDepth,
	}
}
