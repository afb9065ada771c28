package ackermann

// Ackermann — the Ackermann–Péter function
//
// Description:
//
//	A(m, n) is the canonical total computable function that is not
//	primitive-recursive. Its value explodes with m: A(0,n)=n+1,
//	A(1,n)=n+2, A(2,n)=2n+3, A(3,n)=2^(n+3)−3, and A(4,2) already has
//	19729 decimal digits. Evaluation cost grows with the result, which
//	is exactly why it serves as a call-overhead benchmark.
//
// Algorithm Outline (ExplicitStack):
//  1. Push m onto a stack of pending outer arguments; hold n in value.
//  2. Pop top:
//     top == 0          → value = value + 1
//     value == 0        → push top−1, value = 1
//     otherwise         → push top−1 and top, value = value − 1
//  3. Repeat until the stack drains; value is A(m, n).
//
// The stack height at any moment equals the depth the native recursion
// would have reached, so MaxDepth bounds both modes identically.
//
// Errors:
//   - ErrNegativeArgument — m < 0 or n < 0.
//   - ErrDepthExceeded    — depth watermark passed MaxDepth.

// Ackermann evaluates A(m, n) under the given options.
// A nil opts is equivalent to DefaultOptions().
//
// Example:
//
//	opts := ackermann.DefaultOptions()
//	v, err := ackermann.Ackermann(3, 10, &opts) // v == 8189
func Ackermann(m, n int, opts *Options) (int, error) {
	if m < 0 || n < 0 {
		return 0, ErrNegativeArgument
	}

	// Apply options or defaults
	mode := ExplicitStack
	maxDepth := DefaultMaxDepth
	if opts != nil {
		mode = opts.Mode
		if opts.MaxDepth > 0 {
			maxDepth = opts.MaxDepth
		}
	}

	if mode == Recursive {
		return evalRecursive(m, n, 0, maxDepth)
	}
	return evalStack(m, n, maxDepth)
}

// evalStack drives the recurrence on a heap-allocated stack of pending
// outer arguments. Invariant: at every step the remaining work equals
// A(stack[0], A(stack[1], ... A(stack[k-1], value)...)).
func evalStack(m, n, maxDepth int) (int, error) {
	stack := make([]int, 0, 64)
	stack = append(stack, m)
	value := n

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case top == 0:
			value++
		case value == 0:
			stack = append(stack, top-1)
			value = 1
		default:
			stack = append(stack, top-1, top)
			value--
		}
		if len(stack) > maxDepth {
			return 0, ErrDepthExceeded
		}
	}

	return value, nil
}

// evalRecursive is the native-call rendition of the recurrence,
// guarded by the same depth watermark as evalStack.
func evalRecursive(m, n, depth, maxDepth int) (int, error) {
	if depth > maxDepth {
		return 0, ErrDepthExceeded
	}
	if m == 0 {
		return n + 1, nil
	}
	if n == 0 {
		return evalRecursive(m-1, 1, depth+1, maxDepth)
	}
	inner, err := evalRecursive(m, n-1, depth+1, maxDepth)
	if err != nil {
		return 0, err
	}

	return evalRecursive(m-1, inner, depth+1, maxDepth)
}
