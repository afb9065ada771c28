// Package ackermann evaluates the two-argument Ackermann–Péter function,
// a textbook example of a deeply recursive, extremely fast-growing function,
// often used to benchmark call overhead.
//
// What:
//
//   - Ackermann(m, n, opts) evaluates A(m, n) by the classic recurrence:
//     A(0, n) = n + 1
//     A(m, 0) = A(m-1, 1)           (m > 0)
//     A(m, n) = A(m-1, A(m, n-1))   (m > 0, n > 0)
//   - No memoization: the exponential call count is part of the contract,
//     since the function exists to exercise raw call machinery.
//   - Two evaluation modes: native Recursive calls, or an ExplicitStack
//     simulation that keeps the recursion off the goroutine stack.
//
// Why:
//
//   - Benchmarking: A(3, n) performs on the order of the result value in
//     recursive calls, making it a compact call-overhead stress test.
//   - Teaching: the smallest standard example of non-primitive recursion.
//
// Complexity:
//
//   - Time: grows faster than any primitive-recursive bound in m.
//     A(3, n) = 2^(n+3) − 3, so A(3, 10) = 8189.
//   - Memory: O(depth) for the explicit stack; depth is bounded by MaxDepth.
//
// Options:
//
//   - Options.Mode: ExplicitStack (default) or Recursive.
//   - Options.MaxDepth: evaluation-depth watermark; exceeding it returns
//     ErrDepthExceeded instead of exhausting the call stack.
//
// Errors:
//
//   - ErrNegativeArgument: m < 0 or n < 0.
//   - ErrDepthExceeded: evaluation depth exceeded Options.MaxDepth.
package ackermann
