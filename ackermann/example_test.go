// File: ackermann/example_test.go
package ackermann_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/ackermann"
)

// ExampleAckermann demonstrates evaluating the classic benchmark pair
// A(3, 10) with the default (explicit-stack) evaluator.
//
// A(3, n) = 2^(n+3) − 3, so A(3, 10) = 8192 − 3.
func ExampleAckermann() {
	opts := ackermann.DefaultOptions()

	v, err := ackermann.Ackermann(3, 10, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("A(3,10) =", v)

	// Output:
	// A(3,10) = 8189
}

// ExampleAckermann_depthLimit shows MaxDepth turning runaway recursion
// into an ordinary error.
func ExampleAckermann_depthLimit() {
	opts := ackermann.DefaultOptions()
	opts.MaxDepth = 100

	_, err := ackermann.Ackermann(3, 10, &opts)
	fmt.Println(err)

	// Output:
	// ackermann: evaluation depth exceeds MaxDepth
}
