// File: sieve/example_test.go
package sieve_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/sieve"
)

// ExampleCount counts the primes below one hundred.
func ExampleCount() {
	n, err := sieve.Count(100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("primes ≤ 100:", n)

	// Output:
	// primes ≤ 100: 25
}

// ExamplePrimes lists the primes up to a small bound.
func ExamplePrimes() {
	primes, err := sieve.Primes(30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(primes)

	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
}
