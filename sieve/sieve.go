// Package sieve implements the sieve of Eratosthenes kernels.
package sieve

import "errors"

// ErrNegativeLimit indicates a negative sieve bound.
var ErrNegativeLimit = errors.New("sieve: limit must be non-negative")

// Count returns the number of primes in [2, limit].
// Count(0) and Count(1) are 0; Count is monotonic in limit.
//
// Algorithm Outline:
//  1. Allocate marker[0..limit], all true ("not yet proven composite").
//  2. For each i from 2 while i·i ≤ limit: if marker[i] still holds,
//     mark i·i, i·i+i, i·i+2i, … as composite. Starting at i·i is safe
//     because smaller multiples carry a factor below i, already marked.
//  3. Count the surviving indices in [2, limit].
//
// Stopping the outer loop at √limit is a speed matter, not a correctness
// one: any composite ≤ limit has a prime factor ≤ √limit.
//
// Complexity: O(limit · log log limit) time, O(limit) memory.
func Count(limit int) (int, error) {
	marker, err := mark(limit)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := 2; i <= limit; i++ {
		if marker[i] {
			count++
		}
	}

	return count, nil
}

// Primes returns the primes in [2, limit] in ascending order.
// Same marking pass as Count; collects survivors instead of counting.
//
// Complexity: O(limit · log log limit) time, O(limit) memory.
func Primes(limit int) ([]int, error) {
	marker, err := mark(limit)
	if err != nil {
		return nil, err
	}

	var primes []int
	for i := 2; i <= limit; i++ {
		if marker[i] {
			primes = append(primes, i)
		}
	}

	return primes, nil
}

// mark runs the sieve and returns the marker array; marker[i] is true
// for primes (and for 0 and 1, which callers never read).
func mark(limit int) ([]bool, error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}

	marker := make([]bool, limit+1)
	for i := range marker {
		marker[i] = true
	}
	for i := 2; i*i <= limit; i++ {
		if !marker[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			marker[j] = false
		}
	}

	return marker, nil
}
