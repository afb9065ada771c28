// Package sieve finds prime numbers up to a bound with the classic
// sieve of Eratosthenes.
//
// What:
//
//   - Count(limit) returns how many primes lie in [2, limit].
//   - Primes(limit) returns those primes in ascending order.
//
// Why:
//
//   - The standard way to enumerate all primes below a few hundred
//     million: one boolean per candidate, mark multiples, read off
//     the survivors.
//   - A fixed-answer kernel for benchmarking tight loops over large
//     arrays (the original workload sieves up to 4,000,000).
//
// Complexity:
//
//   - Time:   O(limit · log log limit) for marking, O(limit) to read off.
//   - Memory: O(limit) for the marker array.
//
// Errors:
//
//   - ErrNegativeLimit: limit < 0. Limits 0 and 1 are valid and simply
//     contain no primes.
package sieve
