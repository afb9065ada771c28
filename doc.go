// Package puzzlekit is a small collection of classic computational kernels —
// compact, self-contained algorithms behind tiny pure APIs, usable both as
// library calls and as micro-benchmarks.
//
// 🚀 What is puzzlekit?
//
//	A pure-Go toolkit bringing together four well-known kernels:
//		• ackermann/  — the Ackermann–Péter function, recursive or explicit-stack
//		• pairs/      — distance & similarity scores over paired integer lists
//		• wordsearch/ — straight, diagonal and X-shaped matches in a letter grid
//		• sieve/      — the sieve of Eratosthenes, counting or listing primes
//
// ✨ Why choose puzzlekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – every kernel is a single deterministic pass, no shared state
//   - Pure Go – no cgo, no hidden deps
//   - Honest about limits – malformed input is rejected with sentinel errors,
//     deep recursion is bounded instead of crashing the process
//
// Each subpackage stands alone: no kernel calls another, and no data flows
// between them. The cmd/puzzlekit driver runs any kernel against a local
// input file and reports the answer together with elapsed wall time.
//
//	go get github.com/katalvlaran/puzzlekit
package puzzlekit
