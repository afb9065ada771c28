// Package main is the puzzlekit command: run any kernel against hardcoded
// arguments or a local input file, print the answer(s), and report elapsed
// wall time — the same surface as the original benchmark scripts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "puzzlekit",
	Short: "Classic computational kernels with wall-clock reporting",
	Long: `puzzlekit runs one of four self-contained kernels and prints the answer
together with elapsed wall time:

  ackermann   — evaluate the Ackermann–Péter function A(m, n)
  pairs       — distance and similarity scores over paired integer lists
  wordsearch  — straight, diagonal and X-shaped matches in a letter grid
  sieve       — count primes with the sieve of Eratosthenes

The pairs and wordsearch kernels read a local puzzle file (default "input");
--repeat doubles the input that many times before solving, for benchmarking.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
