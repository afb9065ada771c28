package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzlekit/sieve"
)

var sieveLimit int

// sieveCmd counts primes up to a bound; the default bound matches the
// original workload (283146 primes below 4,000,000).
var sieveCmd = &cobra.Command{
	Use:   "sieve",
	Short: "Count primes with the sieve of Eratosthenes",
	RunE:  runSieve,
}

func init() {
	sieveCmd.Flags().IntVar(&sieveLimit, "limit", 4_000_000, "sieve bound (inclusive)")
	rootCmd.AddCommand(sieveCmd)
}

func runSieve(cmd *cobra.Command, args []string) error {
	start := time.Now()
	count, err := sieve.Count(sieveLimit)
	if err != nil {
		return err
	}
	fmt.Println(count)
	fmt.Println(time.Since(start))

	return nil
}
