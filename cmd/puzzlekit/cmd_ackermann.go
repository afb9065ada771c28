package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzlekit/ackermann"
)

var (
	ackM         int
	ackN         int
	ackRecursive bool
	ackMaxDepth  int
)

// ackermannCmd evaluates A(m, n); the default pair (3, 10) is the classic
// call-overhead benchmark with answer 8189.
var ackermannCmd = &cobra.Command{
	Use:   "ackermann",
	Short: "Evaluate the Ackermann–Péter function A(m, n)",
	RunE:  runAckermann,
}

func init() {
	ackermannCmd.Flags().IntVarP(&ackM, "m", "m", 3, "first argument of A(m, n)")
	ackermannCmd.Flags().IntVarP(&ackN, "n", "n", 10, "second argument of A(m, n)")
	ackermannCmd.Flags().BoolVar(&ackRecursive, "recursive", false, "use native recursive calls instead of the explicit stack")
	ackermannCmd.Flags().IntVar(&ackMaxDepth, "max-depth", 0, "evaluation depth watermark (0 = default)")
	rootCmd.AddCommand(ackermannCmd)
}

func runAckermann(cmd *cobra.Command, args []string) error {
	opts := ackermann.DefaultOptions()
	if ackRecursive {
		opts.Mode = ackermann.Recursive
	}
	if ackMaxDepth > 0 {
		opts.MaxDepth = ackMaxDepth
	}

	start := time.Now()
	v, err := ackermann.Ackermann(ackM, ackN, &opts)
	if err != nil {
		return err
	}
	fmt.Println(v)
	fmt.Println(time.Since(start))

	return nil
}
