package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzlekit/pairs"
)

var pairsRepeat int

// pairsCmd solves the paired-lists puzzle from a local file of
// whitespace-separated integer pairs, one per line.
var pairsCmd = &cobra.Command{
	Use:   "pairs [file]",
	Short: "Distance and similarity scores over paired integer lists",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPairs,
}

func init() {
	pairsCmd.Flags().IntVar(&pairsRepeat, "repeat", 0, "double the parsed input this many times before solving")
	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	path := "input"
	if len(args) == 1 {
		path = args[0]
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	l1, l2, err := pairs.ParsePairs(f)
	if err != nil {
		return err
	}
	for i := 0; i < pairsRepeat; i++ {
		l1 = append(l1, l1...)
		l2 = append(l2, l2...)
	}

	distance, similarity, err := pairs.Scores(l1, l2)
	if err != nil {
		return err
	}
	fmt.Println(distance)
	fmt.Println(similarity)
	fmt.Println(time.Since(start))

	return nil
}
