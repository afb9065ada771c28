package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzlekit/wordsearch"
)

var (
	wsWord      string
	wsCrossWord string
	wsRepeat    int
)

// wordsearchCmd solves the letter-grid puzzle from a local file of
// newline-delimited rows.
var wordsearchCmd = &cobra.Command{
	Use:   "wordsearch [file]",
	Short: "Straight, diagonal and X-shaped word matches in a letter grid",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWordsearch,
}

func init() {
	wordsearchCmd.Flags().StringVar(&wsWord, "word", wordsearch.DefaultWord, "straight/diagonal target word")
	wordsearchCmd.Flags().StringVar(&wsCrossWord, "cross-word", wordsearch.DefaultCrossWord, "3-letter X-shape target word")
	wordsearchCmd.Flags().IntVar(&wsRepeat, "repeat", 0, "double the grid rows this many times before solving")
	rootCmd.AddCommand(wordsearchCmd)
}

func runWordsearch(cmd *cobra.Command, args []string) error {
	path := "input"
	if len(args) == 1 {
		path = args[0]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	start := time.Now()
	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			rows = append(rows, line)
		}
	}
	for i := 0; i < wsRepeat; i++ {
		rows = append(rows, rows...)
	}
	g, err := wordsearch.NewGrid(rows)
	if err != nil {
		return err
	}

	opts := wordsearch.Options{Word: wsWord, CrossWord: wsCrossWord}
	straight, cross, err := g.Counts(&opts)
	if err != nil {
		return err
	}
	fmt.Println(straight)
	fmt.Println(cross)
	fmt.Println(time.Since(start))

	return nil
}
