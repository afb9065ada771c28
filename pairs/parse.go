package pairs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsePairs reads whitespace-separated integer pairs, one pair per line,
// and returns them as two parallel lists. Blank lines are skipped.
// A line that does not hold exactly two integers yields ErrBadLine,
// wrapped with the offending line number.
//
// The returned lists always have equal length, so they feed directly
// into TotalDistance, SimilarityScore, or Scores.
//
// Complexity: O(total input size).
func ParsePairs(r io.Reader) (l1, l2 []int, err error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, ErrBadLine)
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, ErrBadLine)
		}
		l1 = append(l1, a)
		l2 = append(l2, b)
	}
	if err = sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("pairs: read input: %w", err)
	}

	return l1, l2, nil
}
