// Package calories solves the calorie counting puzzle: find the elves
// carrying the most food.
package calories

import (
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/mchmarny/advent/pkg/puzzle"
	"github.com/pkg/errors"
)

const (
	// DefaultTop is how many packs are summed for the second half.
	DefaultTop = 3

	Title = "Calorie Counting"
)

// Sample is the example from the puzzle description.
var Sample = puzzle.Sample{
	Input:  "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n",
	First:  24000,
	Second: 45000,
}

// Parser sums the largest pack for the first half and the Top largest packs
// for the second.
type Parser struct {
	Top int
}

func (p Parser) Parse(half puzzle.Half, r io.Reader) (int, error) {
	packs, err := ParsePacks(r)
	if err != nil {
		return 0, err
	}

	n := 1
	if half == puzzle.Second {
		n = p.Top
		if n <= 0 {
			n = DefaultTop
		}
	}

	slog.Debug("packs parsed", "count", len(packs), "top", n)
	return SumTop(packs, n), nil
}

// ParsePacks returns the calorie total of every blank-line separated block.
// Runs of blank lines never produce empty packs. Surrounding whitespace is
// ignored, so a line of spaces counts as blank.
func ParsePacks(r io.Reader) ([]int, error) {
	packs := make([]int, 0)
	total, open := 0, false

	err := puzzle.Lines(r, func(_ int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			if open {
				packs = append(packs, total)
			}
			total, open = 0, false
			return nil
		}

		n, err := strconv.ParseUint(line, 10, 31)
		if err != nil {
			return errors.Errorf("invalid calorie count: %q", line)
		}
		total += int(n)
		open = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if open {
		packs = append(packs, total)
	}
	return packs, nil
}

// SumTop returns the sum of the n largest packs.
func SumTop(packs []int, n int) int {
	sorted := make([]int, len(packs))
	copy(sorted, packs)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	if n > len(sorted) {
		n = len(sorted)
	}

	sum := 0
	for _, v := range sorted[:max(n, 0)] {
		sum += v
	}
	return sum
}
