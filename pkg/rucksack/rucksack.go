// Package rucksack finds misplaced items in elf rucksacks.
//
// Items are the letters a-z and A-Z. A set of items is held in a bit mask:
// a-z occupy bits 0-25 and A-Z bits 26-51, so an item's priority is its bit
// index plus one.
package rucksack

import (
	"io"
	"log/slog"
	"math/bits"

	"github.com/mchmarny/advent/pkg/puzzle"
	"github.com/pkg/errors"
)

const (
	Title = "Rucksack Reorganization"

	// GroupSize is the number of elves sharing a badge.
	GroupSize = 3
)

var Sample = puzzle.Sample{
	Input: `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`,
	First:  157,
	Second: 70,
}

// Encode returns the set of items in s.
func Encode(s string) (uint64, error) {
	var mask uint64
	for _, c := range s {
		var index uint
		switch {
		case c >= 'a' && c <= 'z':
			index = uint(c - 'a')
		case c >= 'A' && c <= 'Z':
			index = uint(c-'A') + 26
		default:
			return 0, errors.Errorf("unexpected character: %c", c)
		}
		mask |= 1 << index
	}
	return mask, nil
}

// Priority of the lowest item in mask.
func Priority(mask uint64) int {
	return bits.TrailingZeros64(mask) + 1
}

// single returns the priority of the only item in mask.
func single(mask uint64) (int, bool) {
	if bits.OnesCount64(mask) != 1 {
		return 0, false
	}
	return Priority(mask), true
}

// ParseLine scores the item that appears in both compartments of a rucksack.
func ParseLine(line string) (int, error) {
	if len(line)%2 != 0 {
		return 0, errors.Errorf("odd number of characters: %s", line)
	}

	mid := len(line) / 2
	lhs, err := Encode(line[:mid])
	if err != nil {
		return 0, err
	}
	rhs, err := Encode(line[mid:])
	if err != nil {
		return 0, err
	}

	p, ok := single(lhs & rhs)
	if !ok {
		return 0, errors.Errorf("unexpected number of duplicates at line %s", line)
	}
	return p, nil
}

// Badge scores the one item carried by every rucksack of a group.
func Badge(group []string) (int, error) {
	if len(group) == 0 {
		return 0, errors.New("empty group")
	}

	common := ^uint64(0)
	for _, line := range group {
		mask, err := Encode(line)
		if err != nil {
			return 0, err
		}
		common &= mask
	}

	p, ok := single(common)
	if !ok {
		return 0, errors.Errorf("group has %d common items, want 1", bits.OnesCount64(common))
	}
	return p, nil
}

// Parser sums compartment duplicates for the first half and group badges
// for the second.
type Parser struct{}

func (Parser) Parse(half puzzle.Half, r io.Reader) (int, error) {
	if half == puzzle.Second {
		return parseGroups(r)
	}

	total := 0
	err := puzzle.Lines(r, func(_ int, line string) error {
		p, err := ParseLine(line)
		if err != nil {
			return err
		}
		total += p
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func parseGroups(r io.Reader) (int, error) {
	total := 0
	group := make([]string, 0, GroupSize)

	err := puzzle.Lines(r, func(_ int, line string) error {
		group = append(group, line)
		if len(group) < GroupSize {
			return nil
		}
		p, err := Badge(group)
		if err != nil {
			return err
		}
		slog.Debug("badge found", "priority", p)
		total += p
		group = group[:0]
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(group) != 0 {
		return 0, errors.Errorf("incomplete group: %d of %d rucksacks", len(group), GroupSize)
	}
	return total, nil
}
