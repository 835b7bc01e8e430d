// Package rps scores a rock paper scissors strategy guide.
package rps

import (
	"io"
	"strings"

	"github.com/mchmarny/advent/pkg/puzzle"
	"github.com/pkg/errors"
)

const Title = "Rock Paper Scissors"

var Sample = puzzle.Sample{
	Input:  "A Y\nB X\nC Z\n",
	First:  15,
	Second: 12,
}

type Move int

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

var moves = []Move{Rock, Paper, Scissors}

// Score is the shape value of the move.
func (m Move) Score() int {
	return int(m)
}

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// beats returns the move m wins against.
func (m Move) beats() Move {
	switch m {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// Outcome of a round from the point of view of the first move.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// Bonus is the points awarded for the outcome.
func (o Outcome) Bonus() int {
	return int(o) * 3
}

// Versus plays m against other.
func (m Move) Versus(other Move) Outcome {
	switch {
	case m == other:
		return Draw
	case m.beats() == other:
		return Win
	default:
		return Loss
	}
}

// Cipher is the second column of the strategy guide.
type Cipher int

const (
	X Cipher = iota
	Y
	Z
)

// Decrypt maps the cipher to my move. In the first half the cipher names
// a shape, in the second half it names the outcome the round must have.
func Decrypt(half puzzle.Half, c Cipher, elf Move) Move {
	if half != puzzle.Second {
		return moves[c]
	}
	want := Outcome(c)
	for _, m := range moves {
		if m.Versus(elf) == want {
			return m
		}
	}
	return elf
}

type Round struct {
	Elf Move
	Me  Move
}

func (r Round) Score() int {
	return r.Me.Score() + r.Me.Versus(r.Elf).Bonus()
}

// Parser totals the score of every round in the guide.
type Parser struct{}

func (Parser) Parse(half puzzle.Half, r io.Reader) (int, error) {
	total := 0
	err := puzzle.Lines(r, func(_ int, line string) error {
		round, err := ParseRound(line, half)
		if err != nil {
			return err
		}
		total += round.Score()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ParseRound reads one "<A|B|C> <X|Y|Z>" line.
func ParseRound(line string, half puzzle.Half) (Round, error) {
	if line == "" {
		return Round{}, errors.New("missing opponent move")
	}

	words := strings.Split(line, " ")

	var elf Move
	switch words[0] {
	case "A":
		elf = Rock
	case "B":
		elf = Paper
	case "C":
		elf = Scissors
	default:
		return Round{}, errors.Errorf("unknown opponent move: %s", words[0])
	}

	if len(words) < 2 {
		return Round{}, errors.New("missing cipher move")
	}

	var c Cipher
	switch words[1] {
	case "X":
		c = X
	case "Y":
		c = Y
	case "Z":
		c = Z
	default:
		return Round{}, errors.Errorf("unknown cipher move: %s", words[1])
	}

	if len(words) > 2 {
		return Round{}, errors.Errorf("spurious field: %s", words[2])
	}

	return Round{
		Elf: elf,
		Me:  Decrypt(half, c, elf),
	}, nil
}
