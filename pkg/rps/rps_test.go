package rps

import (
	"strings"
	"testing"

	"github.com/mchmarny/advent/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersus(t *testing.T) {
	tests := []struct {
		me, elf Move
		want    Outcome
	}{
		{Rock, Rock, Draw},
		{Rock, Scissors, Win},
		{Rock, Paper, Loss},
		{Scissors, Rock, Loss},
		{Scissors, Scissors, Draw},
		{Scissors, Paper, Win},
		{Paper, Rock, Win},
		{Paper, Scissors, Loss},
		{Paper, Paper, Draw},
	}

	for _, tt := range tests {
		t.Run(tt.me.String()+"-"+tt.elf.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.me.Versus(tt.elf))
		})
	}
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 8, Round{Elf: Rock, Me: Paper}.Score())
	assert.Equal(t, 1, Round{Elf: Paper, Me: Rock}.Score())
	assert.Equal(t, 6, Round{Elf: Scissors, Me: Scissors}.Score())
}

func TestDecrypt(t *testing.T) {
	assert.Equal(t, Rock, Decrypt(puzzle.First, X, Paper))
	assert.Equal(t, Paper, Decrypt(puzzle.First, Y, Paper))
	assert.Equal(t, Scissors, Decrypt(puzzle.First, Z, Paper))

	assert.Equal(t, Rock, Decrypt(puzzle.Second, X, Paper))
	assert.Equal(t, Paper, Decrypt(puzzle.Second, Y, Paper))
	assert.Equal(t, Scissors, Decrypt(puzzle.Second, Z, Paper))
	assert.Equal(t, Scissors, Decrypt(puzzle.Second, X, Rock))
	assert.Equal(t, Rock, Decrypt(puzzle.Second, Z, Scissors))
}

func TestParseRound(t *testing.T) {
	r, err := ParseRound("C Z", puzzle.First)
	require.NoError(t, err)
	assert.Equal(t, Round{Elf: Scissors, Me: Scissors}, r)

	r, err = ParseRound("C Z", puzzle.Second)
	require.NoError(t, err)
	assert.Equal(t, Round{Elf: Scissors, Me: Rock}, r)
}

func TestParseRound_Errors(t *testing.T) {
	tests := map[string]string{
		"":        "missing opponent move",
		"D X":     "unknown opponent move: D",
		"A":       "missing cipher move",
		"A W":     "unknown cipher move: W",
		"A  X":    "unknown cipher move: ",
		"A X Y":   "spurious field: Y",
		"a x":     "unknown opponent move: a",
		"B Z foo": "spurious field: foo",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseRound(in, puzzle.First)
			require.Error(t, err)
			assert.Equal(t, want, err.Error())
		})
	}
}

func TestParser(t *testing.T) {
	got, err := Parser{}.Parse(puzzle.First, strings.NewReader(Sample.Input))
	require.NoError(t, err)
	assert.Equal(t, Sample.First, got)

	got, err = Parser{}.Parse(puzzle.Second, strings.NewReader(Sample.Input))
	require.NoError(t, err)
	assert.Equal(t, Sample.Second, got)
}

func TestParser_ReportsLine(t *testing.T) {
	_, err := Parser{}.Parse(puzzle.First, strings.NewReader("A Y\nB Q\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "unknown cipher move: Q")
}
