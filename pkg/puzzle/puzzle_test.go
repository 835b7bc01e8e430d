package puzzle

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineCount answers with the number of lines, plus one for the second half.
var lineCount = ParserFunc(func(half Half, r io.Reader) (int, error) {
	n := 0
	err := Lines(r, func(_ int, line string) error {
		if line == "bad" {
			return errors.New("bad line")
		}
		n++
		return nil
	})
	if half == Second {
		n++
	}
	return n, err
})

func TestParseHalf(t *testing.T) {
	h, err := ParseHalf("1")
	require.NoError(t, err)
	assert.Equal(t, First, h)
	assert.Equal(t, "1", h.String())

	h, err = ParseHalf("2")
	require.NoError(t, err)
	assert.Equal(t, Second, h)
	assert.Equal(t, "2", h.String())

	for _, in := range []string{"", "0", "3", "first", " 1"} {
		_, err := ParseHalf(in)
		assert.Error(t, err, in)
	}
}

func TestHalfValid(t *testing.T) {
	assert.True(t, First.Valid())
	assert.True(t, Second.Valid())
	assert.False(t, Half(0).Valid())
	assert.Equal(t, "?", Half(7).String())
}

func TestLines(t *testing.T) {
	var got []string
	var nums []int
	err := Lines(strings.NewReader("a\r\nb\n\nc"), func(n int, line string) error {
		nums = append(nums, n)
		got = append(got, line)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, got)
	assert.Equal(t, []int{1, 2, 3, 4}, nums)
}

func TestLines_Error(t *testing.T) {
	err := Lines(strings.NewReader("ok\nbad\n"), func(_ int, line string) error {
		if line == "bad" {
			return errors.New("boom")
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, "line 2: boom", err.Error())

	assert.Error(t, Lines(nil, func(int, string) error { return nil }))
}

func TestLines_ReadError(t *testing.T) {
	var got []string
	r := io.MultiReader(strings.NewReader("a\n"), iotest.ErrReader(io.ErrUnexpectedEOF))
	err := Lines(r, func(_ int, line string) error {
		got = append(got, line)
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "error reading input: unexpected EOF", err.Error())
	assert.Equal(t, []string{"a"}, got)
}

func TestLines_LineTooLong(t *testing.T) {
	long := strings.Repeat("x", 70000)
	err := Lines(strings.NewReader(long+"\n"), func(int, string) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading input")
	assert.Contains(t, err.Error(), "token too long")
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Puzzle{Day: 2, Title: "two", Parser: lineCount}))
	require.NoError(t, r.Register(Puzzle{Day: 1, Title: "one", Parser: lineCount}))

	assert.Error(t, r.Register(Puzzle{Day: 1, Parser: lineCount}), "duplicate")
	assert.Error(t, r.Register(Puzzle{Day: 0, Parser: lineCount}), "day zero")
	assert.Error(t, r.Register(Puzzle{Day: 3}), "no parser")

	p, err := r.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "two", p.Title)

	_, err = r.Get(9)
	assert.Error(t, err)

	days := r.Days()
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
}

func TestSolve(t *testing.T) {
	p := Puzzle{Day: 1, Parser: lineCount}

	n, err := Solve(p, First, strings.NewReader("x\ny\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = Solve(p, Second, strings.NewReader("x\ny\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Solve(p, Half(0), strings.NewReader(""))
	assert.Error(t, err)

	_, err = Solve(p, First, strings.NewReader("bad\n"))
	assert.Error(t, err)
}

func TestCheckSample(t *testing.T) {
	p := Puzzle{
		Day:    1,
		Parser: lineCount,
		Sample: Sample{Input: "a\nb\nc\n", First: 3, Second: 4},
	}

	got, err := CheckSample(p, First)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = CheckSample(p, Second)
	require.NoError(t, err)

	p.Sample.Second = 10
	got, err = CheckSample(p, Second)
	require.Error(t, err)
	assert.Equal(t, 4, got)
	assert.Contains(t, err.Error(), "want 10")

	p.Sample.Input = ""
	_, err = CheckSample(p, First)
	assert.Error(t, err)
}
