package puzzle

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Parser reads a whole puzzle input in one pass and returns the answer.
type Parser interface {
	Parse(half Half, r io.Reader) (int, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(half Half, r io.Reader) (int, error)

func (f ParserFunc) Parse(half Half, r io.Reader) (int, error) {
	return f(half, r)
}

// Lines calls fn for every line of r. Line numbers start at 1. An error
// returned by fn stops the iteration and is annotated with the line number.
func Lines(r io.Reader, fn func(n int, line string) error) error {
	if r == nil {
		return errors.New("reader required")
	}

	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimSuffix(s.Text(), "\r")
		if err := fn(n, line); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
	}

	if err := s.Err(); err != nil {
		return errors.Wrap(err, "error reading input")
	}
	return nil
}
