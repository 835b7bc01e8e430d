package puzzle

import (
	"github.com/pkg/errors"
)

// Half selects which half of a puzzle is being solved.
type Half int

const (
	First Half = iota + 1
	Second
)

// Halves lists both halves in order.
var Halves = []Half{First, Second}

// ParseHalf converts the "1" or "2" command line selector into a Half.
func ParseHalf(s string) (Half, error) {
	switch s {
	case "1":
		return First, nil
	case "2":
		return Second, nil
	default:
		return 0, errors.Errorf("bad half: %q", s)
	}
}

func (h Half) String() string {
	switch h {
	case First:
		return "1"
	case Second:
		return "2"
	default:
		return "?"
	}
}

// Valid reports whether h is First or Second.
func (h Half) Valid() bool {
	return h == First || h == Second
}
