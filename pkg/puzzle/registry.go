package puzzle

import (
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Sample is the worked example given in a puzzle description.
type Sample struct {
	Input  string
	First  int
	Second int
}

// Want returns the expected sample answer for the given half.
func (s Sample) Want(half Half) int {
	if half == Second {
		return s.Second
	}
	return s.First
}

// Puzzle is one registered day.
type Puzzle struct {
	Day    int    `json:"day" yaml:"day"`
	Title  string `json:"title" yaml:"title"`
	Parser Parser `json:"-" yaml:"-"`
	Sample Sample `json:"-" yaml:"-"`
}

// Registry holds puzzles keyed by day.
type Registry struct {
	puzzles map[int]Puzzle
}

func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[int]Puzzle)}
}

// Register adds p to the registry.
func (r *Registry) Register(p Puzzle) error {
	if p.Day < 1 {
		return errors.Errorf("invalid day: %d", p.Day)
	}
	if p.Parser == nil {
		return errors.Errorf("day %d: parser required", p.Day)
	}
	if _, ok := r.puzzles[p.Day]; ok {
		return errors.Errorf("day %d already registered", p.Day)
	}
	r.puzzles[p.Day] = p
	slog.Debug("puzzle registered", "day", p.Day, "title", p.Title)
	return nil
}

// Get returns the puzzle for day.
func (r *Registry) Get(day int) (Puzzle, error) {
	p, ok := r.puzzles[day]
	if !ok {
		return Puzzle{}, errors.Errorf("day %d not registered", day)
	}
	return p, nil
}

// Days returns all registered puzzles ordered by day.
func (r *Registry) Days() []Puzzle {
	list := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Day < list[j].Day
	})
	return list
}

// Solve runs the puzzle parser over r.
func Solve(p Puzzle, half Half, r io.Reader) (int, error) {
	if !half.Valid() {
		return 0, errors.Errorf("bad half: %d", half)
	}
	if p.Parser == nil {
		return 0, errors.Errorf("day %d: parser required", p.Day)
	}
	return p.Parser.Parse(half, r)
}

// CheckSample solves the embedded sample and compares it with the expected answer.
func CheckSample(p Puzzle, half Half) (int, error) {
	if p.Sample.Input == "" {
		return 0, errors.Errorf("day %d has no sample", p.Day)
	}
	got, err := Solve(p, half, strings.NewReader(p.Sample.Input))
	if err != nil {
		return 0, errors.Wrapf(err, "day %d half %s sample", p.Day, half)
	}
	if want := p.Sample.Want(half); got != want {
		return got, errors.Errorf("day %d half %s sample: got %d, want %d", p.Day, half, got, want)
	}
	return got, nil
}
