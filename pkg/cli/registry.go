package cli

import (
	"github.com/mchmarny/advent/pkg/calories"
	"github.com/mchmarny/advent/pkg/puzzle"
	"github.com/mchmarny/advent/pkg/rps"
	"github.com/mchmarny/advent/pkg/rucksack"
)

func newRegistry() (*puzzle.Registry, error) {
	r := puzzle.NewRegistry()
	list := []puzzle.Puzzle{
		{Day: 1, Title: calories.Title, Parser: calories.Parser{Top: calories.DefaultTop}, Sample: calories.Sample},
		{Day: 2, Title: rps.Title, Parser: rps.Parser{}, Sample: rps.Sample},
		{Day: 3, Title: rucksack.Title, Parser: rucksack.Parser{}, Sample: rucksack.Sample},
	}
	for _, p := range list {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}
