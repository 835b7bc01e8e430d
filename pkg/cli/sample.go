package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/advent/pkg/puzzle"
	urfave "github.com/urfave/cli/v3"
)

func newSampleCmd() *urfave.Command {
	return &urfave.Command{
		Name:   "sample",
		Usage:  "Check the solvers against the puzzle examples",
		Flags:  []urfave.Flag{newOptionalDayFlag()},
		Action: cmdSample,
	}
}

type SampleResult struct {
	Day   int    `json:"day" yaml:"day"`
	Half  string `json:"half" yaml:"half"`
	Got   int    `json:"got" yaml:"got"`
	Want  int    `json:"want" yaml:"want"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func cmdSample(_ context.Context, cmd *urfave.Command) error {
	reg, err := newRegistry()
	if err != nil {
		return fmt.Errorf("building registry: %w", err)
	}

	list := reg.Days()
	if day := cmd.Int(dayFlagName); day != 0 {
		p, err := reg.Get(day)
		if err != nil {
			return err
		}
		list = []puzzle.Puzzle{p}
	}

	results := make([]*SampleResult, 0, len(list)*len(puzzle.Halves))
	failed := 0
	for _, p := range list {
		for _, half := range puzzle.Halves {
			got, err := puzzle.CheckSample(p, half)
			r := &SampleResult{
				Day:  p.Day,
				Half: half.String(),
				Got:  got,
				Want: p.Sample.Want(half),
			}
			if err != nil {
				slog.Error("sample failed", "day", p.Day, "half", half.String(), "error", err)
				r.Error = err.Error()
				failed++
			}
			results = append(results, r)
		}
	}

	if err := encode(cmd.Root().Writer, getConfig(cmd).Format, results); err != nil {
		return fmt.Errorf("encoding sample results: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d sample(s) failed", failed)
	}
	return nil
}
