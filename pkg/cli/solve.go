package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mchmarny/advent/pkg/data"
	"github.com/mchmarny/advent/pkg/puzzle"
	urfave "github.com/urfave/cli/v3"
)

const (
	dayFlagName    = "day"
	halfFlagName   = "half"
	noSaveFlagName = "no-save"
)

func newSolveCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "solve",
		Aliases:   []string{"s"},
		Usage:     "Solve one puzzle half for an input file",
		ArgsUsage: "[input_file]",
		Flags: []urfave.Flag{
			&urfave.IntFlag{
				Name:     dayFlagName,
				Aliases:  []string{"d"},
				Usage:    "Puzzle day",
				Required: true,
			},
			&urfave.StringFlag{
				Name:  halfFlagName,
				Usage: "Puzzle half [1, 2] (default: config default_half)",
			},
			&urfave.BoolFlag{
				Name:  noSaveFlagName,
				Usage: "Do not record the answer in the journal",
			},
		},
		Action: cmdSolve,
	}
}

func cmdSolve(_ context.Context, cmd *urfave.Command) error {
	cfg := getConfig(cmd)

	reg, err := newRegistry()
	if err != nil {
		return fmt.Errorf("building registry: %w", err)
	}

	p, err := reg.Get(cmd.Int(dayFlagName))
	if err != nil {
		return err
	}

	halfArg := cmd.String(halfFlagName)
	if halfArg == "" {
		halfArg = cfg.DefaultHalf
	}
	half, err := puzzle.ParseHalf(halfArg)
	if err != nil {
		return err
	}

	if cmd.Args().Len() > 1 {
		return fmt.Errorf("unexpected arguments: %v", cmd.Args().Tail())
	}
	path := cmd.Args().First()
	if path == "" {
		path = cfg.InputPath(p.Day)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	start := time.Now()
	result, err := puzzle.Solve(p, half, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("solving day %d half %s: %w", p.Day, half, err)
	}
	slog.Debug("solved", "day", p.Day, "half", half.String(), "result", result, "duration", time.Since(start).String())

	fmt.Fprintf(cmd.Root().Writer, "Result: %d\n", result)

	if cmd.Bool(noSaveFlagName) {
		return nil
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	a := &data.Answer{
		Day:       p.Day,
		Half:      int(half),
		InputPath: path,
		InputHash: data.HashInput(b),
		Result:    result,
	}
	if err := data.SaveAnswer(db, a); err != nil {
		return fmt.Errorf("saving answer: %w", err)
	}
	return nil
}
