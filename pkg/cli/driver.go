package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mchmarny/advent/pkg/puzzle"
	urfave "github.com/urfave/cli/v3"
)

// Drive runs the standalone solver for one day: day<N> 1|2 input_file.
func Drive(day int, p puzzle.Parser) {
	initLogging(false)

	if err := NewDriver(day, p).Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// NewDriver builds the command behind Drive.
func NewDriver(day int, p puzzle.Parser) *urfave.Command {
	name := fmt.Sprintf("day%d", day)
	usage := fmt.Sprintf("usage: %s 1|2 input_file", name)

	return &urfave.Command{
		Name:            name,
		Usage:           fmt.Sprintf("Solve Advent of Code day %d", day),
		ArgsUsage:       "1|2 input_file",
		Version:         version,
		HideHelpCommand: true,
		Writer:          os.Stdout,
		Flags:           []urfave.Flag{newDebugFlag()},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			if cmd.Bool(debugFlagName) {
				initLogging(true)
			}
			return ctx, nil
		},
		Action: func(_ context.Context, cmd *urfave.Command) error {
			if cmd.Args().Len() != 2 {
				return errors.New(usage)
			}

			half, err := puzzle.ParseHalf(cmd.Args().Get(0))
			if err != nil {
				return err
			}

			path := cmd.Args().Get(1)
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", path, err)
			}
			defer file.Close()

			slog.Debug("solving", "day", day, "half", half.String(), "input", path)

			result, err := p.Parse(half, bufio.NewReader(file))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.Writer, "Result: %d\n", result)
			return nil
		},
	}
}
