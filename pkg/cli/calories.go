package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mchmarny/advent/pkg/calories"
	urfave "github.com/urfave/cli/v3"
)

const topFlagName = "top"

// Calories runs the day 1 solver: day1 [--top N] input_file.
func Calories() {
	initLogging(false)

	if err := NewCalories().Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func NewCalories() *urfave.Command {
	return &urfave.Command{
		Name:            "day1",
		Usage:           "Find the elves carrying the most calories",
		ArgsUsage:       "input_file",
		Version:         version,
		HideHelpCommand: true,
		Writer:          os.Stdout,
		Flags: []urfave.Flag{
			newDebugFlag(),
			&urfave.IntFlag{
				Name:  topFlagName,
				Usage: "Sum the N biggest packs instead of reporting the biggest one",
			},
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			if cmd.Bool(debugFlagName) {
				initLogging(true)
			}
			return ctx, nil
		},
		Action: func(_ context.Context, cmd *urfave.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("missing input file")
			}

			top := cmd.Int(topFlagName)
			if top < 0 {
				return fmt.Errorf("invalid top: %d", top)
			}

			path := cmd.Args().First()
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", path, err)
			}
			defer file.Close()

			packs, err := calories.ParsePacks(bufio.NewReader(file))
			if err != nil {
				return err
			}

			if top == 0 {
				fmt.Fprintf(cmd.Writer, "Biggest pack: %d calories\n", calories.SumTop(packs, 1))
				return nil
			}
			fmt.Fprintf(cmd.Writer, "Top %d packs: %d calories\n", top, calories.SumTop(packs, top))
			return nil
		},
	}
}
