package cli

import (
	"context"
	"fmt"

	urfave "github.com/urfave/cli/v3"
)

func newDaysCmd() *urfave.Command {
	return &urfave.Command{
		Name:   "days",
		Usage:  "List the available puzzles",
		Action: cmdDays,
	}
}

func cmdDays(_ context.Context, cmd *urfave.Command) error {
	reg, err := newRegistry()
	if err != nil {
		return fmt.Errorf("building registry: %w", err)
	}
	return encode(cmd.Root().Writer, getConfig(cmd).Format, reg.Days())
}
