package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mchmarny/advent/pkg/data"
	urfave "github.com/urfave/cli/v3"
)

const forceFlagName = "force"

func newResetCmd() *urfave.Command {
	return &urfave.Command{
		Name:  "reset",
		Usage: "Delete all recorded answers and start fresh",
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:  forceFlagName,
				Usage: "Skip the confirmation prompt",
			},
		},
		Action: cmdReset,
	}
}

func cmdReset(_ context.Context, cmd *urfave.Command) error {
	cfg := getConfig(cmd)
	root := cmd.Root()

	if !cmd.Bool(forceFlagName) {
		fmt.Fprintf(root.Writer, "This will permanently delete all answers in %s\n", cfg.DBPath)
		fmt.Fprint(root.Writer, "Are you sure? [y/N]: ")

		in := root.Reader
		if in == nil {
			in = os.Stdin
		}
		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && answer == "" {
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Fprintln(root.Writer, "Aborted.")
			return nil
		}
	}

	if err := os.Remove(cfg.DBPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting database: %w", err)
	}
	slog.Debug("database deleted", "path", cfg.DBPath)

	if err := data.Init(cfg.DBPath); err != nil {
		return fmt.Errorf("re-initializing database: %w", err)
	}
	slog.Debug("database re-initialized", "path", cfg.DBPath)

	fmt.Fprintln(root.Writer, "Reset complete.")
	return nil
}
