package cli

import (
	"context"
	"fmt"

	"github.com/mchmarny/advent/pkg/data"
	urfave "github.com/urfave/cli/v3"
)

func newStatsCmd() *urfave.Command {
	return &urfave.Command{
		Name:   "stats",
		Usage:  "Show answer journal counts",
		Action: cmdStats,
	}
}

func cmdStats(_ context.Context, cmd *urfave.Command) error {
	cfg := getConfig(cmd)

	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	state, err := data.GetDataState(db)
	if err != nil {
		return fmt.Errorf("getting journal state: %w", err)
	}
	return encode(cmd.Root().Writer, cfg.Format, state)
}
