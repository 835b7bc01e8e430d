package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mchmarny/advent/pkg/data"
	urfave "github.com/urfave/cli/v3"
)

const limitFlagName = "limit"

func newOptionalDayFlag() *urfave.IntFlag {
	return &urfave.IntFlag{
		Name:    dayFlagName,
		Aliases: []string{"d"},
		Usage:   "Puzzle day (optional, default: all days)",
	}
}

func newHistoryCmd() *urfave.Command {
	return &urfave.Command{
		Name:  "history",
		Usage: "List previously recorded answers, newest first",
		Flags: []urfave.Flag{
			newOptionalDayFlag(),
			&urfave.IntFlag{
				Name:  limitFlagName,
				Usage: "Limits number of results returned",
				Value: data.QueryLimitDefault,
			},
		},
		Action: cmdHistory,
	}
}

func cmdHistory(_ context.Context, cmd *urfave.Command) error {
	cfg := getConfig(cmd)

	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := data.QueryAnswers(db, cmd.Int(dayFlagName), cmd.Int(limitFlagName))
	if err != nil {
		return fmt.Errorf("querying answers: %w", err)
	}

	return encode(cmd.Root().Writer, cfg.Format, list)
}

func openDB(path string) (*sql.DB, error) {
	if err := data.Init(path); err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	db, err := data.GetDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}
