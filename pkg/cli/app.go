package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mchmarny/advent/pkg/config"
	"github.com/mchmarny/advent/pkg/data"
	"github.com/mchmarny/advent/pkg/logging"
	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "advent"
	appConfigKey = "app-config"
)

const (
	debugFlagName  = "debug"
	configFlagName = "config"
	dbFlagName     = "db"
	formatFlagName = "format"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// Flags keep parse state, so every command tree gets its own instances.
func newDebugFlag() *urfave.BoolFlag {
	return &urfave.BoolFlag{
		Name:  debugFlagName,
		Usage: "Prints verbose logs (optional, default: false)",
	}
}

// Execute creates and runs the advent CLI application.
func Execute() {
	initLogging(false)

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	*config.Config
	ConfigPath string
	Debug      bool
}

func getConfig(cmd *urfave.Command) *appConfig {
	return cmd.Root().Metadata[appConfigKey].(*appConfig)
}

func newApp() *urfave.Command {
	return &urfave.Command{
		Name:                  appName,
		Version:               fmt.Sprintf("%s (%s - %s)", version, commit, date),
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Usage:                 "Advent of Code puzzle solvers",
		Writer:                os.Stdout,
		Metadata:              map[string]any{},
		Flags: []urfave.Flag{
			newDebugFlag(),
			&urfave.StringFlag{
				Name:    configFlagName,
				Usage:   fmt.Sprintf("Path to the config file (default: $HOME/.%s/%s)", appName, config.FileName),
				Sources: urfave.EnvVars("ADVENT_CONFIG"),
			},
			&urfave.StringFlag{
				Name:    dbFlagName,
				Usage:   fmt.Sprintf("Path to the Sqlite answer journal (default: $HOME/.%s/%s)", appName, data.DataFileName),
				Sources: urfave.EnvVars("ADVENT_DB"),
			},
			&urfave.StringFlag{
				Name:    formatFlagName,
				Usage:   "Output format [json, yaml]",
				Sources: urfave.EnvVars("ADVENT_FORMAT"),
			},
		},
		Commands: []*urfave.Command{
			newSolveCmd(),
			newDaysCmd(),
			newSampleCmd(),
			newHistoryCmd(),
			newStatsCmd(),
			newResetCmd(),
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			debug := cmd.Bool(debugFlagName)
			if debug {
				initLogging(true)
			}

			cfgPath := cmd.String(configFlagName)
			if cfgPath == "" {
				cfgPath = filepath.Join(getHomeDir(), config.FileName)
			}

			cfg, err := config.ReadOrCreate(cfgPath)
			if err != nil {
				return ctx, fmt.Errorf("reading config: %w", err)
			}

			if !debug {
				logging.SetDefaultCLILogger(cfg.LogLevel)
			}

			if f := cmd.String(formatFlagName); f != "" {
				if f == "yml" {
					f = config.FormatYAML
				}
				cfg.Format = f
				if err := cfg.Validate(); err != nil {
					return ctx, err
				}
			}

			if dbPath := cmd.String(dbFlagName); dbPath != "" {
				cfg.DBPath = dbPath
			}
			if cfg.DBPath == "" {
				cfg.DBPath = filepath.Join(filepath.Dir(cfgPath), data.DataFileName)
			}

			slog.Debug("config loaded", "path", cfgPath, "db", cfg.DBPath, "format", cfg.Format)

			cmd.Metadata[appConfigKey] = &appConfig{
				Config:     cfg,
				ConfigPath: cfgPath,
				Debug:      debug,
			}
			return ctx, nil
		},
	}
}

func initLogging(debug bool) {
	level := "info"
	if debug {
		level = "debug"
	}
	logging.SetDefaultCLILogger(level)
}

func getHomeDir() string {
	dir, _, err := config.GetOrCreateHomeDir(appName)
	if err != nil {
		slog.Debug("error getting home dir, using current dir instead", "error", err)
		return "."
	}
	return dir
}

func encode(w io.Writer, format string, v any) error {
	if format == config.FormatYAML {
		e := yaml.NewEncoder(w)
		defer e.Close()
		return e.Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
