package commands

import (
	"context"
	"fmt"
	"strings"

	"message-board/internal"
	"message-board/repositories"
	"message-board/services"
	"message-board/storage"

	"github.com/mama165/sdk-go/logs"
	"github.com/urfave/cli/v3"
)

// NewApp builds the board command line with every subcommand registered.
// When flags.Service is already set, the database setup in Before is skipped.
func NewApp(flags *Flags, version string) *cli.Command {
	app := &cli.Command{
		Name:      "board",
		Usage:     "Manage a persisted message board",
		UsageText: "board [global options] command [command options]",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "BadgerDB directory (overrides BADGER_FILEPATH)",
				Destination: &flags.DataDir,
			},
			&cli.BoolFlag{
				Name:        "in-memory",
				Usage:       "keep messages in memory only (overrides BADGER_IN_MEMORY)",
				Destination: &flags.InMemory,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "env-file",
				Usage:       "dotenv file read before the environment",
				Value:       ".env",
				Destination: &flags.EnvFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if flags.Service != nil {
				return ctx, nil
			}
			return ctx, setup(c, flags)
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if flags.closeDB == nil {
				return nil
			}
			return flags.closeDB()
		},
	}

	app = NewListCmd(flags).Register(app)
	app = NewGetCmd(flags).Register(app)
	app = NewCreateCmd(flags).Register(app)
	app = NewUpdateCmd(flags).Register(app)
	app = NewDeleteCmd(flags).Register(app)
	return app
}

func setup(c *cli.Command, flags *Flags) error {
	config, err := internal.ReadConfig(flags.EnvFile)
	if err != nil {
		return err
	}
	if c.IsSet("data-dir") {
		config.BadgerFilepath = flags.DataDir
	}
	if c.IsSet("in-memory") {
		config.InMemory = flags.InMemory
	}
	if c.IsSet("log-level") {
		config.LogLevel = strings.ToUpper(flags.LogLevel)
	}
	if err = config.Validate(); err != nil {
		return err
	}
	flags.Config = config

	log := logs.GetLoggerFromString(config.LogLevel)
	db, err := storage.Open(config, log)
	if err != nil {
		return err
	}
	flags.closeDB = func() error {
		log.Debug("Closing BadgerDB...")
		if err := db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		return nil
	}

	repository := repositories.NewMessageRepository(db, log)
	flags.Service = services.NewMessageService(repository, log)
	return nil
}
