package main

import (
	"errors"

	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/database"
	timeProvider "github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

func newMigrateCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the PostgreSQL schema to the current version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cfg.Escrow.Storage != config.StoragePostgres {
				return errors.New("migrate requires escrow.storage=postgres")
			}

			appLogger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = appLogger.Flush() }()

			dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, timeProvider.NewRealTimeProvider())
			if _, err := dbManager.Connect(cmd.Context()); err != nil {
				return err
			}
			defer func() { _ = dbManager.Close() }()

			if err := dbManager.Migrate(cmd.Context()); err != nil {
				return err
			}

			appLogger.Info("Migrations applied", nil)
			return nil
		},
	}
}
