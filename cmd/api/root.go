package main

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	env       string
	configDir string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	serve := newServeCommand(flags)

	root := &cobra.Command{
		Use:   "voting-escrow",
		Short: "Time-locked token escrow ledger",
		Long: `voting-escrow locks fungible tokens until an unlock time and pays
them back on withdrawal. It serves an HTTP API backed by PostgreSQL or memory.

Running without a subcommand starts the server.`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.PersistentFlags().StringVar(&flags.env, "env", "", "environment to load (development, test, production); defaults to BP_ENV")
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "directory holding <env>.yaml, searched before the default paths")

	root.AddCommand(serve, newMigrateCommand(flags))
	return root
}

// loadConfig loads and validates configuration for the selected environment
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if flags.env == "" && flags.configDir == "" {
		cfg, err = config.LoadConfig()
	} else {
		env := strings.ToLower(flags.env)
		if env == "" {
			env = config.Development
		}
		paths := config.ConfigPaths
		if flags.configDir != "" {
			paths = append([]string{flags.configDir}, paths...)
		}
		cfg, err = config.Load(env, paths...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// newLogger builds the application logger from configuration
func newLogger(cfg *config.Config) (core.Logger, error) {
	return logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction() || strings.EqualFold(cfg.Logger.Format, "json"),
		Level:      cfg.Logger.Level,
		Service:    cfg.Logger.Service,
	})
}
