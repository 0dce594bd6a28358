package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	poolMonitorInterval   = 30 * time.Second
	lockCleanupInterval   = time.Minute
	defaultShutdownPeriod = 15 * time.Second
)

type serveOptions struct {
	skipMigrate bool
	port        int
}

func newServeCommand(flags *globalFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.skipMigrate, "skip-migrate", false, "don't migrate the schema on start")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "port to listen on, overrides server.port")
	return cmd
}

func runServe(parent context.Context, flags *globalFlags, opts *serveOptions) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if opts.port > 0 {
		cfg.Server.Port = opts.port
	}

	appLogger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Flush() }()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, appLogger, !opts.skipMigrate)
	if err != nil {
		appLogger.Error("Failed to start application", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	defer app.Close()

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           app.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":         server.Addr,
			"env":          cfg.Environment,
			"storage":      cfg.Escrow.Storage,
			"lock_backend": cfg.Escrow.AccountLockBackend,
			"time_travel":  cfg.Escrow.AllowTimeTravel,
			"log_level":    appLogger.GetLevel().String(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownTimeout := cfg.Server.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = defaultShutdownPeriod
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
		}

		appLogger.Info("Draining escrow queues...", nil)
		if err := app.escrow.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Escrow queues did not drain", map[string]any{
				"error": err.Error(),
			})
		}
		return nil
	})

	if app.dbManager != nil {
		if monitor := app.dbManager.Monitor(); monitor != nil {
			g.Go(func() error {
				return monitor.Run(gCtx, poolMonitorInterval)
			})
		}
	}

	if app.lockCleaner != nil {
		g.Go(func() error {
			return runLockCleanup(gCtx, app, lockCleanupInterval)
		})
	}

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// runLockCleanup removes expired account_locks rows until ctx is done
func runLockCleanup(ctx context.Context, app *application, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := app.lockCleaner.CleanupExpiredLocks(ctx); err != nil && ctx.Err() == nil {
				app.logger.Warn("Expired lock cleanup failed", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}
