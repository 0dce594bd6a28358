package main

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/persistence"
	tokenport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/token"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/usecase/escrow"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/usecase/token"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/redislock"
	timeProvider "github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// lockCleaner removes expired cross-process account locks
type lockCleaner interface {
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}

// application holds the wired components of a running service
type application struct {
	cfg    *config.Config
	logger core.Logger

	clock     core.TimeProvider
	traveler  core.TimeTraveler // nil unless time travel is enabled
	dbManager *database.Manager // nil for memory storage
	redis     *redis.Client     // nil unless the redis lock backend is selected

	lockCleaner lockCleaner
	escrow      *escrow.Service
	tokens      *token.TokenUseCase
	recorder    *metrics.Recorder // nil when metrics are disabled
	router      *gin.Engine
}

// newApplication wires storage, use cases and the HTTP router from configuration
func newApplication(ctx context.Context, cfg *config.Config, logger core.Logger, migrate bool) (app *application, err error) {
	app = &application{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			app.Close()
		}
	}()

	// Account mutex expiry always follows the wall clock
	realClock := timeProvider.NewRealTimeProvider()
	app.clock = realClock
	if cfg.Escrow.AllowTimeTravel {
		offset := timeProvider.NewOffsetTimeProvider(realClock)
		app.clock = offset
		app.traveler = offset
		logger.Warn("Time travel enabled, the escrow clock can be advanced over HTTP", nil)
	}

	if cfg.Metrics.Enabled {
		app.recorder = metrics.NewRecorder(cfg.Metrics.Namespace)
	}

	var (
		uow          persistence.UnitOfWork
		accountLocks persistence.AccountLockRepository
		ledger       tokenport.Ledger
	)

	switch cfg.Escrow.Storage {
	case config.StoragePostgres:
		app.dbManager = database.NewManager(database.FromAppConfig(cfg), logger, realClock)
		if _, err := app.dbManager.Connect(ctx); err != nil {
			return app, fmt.Errorf("connect database: %w", err)
		}
		if migrate {
			if err := app.dbManager.Migrate(ctx); err != nil {
				return app, fmt.Errorf("migrate database: %w", err)
			}
		}
		if app.recorder != nil {
			if err := app.recorder.RegisterDBStats(app.dbManager.SQLDB(), cfg.Database.Database); err != nil {
				return app, fmt.Errorf("register db stats collector: %w", err)
			}
		}

		uow = app.dbManager.CreateUnitOfWork()
		ledger = app.dbManager.CreateTokenLedger(cfg.Token.EscrowAccount)
		if cfg.Escrow.AccountLockBackend == config.AccountLockDatabase {
			dbLocks := app.dbManager.CreateAccountLockRepository()
			accountLocks = dbLocks
			app.lockCleaner = dbLocks
		}

	case config.StorageMemory:
		uow = memory.NewUnitOfWork(memory.NewStore())
		ledger = memory.NewTokenLedger(cfg.Token.EscrowAccount)
		if cfg.Escrow.AccountLockBackend == config.AccountLockDatabase {
			accountLocks = memory.NewAccountLockRepository(realClock)
		}

	default:
		return app, fmt.Errorf("unsupported escrow storage: %q", cfg.Escrow.Storage)
	}

	if cfg.Escrow.AccountLockBackend == config.AccountLockRedis {
		app.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := app.redis.Ping(ctx).Err(); err != nil {
			return app, fmt.Errorf("connect redis: %w", err)
		}
		accountLocks = redislock.NewAccountLockRepository(app.redis, cfg.Redis.KeyPrefix, logger)
	}

	opts := escrow.Options{
		LockTimeout:     cfg.Escrow.LockTimeout(),
		MaxLockDuration: cfg.Escrow.MaxLockDuration,
		QueueSize:       cfg.Escrow.QueueSize,
	}
	if app.recorder != nil {
		opts.Metrics = app.recorder
	}
	app.escrow = escrow.NewEscrowService(uow, accountLocks, ledger, app.clock, logger, opts)
	app.tokens = token.NewTokenUseCase(ledger, logger)

	if !cfg.IsProduction() && len(cfg.Token.DefaultAccounts) > 0 {
		if err := app.tokens.CreateDefaultAccounts(ctx, cfg.Token.DefaultAccounts); err != nil {
			logger.Error("Failed to create default accounts", map[string]any{
				"error": err.Error(),
			})
		}
	}

	app.router = app.buildRouter()
	return app, nil
}

// buildRouter sets up middlewares and routes
func (a *application) buildRouter() *gin.Engine {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	var observer middleware.RequestObserver
	handlers := routes.Handlers{
		Escrow: handler.NewEscrowHandler(a.escrow, a.logger),
		Token:  handler.NewTokenHandler(a.tokens, a.logger),
		Health: handler.NewHealthHandler(a.cfg.Escrow.Storage, a.healthChecks(), a.clock, a.logger),
	}
	if a.traveler != nil {
		handlers.Debug = handler.NewDebugHandler(a.traveler, a.logger)
	}
	if a.recorder != nil {
		handlers.Metrics = a.recorder.Handler()
		observer = a.recorder
	}

	routes.SetupMiddlewares(router, a.logger, a.cfg.Server.AllowedOrigins, observer)
	routes.SetupRoutes(router, handlers, a.cfg.Metrics.Path)
	return router
}

// healthChecks returns the dependency checks of the wired backends
func (a *application) healthChecks() map[string]handler.HealthCheck {
	checks := make(map[string]handler.HealthCheck)
	if a.dbManager != nil {
		checks["database"] = a.dbManager.Ping
	}
	if a.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return a.redis.Ping(ctx).Err()
		}
	}
	return checks
}

// Close releases connections; it is safe on a partially built application
func (a *application) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}
	if a.dbManager != nil {
		if err := a.dbManager.Close(); err != nil {
			a.logger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}
}
