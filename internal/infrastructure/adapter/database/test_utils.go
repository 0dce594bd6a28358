package database

import (
	"context"
	"os"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for tests that need a real PostgreSQL
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to the database named by TEST_DB_* variables and
// migrates it. The test is skipped when TEST_DB_HOST is unset.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	if _, ok := os.LookupEnv("TEST_DB_HOST"); !ok {
		t.Skip("TEST_DB_HOST not set, skipping PostgreSQL test")
	}

	timeProvider := timeprovider.NewRealTimeProvider()
	config := &Config{
		Driver:          "postgres",
		Host:            envOrDefault("TEST_DB_HOST", "localhost"),
		Port:            ParsePort(envOrDefault("TEST_DB_PORT", "5432")),
		Username:        envOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        envOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        envOrDefault("TEST_DB_DATABASE", "voting_escrow_test"),
		SSLMode:         envOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LockTimeout:     2 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   0,
		RetryDelay:      time.Second,
	}

	manager := NewManager(config, logger, timeProvider)
	ctx := context.Background()

	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	m := &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
	m.resetSchema(t)
	return m
}

// resetSchema drops every table and migrates from scratch
func (m *TestDBManager) resetSchema(t *testing.T) {
	t.Helper()

	err := m.Manager.DB().Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error
	if err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	if err := m.Manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// TruncateAllTables empties the ledger tables between subtests
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	err := m.Manager.DB().Exec(
		`TRUNCATE TABLE escrow_locks, escrow_operations, account_locks, token_accounts`,
	).Error
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}
