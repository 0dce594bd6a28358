package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"gorm.io/gorm"
)

// ConstraintManager adds the PostgreSQL constraints and indexes GORM tags cannot express
type ConstraintManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewConstraintManager creates a new constraint manager
func NewConstraintManager(db *gorm.DB, logger coreport.Logger) *ConstraintManager {
	return &ConstraintManager{
		db:     db,
		logger: logger,
	}
}

type ddl struct {
	name string
	sql  string
}

// Constraints are added idempotently: an existing constraint name is skipped
var checkConstraints = []struct {
	table, name, check string
}{
	{"escrow_locks", "chk_escrow_locks_amount_non_negative", "amount >= 0"},
	{"escrow_locks", "chk_escrow_locks_unlock_when_locked", "(amount = 0) = (unlock_time IS NULL)"},
	{"escrow_operations", "chk_escrow_operations_amount_positive", "amount > 0"},
	{"escrow_operations", "chk_escrow_operations_kind", "kind IN ('deposit', 'withdraw')"},
	{"escrow_operations", "chk_escrow_operations_status", "status IN ('pending', 'completed', 'failed')"},
	{"token_accounts", "chk_token_accounts_balance_non_negative", "balance >= 0"},
	{"token_accounts", "chk_token_accounts_allowance_non_negative", "allowance >= 0"},
}

// CreateConstraints adds CHECK constraints guarding the ledger invariants
func (m *ConstraintManager) CreateConstraints(ctx context.Context) error {
	m.logger.Info("Creating table constraints", nil)

	for _, c := range checkConstraints {
		sql := `
			DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + c.name + `') THEN
					ALTER TABLE ` + c.table + ` ADD CONSTRAINT ` + c.name + ` CHECK (` + c.check + `);
				END IF;
			END $$;`
		if err := m.db.WithContext(ctx).Exec(sql).Error; err != nil {
			m.logger.Error("Failed to create constraint", map[string]any{
				"constraint": c.name,
				"error":      err.Error(),
			})
			return err
		}
	}
	return nil
}

// CreateIndexes creates query indexes
func (m *ConstraintManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	indexes := []ddl{
		{"idx_escrow_operations_account_created", `
			CREATE INDEX IF NOT EXISTS idx_escrow_operations_account_created
			ON escrow_operations (account, created_at DESC)`},
		{"idx_escrow_operations_unfinished", `
			CREATE INDEX IF NOT EXISTS idx_escrow_operations_unfinished
			ON escrow_operations (created_at)
			WHERE status <> 'completed'`},
		{"idx_escrow_locks_unlock_time", `
			CREATE INDEX IF NOT EXISTS idx_escrow_locks_unlock_time
			ON escrow_locks (unlock_time)
			WHERE amount > 0`},
		{"idx_escrow_operations_created_at_brin", `
			CREATE INDEX IF NOT EXISTS idx_escrow_operations_created_at_brin
			ON escrow_operations USING BRIN (created_at)
			WITH (pages_per_range = 32)`},
	}

	for _, idx := range indexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	// Hot rows are updated in place; not critical if the role may not alter storage
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE escrow_locks SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for escrow_locks", map[string]any{
			"error": err.Error(),
		})
	}
	return nil
}
