package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"gorm.io/gorm"
)

// AddOwnerToAccountLocks adds the holder token column to account_locks (1.0.0 -> 1.1.0).
// Rows written before the column existed have no owner and are dropped; they
// expire within one lock timeout anyway.
type AddOwnerToAccountLocks struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddOwnerToAccountLocks creates a new migration instance
func NewAddOwnerToAccountLocks(db *gorm.DB, logger coreport.Logger) *AddOwnerToAccountLocks {
	return &AddOwnerToAccountLocks{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddOwnerToAccountLocks) Run(ctx context.Context) error {
	m.logger.Info("Adding owner column to account_locks table", nil)

	exists, err := m.columnExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM account_locks`).Error; err != nil {
			m.logger.Error("Failed to clear account_locks", map[string]any{"error": err.Error()})
			return err
		}
		if err := tx.Exec(`ALTER TABLE account_locks ADD COLUMN owner VARCHAR(64) NOT NULL`).Error; err != nil {
			m.logger.Error("Failed to add owner column", map[string]any{"error": err.Error()})
			return err
		}
		return nil
	})
}

// columnExists checks if the owner column is already present
func (m *AddOwnerToAccountLocks) columnExists(ctx context.Context) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM information_schema.columns
		WHERE table_name = 'account_locks' AND column_name = 'owner'
	`).Scan(&count).Error
	if err != nil {
		m.logger.Error("Failed to check column existence", map[string]any{"error": err.Error()})
		return false, err
	}
	return count > 0, nil
}
