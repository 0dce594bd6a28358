package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountLockRepository implements a cross-process account mutex on the account_locks table
type AccountLockRepository struct {
	db              *gorm.DB
	owner           string
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountLockRepository creates a new AccountLockRepository with a fresh owner token
func NewAccountLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountLockRepository {
	return &AccountLockRepository{
		db:              db,
		owner:           uuid.NewString(),
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock inserts the lock row, or takes over a row whose holder expired
func (r *AccountLockRepository) AcquireLock(ctx context.Context, account string, duration time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO account_locks (account, owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (account) DO UPDATE
		SET owner = EXCLUDED.owner,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE account_locks.expires_at <= ?`,
		account, r.owner, now, expiresAt, now, now,
		now,
	)

	if err := result.Error; err != nil {
		if isContextError(err) {
			r.logger.Warn("Context timeout acquiring account lock", map[string]any{
				"account": account,
				"error":   err.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", err)
		}
		if r.errorClassifier.IsLockError(err) {
			return fmt.Errorf("%w: %s", errs.ErrAccountLocked, account)
		}

		r.logger.Error("Database error acquiring account lock", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	// The conflict branch updates nothing while an unexpired holder exists
	if result.RowsAffected == 0 {
		r.logger.Warn("Account is already locked", map[string]any{
			"account": account,
		})
		return fmt.Errorf("%w: %s", errs.ErrAccountLocked, account)
	}

	r.logger.Debug("Account lock acquired", map[string]any{
		"account":    account,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock deletes the lock row if this repository still owns it
func (r *AccountLockRepository) ReleaseLock(ctx context.Context, account string) error {
	result := r.db.WithContext(ctx).
		Where("account = ? AND owner = ?", account, r.owner).
		Delete(&model.AccountLock{})

	if result.Error != nil {
		// The row expires on its own
		if isContextError(result.Error) {
			r.logger.Warn("Context timeout when releasing account lock, lock will expire automatically", map[string]any{
				"account": account,
				"error":   result.Error.Error(),
			})
			return nil
		}
		r.logger.Error("Failed to release account lock", map[string]any{
			"account": account,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No account lock to release, it may have expired", map[string]any{
			"account": account,
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired locks from the database
func (r *AccountLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.AccountLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired account locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired account locks removed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
