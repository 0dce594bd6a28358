package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockRepository implements persistence.LockRepository using GORM
type LockRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	lockTimeout     time.Duration
	errorClassifier *ErrorClassifier
}

// NewLockRepository creates a new LockRepository instance.
// lockTimeout bounds how long GetForUpdate waits for a row held elsewhere; zero waits forever.
func NewLockRepository(db *gorm.DB, logger coreport.Logger, lockTimeout time.Duration) *LockRepository {
	return &LockRepository{
		db:              db,
		logger:          logger,
		lockTimeout:     lockTimeout,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a lock model to an entity
func (r *LockRepository) modelToEntity(m *model.EscrowLock) (*entity.Lock, error) {
	amount, err := parseStoredAmount("escrow_locks.amount", m.Amount)
	if err != nil {
		return nil, err
	}
	return entity.RestoreLock(m.Account, amount, timeOrZero(m.UnlockTime), m.CreatedAt, m.UpdatedAt, m.OperationCount)
}

// handleDatabaseError standardizes database error handling
func (r *LockRepository) handleDatabaseError(operation string, err error, account string) error {
	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Escrow lock row is held by another transaction", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrAccountLocked, account)
	}
	if r.errorClassifier.IsConstraintError(err) {
		r.logger.Error("Escrow lock constraint violated", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account": account,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Get returns the lock of an account; accounts without a row are empty
func (r *LockRepository) Get(ctx context.Context, account string) (*entity.Lock, error) {
	return r.get(ctx, r.db.WithContext(ctx), account, "getting lock")
}

// GetForUpdate returns the lock and holds the row until the surrounding transaction ends
func (r *LockRepository) GetForUpdate(ctx context.Context, account string) (*entity.Lock, error) {
	db := r.db.WithContext(ctx)
	if r.lockTimeout > 0 {
		if err := db.Exec(fmt.Sprintf("SET LOCAL lock_timeout = %d", r.lockTimeout.Milliseconds())).Error; err != nil {
			return nil, r.handleDatabaseError("setting lock timeout", err, account)
		}
	}
	if err := entity.ValidateAccount(account); err != nil {
		return nil, err
	}

	// FOR UPDATE cannot lock a missing row; insert an empty one first
	placeholder := model.EscrowLock{Account: account, Amount: "0"}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&placeholder).Error; err != nil {
		return nil, r.handleDatabaseError("creating lock row", err, account)
	}

	return r.get(ctx, db.Clauses(clause.Locking{Strength: "UPDATE"}), account, "locking lock row")
}

func (r *LockRepository) get(ctx context.Context, db *gorm.DB, account string, operation string) (*entity.Lock, error) {
	if err := entity.ValidateAccount(account); err != nil {
		return nil, err
	}

	var lockModel model.EscrowLock
	result := db.Where("account = ?", account).Limit(1).Find(&lockModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError(operation, result.Error, account)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No escrow lock stored, returning empty lock", map[string]any{
			"account": account,
		})
		return entity.NewEmptyLock(account)
	}

	lock, err := r.modelToEntity(&lockModel)
	if err != nil {
		r.logger.Error("Stored escrow lock is invalid", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return nil, err
	}

	r.logger.Debug("Escrow lock retrieved", map[string]any{
		"account":     account,
		"amount":      lock.GetAmount(),
		"unlock_time": lock.UnlockUnix(),
	})
	return lock, nil
}

// Save writes the lock, inserting the row on first deposit
func (r *LockRepository) Save(ctx context.Context, lock *entity.Lock) error {
	if lock == nil {
		return errors.New("lock cannot be nil")
	}

	lockModel := model.EscrowLock{
		Account:        lock.Account,
		Amount:         lock.GetAmount(),
		UnlockTime:     timePtr(lock.UnlockTime),
		CreatedAt:      lock.CreatedAt,
		UpdatedAt:      lock.UpdatedAt,
		OperationCount: lock.OperationCount,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "unlock_time", "updated_at", "operation_count"}),
	}).Create(&lockModel)

	if result.Error != nil {
		return r.handleDatabaseError("saving lock", result.Error, lock.Account)
	}

	r.logger.Debug("Escrow lock saved", map[string]any{
		"account":     lock.Account,
		"amount":      lock.GetAmount(),
		"unlock_time": lock.UnlockUnix(),
		"op_count":    lock.OperationCount,
	})
	return nil
}
