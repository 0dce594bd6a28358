package persistence

import (
	"context"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
)

// LockRepository stores the escrow lock of each account
type LockRepository interface {
	// Get returns the lock of an account
	// Accounts that never deposited yield an empty lock, not an error
	//
	// Possible errors:
	// - ErrInvalidAccount: If the account identifier is malformed
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context, account string) (*entity.Lock, error)

	// GetForUpdate returns the lock of an account and holds a row lock on it
	// until the surrounding unit of work ends
	//
	// Possible errors:
	// - ErrAccountLocked: If the row is held by another transaction past the lock timeout
	// - ErrDatabaseConnection: If database connection fails
	GetForUpdate(ctx context.Context, account string) (*entity.Lock, error)

	// Save writes the lock, inserting the row on first deposit
	//
	// Possible errors:
	// - ErrConstraintViolation: If the stored values violate table constraints
	// - ErrDatabaseConnection: If database connection fails
	Save(ctx context.Context, lock *entity.Lock) error
}
