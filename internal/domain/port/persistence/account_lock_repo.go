package persistence

import (
	"context"
	"time"
)

// AccountLockRepository is a mutex per account shared by every process
// serving the same ledger
type AccountLockRepository interface {
	// AcquireLock takes the account mutex for at most duration
	//
	// Possible errors:
	// - ErrAccountLocked: If another holder owns an unexpired lock
	// - ErrDatabaseConnection: If the backing store fails
	AcquireLock(ctx context.Context, account string, duration time.Duration) error

	// ReleaseLock frees a mutex taken by this holder; releasing a lock that
	// already expired is not an error
	ReleaseLock(ctx context.Context, account string) error
}
