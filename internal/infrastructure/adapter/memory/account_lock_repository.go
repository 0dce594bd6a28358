package memory

import (
	"context"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
)

// AccountLockRepository is a process-local account mutex with expiry
type AccountLockRepository struct {
	mu           sync.Mutex
	expiries     map[string]time.Time
	timeProvider coreport.TimeProvider
}

// NewAccountLockRepository creates a new process-local account mutex
func NewAccountLockRepository(timeProvider coreport.TimeProvider) *AccountLockRepository {
	return &AccountLockRepository{
		expiries:     make(map[string]time.Time),
		timeProvider: timeProvider,
	}
}

// AcquireLock takes the mutex unless an unexpired holder exists
func (r *AccountLockRepository) AcquireLock(ctx context.Context, account string, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	if expiresAt, held := r.expiries[account]; held && expiresAt.After(now) {
		return errs.ErrAccountLocked
	}
	r.expiries[account] = now.Add(duration)
	return nil
}

// ReleaseLock frees the mutex
func (r *AccountLockRepository) ReleaseLock(_ context.Context, account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.expiries, account)
	return nil
}
