package memory

import (
	"context"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
)

// LockRepository implements persistence.LockRepository in memory
type LockRepository struct {
	store *Store
	tx    *memTx
}

// NewLockRepository creates a repository outside any transaction
func NewLockRepository(store *Store) *LockRepository {
	return &LockRepository{store: store}
}

// Get returns the staged or stored lock, or an empty one
func (r *LockRepository) Get(ctx context.Context, account string) (*entity.Lock, error) {
	if err := entity.ValidateAccount(account); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.tx != nil && !r.tx.done {
		if lock, ok := r.tx.locks[account]; ok {
			return lock.Clone(), nil
		}
	}
	if lock, ok := r.store.getLock(account); ok {
		return lock, nil
	}
	return entity.NewEmptyLock(account)
}

// GetForUpdate behaves like Get; exclusion comes from the account queue
func (r *LockRepository) GetForUpdate(ctx context.Context, account string) (*entity.Lock, error) {
	return r.Get(ctx, account)
}

// Save stages the lock in the transaction, or writes it directly without one
func (r *LockRepository) Save(ctx context.Context, lock *entity.Lock) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.tx != nil && !r.tx.done {
		r.tx.locks[lock.Account] = lock.Clone()
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.locks[lock.Account] = lock.Clone()
	return nil
}
