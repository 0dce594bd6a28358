package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/persistence"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "memory-tx"

var errNoTransaction = errors.New("no transaction found in context")

// memTx buffers writes until commit
type memTx struct {
	locks map[string]*entity.Lock
	ops   []*entity.Operation
	done  bool
}

// UnitOfWork implements persistence.UnitOfWork over a Store
type UnitOfWork struct {
	store *Store
}

// NewUnitOfWork creates a new in-memory unit of work
func NewUnitOfWork(store *Store) persistence.UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin starts a new buffered transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, txKey, &memTx{locks: make(map[string]*entity.Lock)}), nil
}

// Commit applies the buffered writes atomically
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil || tx.done {
		return errNoTransaction
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	defer u.store.release(tx)
	tx.done = true

	for _, op := range tx.ops {
		if existing, exists := u.store.operations[op.OperationID]; exists {
			return fmt.Errorf("failed to commit transaction: %w",
				errs.NewDuplicateOperationError(op.OperationID, existing.Account, string(existing.Status)))
		}
	}
	u.store.apply(tx.locks, tx.ops)
	return nil
}

// Rollback discards the buffered writes
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil {
		return errNoTransaction
	}
	u.store.mu.Lock()
	u.store.release(tx)
	u.store.mu.Unlock()

	tx.done = true
	tx.locks = nil
	tx.ops = nil
	return nil
}

// GetLockRepository returns a lock repository in the current transaction
func (u *UnitOfWork) GetLockRepository(ctx context.Context) persistence.LockRepository {
	return &LockRepository{store: u.store, tx: txFromContext(ctx)}
}

// GetOperationRepository returns an operation repository in the current transaction
func (u *UnitOfWork) GetOperationRepository(ctx context.Context) persistence.OperationRepository {
	return &OperationRepository{store: u.store, tx: txFromContext(ctx)}
}

func txFromContext(ctx context.Context) *memTx {
	tx, _ := ctx.Value(txKey).(*memTx)
	return tx
}
