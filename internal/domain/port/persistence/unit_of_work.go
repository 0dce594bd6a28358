package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetLockRepository returns a lock repository bound to the current transaction
	GetLockRepository(ctx context.Context) LockRepository

	// GetOperationRepository returns an operation repository bound to the current transaction
	GetOperationRepository(ctx context.Context) OperationRepository
}
