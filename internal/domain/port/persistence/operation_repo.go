package persistence

import (
	"context"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
)

// OperationRepository journals deposit and withdraw attempts
type OperationRepository interface {
	// Create saves a new operation
	//
	// Possible errors:
	// - ErrDuplicateOperation: If an operation with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, operation *entity.Operation) error

	// Update updates status and result fields of an existing operation
	//
	// Possible errors:
	// - ErrOperationNotFound: If the operation doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, operation *entity.Operation) error

	// GetByOperationID retrieves an operation by its external identifier
	//
	// Possible errors:
	// - ErrOperationNotFound: If the operation doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByOperationID(ctx context.Context, operationID string) (*entity.Operation, error)

	// ListByAccount returns the most recent operations of an account, newest first
	ListByAccount(ctx context.Context, account string, limit int) ([]*entity.Operation, error)
}
