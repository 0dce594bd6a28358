package memory

import (
	"context"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
)

// OperationRepository implements persistence.OperationRepository in memory
type OperationRepository struct {
	store *Store
	tx    *memTx
}

// NewOperationRepository creates a repository outside any transaction
func NewOperationRepository(store *Store) *OperationRepository {
	return &OperationRepository{store: store}
}

func (r *OperationRepository) inTx() bool {
	return r.tx != nil && !r.tx.done
}

func (r *OperationRepository) staged(operationID string) (int, bool) {
	if !r.inTx() {
		return 0, false
	}
	for i, op := range r.tx.ops {
		if op.OperationID == operationID {
			return i, true
		}
	}
	return 0, false
}

// Create saves a new operation; operation IDs are unique
func (r *OperationRepository) Create(ctx context.Context, operation *entity.Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, ok := r.staged(operation.OperationID); ok {
		return errs.NewDuplicateOperationError(operation.OperationID, operation.Account, "staged")
	}

	// The ID is claimed while staging so a concurrent transaction fails here,
	// before any tokens move, rather than at commit.
	if r.inTx() {
		if account, status, ok := r.store.reserve(r.tx, operation); !ok {
			return errs.NewDuplicateOperationError(operation.OperationID, account, status)
		}
		r.tx.ops = append(r.tx.ops, cloneOperation(operation))
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if existing, ok := r.store.operations[operation.OperationID]; ok {
		return errs.NewDuplicateOperationError(operation.OperationID, existing.Account, string(existing.Status))
	}
	if owner, ok := r.store.reserved[operation.OperationID]; ok {
		return errs.NewDuplicateOperationError(operation.OperationID, owner.account, "in progress")
	}
	r.store.apply(nil, []*entity.Operation{operation})
	return nil
}

// Update replaces status and result fields of an existing operation
func (r *OperationRepository) Update(ctx context.Context, operation *entity.Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if i, ok := r.staged(operation.OperationID); ok {
		r.tx.ops[i] = cloneOperation(operation)
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.operations[operation.OperationID]
	if !ok {
		return errs.ErrOperationNotFound
	}
	updated := cloneOperation(operation)
	updated.ID = existing.ID
	r.store.operations[operation.OperationID] = updated
	return nil
}

// GetByOperationID retrieves an operation by its external identifier
func (r *OperationRepository) GetByOperationID(ctx context.Context, operationID string) (*entity.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if i, ok := r.staged(operationID); ok {
		return cloneOperation(r.tx.ops[i]), nil
	}
	if op, ok := r.store.getOperation(operationID); ok {
		return op, nil
	}
	return nil, errs.ErrOperationNotFound
}

// ListByAccount returns committed operations of an account, newest first
func (r *OperationRepository) ListByAccount(ctx context.Context, account string, limit int) ([]*entity.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ops := r.store.listOperations(account)
	if limit > 0 && len(ops) > limit {
		ops = ops[:limit]
	}
	return ops, nil
}
