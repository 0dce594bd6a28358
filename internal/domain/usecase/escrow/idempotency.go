package escrow

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/persistence"
)

// IdempotencyHandler replays completed operations and rejects reused IDs
type IdempotencyHandler struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(uow persistence.UnitOfWork) *IdempotencyHandler {
	return &IdempotencyHandler{uow: uow}
}

// CheckIdempotency looks up operationID.
// It returns the stored operation and true when an identical request already
// completed. A pending or failed record, or one made for a different request,
// yields a DuplicateOperationError.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	operationID string,
	account string,
	kind entity.OperationKind,
	amount string,
) (*entity.Operation, bool, error) {
	op, err := h.uow.GetOperationRepository(ctx).GetByOperationID(ctx, operationID)
	if err != nil {
		if errors.Is(err, errs.ErrOperationNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to check operation: %w", err)
	}

	if op.Account != account || op.Kind != kind || op.GetAmount() != amount {
		return nil, true, errs.NewDuplicateOperationError(operationID, op.Account, "different request")
	}

	if !op.IsCompleted() {
		return nil, true, errs.NewDuplicateOperationError(operationID, op.Account, string(op.Status))
	}

	return op, true, nil
}
