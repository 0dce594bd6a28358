package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// OperationRepository implements persistence.OperationRepository using GORM
type OperationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOperationRepository creates a new OperationRepository instance
func NewOperationRepository(db *gorm.DB, logger coreport.Logger) *OperationRepository {
	return &OperationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts an operation entity to a database model
func (r *OperationRepository) entityToModel(op *entity.Operation) model.EscrowOperation {
	m := model.EscrowOperation{
		OperationID:  op.OperationID,
		Account:      op.Account,
		Kind:         string(op.Kind),
		Amount:       op.GetAmount(),
		UnlockTime:   timePtr(op.UnlockTime),
		Status:       string(op.Status),
		ResultUnlock: timePtr(op.ResultUnlock),
		ErrorMessage: op.ErrorMessage,
		CreatedAt:    op.CreatedAt,
		ProcessedAt:  op.ProcessedAt,
	}
	m.ResultAmount = op.ResultAmount
	if m.ResultAmount == "" {
		m.ResultAmount = "0"
	}
	return m
}

// modelToEntity converts an operation model to an entity
func (r *OperationRepository) modelToEntity(m *model.EscrowOperation) (*entity.Operation, error) {
	amount, err := parseStoredAmount("escrow_operations.amount", m.Amount)
	if err != nil {
		return nil, err
	}
	result, err := parseStoredAmount("escrow_operations.result_amount", m.ResultAmount)
	if err != nil {
		return nil, err
	}

	return entity.RestoreOperation(entity.Operation{
		ID:           m.ID,
		OperationID:  m.OperationID,
		Account:      m.Account,
		Kind:         entity.OperationKind(m.Kind),
		UnlockTime:   timeOrZero(m.UnlockTime),
		Status:       entity.OperationStatus(m.Status),
		ResultAmount: result.String(),
		ResultUnlock: timeOrZero(m.ResultUnlock),
		ErrorMessage: m.ErrorMessage,
		CreatedAt:    m.CreatedAt,
		ProcessedAt:  m.ProcessedAt,
	}, amount), nil
}

// Create saves a new operation
func (r *OperationRepository) Create(ctx context.Context, operation *entity.Operation) error {
	r.logger.Debug("Creating operation", map[string]any{
		"operation_id": operation.OperationID,
		"account":      operation.Account,
		"kind":         operation.Kind,
	})

	operationModel := r.entityToModel(operation)
	result := r.db.WithContext(ctx).Create(&operationModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate operation detected", map[string]any{
				"operation_id": operation.OperationID,
				"account":      operation.Account,
			})
			return errs.NewDuplicateOperationError(operation.OperationID, operation.Account, "stored")
		}

		r.logger.Error("Failed to create operation", map[string]any{
			"operation_id": operation.OperationID,
			"account":      operation.Account,
			"error":        result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	operation.ID = operationModel.ID
	return nil
}

// Update updates status and result fields of an existing operation
func (r *OperationRepository) Update(ctx context.Context, operation *entity.Operation) error {
	operationModel := r.entityToModel(operation)

	result := r.db.WithContext(ctx).Model(&model.EscrowOperation{}).
		Where("operation_id = ?", operation.OperationID).
		Updates(map[string]interface{}{
			"status":        operationModel.Status,
			"processed_at":  operationModel.ProcessedAt,
			"result_amount": operationModel.ResultAmount,
			"result_unlock": operationModel.ResultUnlock,
			"error_message": operationModel.ErrorMessage,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update operation", map[string]any{
			"operation_id": operation.OperationID,
			"error":        result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Operation not found during update", map[string]any{
			"operation_id": operation.OperationID,
		})
		return errs.ErrOperationNotFound
	}

	r.logger.Debug("Operation updated", map[string]any{
		"operation_id": operation.OperationID,
		"status":       operation.Status,
	})
	return nil
}

// GetByOperationID retrieves an operation by its external identifier
func (r *OperationRepository) GetByOperationID(ctx context.Context, operationID string) (*entity.Operation, error) {
	var operationModel model.EscrowOperation
	result := r.db.WithContext(ctx).
		Where("operation_id = ?", operationID).
		First(&operationModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrOperationNotFound
		}
		r.logger.Error("Failed to get operation", map[string]any{
			"operation_id": operationID,
			"error":        result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&operationModel)
}

// ListByAccount returns the most recent operations of an account, newest first
func (r *OperationRepository) ListByAccount(ctx context.Context, account string, limit int) ([]*entity.Operation, error) {
	query := r.db.WithContext(ctx).
		Where("account = ?", account).
		Order("created_at desc, id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.EscrowOperation
	if err := query.Find(&models).Error; err != nil {
		r.logger.Error("Failed to list operations", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	operations := make([]*entity.Operation, 0, len(models))
	for i := range models {
		op, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		operations = append(operations, op)
	}
	return operations, nil
}
