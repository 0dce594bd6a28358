package entity

import (
	"fmt"
	"math/big"
	"time"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
)

// OperationKind represents the kind of escrow operation
type OperationKind string

// Operation kinds
const (
	KindDeposit  OperationKind = "deposit"
	KindWithdraw OperationKind = "withdraw"
)

// OperationStatus defines possible status values for an operation
type OperationStatus string

// OperationStatus constants
const (
	StatusPending   OperationStatus = "pending"
	StatusCompleted OperationStatus = "completed"
	StatusFailed    OperationStatus = "failed"
)

// MaxOperationIDLength is the longest accepted operation identifier
const MaxOperationIDLength = 255

// Operation is the journal record of one deposit or withdraw attempt
type Operation struct {
	ID           uint64          // Storage identifier
	OperationID  string          // Unique external operation identifier
	Account      string          // Account the operation belongs to
	Kind         OperationKind   // Deposit or withdraw
	amount       *big.Int        // Requested base units
	UnlockTime   time.Time       // Requested unlock time (deposits only)
	Status       OperationStatus // Status of the operation
	ResultAmount string          // Locked amount after the operation
	ResultUnlock time.Time       // Unlock time after the operation
	ErrorMessage string          // Error message if the operation failed
	CreatedAt    time.Time       // When the operation was received
	ProcessedAt  *time.Time      // When the operation finished (nullable)
}

// NewOperation creates a new pending operation with basic validation
func NewOperation(
	operationID string,
	account string,
	kind OperationKind,
	amount *big.Int,
	unlockTime time.Time,
	now time.Time,
) (*Operation, error) {
	if operationID == "" || len(operationID) > MaxOperationIDLength {
		return nil, fmt.Errorf("%w: operation ID must be 1..%d characters", errs.ErrInvalidRequest, MaxOperationIDLength)
	}
	if err := ValidateAccount(account); err != nil {
		return nil, err
	}
	if !IsValidOperationKind(string(kind)) {
		return nil, fmt.Errorf("%w: unknown operation kind %s", errs.ErrInvalidRequest, kind)
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	op := &Operation{
		OperationID: operationID,
		Account:     account,
		Kind:        kind,
		amount:      cloneAmount(amount),
		Status:      StatusPending,
		CreatedAt:   now,
	}
	if kind == KindDeposit {
		op.UnlockTime = unlockTime
	}
	return op, nil
}

// RestoreOperation rebuilds an operation from stored values (for repositories)
func RestoreOperation(op Operation, amount *big.Int) *Operation {
	op.amount = cloneAmount(amount)
	return &op
}

// Amount returns a copy of the requested amount
func (o *Operation) Amount() *big.Int {
	return cloneAmount(o.amount)
}

// GetAmount returns the requested amount as a decimal string
func (o *Operation) GetAmount() string {
	return FormatTokenAmount(o.amount)
}

// MarkAsCompleted records the resulting lock state and completes the operation
func (o *Operation) MarkAsCompleted(now time.Time, result *Lock) {
	o.ProcessedAt = &now
	o.Status = StatusCompleted
	o.ErrorMessage = ""
	if result != nil {
		o.ResultAmount = result.GetAmount()
		o.ResultUnlock = result.UnlockTime
	}
}

// MarkAsFailed marks the operation as failed
func (o *Operation) MarkAsFailed(now time.Time, errorMessage string) {
	o.ProcessedAt = &now
	o.Status = StatusFailed
	o.ErrorMessage = errorMessage
}

// IsCompleted reports whether the operation finished successfully
func (o *Operation) IsCompleted() bool {
	return o.Status == StatusCompleted
}

// IsValidOperationKind validates if the kind is allowed
func IsValidOperationKind(kind string) bool {
	return kind == string(KindDeposit) || kind == string(KindWithdraw)
}
