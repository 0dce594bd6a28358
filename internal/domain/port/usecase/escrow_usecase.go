package usecase

import (
	"context"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
)

// DepositRequest represents an incoming deposit
type DepositRequest struct {
	Account     string `json:"account"`
	Amount      string `json:"amount"`     // Base units, decimal string
	UnlockTime  int64  `json:"unlockTime"` // Seconds since epoch
	OperationID string `json:"operationId"`
}

// WithdrawRequest represents an incoming withdrawal
type WithdrawRequest struct {
	Account     string `json:"account"`
	Amount      string `json:"amount"`
	OperationID string `json:"operationId"`
}

// LockResult describes a lock after an operation, or as currently stored
type LockResult struct {
	OperationID  string
	Account      string
	Amount       string
	UnlockTime   int64 // 0 when the lock is empty
	State        entity.LockState
	Withdrawable bool
	Replayed     bool // True when an earlier completed operation was returned
}

// EscrowUseCase defines the escrow ledger operations
type EscrowUseCase interface {
	// Deposit pulls tokens from the account and locks them until the unlock time.
	// A context error only means the caller stopped waiting: a queued deposit
	// may still commit. Callers that need the outcome send an OperationID and
	// look it up with GetOperation or repeat the request.
	Deposit(ctx context.Context, req DepositRequest) (*LockResult, error)

	// Withdraw returns matured tokens to the account.
	// Like Deposit, a context error does not mean nothing happened; reconcile
	// by OperationID.
	Withdraw(ctx context.Context, req WithdrawRequest) (*LockResult, error)

	// GetLock returns the current lock of an account
	GetLock(ctx context.Context, account string) (*LockResult, error)

	// GetOperation returns a journaled operation
	GetOperation(ctx context.Context, operationID string) (*entity.Operation, error)

	// ListOperations returns the most recent operations of an account, newest first
	ListOperations(ctx context.Context, account string, limit int) ([]*entity.Operation, error)
}
