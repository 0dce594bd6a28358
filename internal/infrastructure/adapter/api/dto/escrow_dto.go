package dto

import (
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
)

// DepositRequest represents the API request for locking tokens
type DepositRequest struct {
	Amount      string `json:"amount" binding:"required"`
	UnlockTime  int64  `json:"unlockTime" binding:"required"`
	OperationID string `json:"operationId"`
}

// WithdrawRequest represents the API request for withdrawing matured tokens
type WithdrawRequest struct {
	Amount      string `json:"amount" binding:"required"`
	OperationID string `json:"operationId"`
}

// LockResponse represents the lock of an account
type LockResponse struct {
	OperationID  string `json:"operationId,omitempty"`
	Account      string `json:"account"`
	Amount       string `json:"amount"`
	UnlockTime   int64  `json:"unlockTime"`
	State        string `json:"state"`
	Withdrawable bool   `json:"withdrawable"`
	Replayed     bool   `json:"replayed,omitempty"`
}

// NewLockResponse maps a use case result to its API form
func NewLockResponse(r *usecase.LockResult) LockResponse {
	return LockResponse{
		OperationID:  r.OperationID,
		Account:      r.Account,
		Amount:       r.Amount,
		UnlockTime:   r.UnlockTime,
		State:        string(r.State),
		Withdrawable: r.Withdrawable,
		Replayed:     r.Replayed,
	}
}

// OperationResponse represents one journaled deposit or withdraw
type OperationResponse struct {
	OperationID  string `json:"operationId"`
	Account      string `json:"account"`
	Kind         string `json:"kind"`
	Amount       string `json:"amount"`
	UnlockTime   int64  `json:"unlockTime,omitempty"`
	Status       string `json:"status"`
	ResultAmount string `json:"resultAmount,omitempty"`
	ResultUnlock int64  `json:"resultUnlock,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
	ProcessedAt  int64  `json:"processedAt,omitempty"`
}

// NewOperationResponse maps an operation to its API form
func NewOperationResponse(op *entity.Operation) OperationResponse {
	resp := OperationResponse{
		OperationID:  op.OperationID,
		Account:      op.Account,
		Kind:         string(op.Kind),
		Amount:       op.GetAmount(),
		UnlockTime:   unixOrZero(op.UnlockTime),
		Status:       string(op.Status),
		ResultAmount: op.ResultAmount,
		ResultUnlock: unixOrZero(op.ResultUnlock),
		ErrorMessage: op.ErrorMessage,
		CreatedAt:    unixOrZero(op.CreatedAt),
	}
	if op.ProcessedAt != nil {
		resp.ProcessedAt = op.ProcessedAt.Unix()
	}
	return resp
}

// OperationListResponse represents the journal of an account
type OperationListResponse struct {
	Account    string              `json:"account"`
	Operations []OperationResponse `json:"operations"`
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
