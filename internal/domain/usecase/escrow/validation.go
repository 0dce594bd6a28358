package escrow

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
)

// DepositCommand is a validated deposit request
type DepositCommand struct {
	Account     string
	Amount      *big.Int
	UnlockTime  time.Time
	OperationID string
}

// WithdrawCommand is a validated withdraw request
type WithdrawCommand struct {
	Account     string
	Amount      *big.Int
	OperationID string
}

// EscrowValidator provides validation for escrow requests.
// Checks that depend on the clock happen later, once time is sampled.
type EscrowValidator struct{}

// NewEscrowValidator creates a new EscrowValidator
func NewEscrowValidator() *EscrowValidator {
	return &EscrowValidator{}
}

// ValidateDeposit checks amount first, then account, unlock time and operation ID
func (v *EscrowValidator) ValidateDeposit(req usecase.DepositRequest) (*DepositCommand, error) {
	amount, err := v.validateAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	if err := entity.ValidateAccount(req.Account); err != nil {
		return nil, err
	}

	if req.UnlockTime <= 0 {
		return nil, fmt.Errorf("%w: unlock time must be a positive unix timestamp", errs.ErrInvalidUnlockTime)
	}

	operationID, err := v.validateOperationID(req.OperationID)
	if err != nil {
		return nil, err
	}

	return &DepositCommand{
		Account:     req.Account,
		Amount:      amount,
		UnlockTime:  time.Unix(req.UnlockTime, 0).UTC(),
		OperationID: operationID,
	}, nil
}

// ValidateWithdraw checks amount, account and operation ID
func (v *EscrowValidator) ValidateWithdraw(req usecase.WithdrawRequest) (*WithdrawCommand, error) {
	amount, err := v.validateAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	if err := entity.ValidateAccount(req.Account); err != nil {
		return nil, err
	}

	operationID, err := v.validateOperationID(req.OperationID)
	if err != nil {
		return nil, err
	}

	return &WithdrawCommand{
		Account:     req.Account,
		Amount:      amount,
		OperationID: operationID,
	}, nil
}

// validateAmount parses a strictly positive amount of base units
func (v *EscrowValidator) validateAmount(amount string) (*big.Int, error) {
	if strings.TrimSpace(amount) == "" {
		return nil, fmt.Errorf("%w: amount is required", errs.ErrInvalidAmount)
	}
	return entity.ParsePositiveTokenAmount(amount)
}

// validateOperationID accepts an empty ID (one is generated later)
func (v *EscrowValidator) validateOperationID(operationID string) (string, error) {
	operationID = strings.TrimSpace(operationID)
	if len(operationID) > entity.MaxOperationIDLength {
		return "", fmt.Errorf("%w: operation ID longer than %d characters", errs.ErrInvalidRequest, entity.MaxOperationIDLength)
	}
	return operationID, nil
}
