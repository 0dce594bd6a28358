package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount             = 4001
	CodeInvalidUnlockTime         = 4002
	CodeInvalidAccount            = 4003
	CodeInvalidRequest            = 4004
	CodeNoLock                    = 4040
	CodeLockNotExpired            = 4220
	CodeInsufficientLockedBalance = 4221
	CodeTransferFailed            = 4020
	CodeInsufficientAllowance     = 4021
	CodeInsufficientTokenBalance  = 4022
	CodeDuplicateOperation        = 4090
	CodeAccountLocked             = 4091

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is missing, malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUnlockTime is returned when the unlock time is not strictly in the future
	// or exceeds the maximum lock duration
	ErrInvalidUnlockTime = errors.New("invalid unlock time")

	// ErrInvalidAccount is returned when the account identifier is empty or malformed
	ErrInvalidAccount = errors.New("invalid account")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoLock is returned when a withdrawal is attempted on an account with nothing locked
	ErrNoLock = errors.New("no locked balance")

	// ErrLockNotExpired is returned when a withdrawal is attempted before the unlock time
	ErrLockNotExpired = errors.New("lock has not expired")

	// ErrInsufficientLockedBalance is returned when a withdrawal exceeds the locked amount
	ErrInsufficientLockedBalance = errors.New("insufficient locked balance")

	// ErrTransferFailed is returned when the token transfer service could not move funds
	ErrTransferFailed = errors.New("token transfer failed")

	// ErrInsufficientAllowance is returned by the token ledger when the escrow allowance is too low
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrInsufficientTokenBalance is returned by the token ledger when a balance is too low
	ErrInsufficientTokenBalance = errors.New("insufficient token balance")

	// ErrTokenAccountNotFound is returned when a token account doesn't exist
	ErrTokenAccountNotFound = errors.New("token account not found")

	// ErrDuplicateOperation is returned when an operation ID was already used by
	// a pending or failed operation
	ErrDuplicateOperation = errors.New("operation with this ID already exists")

	// ErrOperationNotFound is returned when the requested operation doesn't exist
	ErrOperationNotFound = errors.New("operation not found")

	// ErrAccountLocked is returned when an account is locked by another operation
	ErrAccountLocked = errors.New("account is locked by another operation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUnlockTime):
		return CodeInvalidUnlockTime
	case errors.Is(err, ErrInvalidAccount):
		return CodeInvalidAccount
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrNoLock):
		return CodeNoLock
	case errors.Is(err, ErrLockNotExpired):
		return CodeLockNotExpired
	case errors.Is(err, ErrInsufficientLockedBalance):
		return CodeInsufficientLockedBalance
	case errors.Is(err, ErrInsufficientAllowance):
		return CodeInsufficientAllowance
	case errors.Is(err, ErrInsufficientTokenBalance):
		return CodeInsufficientTokenBalance
	case errors.Is(err, ErrTransferFailed):
		return CodeTransferFailed
	case errors.Is(err, ErrDuplicateOperation):
		return CodeDuplicateOperation
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountLocked
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// LockNotExpiredError carries the timing details of an early withdrawal attempt
type LockNotExpiredError struct {
	Account    string
	UnlockTime time.Time
	Now        time.Time
}

// Error implements the error interface
func (e *LockNotExpiredError) Error() string {
	return fmt.Sprintf("lock for account %s has not expired: unlocks at %d, now %d",
		e.Account, e.UnlockTime.Unix(), e.Now.Unix())
}

// Is checks if the target error is an ErrLockNotExpired
func (e *LockNotExpiredError) Is(target error) bool {
	return target == ErrLockNotExpired
}

// LogFields returns a map of fields for structured logging
func (e *LockNotExpiredError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "lock_not_expired",
		"account":     e.Account,
		"unlock_time": e.UnlockTime.Unix(),
		"now":         e.Now.Unix(),
		"error_code":  CodeLockNotExpired,
	}
}

// NewLockNotExpiredError creates a new detailed lock-not-expired error
func NewLockNotExpiredError(account string, unlockTime, now time.Time) error {
	return &LockNotExpiredError{
		Account:    account,
		UnlockTime: unlockTime,
		Now:        now,
	}
}

// InsufficientLockedBalanceError provides detailed error information for over-withdrawal
type InsufficientLockedBalanceError struct {
	Account   string
	Requested string
	Locked    string
}

// Error implements the error interface
func (e *InsufficientLockedBalanceError) Error() string {
	return fmt.Sprintf("insufficient locked balance for account %s: requested %s, locked %s",
		e.Account, e.Requested, e.Locked)
}

// Is checks if the target error is an ErrInsufficientLockedBalance
func (e *InsufficientLockedBalanceError) Is(target error) bool {
	return target == ErrInsufficientLockedBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientLockedBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_locked_balance",
		"account":    e.Account,
		"requested":  e.Requested,
		"locked":     e.Locked,
		"error_code": CodeInsufficientLockedBalance,
	}
}

// NewInsufficientLockedBalanceError creates a new detailed insufficient locked balance error
func NewInsufficientLockedBalanceError(account, requested, locked string) error {
	return &InsufficientLockedBalanceError{
		Account:   account,
		Requested: requested,
		Locked:    locked,
	}
}

// TransferDirection tells whether tokens were moving into or out of escrow
type TransferDirection string

// Transfer directions
const (
	TransferIn  TransferDirection = "in"
	TransferOut TransferDirection = "out"
)

// TransferError wraps a failure reported by the token transfer service
type TransferError struct {
	Direction TransferDirection
	Account   string
	Amount    string
	Err       error
}

// Error implements the error interface
func (e *TransferError) Error() string {
	return fmt.Sprintf("token transfer %s failed for account %s (amount: %s): %v",
		e.Direction, e.Account, e.Amount, e.Err)
}

// Is checks if the target error is an ErrTransferFailed
func (e *TransferError) Is(target error) bool {
	return target == ErrTransferFailed
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "transfer_failed",
		"direction":  string(e.Direction),
		"account":    e.Account,
		"amount":     e.Amount,
		"error_code": CodeTransferFailed,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewTransferError creates a detailed transfer error
func NewTransferError(direction TransferDirection, account, amount string, err error) error {
	return &TransferError{
		Direction: direction,
		Account:   account,
		Amount:    amount,
		Err:       err,
	}
}

// DuplicateOperationError provides detailed information about a reused operation ID
type DuplicateOperationError struct {
	OperationID string
	Account     string
	Status      string
}

// Error implements the error interface
func (e *DuplicateOperationError) Error() string {
	return fmt.Sprintf("duplicate operation detected: operationID=%s for account %s (status %s)",
		e.OperationID, e.Account, e.Status)
}

// Is checks if the target error is an ErrDuplicateOperation
func (e *DuplicateOperationError) Is(target error) bool {
	return target == ErrDuplicateOperation
}

// NewDuplicateOperationError creates a new detailed duplicate operation error
func NewDuplicateOperationError(operationID, account, status string) error {
	return &DuplicateOperationError{
		OperationID: operationID,
		Account:     account,
		Status:      status,
	}
}

// IsLockNotExpiredError checks if the error is an early withdrawal
func IsLockNotExpiredError(err error) bool {
	return errors.Is(err, ErrLockNotExpired)
}

// IsTransferError checks if the error came from the token transfer service
func IsTransferError(err error) bool {
	return errors.Is(err, ErrTransferFailed)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNoLock) ||
		errors.Is(err, ErrOperationNotFound) ||
		errors.Is(err, ErrTokenAccountNotFound)
}

// IsValidationError checks if the error was caused by bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUnlockTime) ||
		errors.Is(err, ErrInvalidAccount) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsConflictError checks if the error is caused by a concurrent or repeated operation
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateOperation) || errors.Is(err, ErrAccountLocked)
}
