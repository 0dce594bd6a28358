package error

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrLockNotExpired.Error() != "lock has not expired" {
		t.Errorf("ErrLockNotExpired has unexpected message: %s", ErrLockNotExpired.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"InvalidUnlockTime", ErrInvalidUnlockTime, 4002},
		{"InvalidAccount", ErrInvalidAccount, 4003},
		{"NoLock", ErrNoLock, 4040},
		{"LockNotExpired", ErrLockNotExpired, 4220},
		{"InsufficientLockedBalance", ErrInsufficientLockedBalance, 4221},
		{"TransferFailed", ErrTransferFailed, 4020},
		{"DuplicateOperation", ErrDuplicateOperation, 4090},
		{"AccountLocked", ErrAccountLocked, 4091},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAccount), 4003},
		{"TransferWrappingAllowance", NewTransferError(TransferIn, "alice", "10", ErrInsufficientAllowance), 4021},
		{"TransferWrappingUnknown", NewTransferError(TransferOut, "alice", "10", errors.New("boom")), 4020},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestLockNotExpiredError(t *testing.T) {
	unlock := time.Unix(1_700_000_000, 0)
	now := time.Unix(1_699_999_999, 0)
	err := NewLockNotExpiredError("alice", unlock, now)

	expected := "lock for account alice has not expired: unlocks at 1700000000, now 1699999999"
	if err.Error() != expected {
		t.Errorf("LockNotExpiredError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrLockNotExpired) {
		t.Errorf("errors.Is(err, ErrLockNotExpired) = false, want true")
	}
	if !IsLockNotExpiredError(fmt.Errorf("withdraw: %w", err)) {
		t.Errorf("IsLockNotExpiredError on wrapped error = false, want true")
	}
}

func TestInsufficientLockedBalanceError(t *testing.T) {
	err := NewInsufficientLockedBalanceError("bob", "300", "150")

	expected := "insufficient locked balance for account bob: requested 300, locked 150"
	if err.Error() != expected {
		t.Errorf("InsufficientLockedBalanceError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInsufficientLockedBalance) {
		t.Errorf("errors.Is(err, ErrInsufficientLockedBalance) = false, want true")
	}
}

func TestTransferError(t *testing.T) {
	cause := ErrInsufficientTokenBalance
	err := NewTransferError(TransferIn, "carol", "42", cause)

	expected := "token transfer in failed for account carol (amount: 42): insufficient token balance"
	if err.Error() != expected {
		t.Errorf("TransferError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrTransferFailed) {
		t.Errorf("errors.Is(err, ErrTransferFailed) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	var transferErr *TransferError
	if !errors.As(err, &transferErr) {
		t.Fatal("errors.As(err, *TransferError) = false, want true")
	}
	fields := transferErr.LogFields()
	if fields["direction"] != "in" || fields["error"] != cause.Error() {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestDuplicateOperationError(t *testing.T) {
	err := NewDuplicateOperationError("op-1", "alice", "failed")
	if !errors.Is(err, ErrDuplicateOperation) {
		t.Errorf("errors.Is(err, ErrDuplicateOperation) = false, want true")
	}
	if !IsConflictError(err) {
		t.Errorf("IsConflictError(err) = false, want true")
	}
}

func TestClassifiers(t *testing.T) {
	if !IsNotFoundError(ErrNoLock) {
		t.Errorf("IsNotFoundError(ErrNoLock) = false, want true")
	}
	if !IsValidationError(fmt.Errorf("x: %w", ErrInvalidUnlockTime)) {
		t.Errorf("IsValidationError(ErrInvalidUnlockTime) = false, want true")
	}
	if IsValidationError(ErrLockNotExpired) {
		t.Errorf("IsValidationError(ErrLockNotExpired) = true, want false")
	}
	if !IsTransferError(NewTransferError(TransferOut, "a", "1", nil)) {
		t.Errorf("IsTransferError = false, want true")
	}
}
