package entity

import (
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
)

// MaxAccountLength is the longest accepted account identifier
const MaxAccountLength = 128

// LockState is the escrow state of an account
type LockState string

// Lock states
const (
	LockStateEmpty  LockState = "empty"
	LockStateLocked LockState = "locked"
)

// Lock represents the escrowed balance of one account
type Lock struct {
	Account        string    // Owner of the locked tokens
	amount         *big.Int  // Locked base units (private, never nil)
	UnlockTime     time.Time // Earliest withdrawal time, second precision; zero when empty
	CreatedAt      time.Time // When the lock row was first written
	UpdatedAt      time.Time // Last deposit or withdrawal
	OperationCount uint64    // Deposits and withdrawals applied to this lock
}

// ValidateAccount checks an account identifier
func ValidateAccount(account string) error {
	if account == "" {
		return fmt.Errorf("%w: account cannot be empty", errs.ErrInvalidAccount)
	}
	if len(account) > MaxAccountLength {
		return fmt.Errorf("%w: account longer than %d characters", errs.ErrInvalidAccount, MaxAccountLength)
	}
	if strings.IndexFunc(account, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: account cannot contain whitespace", errs.ErrInvalidAccount)
	}
	return nil
}

// NewEmptyLock returns the lock of an account that holds nothing
func NewEmptyLock(account string) (*Lock, error) {
	if err := ValidateAccount(account); err != nil {
		return nil, err
	}
	return &Lock{
		Account: account,
		amount:  new(big.Int),
	}, nil
}

// RestoreLock rebuilds a lock from stored values (for repositories)
func RestoreLock(account string, amount *big.Int, unlockTime time.Time, createdAt, updatedAt time.Time, operationCount uint64) (*Lock, error) {
	if err := ValidateAccount(account); err != nil {
		return nil, err
	}
	if amount != nil && amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: stored lock amount is negative", errs.ErrConstraintViolation)
	}
	lock := &Lock{
		Account:        account,
		amount:         cloneAmount(amount),
		UnlockTime:     unlockTime,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		OperationCount: operationCount,
	}
	if lock.IsEmpty() {
		lock.UnlockTime = time.Time{}
	}
	return lock, nil
}

// Amount returns a copy of the locked amount
func (l *Lock) Amount() *big.Int {
	return cloneAmount(l.amount)
}

// GetAmount returns the locked amount as a decimal string
func (l *Lock) GetAmount() string {
	return FormatTokenAmount(l.amount)
}

// IsEmpty reports whether the account holds nothing in escrow
func (l *Lock) IsEmpty() bool {
	return l.amount == nil || l.amount.Sign() == 0
}

// State returns the escrow state of the lock
func (l *Lock) State() LockState {
	if l.IsEmpty() {
		return LockStateEmpty
	}
	return LockStateLocked
}

// UnlockUnix returns the unlock time in seconds since epoch, 0 when empty
func (l *Lock) UnlockUnix() int64 {
	if l.UnlockTime.IsZero() {
		return 0
	}
	return l.UnlockTime.Unix()
}

// IsMatured reports whether a withdrawal is permitted at now.
// The boundary is inclusive: now == unlock time is matured.
func (l *Lock) IsMatured(now time.Time) bool {
	if l.IsEmpty() {
		return false
	}
	return now.Unix() >= l.UnlockTime.Unix()
}

// ApplyDeposit credits amount and moves the unlock time to the later of the
// current and requested times. The requested unlock time must be strictly after now,
// which the caller samples once per operation.
func (l *Lock) ApplyDeposit(amount *big.Int, unlockTime time.Time, now time.Time) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	if unlockTime.Unix() <= now.Unix() {
		return fmt.Errorf("%w: unlock time %d is not after %d", errs.ErrInvalidUnlockTime, unlockTime.Unix(), now.Unix())
	}

	requested := time.Unix(unlockTime.Unix(), 0).UTC()
	if l.IsEmpty() || requested.After(l.UnlockTime) {
		l.UnlockTime = requested
	}

	l.amount = new(big.Int).Add(cloneAmount(l.amount), amount)
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
	l.OperationCount++
	return nil
}

// ApplyWithdraw debits amount once the lock has matured.
// When the remaining amount is zero the lock returns to the empty state.
func (l *Lock) ApplyWithdraw(amount *big.Int, now time.Time) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	if l.IsEmpty() {
		return fmt.Errorf("%w: account %s", errs.ErrNoLock, l.Account)
	}

	if !l.IsMatured(now) {
		return errs.NewLockNotExpiredError(l.Account, l.UnlockTime, now)
	}

	if l.amount.Cmp(amount) < 0 {
		return errs.NewInsufficientLockedBalanceError(l.Account, FormatTokenAmount(amount), l.GetAmount())
	}

	l.amount = new(big.Int).Sub(l.amount, amount)
	if l.IsEmpty() {
		l.UnlockTime = time.Time{}
	}
	l.UpdatedAt = now
	l.OperationCount++
	return nil
}

// Clone returns a deep copy of the lock
func (l *Lock) Clone() *Lock {
	clone := *l
	clone.amount = cloneAmount(l.amount)
	return &clone
}
