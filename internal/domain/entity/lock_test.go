package entity

import (
	"math/big"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const week = 7 * 24 * time.Hour

func units(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad amount " + s)
	}
	return v
}

func TestNewEmptyLock(t *testing.T) {
	t.Run("Valid account", func(t *testing.T) {
		lock, err := NewEmptyLock("alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", lock.Account)
		assert.True(t, lock.IsEmpty())
		assert.Equal(t, LockStateEmpty, lock.State())
		assert.Equal(t, "0", lock.GetAmount())
		assert.Equal(t, int64(0), lock.UnlockUnix())
	})

	t.Run("Invalid accounts", func(t *testing.T) {
		for _, account := range []string{"", "has space", string(make([]byte, MaxAccountLength+1))} {
			lock, err := NewEmptyLock(account)
			assert.ErrorIs(t, err, errs.ErrInvalidAccount)
			assert.Nil(t, lock)
		}
	})
}

func TestLockApplyDeposit(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates lock from empty", func(t *testing.T) {
		lock, _ := NewEmptyLock("alice")
		amount := units("1000000000000000000000") // 1000 * 10^18

		err := lock.ApplyDeposit(amount, now.Add(2*week), now)

		require.NoError(t, err)
		assert.Equal(t, "1000000000000000000000", lock.GetAmount())
		assert.Equal(t, now.Add(2*week).Unix(), lock.UnlockUnix())
		assert.Equal(t, LockStateLocked, lock.State())
		assert.Equal(t, now, lock.CreatedAt)
		assert.Equal(t, uint64(1), lock.OperationCount)
	})

	t.Run("Merge keeps the later unlock time", func(t *testing.T) {
		lock, _ := NewEmptyLock("alice")
		require.NoError(t, lock.ApplyDeposit(units("10"), now.Add(4*week), now))

		require.NoError(t, lock.ApplyDeposit(units("5"), now.Add(1*week), now))
		assert.Equal(t, "15", lock.GetAmount())
		assert.Equal(t, now.Add(4*week).Unix(), lock.UnlockUnix())

		require.NoError(t, lock.ApplyDeposit(units("5"), now.Add(8*week), now))
		assert.Equal(t, "20", lock.GetAmount())
		assert.Equal(t, now.Add(8*week).Unix(), lock.UnlockUnix())
	})

	t.Run("Rejects non-positive amounts regardless of unlock time", func(t *testing.T) {
		lock, _ := NewEmptyLock("alice")
		for _, amount := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1)} {
			err := lock.ApplyDeposit(amount, now.Add(-week), now)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
		assert.True(t, lock.IsEmpty())
	})

	t.Run("Rejects unlock time not strictly in the future", func(t *testing.T) {
		lock, _ := NewEmptyLock("alice")
		for _, unlock := range []time.Time{now, now.Add(-time.Second), now.Add(500 * time.Millisecond)} {
			err := lock.ApplyDeposit(units("1"), unlock, now)
			assert.ErrorIs(t, err, errs.ErrInvalidUnlockTime)
		}
		assert.True(t, lock.IsEmpty())
		assert.Equal(t, uint64(0), lock.OperationCount)
	})

	t.Run("Caller amount is not aliased", func(t *testing.T) {
		lock, _ := NewEmptyLock("alice")
		amount := units("7")
		require.NoError(t, lock.ApplyDeposit(amount, now.Add(week), now))
		amount.SetInt64(1)
		assert.Equal(t, "7", lock.GetAmount())
	})
}

func TestLockApplyWithdraw(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	unlock := now.Add(2 * week)

	newLocked := func(t *testing.T) *Lock {
		lock, _ := NewEmptyLock("alice")
		require.NoError(t, lock.ApplyDeposit(units("1000"), unlock, now))
		return lock
	}

	t.Run("Early withdrawal fails and leaves the lock unchanged", func(t *testing.T) {
		lock := newLocked(t)

		err := lock.ApplyWithdraw(units("1000"), now)

		assert.ErrorIs(t, err, errs.ErrLockNotExpired)
		assert.Equal(t, "1000", lock.GetAmount())
		assert.Equal(t, unlock.Unix(), lock.UnlockUnix())
	})

	t.Run("One second before unlock fails", func(t *testing.T) {
		lock := newLocked(t)
		err := lock.ApplyWithdraw(units("1000"), unlock.Add(-time.Second))
		assert.ErrorIs(t, err, errs.ErrLockNotExpired)
	})

	t.Run("Exactly at unlock succeeds", func(t *testing.T) {
		lock := newLocked(t)

		err := lock.ApplyWithdraw(units("1000"), unlock)

		require.NoError(t, err)
		assert.True(t, lock.IsEmpty())
		assert.Equal(t, int64(0), lock.UnlockUnix())
	})

	t.Run("Second full withdrawal fails with no lock", func(t *testing.T) {
		lock := newLocked(t)
		require.NoError(t, lock.ApplyWithdraw(units("1000"), unlock.Add(time.Hour)))

		err := lock.ApplyWithdraw(units("1000"), unlock.Add(time.Hour))
		assert.ErrorIs(t, err, errs.ErrNoLock)
	})

	t.Run("Partial withdrawal keeps unlock time", func(t *testing.T) {
		lock := newLocked(t)

		require.NoError(t, lock.ApplyWithdraw(units("400"), unlock))
		assert.Equal(t, "600", lock.GetAmount())
		assert.Equal(t, unlock.Unix(), lock.UnlockUnix())
	})

	t.Run("Over-withdrawal fails", func(t *testing.T) {
		lock := newLocked(t)

		err := lock.ApplyWithdraw(units("1001"), unlock)

		assert.ErrorIs(t, err, errs.ErrInsufficientLockedBalance)
		assert.Equal(t, "1000", lock.GetAmount())
	})

	t.Run("Maturity is checked before sufficiency", func(t *testing.T) {
		lock := newLocked(t)
		err := lock.ApplyWithdraw(units("5000"), now)
		assert.ErrorIs(t, err, errs.ErrLockNotExpired)
	})
}

func TestRestoreLock(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	lock, err := RestoreLock("bob", units("0"), created.Add(week), created, created, 3)
	require.NoError(t, err)
	assert.True(t, lock.UnlockTime.IsZero(), "empty locks carry no unlock time")

	_, err = RestoreLock("bob", big.NewInt(-5), created, created, created, 0)
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)
}

func TestLockClone(t *testing.T) {
	now := time.Now()
	lock, _ := NewEmptyLock("alice")
	require.NoError(t, lock.ApplyDeposit(units("10"), now.Add(week), now))

	clone := lock.Clone()
	require.NoError(t, clone.ApplyDeposit(units("10"), now.Add(week), now))

	assert.Equal(t, "10", lock.GetAmount())
	assert.Equal(t, "20", clone.GetAmount())
}
