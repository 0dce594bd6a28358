package database

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/usecase/escrow"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresEscrowLedger(t *testing.T) {
	log := logger.NewNoopLogger()
	db := NewTestDBManager(t, log)
	ctx := context.Background()

	t.Run("Migration is recorded and idempotent", func(t *testing.T) {
		mgr := migration.NewMigrationManager(db.Manager.DB(), log, db.TimeProvider)
		version, err := mgr.GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion, version)
		assert.NoError(t, db.Manager.Migrate(ctx))
	})

	t.Run("Lock repository round trip", func(t *testing.T) {
		db.TruncateAllTables(t)
		uow := db.Manager.CreateUnitOfWork()
		now := time.Now().UTC().Truncate(time.Second)

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		lock, err := uow.GetLockRepository(txCtx).GetForUpdate(txCtx, "alice")
		require.NoError(t, err)
		assert.True(t, lock.IsEmpty())

		huge, _ := new(big.Int).SetString("1000000000000000000000", 10)
		require.NoError(t, lock.ApplyDeposit(huge, now.Add(time.Hour), now))
		require.NoError(t, uow.GetLockRepository(txCtx).Save(txCtx, lock))
		require.NoError(t, uow.Commit(txCtx))

		stored, err := uow.GetLockRepository(ctx).Get(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "1000000000000000000000", stored.GetAmount())
		assert.Equal(t, now.Add(time.Hour).Unix(), stored.UnlockUnix())
	})

	t.Run("Rollback discards writes", func(t *testing.T) {
		db.TruncateAllTables(t)
		uow := db.Manager.CreateUnitOfWork()
		now := time.Now()

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		lock, err := uow.GetLockRepository(txCtx).GetForUpdate(txCtx, "bob")
		require.NoError(t, err)
		require.NoError(t, lock.ApplyDeposit(big.NewInt(5), now.Add(time.Hour), now))
		require.NoError(t, uow.GetLockRepository(txCtx).Save(txCtx, lock))
		require.NoError(t, uow.Rollback(txCtx))

		stored, err := uow.GetLockRepository(ctx).Get(ctx, "bob")
		require.NoError(t, err)
		assert.True(t, stored.IsEmpty())
	})

	t.Run("Duplicate operation IDs are rejected", func(t *testing.T) {
		db.TruncateAllTables(t)
		repo := db.Manager.CreateUnitOfWork().GetOperationRepository(ctx)
		now := time.Now()

		op, err := entity.NewOperation("op-1", "alice", entity.KindDeposit, big.NewInt(1), now.Add(time.Hour), now)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, op))
		assert.ErrorIs(t, repo.Create(ctx, op), errs.ErrDuplicateOperation)

		got, err := repo.GetByOperationID(ctx, "op-1")
		require.NoError(t, err)
		assert.Equal(t, "1", got.GetAmount())

		_, err = repo.GetByOperationID(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrOperationNotFound)
	})

	t.Run("Account lock excludes a second holder until released", func(t *testing.T) {
		db.TruncateAllTables(t)
		first := db.Manager.CreateAccountLockRepository()
		second := db.Manager.CreateAccountLockRepository()

		require.NoError(t, first.AcquireLock(ctx, "alice", time.Minute))
		assert.ErrorIs(t, second.AcquireLock(ctx, "alice", time.Minute), errs.ErrAccountLocked)

		// a non-owner release leaves the lock in place
		require.NoError(t, second.ReleaseLock(ctx, "alice"))
		assert.ErrorIs(t, second.AcquireLock(ctx, "alice", time.Minute), errs.ErrAccountLocked)

		require.NoError(t, first.ReleaseLock(ctx, "alice"))
		assert.NoError(t, second.AcquireLock(ctx, "alice", time.Minute))
	})

	t.Run("Escrow service end to end", func(t *testing.T) {
		db.TruncateAllTables(t)
		ledger := db.Manager.CreateTokenLedger("escrow-vault")
		require.NoError(t, ledger.Mint(ctx, "alice", big.NewInt(1000)))
		require.NoError(t, ledger.Approve(ctx, "alice", big.NewInt(1000)))

		svc := escrow.NewEscrowService(
			db.Manager.CreateUnitOfWork(),
			db.Manager.CreateAccountLockRepository(),
			ledger,
			db.TimeProvider,
			log,
			escrow.Options{},
		)
		defer func() { _ = svc.Shutdown(ctx) }()

		unlock := time.Now().Add(time.Hour).Unix()
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Deposit(ctx, usecase.DepositRequest{Account: "alice", Amount: "10", UnlockTime: unlock})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		lock, err := svc.GetLock(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "100", lock.Amount)

		vault, err := ledger.BalanceOf(ctx, "escrow-vault")
		require.NoError(t, err)
		assert.Equal(t, "100", vault.String())

		_, err = svc.Withdraw(ctx, usecase.WithdrawRequest{Account: "alice", Amount: "100"})
		assert.ErrorIs(t, err, errs.ErrLockNotExpired)
	})
}
