package token

import (
	"context"
	"errors"
	"math/big"
	"testing"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/voting-escrow/mocks/port/core"
	tokenmocks "github.com/amirhossein-jamali/voting-escrow/mocks/port/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns balance and allowance", func(t *testing.T) {
		ledger := tokenmocks.NewMockLedger(t)
		logger := coremocks.NewMockLogger(t)

		ledger.EXPECT().BalanceOf(ctx, "alice").Return(big.NewInt(150), nil).Once()
		ledger.EXPECT().Allowance(ctx, "alice").Return(big.NewInt(20), nil).Once()

		resp, err := NewTokenUseCase(ledger, logger).GetBalance(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, "150", resp.Balance)
		assert.Equal(t, "20", resp.Allowance)
	})

	t.Run("Invalid account", func(t *testing.T) {
		ledger := tokenmocks.NewMockLedger(t)
		logger := coremocks.NewMockLogger(t)

		_, err := NewTokenUseCase(ledger, logger).GetBalance(ctx, "")

		assert.ErrorIs(t, err, errs.ErrInvalidAccount)
	})

	t.Run("Ledger failure is logged", func(t *testing.T) {
		ledger := tokenmocks.NewMockLedger(t)
		logger := coremocks.NewMockLogger(t)

		dbErr := errors.New("connection reset")
		ledger.EXPECT().BalanceOf(ctx, "alice").Return(nil, dbErr).Once()
		logger.EXPECT().Error("Failed to get token balance", mock.Anything).Once()

		_, err := NewTokenUseCase(ledger, logger).GetBalance(ctx, "alice")

		assert.Equal(t, dbErr, err)
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("Sets allowance", func(t *testing.T) {
		ledger := tokenmocks.NewMockLedger(t)
		logger := coremocks.NewMockLogger(t)

		ledger.EXPECT().Approve(ctx, "alice", big.NewInt(500)).Return(nil).Once()
		ledger.EXPECT().BalanceOf(ctx, "alice").Return(big.NewInt(1000), nil).Once()
		ledger.EXPECT().Allowance(ctx, "alice").Return(big.NewInt(500), nil).Once()
		logger.EXPECT().Info("Escrow allowance approved", mock.Anything).Once()

		resp, err := NewTokenUseCase(ledger, logger).Approve(ctx, "alice", "500")

		require.NoError(t, err)
		assert.Equal(t, "500", resp.Allowance)
	})

	t.Run("Rejects negative amounts", func(t *testing.T) {
		ledger := tokenmocks.NewMockLedger(t)
		logger := coremocks.NewMockLogger(t)

		_, err := NewTokenUseCase(ledger, logger).Approve(ctx, "alice", "-1")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestCreateDefaultAccounts(t *testing.T) {
	ctx := context.Background()

	ledger := tokenmocks.NewMockLedger(t)
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	// alice is funded already, bob is new
	ledger.EXPECT().BalanceOf(ctx, "alice").Return(big.NewInt(7), nil).Once()
	ledger.EXPECT().BalanceOf(ctx, "bob").Return(new(big.Int), nil).Once()
	ledger.EXPECT().Mint(ctx, "bob", big.NewInt(2000)).Return(nil).Once()
	ledger.EXPECT().BalanceOf(ctx, "bob").Return(big.NewInt(2000), nil).Once()
	ledger.EXPECT().Allowance(ctx, "bob").Return(new(big.Int), nil).Once()

	err := NewTokenUseCase(ledger, logger).CreateDefaultAccounts(ctx, map[string]string{
		"alice": "1000",
		"bob":   "2000",
	})

	assert.NoError(t, err)
}
