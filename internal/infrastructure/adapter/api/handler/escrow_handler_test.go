package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/voting-escrow/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEscrowRouter(t *testing.T) (*gin.Engine, *mockusecase.MockEscrowUseCase) {
	escrow := mockusecase.NewMockEscrowUseCase(t)
	h := NewEscrowHandler(escrow, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/escrow/:account/deposit", h.Deposit)
	router.POST("/escrow/:account/withdraw", h.Withdraw)
	router.GET("/escrow/:account/lock", h.GetLock)
	router.GET("/escrow/:account/operations", h.ListOperations)
	router.GET("/operations/:operationId", h.GetOperation)
	return router, escrow
}

func doJSON(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestEscrowHandler_Deposit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, escrow := newEscrowRouter(t)
		escrow.EXPECT().Deposit(mock.Anything, usecase.DepositRequest{
			Account:     "alice",
			Amount:      "1000",
			UnlockTime:  1700000000,
			OperationID: "op-1",
		}).Return(&usecase.LockResult{
			OperationID: "op-1",
			Account:     "alice",
			Amount:      "1000",
			UnlockTime:  1700000000,
			State:       entity.LockStateLocked,
		}, nil).Once()

		rec := doJSON(router, http.MethodPost, "/escrow/alice/deposit", map[string]any{
			"amount": "1000", "unlockTime": 1700000000, "operationId": "op-1",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.LockResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "1000", resp.Amount)
		assert.Equal(t, "locked", resp.State)
		assert.Equal(t, int64(1700000000), resp.UnlockTime)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router, _ := newEscrowRouter(t)

		rec := doJSON(router, http.MethodPost, "/escrow/alice/deposit", map[string]any{"amount": "1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeInvalidRequest, resp.Code)
	})

	t.Run("Domain errors map to status codes", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   int
		}{
			{domainerr.ErrInvalidAmount, http.StatusBadRequest, domainerr.CodeInvalidAmount},
			{domainerr.ErrInvalidUnlockTime, http.StatusBadRequest, domainerr.CodeInvalidUnlockTime},
			{domainerr.NewTransferError(domainerr.TransferIn, "alice", "1", domainerr.ErrInsufficientAllowance), http.StatusPaymentRequired, domainerr.CodeInsufficientAllowance},
			{domainerr.NewTransferError(domainerr.TransferIn, "ghost", "1", fmt.Errorf("loading account: %w", domainerr.ErrTokenAccountNotFound)), http.StatusPaymentRequired, domainerr.CodeTransferFailed},
			{domainerr.NewDuplicateOperationError("op-1", "alice", "failed"), http.StatusConflict, domainerr.CodeDuplicateOperation},
			{domainerr.ErrAccountLocked, http.StatusConflict, domainerr.CodeAccountLocked},
			{errors.New("boom"), http.StatusInternalServerError, domainerr.CodeInternalServer},
		}
		for _, tc := range cases {
			router, escrow := newEscrowRouter(t)
			escrow.EXPECT().Deposit(mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rec := doJSON(router, http.MethodPost, "/escrow/alice/deposit", map[string]any{
				"amount": "1", "unlockTime": 1,
			})

			assert.Equal(t, tc.status, rec.Code, tc.err.Error())
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Code, tc.err.Error())
		}
	})

	t.Run("Server errors hide details", func(t *testing.T) {
		router, escrow := newEscrowRouter(t)
		escrow.EXPECT().Deposit(mock.Anything, mock.Anything).Return(nil, errors.New("dsn password=secret")).Once()

		rec := doJSON(router, http.MethodPost, "/escrow/alice/deposit", map[string]any{"amount": "1", "unlockTime": 1})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
	})
}

func TestEscrowHandler_Withdraw(t *testing.T) {
	t.Run("Not expired", func(t *testing.T) {
		router, escrow := newEscrowRouter(t)
		now := time.Unix(1700000000, 0)
		escrow.EXPECT().Withdraw(mock.Anything, usecase.WithdrawRequest{Account: "alice", Amount: "5"}).
			Return(nil, domainerr.NewLockNotExpiredError("alice", now.Add(time.Hour), now)).Once()

		rec := doJSON(router, http.MethodPost, "/escrow/alice/withdraw", map[string]any{"amount": "5"})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("No lock", func(t *testing.T) {
		router, escrow := newEscrowRouter(t)
		escrow.EXPECT().Withdraw(mock.Anything, mock.Anything).Return(nil, domainerr.ErrNoLock).Once()

		rec := doJSON(router, http.MethodPost, "/escrow/alice/withdraw", map[string]any{"amount": "5"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		router, escrow := newEscrowRouter(t)
		escrow.EXPECT().Withdraw(mock.Anything, mock.Anything).Return(&usecase.LockResult{
			Account: "alice",
			Amount:  "0",
			State:   entity.LockStateEmpty,
		}, nil).Once()

		rec := doJSON(router, http.MethodPost, "/escrow/alice/withdraw", map[string]any{"amount": "5"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"state":"empty"`)
	})
}

func TestEscrowHandler_Queries(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	op, err := entity.NewOperation("op-7", "alice", entity.KindDeposit, big.NewInt(9), now.Add(time.Hour), now)
	require.NoError(t, err)

	t.Run("GetLock", func(t *testing.T) {
		router, escrow := newEscrowRouter(t)
		escrow.EXPECT().GetLock(mock.Anything, "bob").Return(&usecase.LockResult{
			Account: "bob", Amount: "0", State: entity.LockStateEmpty,
		}, nil).Once()

		rec := doJSON(router, http.MethodGet, "/escrow/bob/lock", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"account":"bob"`)
	})

	t.Run("ListOperations", func(t *testing.T) {
		router, escrow := newEscrowRouter(t)
		escrow.EXPECT().ListOperations(mock.Anything, "alice", 5).Return([]*entity.Operation{op}, nil).Once()

		rec := doJSON(router, http.MethodGet, "/escrow/alice/operations?limit=5", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.OperationListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Operations, 1)
		assert.Equal(t, "9", resp.Operations[0].Amount)
		assert.Equal(t, "pending", resp.Operations[0].Status)
	})

	t.Run("ListOperations rejects bad limit", func(t *testing.T) {
		router, _ := newEscrowRouter(t)
		rec := doJSON(router, http.MethodGet, "/escrow/alice/operations?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GetOperation not found", func(t *testing.T) {
		router, escrow := newEscrowRouter(t)
		escrow.EXPECT().GetOperation(mock.Anything, "missing").Return(nil, domainerr.ErrOperationNotFound).Once()

		rec := doJSON(router, http.MethodGet, "/operations/missing", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("GetOperation", func(t *testing.T) {
		router, escrow := newEscrowRouter(t)
		escrow.EXPECT().GetOperation(mock.Anything, "op-7").Return(op, nil).Once()

		rec := doJSON(router, http.MethodGet, "/operations/op-7", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"deposit"`)
	})
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(domainerr.ErrInvalidAccount))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(domainerr.NewInsufficientLockedBalanceError("a", "2", "1")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(context.Canceled))
}

func TestEscrowHandler_ErrorDetails(t *testing.T) {
	router, escrow := newEscrowRouter(t)
	now := time.Unix(1700000000, 0)
	escrow.EXPECT().Withdraw(mock.Anything, mock.Anything).
		Return(nil, domainerr.NewLockNotExpiredError("alice", now.Add(time.Hour), now)).Once()

	rec := doJSON(router, http.MethodPost, "/escrow/alice/withdraw", map[string]any{"amount": "5"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domainerr.CodeLockNotExpired, resp.Code)
	assert.EqualValues(t, now.Add(time.Hour).Unix(), resp.Details["unlock_time"])
}
