package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/usecase/escrow"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/usecase/token"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/metrics"
	clock "github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiHarness struct {
	router *gin.Engine
	clock  *clock.ManualTimeProvider
}

func newAPIHarness(t *testing.T, withDebug bool) *apiHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	clk := clock.NewManualTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ledger := memory.NewTokenLedger("escrow-vault")
	recorder := metrics.NewRecorder("")

	service := escrow.NewEscrowService(
		memory.NewUnitOfWork(memory.NewStore()),
		memory.NewAccountLockRepository(clk),
		ledger,
		clk,
		log,
		escrow.Options{Metrics: recorder},
	)
	t.Cleanup(func() { _ = service.Shutdown(context.Background()) })

	tokens := token.NewTokenUseCase(ledger, log)
	require.NoError(t, tokens.CreateDefaultAccounts(context.Background(), map[string]string{
		"alice": "1000000000000000000000000",
	}))

	handlers := Handlers{
		Escrow:  handler.NewEscrowHandler(service, log),
		Token:   handler.NewTokenHandler(tokens, log),
		Health:  handler.NewHealthHandler("memory", nil, clk, log),
		Metrics: recorder.Handler(),
	}
	if withDebug {
		handlers.Debug = handler.NewDebugHandler(clk, log)
	}

	router := gin.New()
	SetupMiddlewares(router, log, nil, recorder)
	SetupRoutes(router, handlers, "/metrics")

	return &apiHarness{router: router, clock: clk}
}

func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func TestTwoWeekLockOverHTTP(t *testing.T) {
	h := newAPIHarness(t, true)
	amount := "1000000000000000000000"
	twoWeeks := int64(14 * 24 * 60 * 60)

	rec := h.do(t, http.MethodPost, "/token/alice/approve", map[string]any{"amount": amount})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = h.do(t, http.MethodPost, "/escrow/alice/deposit", map[string]any{
		"amount":      amount,
		"unlockTime":  h.clock.Now().Unix() + twoWeeks,
		"operationId": "dep-1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = h.do(t, http.MethodPost, "/escrow/alice/withdraw", map[string]any{"amount": amount})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = h.do(t, http.MethodPost, "/debug/clock/advance", map[string]any{"seconds": twoWeeks})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/escrow/alice/lock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lock dto.LockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lock))
	assert.True(t, lock.Withdrawable)

	rec = h.do(t, http.MethodPost, "/escrow/alice/withdraw", map[string]any{"amount": amount, "operationId": "wd-1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = h.do(t, http.MethodPost, "/escrow/alice/withdraw", map[string]any{"amount": amount})
	assert.Equal(t, http.StatusNotFound, rec.Code, "second withdrawal finds no lock")

	rec = h.do(t, http.MethodGet, "/token/alice/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":"1000000000000000000000000"`)

	rec = h.do(t, http.MethodGet, "/operations/wd-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)

	rec = h.do(t, http.MethodGet, "/escrow/alice/operations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ops dto.OperationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ops))
	assert.GreaterOrEqual(t, len(ops.Operations), 2)

	rec = h.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), fmt.Sprintf(`%s_operations_total{kind="withdraw",outcome="success"} 1`, metrics.DefaultNamespace))
}

func TestDepositWithoutAllowanceIsPaymentRequired(t *testing.T) {
	h := newAPIHarness(t, false)

	rec := h.do(t, http.MethodPost, "/escrow/alice/deposit", map[string]any{
		"amount":     "10",
		"unlockTime": h.clock.Now().Unix() + 60,
	})

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	rec = h.do(t, http.MethodGet, "/escrow/alice/lock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"empty"`)
}

func TestDepositFromUnknownTokenAccountIsPaymentRequired(t *testing.T) {
	h := newAPIHarness(t, false)

	rec := h.do(t, http.MethodPost, "/escrow/ghost/deposit", map[string]any{
		"amount":     "10",
		"unlockTime": h.clock.Now().Unix() + 60,
	})

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "token account not found")

	rec = h.do(t, http.MethodGet, "/escrow/ghost/lock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"empty"`)
}

func TestDebugRoutesDisabled(t *testing.T) {
	h := newAPIHarness(t, false)

	rec := h.do(t, http.MethodPost, "/debug/clock/advance", map[string]any{"seconds": 10})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndCORS(t *testing.T) {
	h := newAPIHarness(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/escrow/alice/lock", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = h.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
