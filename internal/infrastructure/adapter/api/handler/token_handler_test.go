package handler

import (
	"net/http"
	"testing"

	domainerr "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/voting-escrow/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTokenRouter(t *testing.T) (*gin.Engine, *mockusecase.MockTokenUseCase) {
	tokens := mockusecase.NewMockTokenUseCase(t)
	h := NewTokenHandler(tokens, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/token/:account/balance", h.GetBalance)
	router.POST("/token/:account/approve", h.Approve)
	router.POST("/debug/token/:account/mint", h.Mint)
	return router, tokens
}

func TestTokenHandler(t *testing.T) {
	t.Run("GetBalance", func(t *testing.T) {
		router, tokens := newTokenRouter(t)
		tokens.EXPECT().GetBalance(mock.Anything, "alice").Return(&usecase.TokenBalance{
			Account: "alice", Balance: "10", Allowance: "3",
		}, nil).Once()

		rec := doJSON(router, http.MethodGet, "/token/alice/balance", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"account":"alice","balance":"10","allowance":"3"}`, rec.Body.String())
	})

	t.Run("Approve", func(t *testing.T) {
		router, tokens := newTokenRouter(t)
		tokens.EXPECT().Approve(mock.Anything, "alice", "500").Return(&usecase.TokenBalance{
			Account: "alice", Balance: "10", Allowance: "500",
		}, nil).Once()

		rec := doJSON(router, http.MethodPost, "/token/alice/approve", map[string]any{"amount": "500"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"allowance":"500"`)
	})

	t.Run("Approve invalid amount", func(t *testing.T) {
		router, tokens := newTokenRouter(t)
		tokens.EXPECT().Approve(mock.Anything, "alice", "-1").Return(nil, domainerr.ErrInvalidAmount).Once()

		rec := doJSON(router, http.MethodPost, "/token/alice/approve", map[string]any{"amount": "-1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Mint", func(t *testing.T) {
		router, tokens := newTokenRouter(t)
		tokens.EXPECT().Mint(mock.Anything, "bob", "7").Return(&usecase.TokenBalance{
			Account: "bob", Balance: "7", Allowance: "0",
		}, nil).Once()

		rec := doJSON(router, http.MethodPost, "/debug/token/bob/mint", map[string]any{"amount": "7"})

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
