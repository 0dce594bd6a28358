package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TokenHandler handles token ledger HTTP requests
type TokenHandler struct {
	tokens usecase.TokenUseCase
	logger coreport.Logger
}

// NewTokenHandler creates a new token handler instance
func NewTokenHandler(tokens usecase.TokenUseCase, logger coreport.Logger) *TokenHandler {
	return &TokenHandler{
		tokens: tokens,
		logger: logger,
	}
}

// GetBalance handles the GET /token/:account/balance endpoint
func (h *TokenHandler) GetBalance(c *gin.Context) {
	account := c.Param("account")

	balance, err := h.tokens.GetBalance(c.Request.Context(), account)
	if err != nil {
		respondError(c, h.logger, "Error getting token balance", err, map[string]any{"account": account})
		return
	}

	c.JSON(http.StatusOK, toBalanceResponse(balance))
}

// Approve handles the POST /token/:account/approve endpoint
func (h *TokenHandler) Approve(c *gin.Context) {
	account := c.Param("account")

	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	balance, err := h.tokens.Approve(c.Request.Context(), account, req.Amount)
	if err != nil {
		respondError(c, h.logger, "Approve failed", err, map[string]any{"account": account})
		return
	}

	c.JSON(http.StatusOK, toBalanceResponse(balance))
}

// Mint handles the POST /debug/token/:account/mint endpoint
func (h *TokenHandler) Mint(c *gin.Context) {
	account := c.Param("account")

	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	balance, err := h.tokens.Mint(c.Request.Context(), account, req.Amount)
	if err != nil {
		respondError(c, h.logger, "Mint failed", err, map[string]any{"account": account})
		return
	}

	c.JSON(http.StatusOK, toBalanceResponse(balance))
}

func toBalanceResponse(b *usecase.TokenBalance) dto.TokenBalanceResponse {
	return dto.TokenBalanceResponse{
		Account:   b.Account,
		Balance:   b.Balance,
		Allowance: b.Allowance,
	}
}
