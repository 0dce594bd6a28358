package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// EscrowHandler handles escrow-related HTTP requests
type EscrowHandler struct {
	escrow usecase.EscrowUseCase
	logger coreport.Logger
}

// NewEscrowHandler creates a new escrow handler instance
func NewEscrowHandler(escrow usecase.EscrowUseCase, logger coreport.Logger) *EscrowHandler {
	return &EscrowHandler{
		escrow: escrow,
		logger: logger,
	}
}

// Deposit handles the POST /escrow/:account/deposit endpoint
func (h *EscrowHandler) Deposit(c *gin.Context) {
	account := c.Param("account")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	result, err := h.escrow.Deposit(c.Request.Context(), usecase.DepositRequest{
		Account:     account,
		Amount:      req.Amount,
		UnlockTime:  req.UnlockTime,
		OperationID: req.OperationID,
	})
	if err != nil {
		respondError(c, h.logger, "Deposit failed", err, map[string]any{
			"account":      account,
			"operation_id": req.OperationID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewLockResponse(result))
}

// Withdraw handles the POST /escrow/:account/withdraw endpoint
func (h *EscrowHandler) Withdraw(c *gin.Context) {
	account := c.Param("account")

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	result, err := h.escrow.Withdraw(c.Request.Context(), usecase.WithdrawRequest{
		Account:     account,
		Amount:      req.Amount,
		OperationID: req.OperationID,
	})
	if err != nil {
		respondError(c, h.logger, "Withdraw failed", err, map[string]any{
			"account":      account,
			"operation_id": req.OperationID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewLockResponse(result))
}

// GetLock handles the GET /escrow/:account/lock endpoint
func (h *EscrowHandler) GetLock(c *gin.Context) {
	account := c.Param("account")

	result, err := h.escrow.GetLock(c.Request.Context(), account)
	if err != nil {
		respondError(c, h.logger, "Error getting lock", err, map[string]any{"account": account})
		return
	}

	c.JSON(http.StatusOK, dto.NewLockResponse(result))
}

// ListOperations handles the GET /escrow/:account/operations endpoint
func (h *EscrowHandler) ListOperations(c *gin.Context) {
	account := c.Param("account")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	ops, err := h.escrow.ListOperations(c.Request.Context(), account, limit)
	if err != nil {
		respondError(c, h.logger, "Error listing operations", err, map[string]any{"account": account})
		return
	}

	resp := dto.OperationListResponse{
		Account:    account,
		Operations: make([]dto.OperationResponse, 0, len(ops)),
	}
	for _, op := range ops {
		resp.Operations = append(resp.Operations, dto.NewOperationResponse(op))
	}
	c.JSON(http.StatusOK, resp)
}

// GetOperation handles the GET /operations/:operationId endpoint
func (h *EscrowHandler) GetOperation(c *gin.Context) {
	operationID := c.Param("operationId")

	op, err := h.escrow.GetOperation(c.Request.Context(), operationID)
	if err != nil {
		respondError(c, h.logger, "Error getting operation", err, map[string]any{"operation_id": operationID})
		return
	}

	c.JSON(http.StatusOK, dto.NewOperationResponse(op))
}
