package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StatusCode maps domain errors to HTTP status codes
func StatusCode(err error) int {
	switch {
	// Transfer errors wrap the token store's cause, which may itself be a
	// not-found or validation error; the transfer is what failed.
	case errors.Is(err, domainerr.ErrTransferFailed):
		return http.StatusPaymentRequired
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrNoLock),
		errors.Is(err, domainerr.ErrOperationNotFound),
		errors.Is(err, domainerr.ErrTokenAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrLockNotExpired),
		errors.Is(err, domainerr.ErrInsufficientLockedBalance):
		return http.StatusUnprocessableEntity
	case domainerr.IsConflictError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the error body. Server errors hide their details.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error, fields map[string]any) {
	status := StatusCode(err)

	logFields := map[string]any{
		"error":  err.Error(),
		"status": status,
	}
	var details map[string]any
	var typed interface{ LogFields() map[string]any }
	if errors.As(err, &typed) {
		details = typed.LogFields()
		for k, v := range details {
			logFields[k] = v
		}
	}
	for k, v := range fields {
		logFields[k] = v
	}

	body := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(message, logFields)
		body.Message = "Internal server error"
	} else {
		logger.Warn(message, logFields)
		body.Details = details
	}

	_ = c.Error(err)
	c.JSON(status, body)
}

// respondBindError rejects a malformed request body
func respondBindError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Warn("Invalid request format", map[string]any{
		"error": err.Error(),
		"path":  c.FullPath(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
