package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// HealthCheck is one named dependency check
type HealthCheck func(ctx context.Context) error

// HealthHandler reports service health
type HealthHandler struct {
	storage      string
	checks       map[string]HealthCheck
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	timeout      time.Duration
}

// NewHealthHandler creates a new health handler; checks may be empty
func NewHealthHandler(storage string, checks map[string]HealthCheck, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		storage:      storage,
		checks:       checks,
		timeProvider: timeProvider,
		logger:       logger,
		timeout:      2 * time.Second,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:  "ok",
		Time:    h.timeProvider.Now().Unix(),
		Storage: h.storage,
	}
	status := http.StatusOK

	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Error("Health check failed", map[string]any{
				"check": name,
				"error": err.Error(),
			})
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "up"
	}

	c.JSON(status, resp)
}
