package handler

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DebugHandler exposes the movable clock. It is only routed when time travel is enabled.
type DebugHandler struct {
	clock  coreport.TimeTraveler
	logger coreport.Logger
}

// NewDebugHandler creates a new debug handler instance
func NewDebugHandler(clock coreport.TimeTraveler, logger coreport.Logger) *DebugHandler {
	return &DebugHandler{
		clock:  clock,
		logger: logger,
	}
}

// GetClock handles the GET /debug/clock endpoint
func (h *DebugHandler) GetClock(c *gin.Context) {
	c.JSON(http.StatusOK, h.clockResponse())
}

// AdvanceClock handles the POST /debug/clock/advance endpoint
func (h *DebugHandler) AdvanceClock(c *gin.Context) {
	var req dto.AdvanceClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	h.clock.Advance(coreport.Duration(time.Duration(req.Seconds) * time.Second))

	resp := h.clockResponse()
	h.logger.Info("Clock advanced", map[string]any{
		"seconds":        req.Seconds,
		"now":            resp.Now,
		"offset_seconds": resp.OffsetSeconds,
	})
	c.JSON(http.StatusOK, resp)
}

func (h *DebugHandler) clockResponse() dto.ClockResponse {
	return dto.ClockResponse{
		Now:           h.clock.Now().Unix(),
		OffsetSeconds: int64(h.clock.Offset().Std() / time.Second),
	}
}
