package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/logger"
	clock "github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugHandler_AdvanceClock(t *testing.T) {
	start := time.Unix(1700000000, 0).UTC()
	manual := clock.NewManualTimeProvider(start)
	h := NewDebugHandler(manual, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/debug/clock", h.GetClock)
	router.POST("/debug/clock/advance", h.AdvanceClock)

	rec := doJSON(router, http.MethodPost, "/debug/clock/advance", map[string]any{"seconds": 1209600})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ClockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, start.Add(14*24*time.Hour).Unix(), resp.Now)
	assert.Equal(t, int64(1209600), resp.OffsetSeconds)
	assert.Equal(t, start.Add(14*24*time.Hour), manual.Now())

	rec = doJSON(router, http.MethodPost, "/debug/clock/advance", map[string]any{"seconds": -5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodGet, "/debug/clock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"offsetSeconds":1209600`)
}

func TestHealthHandler(t *testing.T) {
	manual := clock.NewManualTimeProvider(time.Unix(1700000000, 0))

	t.Run("Healthy", func(t *testing.T) {
		h := NewHealthHandler("postgres", map[string]HealthCheck{
			"database": func(context.Context) error { return nil },
		}, manual, logger.NewNoopLogger())
		router := gin.New()
		router.GET("/health", h.Health)

		rec := doJSON(router, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"database":"up"`)
	})

	t.Run("Degraded", func(t *testing.T) {
		h := NewHealthHandler("postgres", map[string]HealthCheck{
			"redis": func(context.Context) error { return errors.New("connection refused") },
		}, manual, logger.NewNoopLogger())
		router := gin.New()
		router.GET("/health", h.Health)

		rec := doJSON(router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
	})

	t.Run("No checks", func(t *testing.T) {
		h := NewHealthHandler("memory", nil, manual, logger.NewNoopLogger())
		router := gin.New()
		router.GET("/health", h.Health)

		rec := doJSON(router, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"storage":"memory"`)
	})
}
