package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg, err := loadConfig(&globalFlags{env: config.Test, configDir: "../../configs"})
	require.NoError(t, err)
	return cfg
}

func serve(app *application, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func TestNewApplication_Memory(t *testing.T) {
	cfg := loadTestConfig(t)
	ctx := context.Background()

	app, err := newApplication(ctx, cfg, logger.NewNoopLogger(), false)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	t.Cleanup(func() { _ = app.escrow.Shutdown(context.Background()) })

	assert.Nil(t, app.dbManager)
	assert.NotNil(t, app.traveler)
	assert.Nil(t, app.recorder)

	rec := serve(app, http.MethodGet, "/token/alice/balance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":"2000000000000000000000"`)

	rec = serve(app, http.MethodPost, "/debug/clock/advance", `{"seconds":60}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewApplication_RedisLocksAndMetrics(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := loadTestConfig(t)
	cfg.Escrow.AccountLockBackend = config.AccountLockRedis
	cfg.Redis.Addr = mr.Addr()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"
	cfg.Escrow.AllowTimeTravel = false

	app, err := newApplication(context.Background(), cfg, logger.NewNoopLogger(), false)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	t.Cleanup(func() { _ = app.escrow.Shutdown(context.Background()) })

	rec := serve(app, http.MethodPost, "/token/alice/approve", `{"amount":"100"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	unlock := time.Now().Add(7 * 24 * time.Hour).Unix()
	rec = serve(app, http.MethodPost, "/escrow/alice/deposit", fmt.Sprintf(`{"amount":"100","unlockTime":%d}`, unlock))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, mr.Keys(), "account mutex is released after the deposit")

	rec = serve(app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis":"up"`)

	rec = serve(app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "voting_escrow_operations_total")

	rec = serve(app, http.MethodPost, "/debug/clock/advance", `{"seconds":60}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewApplication_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := loadTestConfig(t)
	cfg.Escrow.AccountLockBackend = config.AccountLockRedis
	cfg.Redis.Addr = mr.Addr()
	mr.Close()

	_, err := newApplication(context.Background(), cfg, logger.NewNoopLogger(), false)
	assert.ErrorContains(t, err, "connect redis")
}

func TestRootCommand(t *testing.T) {
	root := newRootCommand()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")
	assert.NotNil(t, root.PersistentFlags().Lookup("env"))
}

func TestLoadConfig_RejectsTimeTravelInProduction(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.Environment = config.Production
	assert.Error(t, cfg.Validate())
}
