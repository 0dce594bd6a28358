package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation(t *testing.T) {
	r := NewRecorder("")

	r.ObserveOperation("deposit", "success", coreport.Millisecond*5)
	r.ObserveOperation("deposit", "success", coreport.Millisecond*7)
	r.ObserveOperation("withdraw", "not_expired", coreport.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("deposit", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("withdraw", "not_expired")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.operationSeconds))
}

func TestAddLocked(t *testing.T) {
	r := NewRecorder("test")

	r.AddLocked(100)
	r.AddLocked(-40)

	assert.Equal(t, 60.0, testutil.ToFloat64(r.lockedTokens))
}

func TestObserveRequest(t *testing.T) {
	r := NewRecorder("")

	r.ObserveRequest(http.MethodPost, "/escrow/:account/deposit", http.StatusOK, 10*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("POST", "/escrow/:account/deposit", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRecorder("")
	r.ObserveOperation("deposit", "success", coreport.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "voting_escrow_operations_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
