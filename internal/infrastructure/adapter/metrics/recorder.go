package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "voting_escrow"

// Recorder exports escrow and HTTP metrics on its own registry
type Recorder struct {
	registry *prometheus.Registry

	operations       *prometheus.CounterVec
	operationSeconds *prometheus.HistogramVec
	lockedTokens     prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpSeconds      *prometheus.HistogramVec
}

var _ coreport.MetricsRecorder = (*Recorder)(nil)

// NewRecorder creates a recorder with Go runtime and process collectors registered
func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Escrow deposits and withdrawals by outcome",
		}, []string{"kind", "outcome"}),
		operationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of escrow deposits and withdrawals",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		lockedTokens: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "locked_tokens",
			Help:      "Token units moved into escrow since start, net of withdrawals",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		r.operations,
		r.operationSeconds,
		r.lockedTokens,
		r.httpRequests,
		r.httpSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveOperation records one finished deposit or withdraw
func (r *Recorder) ObserveOperation(kind string, outcome string, elapsed coreport.Duration) {
	r.operations.WithLabelValues(kind, outcome).Inc()
	r.operationSeconds.WithLabelValues(kind).Observe(elapsed.Std().Seconds())
}

// AddLocked adjusts the locked token gauge
func (r *Recorder) AddLocked(delta float64) {
	r.lockedTokens.Add(delta)
}

// ObserveRequest records one served HTTP request
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpSeconds.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RegisterDBStats exports connection pool statistics of db
func (r *Recorder) RegisterDBStats(db *sql.DB, dbName string) error {
	return r.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Registry returns the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
