package database

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/voting-escrow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConnectionPoolMonitorCollect(t *testing.T) {
	logger := coremocks.NewMockLogger(t)
	stats := sql.DBStats{MaxOpenConnections: 10, OpenConnections: 10, InUse: 9, Idle: 1}

	logger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

	m := NewConnectionPoolMonitor(func() sql.DBStats { return stats }, logger)
	m.Collect()

	got := m.GetMetrics()
	assert.Equal(t, 9, got.InUse)
	assert.Equal(t, 10, got.MaxOpenConnections)

	// healthy pool stays quiet
	stats.InUse = 2
	m.Collect()
	assert.Equal(t, 2, m.GetMetrics().InUse)
}

func TestConnectionPoolMonitorRunStopsWithContext(t *testing.T) {
	logger := coremocks.NewMockLogger(t)
	var samples atomic.Int32

	m := NewConnectionPoolMonitor(func() sql.DBStats {
		samples.Add(1)
		return sql.DBStats{}
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, time.Millisecond) }()

	assert.Eventually(t, func() bool { return samples.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
