package redislock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*AccountLockRepository, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewAccountLockRepository(client, "", logger.NewNoopLogger()), mr, client
}

func TestAcquireAndRelease(t *testing.T) {
	ctx := context.Background()
	repo, mr, _ := newTestRepository(t)

	require.NoError(t, repo.AcquireLock(ctx, "alice", time.Second))
	assert.True(t, mr.Exists(DefaultKeyPrefix+"alice"))
	assert.Equal(t, time.Second, mr.TTL(DefaultKeyPrefix+"alice"))

	err := repo.AcquireLock(ctx, "alice", time.Second)
	assert.ErrorIs(t, err, errs.ErrAccountLocked)

	require.NoError(t, repo.ReleaseLock(ctx, "alice"))
	assert.False(t, mr.Exists(DefaultKeyPrefix+"alice"))

	require.NoError(t, repo.AcquireLock(ctx, "alice", time.Second))
}

func TestAccountsAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newTestRepository(t)

	require.NoError(t, repo.AcquireLock(ctx, "alice", time.Second))
	require.NoError(t, repo.AcquireLock(ctx, "bob", time.Second))
}

func TestExpiredLockCanBeTakenOver(t *testing.T) {
	ctx := context.Background()
	first, mr, client := newTestRepository(t)
	second := NewAccountLockRepository(client, "", logger.NewNoopLogger())

	require.NoError(t, first.AcquireLock(ctx, "alice", time.Second))
	assert.ErrorIs(t, second.AcquireLock(ctx, "alice", time.Second), errs.ErrAccountLocked)

	mr.FastForward(2 * time.Second)
	require.NoError(t, second.AcquireLock(ctx, "alice", time.Second))

	// The expired holder must not delete the new owner's key
	require.NoError(t, first.ReleaseLock(ctx, "alice"))
	assert.True(t, mr.Exists(DefaultKeyPrefix+"alice"))

	require.NoError(t, second.ReleaseLock(ctx, "alice"))
	assert.False(t, mr.Exists(DefaultKeyPrefix+"alice"))
}

func TestReleaseWithoutAcquire(t *testing.T) {
	repo, _, _ := newTestRepository(t)
	assert.NoError(t, repo.ReleaseLock(context.Background(), "nobody"))
}

func TestRedisUnavailable(t *testing.T) {
	ctx := context.Background()
	repo, mr, _ := newTestRepository(t)
	mr.Close()

	err := repo.AcquireLock(ctx, "alice", time.Second)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.Error(t, repo.Ping(ctx))
}

func TestCustomKeyPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := NewAccountLockRepository(client, "ve:", logger.NewNoopLogger())

	require.NoError(t, repo.AcquireLock(context.Background(), "carol", time.Minute))
	assert.True(t, mr.Exists("ve:carol"))
}
