package redislock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces account mutex keys
const DefaultKeyPrefix = "escrow:account-lock:"

// releaseScript deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
else
    return 0
end
`)

// AccountLockRepository implements the cross-process account mutex with
// SET NX PX keys. Each acquisition stores a fresh token so an expired holder
// can never delete a lock taken over by someone else.
type AccountLockRepository struct {
	client    redis.UniversalClient
	keyPrefix string
	logger    coreport.Logger

	mu     sync.Mutex
	tokens map[string]string
}

var _ persistence.AccountLockRepository = (*AccountLockRepository)(nil)

// NewAccountLockRepository creates a redis backed account mutex
func NewAccountLockRepository(client redis.UniversalClient, keyPrefix string, logger coreport.Logger) *AccountLockRepository {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &AccountLockRepository{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
		tokens:    make(map[string]string),
	}
}

// AcquireLock sets the account key if it is free
func (r *AccountLockRepository) AcquireLock(ctx context.Context, account string, duration time.Duration) error {
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, r.key(account), token, duration).Result()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("lock acquisition timeout: %w", err)
		}
		r.logger.Error("Redis error acquiring account lock", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	if !ok {
		r.logger.Warn("Account is already locked", map[string]any{
			"account": account,
		})
		return fmt.Errorf("%w: %s", errs.ErrAccountLocked, account)
	}

	r.mu.Lock()
	r.tokens[account] = token
	r.mu.Unlock()

	r.logger.Debug("Account lock acquired", map[string]any{
		"account":  account,
		"duration": duration.String(),
	})
	return nil
}

// ReleaseLock deletes the account key if this repository still owns it
func (r *AccountLockRepository) ReleaseLock(ctx context.Context, account string) error {
	r.mu.Lock()
	token, ok := r.tokens[account]
	delete(r.tokens, account)
	r.mu.Unlock()

	if !ok {
		return nil
	}

	deleted, err := releaseScript.Run(ctx, r.client, []string{r.key(account)}, token).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			r.logger.Warn("Context timeout when releasing account lock, lock will expire automatically", map[string]any{
				"account": account,
				"error":   err.Error(),
			})
			return nil
		}
		r.logger.Error("Failed to release account lock", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	if deleted == 0 {
		r.logger.Debug("No account lock to release, it may have expired", map[string]any{
			"account": account,
		})
	}
	return nil
}

// Ping checks the redis connection
func (r *AccountLockRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *AccountLockRepository) key(account string) string {
	return r.keyPrefix + account
}
