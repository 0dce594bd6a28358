package escrow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/voting-escrow/mocks/port/core"
)

func quietLogger(t *testing.T) *mockcore.MockLogger {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestAccountQueue_Enqueue(t *testing.T) {
	t.Run("Returns the operation result", func(t *testing.T) {
		q := NewAccountQueue(quietLogger(t), 0)

		result, err := q.Enqueue(context.Background(), "alice", func(ctx context.Context) (*usecase.LockResult, error) {
			return &usecase.LockResult{Account: "alice", Amount: "10"}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "10", result.Amount)
	})

	t.Run("Returns the operation error", func(t *testing.T) {
		q := NewAccountQueue(quietLogger(t), 0)

		result, err := q.Enqueue(context.Background(), "alice", func(ctx context.Context) (*usecase.LockResult, error) {
			return nil, errs.ErrLockNotExpired
		})

		assert.ErrorIs(t, err, errs.ErrLockNotExpired)
		assert.Nil(t, result)
	})

	t.Run("Same account never overlaps", func(t *testing.T) {
		q := NewAccountQueue(quietLogger(t), 0)

		var mu sync.Mutex
		running, maxRunning, total := 0, 0, 0

		op := func(ctx context.Context) (*usecase.LockResult, error) {
			mu.Lock()
			running++
			if running > maxRunning {
				maxRunning = running
			}
			mu.Unlock()

			time.Sleep(2 * time.Millisecond)

			mu.Lock()
			running--
			total++
			mu.Unlock()
			return &usecase.LockResult{}, nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := q.Enqueue(context.Background(), "alice", op)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxRunning)
		assert.Equal(t, 20, total)
		assert.Eventually(t, func() bool { return q.ActiveAccounts() == 0 }, time.Second, time.Millisecond,
			"idle workers exit")
	})

	t.Run("Different accounts run concurrently", func(t *testing.T) {
		q := NewAccountQueue(quietLogger(t), 0)

		release := make(chan struct{})
		started := make(chan string, 2)
		op := func(account string) OperationFunc {
			return func(ctx context.Context) (*usecase.LockResult, error) {
				started <- account
				<-release
				return &usecase.LockResult{Account: account}, nil
			}
		}

		var wg sync.WaitGroup
		for _, account := range []string{"alice", "bob"} {
			wg.Add(1)
			go func(account string) {
				defer wg.Done()
				_, err := q.Enqueue(context.Background(), account, op(account))
				assert.NoError(t, err)
			}(account)
		}

		// Both must be running at the same time before either is released
		<-started
		<-started
		close(release)
		wg.Wait()
	})

	t.Run("Canceled context is not run", func(t *testing.T) {
		q := NewAccountQueue(quietLogger(t), 0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		result, err := q.Enqueue(ctx, "alice", func(ctx context.Context) (*usecase.LockResult, error) {
			ran = true
			return &usecase.LockResult{}, nil
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
		assert.Eventually(t, func() bool { return q.ActiveAccounts() == 0 }, time.Second, time.Millisecond)
		assert.False(t, ran)
	})

	t.Run("Caller that stops waiting does not stop a running operation", func(t *testing.T) {
		q := NewAccountQueue(quietLogger(t), 0)
		ctx, cancel := context.WithCancel(context.Background())
		started := make(chan struct{})
		release := make(chan struct{})
		finished := make(chan struct{})

		go func() {
			<-started
			cancel()
		}()

		result, err := q.Enqueue(ctx, "alice", func(ctx context.Context) (*usecase.LockResult, error) {
			close(started)
			<-release
			close(finished)
			return &usecase.LockResult{Account: "alice"}, nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)

		close(release)
		select {
		case <-finished:
		case <-time.After(time.Second):
			t.Fatal("operation did not complete after the caller left")
		}
		assert.Eventually(t, func() bool { return q.ActiveAccounts() == 0 }, time.Second, time.Millisecond)
	})

	t.Run("Panics become internal errors", func(t *testing.T) {
		q := NewAccountQueue(quietLogger(t), 0)

		_, err := q.Enqueue(context.Background(), "alice", func(ctx context.Context) (*usecase.LockResult, error) {
			panic("boom")
		})
		assert.ErrorIs(t, err, errs.ErrInternalServer)

		// The account is usable afterwards
		_, err = q.Enqueue(context.Background(), "alice", func(ctx context.Context) (*usecase.LockResult, error) {
			return &usecase.LockResult{}, nil
		})
		assert.NoError(t, err)
	})

	t.Run("Nil operation panics", func(t *testing.T) {
		q := NewAccountQueue(quietLogger(t), 0)
		assert.Panics(t, func() {
			_, _ = q.Enqueue(context.Background(), "alice", nil)
		})
	})
}

func TestAccountQueue_Shutdown(t *testing.T) {
	q := NewAccountQueue(quietLogger(t), 0)

	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := q.Enqueue(context.Background(), "alice", func(ctx context.Context) (*usecase.LockResult, error) {
			<-release
			return &usecase.LockResult{}, nil
		})
		done <- err
	}()

	require.Eventually(t, func() bool { return q.ActiveAccounts() == 1 }, time.Second, time.Millisecond)

	t.Run("Times out while work is running", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, q.Shutdown(ctx), context.DeadlineExceeded)
	})

	t.Run("Rejects new work once closed", func(t *testing.T) {
		_, err := q.Enqueue(context.Background(), "bob", func(ctx context.Context) (*usecase.LockResult, error) {
			return &usecase.LockResult{}, nil
		})
		assert.ErrorIs(t, err, ErrQueueClosed)
	})

	t.Run("Drains running work", func(t *testing.T) {
		close(release)
		require.NoError(t, q.Shutdown(context.Background()))
		assert.NoError(t, <-done)
	})
}
