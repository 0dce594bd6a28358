package escrow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
)

// DefaultQueueSize is the per-account buffer used when none is configured
const DefaultQueueSize = 100

// ErrQueueClosed is returned for calls enqueued after Shutdown
var ErrQueueClosed = errors.New("account queue is shut down")

// OperationFunc is one unit of work run in an account's queue
type OperationFunc func(ctx context.Context) (*usecase.LockResult, error)

// queuedOperation represents a queued call
type queuedOperation struct {
	ctx        context.Context
	fn         OperationFunc
	resultChan chan queuedResult
}

// queuedResult represents the result of a processed call
type queuedResult struct {
	result *usecase.LockResult
	err    error
}

// accountWorker owns the queue of one account
type accountWorker struct {
	queue   chan *queuedOperation
	pending int // Calls enqueued or about to be, guarded by AccountQueue.mu
}

// AccountQueue runs operations of the same account one at a time, in arrival order.
// Different accounts proceed in parallel. A worker exists only while its account
// has pending calls.
type AccountQueue struct {
	logger    coreport.Logger
	queueSize int

	mu      sync.Mutex
	workers map[string]*accountWorker
	closed  bool
	wg      sync.WaitGroup
}

// NewAccountQueue creates a new account queue
func NewAccountQueue(logger coreport.Logger, queueSize int) *AccountQueue {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &AccountQueue{
		logger:    logger,
		queueSize: queueSize,
		workers:   make(map[string]*accountWorker),
	}
}

// Enqueue runs fn in the queue of account and waits for its result.
// A call whose context is done before it reaches the head of the queue is
// dropped without running. Once started, fn runs to completion on a context
// that ignores the caller's cancellation so a transfer is never cut in half.
func (q *AccountQueue) Enqueue(ctx context.Context, account string, fn OperationFunc) (*usecase.LockResult, error) {
	if fn == nil {
		panic("account queue operation cannot be nil")
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil, ErrQueueClosed
	}
	worker, ok := q.workers[account]
	if !ok {
		worker = &accountWorker{queue: make(chan *queuedOperation, q.queueSize)}
		q.workers[account] = worker
		q.wg.Add(1)
		go q.run(account, worker)

		q.logger.Debug("Started account queue worker", map[string]any{
			"account": account,
		})
	}
	worker.pending++
	q.mu.Unlock()

	call := &queuedOperation{
		ctx:        ctx,
		fn:         fn,
		resultChan: make(chan queuedResult, 1),
	}

	select {
	case worker.queue <- call:
	case <-ctx.Done():
		q.abandon(account, worker)
		q.logger.Warn("Context canceled while enqueueing operation", map[string]any{
			"account": account,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case res := <-call.resultChan:
		return res.result, res.err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for operation result", map[string]any{
			"account": account,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// abandon undoes the pending count of a call that never reached the queue
func (q *AccountQueue) abandon(account string, worker *accountWorker) {
	q.mu.Lock()
	defer q.mu.Unlock()

	worker.pending--
	if worker.pending == 0 && q.workers[account] == worker {
		// Nobody is sending and the worker is idle on receive
		delete(q.workers, account)
		close(worker.queue)
	}
}

// run is the worker goroutine for one account
func (q *AccountQueue) run(account string, worker *accountWorker) {
	defer q.wg.Done()

	for call := range worker.queue {
		res := q.execute(account, call)
		call.resultChan <- res
		close(call.resultChan)

		q.mu.Lock()
		worker.pending--
		if worker.pending == 0 {
			delete(q.workers, account)
			q.mu.Unlock()
			q.logger.Debug("Account queue drained", map[string]any{
				"account": account,
			})
			return
		}
		q.mu.Unlock()
	}
}

// execute runs one call, converting panics into internal errors
func (q *AccountQueue) execute(account string, call *queuedOperation) (res queuedResult) {
	if err := call.ctx.Err(); err != nil {
		return queuedResult{err: err}
	}

	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("Operation panicked in account queue", map[string]any{
				"account": account,
				"panic":   fmt.Sprint(r),
			})
			res = queuedResult{err: fmt.Errorf("%w: operation panicked", errs.ErrInternalServer)}
		}
	}()

	result, err := call.fn(context.WithoutCancel(call.ctx))
	return queuedResult{result: result, err: err}
}

// Shutdown rejects new calls and waits until every queued call has run.
// It returns ctx.Err() if the queues don't drain in time.
func (q *AccountQueue) Shutdown(ctx context.Context) error {
	q.logger.Info("Shutting down account queues", nil)

	q.mu.Lock()
	q.closed = true
	active := len(q.workers)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.logger.Info("Account queues shut down successfully", map[string]any{
			"drained_workers": active,
		})
		return nil
	case <-ctx.Done():
		q.logger.Warn("Account queues did not drain before deadline", map[string]any{
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// ActiveAccounts reports how many accounts currently have a worker
func (q *AccountQueue) ActiveAccounts() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.workers)
}
