package escrow

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/token"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
)

// DefaultLockTimeout bounds how long an account mutex is held
const DefaultLockTimeout = 5 * time.Second

// DefaultMaxLockDuration is the longest lock period accepted by default
const DefaultMaxLockDuration = 4 * 365 * 24 * time.Hour

// Options tunes the escrow service
type Options struct {
	LockTimeout     time.Duration // Account mutex lifetime
	MaxLockDuration time.Duration // Longest accepted lock period, 0 disables the check
	QueueSize       int           // Per-account queue buffer
	Metrics         coreport.MetricsRecorder
}

// Service is the escrow ledger. It ties together validation, idempotency,
// per-account ordering and the transactional deposit and withdraw flows.
type Service struct {
	uow          persistence.UnitOfWork
	accountLocks persistence.AccountLockRepository
	transfers    token.TransferService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.MetricsRecorder

	queue       *AccountQueue
	validator   *EscrowValidator
	idempotency *IdempotencyHandler

	lockTimeout     time.Duration
	maxLockDuration time.Duration
}

var _ usecase.EscrowUseCase = (*Service)(nil)

// NewEscrowService creates a new escrow service
func NewEscrowService(
	uow persistence.UnitOfWork,
	accountLocks persistence.AccountLockRepository,
	transfers token.TransferService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) *Service {
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = DefaultLockTimeout
	}
	if opts.MaxLockDuration < 0 {
		opts.MaxLockDuration = 0
	}
	if opts.Metrics == nil {
		opts.Metrics = coreport.NoopMetricsRecorder{}
	}

	return &Service{
		uow:             uow,
		accountLocks:    accountLocks,
		transfers:       transfers,
		timeProvider:    timeProvider,
		logger:          logger,
		metrics:         opts.Metrics,
		queue:           NewAccountQueue(logger, opts.QueueSize),
		validator:       NewEscrowValidator(),
		idempotency:     NewIdempotencyHandler(uow),
		lockTimeout:     opts.LockTimeout,
		maxLockDuration: opts.MaxLockDuration,
	}
}

// GetLock returns the current lock of an account; unknown accounts are empty
func (s *Service) GetLock(ctx context.Context, account string) (*usecase.LockResult, error) {
	if err := entity.ValidateAccount(account); err != nil {
		return nil, err
	}

	lock, err := s.uow.GetLockRepository(ctx).Get(ctx, account)
	if err != nil {
		s.logger.Error("Failed to load lock", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return nil, err
	}

	return lockResult("", lock, s.timeProvider.Now(), false), nil
}

// GetOperation returns a journaled operation by ID
func (s *Service) GetOperation(ctx context.Context, operationID string) (*entity.Operation, error) {
	if operationID == "" {
		return nil, errs.ErrInvalidRequest
	}
	return s.uow.GetOperationRepository(ctx).GetByOperationID(ctx, operationID)
}

// MaxListLimit caps how many operations ListOperations returns
const MaxListLimit = 100

// ListOperations returns the journal of an account, newest first
func (s *Service) ListOperations(ctx context.Context, account string, limit int) ([]*entity.Operation, error) {
	if err := entity.ValidateAccount(account); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.uow.GetOperationRepository(ctx).ListByAccount(ctx, account, limit)
}

// Shutdown waits for queued operations to finish
func (s *Service) Shutdown(ctx context.Context) error {
	return s.queue.Shutdown(ctx)
}

// withAccountLock runs fn while holding the cross-process account mutex
func (s *Service) withAccountLock(
	ctx context.Context,
	account string,
	fn func() (*usecase.LockResult, error),
) (*usecase.LockResult, error) {
	if err := s.accountLocks.AcquireLock(ctx, account, s.lockTimeout); err != nil {
		s.logger.Warn("Failed to acquire account lock", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return nil, err
	}

	defer func() {
		if err := s.accountLocks.ReleaseLock(ctx, account); err != nil {
			s.logger.Warn("Failed to release account lock", map[string]any{
				"account": account,
				"error":   err.Error(),
			})
		}
	}()

	return fn()
}

// rollback logs but doesn't return rollback failures; the original error wins
func (s *Service) rollback(txCtx context.Context) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to roll back escrow transaction", map[string]any{
			"error": err.Error(),
		})
	}
}

// recordFailure journals a failed operation outside the rolled back transaction.
// It is best effort: the caller already has the error to return.
func (s *Service) recordFailure(
	ctx context.Context,
	operationID string,
	account string,
	kind entity.OperationKind,
	amount *big.Int,
	unlockTime time.Time,
	now time.Time,
	cause error,
) {
	op, err := entity.NewOperation(operationID, account, kind, amount, unlockTime, now)
	if err != nil {
		return
	}
	op.MarkAsFailed(now, cause.Error())

	if err := s.uow.GetOperationRepository(ctx).Create(ctx, op); err != nil {
		s.logger.Warn("Failed to record failed operation", map[string]any{
			"operation_id": operationID,
			"account":      account,
			"error":        err.Error(),
		})
	}
}

// replay builds the response of an operation that already completed
func (s *Service) replay(op *entity.Operation) *usecase.LockResult {
	now := s.timeProvider.Now()

	result := &usecase.LockResult{
		OperationID: op.OperationID,
		Account:     op.Account,
		Amount:      op.ResultAmount,
		State:       entity.LockStateEmpty,
		Replayed:    true,
	}
	if op.ResultAmount != "" && op.ResultAmount != "0" {
		result.State = entity.LockStateLocked
		result.UnlockTime = op.ResultUnlock.Unix()
		result.Withdrawable = now.Unix() >= op.ResultUnlock.Unix()
	}

	s.logger.Info("Replaying completed operation", map[string]any{
		"operation_id": op.OperationID,
		"account":      op.Account,
		"kind":         string(op.Kind),
	})
	return result
}

// observe reports the outcome of a deposit or withdraw to metrics
func (s *Service) observe(kind entity.OperationKind, started time.Time, err error) {
	s.metrics.ObserveOperation(string(kind), outcomeOf(err), coreport.Duration(time.Since(started)))
}

// lockResult converts a lock into the use case response
func lockResult(operationID string, lock *entity.Lock, now time.Time, replayed bool) *usecase.LockResult {
	return &usecase.LockResult{
		OperationID:  operationID,
		Account:      lock.Account,
		Amount:       lock.GetAmount(),
		UnlockTime:   lock.UnlockUnix(),
		State:        lock.State(),
		Withdrawable: lock.IsMatured(now),
		Replayed:     replayed,
	}
}

// outcomeOf maps an error to a low-cardinality metrics label
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, errs.ErrTransferFailed):
		return "transfer_failed"
	case errs.IsValidationError(err):
		return "invalid"
	case errors.Is(err, errs.ErrLockNotExpired):
		return "not_expired"
	case errors.Is(err, errs.ErrNoLock):
		return "no_lock"
	case errors.Is(err, errs.ErrInsufficientLockedBalance):
		return "insufficient"
	case errs.IsConflictError(err):
		return "conflict"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

// logFields returns the structured fields of typed domain errors
func logFields(err error, extra map[string]any) map[string]any {
	fields := map[string]any{"error": err.Error()}
	var typed interface{ LogFields() map[string]any }
	if errors.As(err, &typed) {
		for k, v := range typed.LogFields() {
			fields[k] = v
		}
	}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

// toFloat converts token units for gauges; precision loss is acceptable there
func toFloat(amount *big.Int) float64 {
	f, _ := new(big.Float).SetInt(amount).Float64()
	return f
}
