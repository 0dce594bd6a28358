package escrow

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// Deposit pulls amount from the account and locks it until the unlock time.
// Re-depositing into a live lock adds the amount and keeps the later unlock time.
func (s *Service) Deposit(ctx context.Context, req usecase.DepositRequest) (*usecase.LockResult, error) {
	started := time.Now()
	result, err := s.deposit(ctx, req)
	s.observe(entity.KindDeposit, started, err)
	return result, err
}

func (s *Service) deposit(ctx context.Context, req usecase.DepositRequest) (*usecase.LockResult, error) {
	cmd, err := s.validator.ValidateDeposit(req)
	if err != nil {
		return nil, err
	}

	clientID := cmd.OperationID != ""
	if !clientID {
		cmd.OperationID = uuid.NewString()
	} else {
		op, found, err := s.idempotency.CheckIdempotency(ctx, cmd.OperationID, cmd.Account, entity.KindDeposit, entity.FormatTokenAmount(cmd.Amount))
		if err != nil {
			return nil, err
		}
		if found {
			return s.replay(op), nil
		}
	}

	return s.queue.Enqueue(ctx, cmd.Account, func(ctx context.Context) (*usecase.LockResult, error) {
		return s.withAccountLock(ctx, cmd.Account, func() (*usecase.LockResult, error) {
			if clientID {
				// The same ID may have completed while this call was queued
				op, found, err := s.idempotency.CheckIdempotency(ctx, cmd.OperationID, cmd.Account, entity.KindDeposit, entity.FormatTokenAmount(cmd.Amount))
				if err != nil {
					return nil, err
				}
				if found {
					return s.replay(op), nil
				}
			}
			return s.processDeposit(ctx, cmd)
		})
	})
}

// processDeposit stages the lock change, pulls the tokens and commits
func (s *Service) processDeposit(ctx context.Context, cmd *DepositCommand) (*usecase.LockResult, error) {
	now := s.timeProvider.Now()
	amount := entity.FormatTokenAmount(cmd.Amount)

	if s.maxLockDuration > 0 && cmd.UnlockTime.Sub(now) > s.maxLockDuration {
		return nil, fmt.Errorf("%w: unlock time %d is more than %s after %d",
			errs.ErrInvalidUnlockTime, cmd.UnlockTime.Unix(), s.maxLockDuration, now.Unix())
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin deposit: %w", err)
	}

	lockRepo := s.uow.GetLockRepository(txCtx)
	lock, err := lockRepo.GetForUpdate(txCtx, cmd.Account)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := lock.ApplyDeposit(cmd.Amount, cmd.UnlockTime, now); err != nil {
		s.rollback(txCtx)
		s.logger.Info("Deposit rejected", logFields(err, map[string]any{
			"account":      cmd.Account,
			"operation_id": cmd.OperationID,
		}))
		return nil, err
	}

	if err := lockRepo.Save(txCtx, lock); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	op, err := entity.NewOperation(cmd.OperationID, cmd.Account, entity.KindDeposit, cmd.Amount, cmd.UnlockTime, now)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}
	op.MarkAsCompleted(now, lock)
	if err := s.uow.GetOperationRepository(txCtx).Create(txCtx, op); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	// The transfer is an external call; the staged lock is discarded if it fails
	if err := s.transfers.TransferIn(ctx, cmd.Account, cmd.Amount); err != nil {
		s.rollback(txCtx)
		transferErr := errs.NewTransferError(errs.TransferIn, cmd.Account, amount, err)
		s.logger.Warn("Deposit transfer failed", logFields(transferErr, map[string]any{
			"operation_id": cmd.OperationID,
		}))
		s.recordFailure(ctx, cmd.OperationID, cmd.Account, entity.KindDeposit, cmd.Amount, cmd.UnlockTime, now, transferErr)
		return nil, transferErr
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Deposit commit failed after tokens were pulled, refunding", map[string]any{
			"account":      cmd.Account,
			"operation_id": cmd.OperationID,
			"amount":       amount,
			"error":        err.Error(),
		})
		if refundErr := s.transfers.TransferOut(ctx, cmd.Account, cmd.Amount); refundErr != nil {
			s.logger.Error("Deposit refund failed, manual reconciliation required", map[string]any{
				"account":      cmd.Account,
				"operation_id": cmd.OperationID,
				"amount":       amount,
				"error":        refundErr.Error(),
			})
		}
		return nil, fmt.Errorf("failed to commit deposit: %w", err)
	}

	s.metrics.AddLocked(toFloat(cmd.Amount))
	s.logger.Info("Deposit completed", map[string]any{
		"account":      cmd.Account,
		"operation_id": cmd.OperationID,
		"amount":       amount,
		"locked":       lock.GetAmount(),
		"unlock_time":  lock.UnlockUnix(),
	})

	return lockResult(cmd.OperationID, lock, now, false), nil
}
