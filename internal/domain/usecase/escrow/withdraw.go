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

// Withdraw returns amount to the account once its lock has matured.
// The unlock time itself counts as matured.
func (s *Service) Withdraw(ctx context.Context, req usecase.WithdrawRequest) (*usecase.LockResult, error) {
	started := time.Now()
	result, err := s.withdraw(ctx, req)
	s.observe(entity.KindWithdraw, started, err)
	return result, err
}

func (s *Service) withdraw(ctx context.Context, req usecase.WithdrawRequest) (*usecase.LockResult, error) {
	cmd, err := s.validator.ValidateWithdraw(req)
	if err != nil {
		return nil, err
	}

	clientID := cmd.OperationID != ""
	if !clientID {
		cmd.OperationID = uuid.NewString()
	} else {
		op, found, err := s.idempotency.CheckIdempotency(ctx, cmd.OperationID, cmd.Account, entity.KindWithdraw, entity.FormatTokenAmount(cmd.Amount))
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
				op, found, err := s.idempotency.CheckIdempotency(ctx, cmd.OperationID, cmd.Account, entity.KindWithdraw, entity.FormatTokenAmount(cmd.Amount))
				if err != nil {
					return nil, err
				}
				if found {
					return s.replay(op), nil
				}
			}
			return s.processWithdraw(ctx, cmd)
		})
	})
}

// processWithdraw stages the debit, pays out and commits
func (s *Service) processWithdraw(ctx context.Context, cmd *WithdrawCommand) (*usecase.LockResult, error) {
	now := s.timeProvider.Now()
	amount := entity.FormatTokenAmount(cmd.Amount)

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin withdrawal: %w", err)
	}

	lockRepo := s.uow.GetLockRepository(txCtx)
	lock, err := lockRepo.GetForUpdate(txCtx, cmd.Account)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := lock.ApplyWithdraw(cmd.Amount, now); err != nil {
		s.rollback(txCtx)
		s.logger.Info("Withdrawal rejected", logFields(err, map[string]any{
			"account":      cmd.Account,
			"operation_id": cmd.OperationID,
			"amount":       amount,
		}))
		return nil, err
	}

	if err := lockRepo.Save(txCtx, lock); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	op, err := entity.NewOperation(cmd.OperationID, cmd.Account, entity.KindWithdraw, cmd.Amount, time.Time{}, now)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}
	op.MarkAsCompleted(now, lock)
	if err := s.uow.GetOperationRepository(txCtx).Create(txCtx, op); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := s.transfers.TransferOut(ctx, cmd.Account, cmd.Amount); err != nil {
		s.rollback(txCtx)
		transferErr := errs.NewTransferError(errs.TransferOut, cmd.Account, amount, err)
		s.logger.Warn("Withdrawal transfer failed", logFields(transferErr, map[string]any{
			"operation_id": cmd.OperationID,
		}))
		s.recordFailure(ctx, cmd.OperationID, cmd.Account, entity.KindWithdraw, cmd.Amount, time.Time{}, now, transferErr)
		return nil, transferErr
	}

	if err := s.uow.Commit(txCtx); err != nil {
		// Tokens left escrow but the debit was not stored. The lock keeps its
		// balance; the journal has no completed record for this ID.
		s.logger.Error("Withdrawal paid out but commit failed, reconciliation required", map[string]any{
			"account":      cmd.Account,
			"operation_id": cmd.OperationID,
			"amount":       amount,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("failed to commit withdrawal: %w", err)
	}

	s.metrics.AddLocked(-toFloat(cmd.Amount))
	s.logger.Info("Withdrawal completed", map[string]any{
		"account":      cmd.Account,
		"operation_id": cmd.OperationID,
		"amount":       amount,
		"remaining":    lock.GetAmount(),
	})

	return lockResult(cmd.OperationID, lock, now, false), nil
}
