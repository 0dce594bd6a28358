package token

import (
	"context"
	"fmt"
	"sort"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	tokenport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/token"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/usecase"
)

// TokenUseCase implements the token account business logic
type TokenUseCase struct {
	accounts tokenport.Accounts
	logger   coreport.Logger
}

// NewTokenUseCase creates a new token use case instance
func NewTokenUseCase(accounts tokenport.Accounts, logger coreport.Logger) *TokenUseCase {
	return &TokenUseCase{
		accounts: accounts,
		logger:   logger,
	}
}

var _ usecase.TokenUseCase = (*TokenUseCase)(nil)

// GetBalance returns balance and escrow allowance of an account
func (u *TokenUseCase) GetBalance(ctx context.Context, account string) (*usecase.TokenBalance, error) {
	if err := entity.ValidateAccount(account); err != nil {
		return nil, err
	}

	balance, err := u.accounts.BalanceOf(ctx, account)
	if err != nil {
		u.logger.Error("Failed to get token balance", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return nil, err
	}

	allowance, err := u.accounts.Allowance(ctx, account)
	if err != nil {
		u.logger.Error("Failed to get token allowance", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &usecase.TokenBalance{
		Account:   account,
		Balance:   entity.FormatTokenAmount(balance),
		Allowance: entity.FormatTokenAmount(allowance),
	}, nil
}

// Approve sets how much the escrow may pull from the account; zero revokes
func (u *TokenUseCase) Approve(ctx context.Context, account string, amount string) (*usecase.TokenBalance, error) {
	value, err := entity.ParseTokenAmount(amount)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateAccount(account); err != nil {
		return nil, err
	}

	if err := u.accounts.Approve(ctx, account, value); err != nil {
		u.logger.Error("Failed to approve escrow allowance", map[string]any{
			"account": account,
			"amount":  amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Escrow allowance approved", map[string]any{
		"account":   account,
		"allowance": value.String(),
	})
	return u.GetBalance(ctx, account)
}

// Mint credits new tokens to an account
func (u *TokenUseCase) Mint(ctx context.Context, account string, amount string) (*usecase.TokenBalance, error) {
	value, err := entity.ParsePositiveTokenAmount(amount)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateAccount(account); err != nil {
		return nil, err
	}

	if err := u.accounts.Mint(ctx, account, value); err != nil {
		u.logger.Error("Failed to mint tokens", map[string]any{
			"account": account,
			"amount":  amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Tokens minted", map[string]any{
		"account": account,
		"amount":  value.String(),
	})
	return u.GetBalance(ctx, account)
}

// CreateDefaultAccounts mints the configured balance to every listed account
// that holds nothing yet, so restarts don't inflate supply
func (u *TokenUseCase) CreateDefaultAccounts(ctx context.Context, accounts map[string]string) error {
	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		balance, err := u.accounts.BalanceOf(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to check default account %s: %w", name, err)
		}

		if balance.Sign() > 0 {
			u.logger.Info("Default account already funded", map[string]any{
				"account": name,
				"balance": balance.String(),
			})
			continue
		}

		if _, err := u.Mint(ctx, name, accounts[name]); err != nil {
			return fmt.Errorf("%w: default account %s: %s", errs.ErrInvalidRequest, name, err.Error())
		}
	}

	u.logger.Info("Default accounts created or verified", map[string]any{
		"count": len(names),
	})
	return nil
}
