package usecase

import (
	"context"
)

// TokenBalance represents the token-side view of an account
type TokenBalance struct {
	Account   string `json:"account"`
	Balance   string `json:"balance"`
	Allowance string `json:"allowance"`
}

// TokenUseCase defines operations on the reference token ledger
type TokenUseCase interface {
	// GetBalance returns balance and escrow allowance of an account
	GetBalance(ctx context.Context, account string) (*TokenBalance, error)

	// Approve sets how much the escrow may pull from the account
	Approve(ctx context.Context, account string, amount string) (*TokenBalance, error)

	// Mint credits new tokens to an account
	Mint(ctx context.Context, account string, amount string) (*TokenBalance, error)

	// CreateDefaultAccounts seeds accounts that don't hold a balance yet
	CreateDefaultAccounts(ctx context.Context, accounts map[string]string) error
}
