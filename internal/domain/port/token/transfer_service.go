package token

import (
	"context"
	"math/big"
)

// TransferService moves token units between an account and the escrow vault.
// Each call is atomic: it either moves the whole amount or nothing.
type TransferService interface {
	// TransferIn pulls amount from account into the escrow vault
	//
	// Possible errors:
	// - ErrInsufficientAllowance: If the account has not approved enough for the escrow
	// - ErrInsufficientTokenBalance: If the account doesn't hold enough tokens
	// - ErrTokenAccountNotFound: If the account doesn't exist in the token ledger
	TransferIn(ctx context.Context, account string, amount *big.Int) error

	// TransferOut pushes amount from the escrow vault back to account
	//
	// Possible errors:
	// - ErrInsufficientTokenBalance: If the vault doesn't hold enough tokens
	TransferOut(ctx context.Context, account string, amount *big.Int) error
}

// Accounts gives read and allowance access to a token ledger
type Accounts interface {
	// BalanceOf returns the token balance of account
	BalanceOf(ctx context.Context, account string) (*big.Int, error)

	// Allowance returns how much the escrow may still pull from account
	Allowance(ctx context.Context, account string) (*big.Int, error)

	// Approve sets the escrow allowance of account to amount
	Approve(ctx context.Context, account string, amount *big.Int) error

	// Mint credits amount to account, creating it when missing
	Mint(ctx context.Context, account string, amount *big.Int) error
}

// Ledger is a token ledger usable both as transfer collaborator and account store
type Ledger interface {
	TransferService
	Accounts
}
