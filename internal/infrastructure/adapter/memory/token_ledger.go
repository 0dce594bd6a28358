package memory

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/token"
)

type tokenAccount struct {
	balance   *big.Int
	allowance *big.Int
}

// TokenLedger is an in-memory fungible token with a single escrow spender.
// Every call is atomic under one mutex.
type TokenLedger struct {
	mu       sync.Mutex
	accounts map[string]*tokenAccount
	vault    string
}

var _ token.Ledger = (*TokenLedger)(nil)

// NewTokenLedger creates a ledger whose escrowed tokens sit in vault
func NewTokenLedger(vault string) *TokenLedger {
	return &TokenLedger{
		accounts: map[string]*tokenAccount{vault: {balance: new(big.Int), allowance: new(big.Int)}},
		vault:    vault,
	}
}

func (l *TokenLedger) account(name string, create bool) *tokenAccount {
	acc, ok := l.accounts[name]
	if !ok && create {
		acc = &tokenAccount{balance: new(big.Int), allowance: new(big.Int)}
		l.accounts[name] = acc
	}
	return acc
}

// TransferIn moves amount from account to the vault, consuming allowance
func (l *TokenLedger) TransferIn(ctx context.Context, account string, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	acc := l.account(account, false)
	if acc == nil {
		return fmt.Errorf("%w: %s", errs.ErrTokenAccountNotFound, account)
	}
	if acc.allowance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: allowance %s, requested %s", errs.ErrInsufficientAllowance, acc.allowance, amount)
	}
	if acc.balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: balance %s, requested %s", errs.ErrInsufficientTokenBalance, acc.balance, amount)
	}

	vault := l.account(l.vault, true)
	acc.allowance = new(big.Int).Sub(acc.allowance, amount)
	acc.balance = new(big.Int).Sub(acc.balance, amount)
	vault.balance = new(big.Int).Add(vault.balance, amount)
	return nil
}

// TransferOut moves amount from the vault back to account
func (l *TokenLedger) TransferOut(ctx context.Context, account string, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	vault := l.account(l.vault, true)
	if vault.balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: vault holds %s, requested %s", errs.ErrInsufficientTokenBalance, vault.balance, amount)
	}

	acc := l.account(account, true)
	vault.balance = new(big.Int).Sub(vault.balance, amount)
	acc.balance = new(big.Int).Add(acc.balance, amount)
	return nil
}

// BalanceOf returns the balance of account, zero when unknown
func (l *TokenLedger) BalanceOf(_ context.Context, account string) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if acc := l.account(account, false); acc != nil {
		return new(big.Int).Set(acc.balance), nil
	}
	return new(big.Int), nil
}

// Allowance returns how much the escrow may pull from account
func (l *TokenLedger) Allowance(_ context.Context, account string) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if acc := l.account(account, false); acc != nil {
		return new(big.Int).Set(acc.allowance), nil
	}
	return new(big.Int), nil
}

// Approve sets the escrow allowance of account
func (l *TokenLedger) Approve(ctx context.Context, account string, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("%w: allowance cannot be negative", errs.ErrInvalidAmount)
	}
	if err := entity.ValidateAccount(account); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.account(account, true).allowance = new(big.Int).Set(amount)
	return nil
}

// Mint credits amount to account
func (l *TokenLedger) Mint(ctx context.Context, account string, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: mint amount must be positive", errs.ErrInvalidAmount)
	}
	if err := entity.ValidateAccount(account); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	acc := l.account(account, true)
	acc.balance = new(big.Int).Add(acc.balance, amount)
	return nil
}
