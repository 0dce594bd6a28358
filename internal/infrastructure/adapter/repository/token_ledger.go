package repository

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/token"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenLedger implements token.Ledger on the token_accounts table.
// Every transfer runs in its own transaction on the root connection so it
// never joins an escrow unit of work.
type TokenLedger struct {
	db              *gorm.DB
	vault           string
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ token.Ledger = (*TokenLedger)(nil)

// NewTokenLedger creates a new TokenLedger whose escrowed tokens sit in vault
func NewTokenLedger(db *gorm.DB, vault string, timeProvider coreport.TimeProvider, logger coreport.Logger) *TokenLedger {
	return &TokenLedger{
		db:              db,
		vault:           vault,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

type tokenRow struct {
	model   model.TokenAccount
	balance *big.Int
	allow   *big.Int
	exists  bool
}

// lockAccounts reads and row-locks accounts in sorted order to avoid deadlocks
func (l *TokenLedger) lockAccounts(tx *gorm.DB, names ...string) (map[string]*tokenRow, error) {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	rows := make(map[string]*tokenRow, len(sorted))
	for _, name := range sorted {
		if _, seen := rows[name]; seen {
			continue
		}
		var m model.TokenAccount
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account = ?", name).Limit(1).Find(&m)
		if result.Error != nil {
			return nil, result.Error
		}

		row := &tokenRow{model: m, exists: result.RowsAffected > 0, balance: new(big.Int), allow: new(big.Int)}
		if row.exists {
			var err error
			if row.balance, err = parseStoredAmount("token_accounts.balance", m.Balance); err != nil {
				return nil, err
			}
			if row.allow, err = parseStoredAmount("token_accounts.allowance", m.Allowance); err != nil {
				return nil, err
			}
		} else {
			row.model.Account = name
		}
		rows[name] = row
	}
	return rows, nil
}

func (l *TokenLedger) store(tx *gorm.DB, row *tokenRow) error {
	now := l.timeProvider.Now()
	row.model.Balance = row.balance.String()
	row.model.Allowance = row.allow.String()
	row.model.UpdatedAt = now
	if !row.exists {
		row.model.CreatedAt = now
		return tx.Create(&row.model).Error
	}
	return tx.Model(&model.TokenAccount{}).
		Where("account = ?", row.model.Account).
		Updates(map[string]interface{}{
			"balance":    row.model.Balance,
			"allowance":  row.model.Allowance,
			"updated_at": row.model.UpdatedAt,
		}).Error
}

// mapError keeps domain errors and classifies the rest
func (l *TokenLedger) mapError(operation, account string, err error) error {
	var domain bool
	for _, target := range []error{
		errs.ErrInsufficientAllowance,
		errs.ErrInsufficientTokenBalance,
		errs.ErrTokenAccountNotFound,
		errs.ErrConstraintViolation,
	} {
		if errors.Is(err, target) {
			domain = true
			break
		}
	}
	if domain {
		l.logger.Warn(fmt.Sprintf("Token %s rejected", operation), map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return err
	}

	if l.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: token account %s", errs.ErrAccountLocked, account)
	}
	l.logger.Error(fmt.Sprintf("Database error during token %s", operation), map[string]any{
		"account": account,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// TransferIn moves amount from account to the vault, consuming allowance
func (l *TokenLedger) TransferIn(ctx context.Context, account string, amount *big.Int) error {
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := l.lockAccounts(tx, account, l.vault)
		if err != nil {
			return err
		}

		from, vault := rows[account], rows[l.vault]
		if !from.exists {
			return fmt.Errorf("%w: %s", errs.ErrTokenAccountNotFound, account)
		}
		if from.allow.Cmp(amount) < 0 {
			return fmt.Errorf("%w: allowance %s, requested %s", errs.ErrInsufficientAllowance, from.allow, amount)
		}
		if from.balance.Cmp(amount) < 0 {
			return fmt.Errorf("%w: balance %s, requested %s", errs.ErrInsufficientTokenBalance, from.balance, amount)
		}

		from.allow = new(big.Int).Sub(from.allow, amount)
		from.balance = new(big.Int).Sub(from.balance, amount)
		vault.balance = new(big.Int).Add(vault.balance, amount)

		if err := l.store(tx, from); err != nil {
			return err
		}
		return l.store(tx, vault)
	})
	if err != nil {
		return l.mapError("transfer in", account, err)
	}

	l.logger.Debug("Tokens transferred into escrow", map[string]any{
		"account": account,
		"amount":  amount.String(),
	})
	return nil
}

// TransferOut moves amount from the vault back to account
func (l *TokenLedger) TransferOut(ctx context.Context, account string, amount *big.Int) error {
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := l.lockAccounts(tx, account, l.vault)
		if err != nil {
			return err
		}

		to, vault := rows[account], rows[l.vault]
		if vault.balance.Cmp(amount) < 0 {
			return fmt.Errorf("%w: vault holds %s, requested %s", errs.ErrInsufficientTokenBalance, vault.balance, amount)
		}

		vault.balance = new(big.Int).Sub(vault.balance, amount)
		to.balance = new(big.Int).Add(to.balance, amount)

		if err := l.store(tx, vault); err != nil {
			return err
		}
		return l.store(tx, to)
	})
	if err != nil {
		return l.mapError("transfer out", account, err)
	}

	l.logger.Debug("Tokens transferred out of escrow", map[string]any{
		"account": account,
		"amount":  amount.String(),
	})
	return nil
}

func (l *TokenLedger) read(ctx context.Context, account string) (*tokenRow, error) {
	var m model.TokenAccount
	result := l.db.WithContext(ctx).Where("account = ?", account).Limit(1).Find(&m)
	if result.Error != nil {
		return nil, l.mapError("read", account, result.Error)
	}

	row := &tokenRow{model: m, exists: result.RowsAffected > 0, balance: new(big.Int), allow: new(big.Int)}
	if !row.exists {
		return row, nil
	}
	var err error
	if row.balance, err = parseStoredAmount("token_accounts.balance", m.Balance); err != nil {
		return nil, err
	}
	if row.allow, err = parseStoredAmount("token_accounts.allowance", m.Allowance); err != nil {
		return nil, err
	}
	return row, nil
}

// BalanceOf returns the balance of account, zero when unknown
func (l *TokenLedger) BalanceOf(ctx context.Context, account string) (*big.Int, error) {
	row, err := l.read(ctx, account)
	if err != nil {
		return nil, err
	}
	return row.balance, nil
}

// Allowance returns how much the escrow may pull from account
func (l *TokenLedger) Allowance(ctx context.Context, account string) (*big.Int, error) {
	row, err := l.read(ctx, account)
	if err != nil {
		return nil, err
	}
	return row.allow, nil
}

// Approve sets the escrow allowance of account
func (l *TokenLedger) Approve(ctx context.Context, account string, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("%w: allowance cannot be negative", errs.ErrInvalidAmount)
	}
	if err := entity.ValidateAccount(account); err != nil {
		return err
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := l.lockAccounts(tx, account)
		if err != nil {
			return err
		}
		row := rows[account]
		row.allow = new(big.Int).Set(amount)
		return l.store(tx, row)
	})
	if err != nil {
		return l.mapError("approve", account, err)
	}
	return nil
}

// Mint credits amount to account, creating the row when missing
func (l *TokenLedger) Mint(ctx context.Context, account string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: mint amount must be positive", errs.ErrInvalidAmount)
	}
	if err := entity.ValidateAccount(account); err != nil {
		return err
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := l.lockAccounts(tx, account)
		if err != nil {
			return err
		}
		row := rows[account]
		row.balance = new(big.Int).Add(row.balance, amount)
		return l.store(tx, row)
	})
	if err != nil {
		return l.mapError("mint", account, err)
	}
	return nil
}
