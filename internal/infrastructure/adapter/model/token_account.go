package model

import (
	"time"
)

// TokenAccount represents a balance in the reference token ledger
type TokenAccount struct {
	Account   string    `gorm:"primaryKey;size:128"`
	Balance   string    `gorm:"type:numeric(78,0);not null;default:0"`
	Allowance string    `gorm:"type:numeric(78,0);not null;default:0"` // What the escrow may pull
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for TokenAccount
func (TokenAccount) TableName() string {
	return "token_accounts"
}
