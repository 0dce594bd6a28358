package model

import (
	"time"
)

// EscrowOperation represents the database model for journaled deposits and withdrawals
type EscrowOperation struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	OperationID  string     `gorm:"uniqueIndex;not null;size:255"`
	Account      string     `gorm:"not null;size:128;index"`
	Kind         string     `gorm:"not null;size:16"`
	Amount       string     `gorm:"type:numeric(78,0);not null"`
	UnlockTime   *time.Time // Deposits only
	Status       string     `gorm:"not null;size:16"`
	ResultAmount string     `gorm:"type:numeric(78,0)"`
	ResultUnlock *time.Time
	ErrorMessage string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	ProcessedAt  *time.Time
}

// TableName specifies the table name for EscrowOperation
func (EscrowOperation) TableName() string {
	return "escrow_operations"
}
