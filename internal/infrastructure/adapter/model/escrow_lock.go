package model

import (
	"time"
)

// EscrowLock represents the database model for the escrow lock of an account
type EscrowLock struct {
	Account        string     `gorm:"primaryKey;size:128"`
	Amount         string     `gorm:"type:numeric(78,0);not null;default:0"` // Base units
	UnlockTime     *time.Time // Null while the lock is empty
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
	OperationCount uint64     `gorm:"not null;default:0"`
}

// TableName specifies the table name for EscrowLock
func (EscrowLock) TableName() string {
	return "escrow_locks"
}
