package model

import (
	"time"
)

// AccountLock is a cross-process mutex row for one account
type AccountLock struct {
	Account   string    `gorm:"primaryKey;size:128"`
	Owner     string    `gorm:"not null;size:64"` // Holder token, only the owner may release
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AccountLock
func (AccountLock) TableName() string {
	return "account_locks"
}
