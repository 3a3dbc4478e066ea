package models

import "time"

// Balance is a tracked account: a base amount plus the transactions it owns.
// Amounts are stored in minor currency units (e.g. cents) to avoid
// floating-point error.
type Balance struct {
	UniqueID     int64         `gorm:"primaryKey"`
	Name         string        `gorm:"size:64;not null"`
	BaseAmount   int64         `gorm:"not null"` // immutable after creation
	YellowLimit  int64         `gorm:"not null"`
	RedLimit     int64         `gorm:"not null"`
	Transactions []Transaction `gorm:"foreignKey:BalanceID;references:UniqueID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
