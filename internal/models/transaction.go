package models

import "time"

// NoCheckNumber is the sentinel stored when a transaction has no check number.
const NoCheckNumber = -1

// Transaction is a single signed monetary movement against a Balance.
// Amount already carries its sign: positive for credit-category transactions,
// negative for debit-category ones. The sign is applied once, at creation.
type Transaction struct {
	UniqueID    int64     `gorm:"primaryKey"`
	BalanceID   int64     `gorm:"index;not null"`
	Name        string    `gorm:"size:64;not null"`
	Amount      int64     `gorm:"not null"`
	CategoryID  int64     `gorm:"index;not null"`
	Timestamp   time.Time `gorm:"index;not null"`
	CheckNumber int       `gorm:"default:-1"`
	Note        string    `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
