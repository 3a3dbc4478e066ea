package models

import "time"

// Category is a shared credit/debit classification for transactions.
// If IsCredit is true, transactions in this category add to a balance;
// otherwise they subtract from it.
type Category struct {
	UniqueID  int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:64;not null;uniqueIndex:idx_categories_name_credit"`
	IsCredit  bool   `gorm:"uniqueIndex:idx_categories_name_credit"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
