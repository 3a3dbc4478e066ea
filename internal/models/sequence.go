package models

// Entity type names used as sequence keys by the id allocator.
const (
	TypeBalance     = "balances"
	TypeTransaction = "transactions"
	TypeCategory    = "categories"
)

// Sequence is a durable per-entity-type id counter. Next holds the last
// issued id; deleted entities' ids are never handed out again.
type Sequence struct {
	Name string `gorm:"primaryKey;size:32"`
	Next int64  `gorm:"not null"`
}
