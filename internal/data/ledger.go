package data

import "github.com/bkromhout/balances/internal/models"

// SumAmounts adds up the signed amounts of a transaction list. Amounts
// already carry their credit/debit sign, so this never branches on category.
func SumAmounts(txns []models.Transaction) int64 {
	var sum int64
	for _, t := range txns {
		sum += t.Amount
	}
	return sum
}

// TotalOf computes a balance's total from its base amount and its preloaded
// transactions. Callers are responsible for passing a consistent snapshot;
// TotalOf does no locking or I/O.
func TotalOf(b *models.Balance) int64 {
	return b.BaseAmount + SumAmounts(b.Transactions)
}

// BalanceStatus is the color-coded health of a balance's total relative to
// its warning limits.
type BalanceStatus string

const (
	// StatusOK means the total is above the yellow limit.
	StatusOK BalanceStatus = "ok"
	// StatusWarn means the total is at or below the yellow limit but still
	// above the red limit.
	StatusWarn BalanceStatus = "warn"
	// StatusDanger means the total is at or below the red limit.
	StatusDanger BalanceStatus = "danger"
)

// StatusOf maps a total against a balance's warning limits.
func StatusOf(total, yellowLimit, redLimit int64) BalanceStatus {
	switch {
	case total > yellowLimit:
		return StatusOK
	case total > redLimit:
		return StatusWarn
	default:
		return StatusDanger
	}
}
