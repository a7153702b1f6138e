package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether a transaction moves money out of or into a source.
type Direction string

const (
	DirectionExpense Direction = "EXPENSE"
	DirectionIncome  Direction = "INCOME"
)

// Valid reports whether the direction is one of the known values.
func (d Direction) Valid() bool {
	return d == DirectionExpense || d == DirectionIncome
}

// Transaction is an immutable record of money movement. Rows are only ever
// inserted, never updated or deleted.
type Transaction struct {
	ID        string
	Amount    decimal.Decimal
	Direction Direction
	Category  string
	Note      string
	SourceID  *string
	CreatedAt time.Time
}

// SignedAmount returns the amount with the sign implied by the direction:
// negative for expenses, positive for income.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}

// HistoryEntry is a transaction enriched with the name of its source for
// read views. SourceName is "Unknown" when the source reference is absent
// or no longer resolves.
type HistoryEntry struct {
	Transaction

	SourceName string
}
