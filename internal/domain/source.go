package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceKind identifies where a pool of money lives.
type SourceKind string

const (
	SourceKindCash SourceKind = "CASH"
	SourceKindBank SourceKind = "BANK"
)

// Valid reports whether the kind is one of the known values.
func (k SourceKind) Valid() bool {
	return k == SourceKindCash || k == SourceKindBank
}

// Source represents a pool of money with a running balance.
// Balance is only ever changed together with a matching transaction row,
// so at any point balance == seed balance + signed sum of its transactions.
type Source struct {
	ID          string
	Name        string
	Kind        SourceKind
	Balance     decimal.Decimal
	SeedBalance decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
