package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receivable is money lent to a third party, outstanding until settled.
// Settling is a one-way transition: once settled it never reopens.
type Receivable struct {
	ID         string
	DebtorName string
	Amount     decimal.Decimal
	Reason     string
	Settled    bool
	CreatedAt  time.Time
	SettledAt  *time.Time
}
