package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Pagination defaults for history listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// ValidateAmount checks that an amount is a positive magnitude.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// ValidateDirection checks a transaction direction.
func ValidateDirection(direction Direction) error {
	if !direction.Valid() {
		return ErrInvalidDirection
	}

	return nil
}

// ValidateKind checks a source kind.
func ValidateKind(kind SourceKind) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}

	return nil
}

// ValidateDebtorName checks that a debtor name is present.
func ValidateDebtorName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrDebtorRequired
	}

	return nil
}

// NormalizePagination applies defaults for absent or invalid page parameters.
func NormalizePagination(page, pageSize int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}
