package domain

import "errors"

var (
	// Source errors
	ErrSourceNotFound = errors.New("source not found")
	ErrInvalidKind    = errors.New("kind must be CASH or BANK")
	ErrNameRequired   = errors.New("name is required")

	// Transaction errors
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidDirection = errors.New("direction must be EXPENSE or INCOME")
	ErrSourceRequired   = errors.New("source id is required")

	// Receivable errors
	ErrReceivableNotFound = errors.New("receivable not found")
	ErrAlreadySettled     = errors.New("receivable is already settled")
	ErrDebtorRequired     = errors.New("debtor name is required")
)
