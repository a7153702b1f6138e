package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/usecase"
)

// CreateSourceRequest represents a request to create a money source.
type CreateSourceRequest struct {
	Name    string          `json:"name"`
	Kind    string          `json:"kind"`
	Balance decimal.Decimal `json:"balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSourceRequest) ToUseCaseInput() usecase.CreateSourceInput {
	return usecase.CreateSourceInput{
		Name:    r.Name,
		Kind:    domain.SourceKind(r.Kind),
		Balance: r.Balance,
	}
}

// RecordTransactionRequest represents a request to record a transaction.
type RecordTransactionRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction"`
	Category  string          `json:"category"`
	Note      string          `json:"note,omitempty"`
	SourceID  string          `json:"source_id"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordTransactionRequest) ToUseCaseInput() usecase.RecordTransactionInput {
	return usecase.RecordTransactionInput{
		Amount:    r.Amount,
		Direction: domain.Direction(r.Direction),
		Category:  r.Category,
		Note:      r.Note,
		SourceID:  r.SourceID,
	}
}

// LendMoneyRequest represents a request to lend money to someone.
type LendMoneyRequest struct {
	DebtorName string          `json:"debtor_name"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	SourceID   string          `json:"source_id"`
}

// ToUseCaseInput converts to use case input.
func (r *LendMoneyRequest) ToUseCaseInput() usecase.LendMoneyInput {
	return usecase.LendMoneyInput{
		DebtorName: r.DebtorName,
		Amount:     r.Amount,
		Reason:     r.Reason,
		SourceID:   r.SourceID,
	}
}

// SettleDebtRequest represents a request to settle a receivable.
type SettleDebtRequest struct {
	ReceivableID string `json:"receivable_id"`
	SourceID     string `json:"source_id"`
}

// ToUseCaseInput converts to use case input.
func (r *SettleDebtRequest) ToUseCaseInput() usecase.SettleDebtInput {
	return usecase.SettleDebtInput{
		ReceivableID: r.ReceivableID,
		SourceID:     r.SourceID,
	}
}
