package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/usecase"
)

// SourceResponse represents a money source in API responses.
type SourceResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SourceFromDomain converts a domain source to a response.
func SourceFromDomain(s *domain.Source) *SourceResponse {
	return &SourceResponse{
		ID:        s.ID,
		Name:      s.Name,
		Kind:      string(s.Kind),
		Balance:   s.Balance,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SourcesFromDomain converts domain sources to responses.
func SourcesFromDomain(sources []*domain.Source) []*SourceResponse {
	result := make([]*SourceResponse, len(sources))
	for i, s := range sources {
		result[i] = SourceFromDomain(s)
	}
	return result
}

// ListSourcesResponse holds all sources and their combined balance.
type ListSourcesResponse struct {
	Sources []*SourceResponse `json:"sources"`
	Total   decimal.Decimal   `json:"total"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction"`
	Category  string          `json:"category"`
	Note      string          `json:"note,omitempty"`
	SourceID  *string         `json:"source_id"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:        t.ID,
		Amount:    t.Amount,
		Direction: string(t.Direction),
		Category:  t.Category,
		Note:      t.Note,
		SourceID:  t.SourceID,
		CreatedAt: t.CreatedAt,
	}
}

// HistoryEntryResponse is a transaction enriched with its source name.
type HistoryEntryResponse struct {
	TransactionResponse

	SourceName string `json:"source_name"`
}

// HistoryEntryFromDomain converts a domain history entry to a response.
func HistoryEntryFromDomain(e *domain.HistoryEntry) *HistoryEntryResponse {
	return &HistoryEntryResponse{
		TransactionResponse: *TransactionFromDomain(&e.Transaction),
		SourceName:          e.SourceName,
	}
}

// HistoryEntriesFromDomain converts domain history entries to responses.
func HistoryEntriesFromDomain(entries []*domain.HistoryEntry) []*HistoryEntryResponse {
	result := make([]*HistoryEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = HistoryEntryFromDomain(e)
	}
	return result
}

// PaginationResponse describes the page window of a listing.
type PaginationResponse struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalRecords int64 `json:"total_records"`
	TotalPages   int   `json:"total_pages"`
}

// HistoryResponse is one page of the transaction history.
type HistoryResponse struct {
	Data       []*HistoryEntryResponse `json:"data"`
	Pagination PaginationResponse      `json:"pagination"`
}

// HistoryFromUseCase converts a use case history page to a response.
func HistoryFromUseCase(page *usecase.HistoryPage) *HistoryResponse {
	return &HistoryResponse{
		Data: HistoryEntriesFromDomain(page.Entries),
		Pagination: PaginationResponse{
			Page:         page.Pagination.Page,
			PageSize:     page.Pagination.PageSize,
			TotalRecords: page.Pagination.TotalRecords,
			TotalPages:   page.Pagination.TotalPages,
		},
	}
}

// ReceivableResponse represents a receivable in API responses.
type ReceivableResponse struct {
	ID         string          `json:"id"`
	DebtorName string          `json:"debtor_name"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	Settled    bool            `json:"settled"`
	CreatedAt  time.Time       `json:"created_at"`
	SettledAt  *time.Time      `json:"settled_at,omitempty"`
}

// ReceivableFromDomain converts a domain receivable to a response.
func ReceivableFromDomain(r *domain.Receivable) *ReceivableResponse {
	return &ReceivableResponse{
		ID:         r.ID,
		DebtorName: r.DebtorName,
		Amount:     r.Amount,
		Reason:     r.Reason,
		Settled:    r.Settled,
		CreatedAt:  r.CreatedAt,
		SettledAt:  r.SettledAt,
	}
}

// ReceivablesFromDomain converts domain receivables to responses.
func ReceivablesFromDomain(receivables []*domain.Receivable) []*ReceivableResponse {
	result := make([]*ReceivableResponse, len(receivables))
	for i, r := range receivables {
		result[i] = ReceivableFromDomain(r)
	}
	return result
}

// SourceReconciliationResponse reports one source's reconciliation outcome.
type SourceReconciliationResponse struct {
	SourceID   string          `json:"source_id"`
	Name       string          `json:"name"`
	Recorded   decimal.Decimal `json:"recorded"`
	Computed   decimal.Decimal `json:"computed"`
	Difference decimal.Decimal `json:"difference"`
	Reconciled bool            `json:"reconciled"`
}

// ReconciliationResponse reports the ledger-wide reconciliation outcome.
type ReconciliationResponse struct {
	CheckedAt  time.Time                       `json:"checked_at"`
	Consistent bool                            `json:"consistent"`
	Sources    []*SourceReconciliationResponse `json:"sources"`
	Mismatches int                             `json:"mismatches"`
}

// ReconciliationFromUseCase converts a use case report to a response.
func ReconciliationFromUseCase(report *usecase.ReconciliationReport) *ReconciliationResponse {
	sources := make([]*SourceReconciliationResponse, len(report.Sources))
	for i, s := range report.Sources {
		sources[i] = &SourceReconciliationResponse{
			SourceID:   s.SourceID,
			Name:       s.Name,
			Recorded:   s.Recorded,
			Computed:   s.Computed,
			Difference: s.Difference(),
			Reconciled: s.Reconciled(),
		}
	}

	return &ReconciliationResponse{
		CheckedAt:  report.CheckedAt,
		Consistent: report.Consistent,
		Sources:    sources,
		Mismatches: report.Mismatches,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
