package usecase

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/domain"
)

// QueryUseCase serves the read-only views: sources with their combined
// total, the paginated transaction history, and open receivables.
type QueryUseCase struct {
	sourceRepo      SourceRepository
	transactionRepo TransactionRepository
	receivableRepo  ReceivableRepository
	cache           Cache
}

// NewQueryUseCase creates a new QueryUseCase.
func NewQueryUseCase(
	sourceRepo SourceRepository,
	transactionRepo TransactionRepository,
	receivableRepo ReceivableRepository,
	cache Cache,
) *QueryUseCase {
	return &QueryUseCase{
		sourceRepo:      sourceRepo,
		transactionRepo: transactionRepo,
		receivableRepo:  receivableRepo,
		cache:           cache,
	}
}

// SourcesSummary holds all sources and the sum of their balances.
type SourcesSummary struct {
	Sources []*domain.Source
	Total   decimal.Decimal
}

// ListSources returns all sources and their combined balance. The summary is
// cached briefly; every ledger operation invalidates it.
func (uc *QueryUseCase) ListSources(ctx context.Context) (*SourcesSummary, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, sourcesCacheKey); err == nil && len(raw) > 0 {
			var cached SourcesSummary
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	sources, err := uc.sourceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, s := range sources {
		total = total.Add(s.Balance)
	}

	summary := &SourcesSummary{Sources: sources, Total: total}

	if uc.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			_ = uc.cache.Set(ctx, sourcesCacheKey, raw, sourcesCacheTTL)
		}
	}

	return summary, nil
}

// ListHistoryInput represents pagination input for the transaction history.
type ListHistoryInput struct {
	Page     int
	PageSize int
}

// Pagination describes the page window of a history listing.
type Pagination struct {
	Page         int
	PageSize     int
	TotalRecords int64
	TotalPages   int
}

// HistoryPage is one page of the transaction history.
type HistoryPage struct {
	Entries    []*domain.HistoryEntry
	Pagination Pagination
}

// ListHistory returns transactions newest first, enriched with source names.
// Absent or invalid page parameters fall back to page 1 with 10 rows.
func (uc *QueryUseCase) ListHistory(ctx context.Context, input ListHistoryInput) (*HistoryPage, error) {
	page, pageSize := domain.NormalizePagination(input.Page, input.PageSize)
	offset := (page - 1) * pageSize

	entries, err := uc.transactionRepo.ListHistory(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}

	total, err := uc.transactionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &HistoryPage{
		Entries: entries,
		Pagination: Pagination{
			Page:         page,
			PageSize:     pageSize,
			TotalRecords: total,
			TotalPages:   totalPages,
		},
	}, nil
}

// ListOpenReceivables returns unsettled receivables, newest first.
func (uc *QueryUseCase) ListOpenReceivables(ctx context.Context) ([]*domain.Receivable, error) {
	return uc.receivableRepo.ListOpen(ctx)
}
