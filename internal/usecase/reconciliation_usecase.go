package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationUseCase verifies that every source balance still equals its
// seed balance plus the signed sum of its transactions.
type ReconciliationUseCase struct {
	ledgerRepo LedgerRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(ledgerRepo LedgerRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// SourceReconciliation compares a source's recorded balance with the balance
// computed from its transaction log.
type SourceReconciliation struct {
	SourceID string
	Name     string
	Recorded decimal.Decimal
	Computed decimal.Decimal
}

// Reconciled reports whether the recorded and computed balances agree.
func (r *SourceReconciliation) Reconciled() bool {
	return r.Recorded.Equal(r.Computed)
}

// Difference returns recorded minus computed balance.
func (r *SourceReconciliation) Difference() decimal.Decimal {
	return r.Recorded.Sub(r.Computed)
}

// ReconciliationReport is the result of checking all sources.
type ReconciliationReport struct {
	CheckedAt  time.Time
	Consistent bool
	Sources    []*SourceReconciliation
	Mismatches int
}

// CheckAll reconciles every source against its transaction log.
func (uc *ReconciliationUseCase) CheckAll(ctx context.Context) (*ReconciliationReport, error) {
	results, err := uc.ledgerRepo.ReconcileSources(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		CheckedAt: time.Now().UTC(),
		Sources:   results,
	}

	for _, r := range results {
		if !r.Reconciled() {
			report.Mismatches++
		}
	}

	report.Consistent = report.Mismatches == 0

	return report, nil
}
