package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/usecase"
	"github.com/finlight/pocketledger/internal/usecase/mocks"
)

func TestReconciliationUseCase_CheckAll(t *testing.T) {
	t.Run("consistent ledger", func(t *testing.T) {
		ledgerRepo := mocks.NewMockLedgerRepository()
		ledgerRepo.Results = []*usecase.SourceReconciliation{
			{SourceID: "src-1", Name: "Cash", Recorded: decimal.NewFromInt(700), Computed: decimal.NewFromInt(700)},
			{SourceID: "src-2", Name: "Bank", Recorded: decimal.RequireFromString("168.73"), Computed: decimal.RequireFromString("168.73")},
		}

		uc := usecase.NewReconciliationUseCase(ledgerRepo)

		report, err := uc.CheckAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !report.Consistent || report.Mismatches != 0 {
			t.Errorf("expected consistent report, got %+v", report)
		}

		if len(report.Sources) != 2 {
			t.Errorf("expected 2 sources in report, got %d", len(report.Sources))
		}
	})

	t.Run("detects drift", func(t *testing.T) {
		ledgerRepo := mocks.NewMockLedgerRepository()
		ledgerRepo.Results = []*usecase.SourceReconciliation{
			{SourceID: "src-1", Name: "Cash", Recorded: decimal.NewFromInt(700), Computed: decimal.NewFromInt(650)},
		}

		uc := usecase.NewReconciliationUseCase(ledgerRepo)

		report, err := uc.CheckAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if report.Consistent || report.Mismatches != 1 {
			t.Errorf("expected 1 mismatch, got %+v", report)
		}

		diff := report.Sources[0].Difference()
		if !diff.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected difference 50, got %s", diff)
		}
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		ledgerRepo := mocks.NewMockLedgerRepository()
		repoErr := errors.New("query failed")
		ledgerRepo.ReconcileSourcesFunc = func(ctx context.Context) ([]*usecase.SourceReconciliation, error) {
			return nil, repoErr
		}

		uc := usecase.NewReconciliationUseCase(ledgerRepo)

		if _, err := uc.CheckAll(context.Background()); !errors.Is(err, repoErr) {
			t.Errorf("expected repository error, got %v", err)
		}
	})
}
