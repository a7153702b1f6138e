package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/usecase"
	"github.com/finlight/pocketledger/internal/usecase/mocks"
)

func TestSourceUseCase_CreateSource(t *testing.T) {
	t.Run("creates source with seed balance", func(t *testing.T) {
		uc := usecase.NewSourceUseCase(mocks.NewMockSourceRepository(), mocks.NewMockIDGenerator())

		source, err := uc.CreateSource(context.Background(), usecase.CreateSourceInput{
			Name:    "Savings",
			Kind:    domain.SourceKindBank,
			Balance: decimal.RequireFromString("1500.25"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if source.ID == "" {
			t.Error("expected an id to be assigned")
		}

		if !source.Balance.Equal(source.SeedBalance) {
			t.Errorf("expected balance %s to equal seed balance %s", source.Balance, source.SeedBalance)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := usecase.NewSourceUseCase(mocks.NewMockSourceRepository(), mocks.NewMockIDGenerator())

		_, err := uc.CreateSource(context.Background(), usecase.CreateSourceInput{
			Name: "  ",
			Kind: domain.SourceKindCash,
		})
		if !errors.Is(err, domain.ErrNameRequired) {
			t.Errorf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		uc := usecase.NewSourceUseCase(mocks.NewMockSourceRepository(), mocks.NewMockIDGenerator())

		_, err := uc.CreateSource(context.Background(), usecase.CreateSourceInput{
			Name: "Vault",
			Kind: "CRYPTO",
		})
		if !errors.Is(err, domain.ErrInvalidKind) {
			t.Errorf("expected ErrInvalidKind, got %v", err)
		}
	})
}

func TestSourceUseCase_SeedDefaults(t *testing.T) {
	t.Run("seeds an empty store", func(t *testing.T) {
		sourceRepo := mocks.NewMockSourceRepository()
		uc := usecase.NewSourceUseCase(sourceRepo, mocks.NewMockIDGenerator())

		seeded, err := uc.SeedDefaults(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !seeded {
			t.Error("expected seeding to happen")
		}

		sources, err := sourceRepo.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(sources) != 3 {
			t.Fatalf("expected 3 default sources, got %d", len(sources))
		}

		total := decimal.Zero
		for _, s := range sources {
			total = total.Add(s.Balance)
		}

		expected := decimal.RequireFromString("2043.09")
		if !total.Equal(expected) {
			t.Errorf("expected seeded total %s, got %s", expected, total)
		}
	})

	t.Run("no-op when sources exist", func(t *testing.T) {
		sourceRepo := mocks.NewMockSourceRepository()
		uc := usecase.NewSourceUseCase(sourceRepo, mocks.NewMockIDGenerator())

		if err := sourceRepo.Create(context.Background(), &domain.Source{ID: "src-1", Name: "Cash"}); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		seeded, err := uc.SeedDefaults(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if seeded {
			t.Error("expected seeding to be skipped")
		}

		count, _ := sourceRepo.Count(context.Background())
		if count != 1 {
			t.Errorf("expected 1 source, got %d", count)
		}
	})
}
