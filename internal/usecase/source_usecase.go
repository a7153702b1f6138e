package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/domain"
)

// SourceUseCase handles source administration: creating money pools and
// seeding the defaults on an empty store.
type SourceUseCase struct {
	sourceRepo SourceRepository
	idGen      IDGenerator
}

// NewSourceUseCase creates a new SourceUseCase.
func NewSourceUseCase(sourceRepo SourceRepository, idGen IDGenerator) *SourceUseCase {
	return &SourceUseCase{
		sourceRepo: sourceRepo,
		idGen:      idGen,
	}
}

// CreateSourceInput represents input for creating a source.
type CreateSourceInput struct {
	Name    string
	Kind    domain.SourceKind
	Balance decimal.Decimal
}

// CreateSource creates a new source. The opening balance becomes both the
// current balance and the seed balance that reconciliation measures against.
func (uc *SourceUseCase) CreateSource(ctx context.Context, input CreateSourceInput) (*domain.Source, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrNameRequired
	}

	if err := domain.ValidateKind(input.Kind); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	source := &domain.Source{
		ID:          uc.idGen.Generate(),
		Name:        input.Name,
		Kind:        input.Kind,
		Balance:     input.Balance,
		SeedBalance: input.Balance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.sourceRepo.Create(ctx, source); err != nil {
		return nil, err
	}

	return source, nil
}

var defaultSources = []CreateSourceInput{
	{Name: "Cash in Wallet", Kind: domain.SourceKindCash, Balance: decimal.RequireFromString("800")},
	{Name: "BOI Bank", Kind: domain.SourceKindBank, Balance: decimal.RequireFromString("168.73")},
	{Name: "IPPB Bank", Kind: domain.SourceKindBank, Balance: decimal.RequireFromString("1074.36")},
}

// SeedDefaults populates the default sources on first run. It is a no-op
// when any source already exists. Returns whether seeding happened.
func (uc *SourceUseCase) SeedDefaults(ctx context.Context) (bool, error) {
	count, err := uc.sourceRepo.Count(ctx)
	if err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	for _, input := range defaultSources {
		if _, err := uc.CreateSource(ctx, input); err != nil {
			return false, err
		}
	}

	return true, nil
}
