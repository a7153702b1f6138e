package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/domain"
)

// LedgerUseCase implements the balance-mutating ledger operations. Each
// operation appends to the transaction log and adjusts a source balance in
// one database transaction, so the two can never drift apart. Transactions
// aborted by the database (deadlock, serialization failure) are re-run
// through the retrier; every attempt is a fresh transaction.
type LedgerUseCase struct {
	txManager       TransactionManager
	sourceRepo      SourceRepository
	transactionRepo TransactionRepository
	receivableRepo  ReceivableRepository
	idGen           IDGenerator
	cache           Cache
	retrier         Retrier
}

// NewLedgerUseCase creates a new LedgerUseCase. The retrier may be nil, in
// which case every operation gets a single attempt.
func NewLedgerUseCase(
	txManager TransactionManager,
	sourceRepo SourceRepository,
	transactionRepo TransactionRepository,
	receivableRepo ReceivableRepository,
	idGen IDGenerator,
	cache Cache,
	retrier Retrier,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:       txManager,
		sourceRepo:      sourceRepo,
		transactionRepo: transactionRepo,
		receivableRepo:  receivableRepo,
		idGen:           idGen,
		cache:           cache,
		retrier:         retrier,
	}
}

// RecordTransactionInput represents input for recording a transaction.
type RecordTransactionInput struct {
	Amount    decimal.Decimal
	Direction domain.Direction
	Category  string
	Note      string
	SourceID  string
}

// RecordTransaction appends a transaction row and applies its signed amount
// to the source balance. Both writes commit together or not at all.
func (uc *LedgerUseCase) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateDirection(input.Direction); err != nil {
		return nil, err
	}

	if input.SourceID == "" {
		return nil, domain.ErrSourceRequired
	}

	var txn *domain.Transaction

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		now := time.Now().UTC()
		sourceID := input.SourceID

		txn = &domain.Transaction{
			ID:        uc.idGen.Generate(),
			Amount:    input.Amount,
			Direction: input.Direction,
			Category:  input.Category,
			Note:      input.Note,
			SourceID:  &sourceID,
			CreatedAt: now,
		}

		if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
			return err
		}

		if err := uc.sourceRepo.AdjustBalance(ctx, tx, input.SourceID, txn.SignedAmount(), now); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateSources(ctx)

	return txn, nil
}

// LendMoneyInput represents input for lending money.
type LendMoneyInput struct {
	DebtorName string
	Amount     decimal.Decimal
	Reason     string
	SourceID   string
}

// LendMoney creates an open receivable, debits the source, and logs a
// matching expense transaction. All three effects commit together.
func (uc *LedgerUseCase) LendMoney(ctx context.Context, input LendMoneyInput) (*domain.Receivable, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateDebtorName(input.DebtorName); err != nil {
		return nil, err
	}

	if input.SourceID == "" {
		return nil, domain.ErrSourceRequired
	}

	var receivable *domain.Receivable

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		now := time.Now().UTC()
		sourceID := input.SourceID

		receivable = &domain.Receivable{
			ID:         uc.idGen.Generate(),
			DebtorName: input.DebtorName,
			Amount:     input.Amount,
			Reason:     input.Reason,
			Settled:    false,
			CreatedAt:  now,
		}

		if err := uc.receivableRepo.Create(ctx, tx, receivable); err != nil {
			return err
		}

		if err := uc.sourceRepo.AdjustBalance(ctx, tx, input.SourceID, input.Amount.Neg(), now); err != nil {
			return err
		}

		txn := &domain.Transaction{
			ID:        uc.idGen.Generate(),
			Amount:    input.Amount,
			Direction: domain.DirectionExpense,
			Category:  CategoryLending,
			Note:      fmt.Sprintf("Lent to %s", input.DebtorName),
			SourceID:  &sourceID,
			CreatedAt: now,
		}

		if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateSources(ctx)

	return receivable, nil
}

// SettleDebtInput represents input for settling a receivable.
type SettleDebtInput struct {
	ReceivableID string
	SourceID     string
}

// SettleDebt marks a receivable settled, credits the source with its amount,
// and logs a matching income transaction. Settling an already settled
// receivable is rejected, so the credit happens exactly once.
func (uc *LedgerUseCase) SettleDebt(ctx context.Context, input SettleDebtInput) (*domain.Receivable, error) {
	if input.SourceID == "" {
		return nil, domain.ErrSourceRequired
	}

	var (
		receivable *domain.Receivable
		settledAt  time.Time
	)

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		receivable, err = uc.receivableRepo.GetByIDForUpdate(ctx, tx, input.ReceivableID)
		if err != nil {
			return err
		}

		if receivable.Settled {
			return domain.ErrAlreadySettled
		}

		now := time.Now().UTC()
		sourceID := input.SourceID

		if err := uc.receivableRepo.MarkSettled(ctx, tx, receivable.ID, now); err != nil {
			return err
		}

		if err := uc.sourceRepo.AdjustBalance(ctx, tx, input.SourceID, receivable.Amount, now); err != nil {
			return err
		}

		txn := &domain.Transaction{
			ID:        uc.idGen.Generate(),
			Amount:    receivable.Amount,
			Direction: domain.DirectionIncome,
			Category:  CategoryDebtRepayment,
			Note:      fmt.Sprintf("Settled: %s", receivable.DebtorName),
			SourceID:  &sourceID,
			CreatedAt: now,
		}

		if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		settledAt = now

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateSources(ctx)

	receivable.Settled = true
	receivable.SettledAt = &settledAt

	return receivable, nil
}

// withRetry runs a transactional body through the retrier when one is
// configured. The body owns its transaction, so a retried attempt starts
// from a clean slate.
func (uc *LedgerUseCase) withRetry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}

	return uc.retrier.Retry(ctx, operation)
}

// invalidateSources drops the cached sources summary. Best effort: a stale
// entry expires on its own TTL.
func (uc *LedgerUseCase) invalidateSources(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, sourcesCacheKey)
	}
}
