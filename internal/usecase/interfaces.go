package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/domain"
)

// SourceRepository defines data access for money sources.
type SourceRepository interface {
	Create(ctx context.Context, source *domain.Source) error
	GetByID(ctx context.Context, id string) (*domain.Source, error)
	List(ctx context.Context) ([]*domain.Source, error)
	// AdjustBalance applies a signed delta to a source's balance. It is the
	// only writer of the balance column and must run inside a transaction
	// paired with a matching ledger row.
	AdjustBalance(ctx context.Context, tx Transaction, id string, delta decimal.Decimal, updatedAt time.Time) error
	Count(ctx context.Context) (int64, error)
}

// TransactionRepository defines data access for the transaction log.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	ListHistory(ctx context.Context, limit, offset int) ([]*domain.HistoryEntry, error)
	Count(ctx context.Context) (int64, error)
}

// ReceivableRepository defines data access for receivables.
type ReceivableRepository interface {
	Create(ctx context.Context, tx Transaction, receivable *domain.Receivable) error
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Receivable, error)
	MarkSettled(ctx context.Context, tx Transaction, id string, settledAt time.Time) error
	ListOpen(ctx context.Context) ([]*domain.Receivable, error)
}

// LedgerRepository defines ledger-wide read operations.
type LedgerRepository interface {
	// ReconcileSources returns, for every source, the recorded balance and
	// the balance computed as seed balance plus signed sum of transactions.
	ReconcileSources(ctx context.Context) ([]*SourceReconciliation, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation that failed transiently. The operation still
// resolves to a single final result for the caller.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
