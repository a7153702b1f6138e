package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finlight/pocketledger/internal/usecase"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// ReconcileSources computes, for every source, the balance implied by its
// seed balance and transaction log, next to the recorded balance.
func (r *LedgerRepository) ReconcileSources(ctx context.Context) ([]*usecase.SourceReconciliation, error) {
	query := `
		SELECT s.id, s.name, s.balance,
		       s.seed_balance + COALESCE(SUM(
		           CASE WHEN t.direction = 'INCOME' THEN t.amount ELSE -t.amount END
		       ), 0) AS computed
		FROM sources s
		LEFT JOIN transactions t ON t.source_id = s.id
		GROUP BY s.id, s.name, s.balance, s.seed_balance, s.created_at
		ORDER BY s.created_at, s.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*usecase.SourceReconciliation
	for rows.Next() {
		var (
			result   usecase.SourceReconciliation
			recorded pgtype.Numeric
			computed pgtype.Numeric
		)

		if err := rows.Scan(&result.SourceID, &result.Name, &recorded, &computed); err != nil {
			return nil, err
		}

		result.Recorded = numericToDecimal(recorded)
		result.Computed = numericToDecimal(computed)

		results = append(results, &result)
	}

	return results, rows.Err()
}
