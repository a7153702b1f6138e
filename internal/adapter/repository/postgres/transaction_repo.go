package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/usecase"
)

const pgErrForeignKeyViolation = "23503"

// TransactionRepository implements usecase.TransactionRepository. Rows are
// append-only: there is no update or delete.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create appends a transaction row inside the given database transaction.
// A dangling source reference surfaces as domain.ErrSourceNotFound.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO transactions (id, amount, direction, category, note, source_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := pgxTx.Exec(ctx, query,
		txn.ID,
		decimalToNumeric(txn.Amount),
		string(txn.Direction),
		txn.Category,
		txn.Note,
		txn.SourceID,
		txn.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
		return domain.ErrSourceNotFound
	}

	return err
}

// ListHistory retrieves transactions newest first, enriched with the name of
// the referenced source. Transactions whose source is absent or no longer
// resolves are labeled "Unknown" rather than dropped.
func (r *TransactionRepository) ListHistory(ctx context.Context, limit, offset int) ([]*domain.HistoryEntry, error) {
	query := `
		SELECT t.id, t.amount, t.direction, t.category, COALESCE(t.note, ''), t.source_id, t.created_at,
		       COALESCE(s.name, 'Unknown') AS source_name
		FROM transactions t
		LEFT JOIN sources s ON t.source_id = s.id
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.HistoryEntry
	for rows.Next() {
		var (
			entry     domain.HistoryEntry
			amount    pgtype.Numeric
			direction string
		)

		err := rows.Scan(
			&entry.ID,
			&amount,
			&direction,
			&entry.Category,
			&entry.Note,
			&entry.SourceID,
			&entry.CreatedAt,
			&entry.SourceName,
		)
		if err != nil {
			return nil, err
		}

		entry.Amount = numericToDecimal(amount)
		entry.Direction = domain.Direction(direction)

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// Count returns the total number of transactions.
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM transactions`).Scan(&count)

	return count, err
}
