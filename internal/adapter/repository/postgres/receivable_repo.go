package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/usecase"
)

// ReceivableRepository implements usecase.ReceivableRepository.
type ReceivableRepository struct {
	pool *pgxpool.Pool
}

// NewReceivableRepository creates a new ReceivableRepository.
func NewReceivableRepository(pool *pgxpool.Pool) *ReceivableRepository {
	return &ReceivableRepository{pool: pool}
}

// Create inserts a new receivable inside the given transaction.
func (r *ReceivableRepository) Create(ctx context.Context, tx usecase.Transaction, receivable *domain.Receivable) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO receivables (id, debtor_name, amount, reason, settled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := pgxTx.Exec(ctx, query,
		receivable.ID,
		receivable.DebtorName,
		decimalToNumeric(receivable.Amount),
		receivable.Reason,
		receivable.Settled,
		receivable.CreatedAt,
	)

	return err
}

// GetByIDForUpdate retrieves a receivable with a FOR UPDATE lock, so the
// settled check and the settle write cannot race another settle attempt.
func (r *ReceivableRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Receivable, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT id, debtor_name, amount, reason, settled, created_at, settled_at
		FROM receivables
		WHERE id = $1
		FOR UPDATE
	`

	receivable, err := scanReceivable(pgxTx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReceivableNotFound
		}

		return nil, err
	}

	return receivable, nil
}

// MarkSettled flips a receivable to settled. One-way: there is no reverse
// operation.
func (r *ReceivableRepository) MarkSettled(ctx context.Context, tx usecase.Transaction, id string, settledAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE receivables
		SET settled = TRUE, settled_at = $2
		WHERE id = $1
	`

	tag, err := pgxTx.Exec(ctx, query, id, settledAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrReceivableNotFound
	}

	return nil
}

// ListOpen retrieves unsettled receivables, newest first.
func (r *ReceivableRepository) ListOpen(ctx context.Context) ([]*domain.Receivable, error) {
	query := `
		SELECT id, debtor_name, amount, reason, settled, created_at, settled_at
		FROM receivables
		WHERE NOT settled
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receivables []*domain.Receivable
	for rows.Next() {
		receivable, err := scanReceivable(rows)
		if err != nil {
			return nil, err
		}

		receivables = append(receivables, receivable)
	}

	return receivables, rows.Err()
}

func scanReceivable(row pgx.Row) (*domain.Receivable, error) {
	var (
		receivable domain.Receivable
		amount     pgtype.Numeric
	)

	err := row.Scan(
		&receivable.ID,
		&receivable.DebtorName,
		&amount,
		&receivable.Reason,
		&receivable.Settled,
		&receivable.CreatedAt,
		&receivable.SettledAt,
	)
	if err != nil {
		return nil, err
	}

	receivable.Amount = numericToDecimal(amount)

	return &receivable, nil
}
