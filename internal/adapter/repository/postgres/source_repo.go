package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/usecase"
)

// SourceRepository implements usecase.SourceRepository.
type SourceRepository struct {
	pool *pgxpool.Pool
}

// NewSourceRepository creates a new SourceRepository.
func NewSourceRepository(pool *pgxpool.Pool) *SourceRepository {
	return &SourceRepository{pool: pool}
}

// Create inserts a new source.
func (r *SourceRepository) Create(ctx context.Context, source *domain.Source) error {
	query := `
		INSERT INTO sources (id, name, kind, balance, seed_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		source.ID,
		source.Name,
		string(source.Kind),
		decimalToNumeric(source.Balance),
		decimalToNumeric(source.SeedBalance),
		source.CreatedAt,
		source.UpdatedAt,
	)

	return err
}

// GetByID retrieves a source by ID.
func (r *SourceRepository) GetByID(ctx context.Context, id string) (*domain.Source, error) {
	query := `
		SELECT id, name, kind, balance, seed_balance, created_at, updated_at
		FROM sources
		WHERE id = $1
	`

	source, err := scanSource(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSourceNotFound
		}

		return nil, err
	}

	return source, nil
}

// List retrieves all sources in creation order.
func (r *SourceRepository) List(ctx context.Context) ([]*domain.Source, error) {
	query := `
		SELECT id, name, kind, balance, seed_balance, created_at, updated_at
		FROM sources
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*domain.Source
	for rows.Next() {
		source, err := scanSource(rows)
		if err != nil {
			return nil, err
		}

		sources = append(sources, source)
	}

	return sources, rows.Err()
}

// AdjustBalance applies a signed delta to a source's balance inside the
// given transaction. Returns domain.ErrSourceNotFound for unknown ids.
// Balances may go negative: overdraft is not an error.
func (r *SourceRepository) AdjustBalance(ctx context.Context, tx usecase.Transaction, id string, delta decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE sources
		SET balance = balance + $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(delta), updatedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSourceNotFound
	}

	return nil
}

// Count returns the number of sources.
func (r *SourceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM sources`).Scan(&count)

	return count, err
}

func scanSource(row pgx.Row) (*domain.Source, error) {
	var (
		source      domain.Source
		kind        string
		balance     pgtype.Numeric
		seedBalance pgtype.Numeric
	)

	err := row.Scan(
		&source.ID,
		&source.Name,
		&kind,
		&balance,
		&seedBalance,
		&source.CreatedAt,
		&source.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	source.Kind = domain.SourceKind(kind)
	source.Balance = numericToDecimal(balance)
	source.SeedBalance = numericToDecimal(seedBalance)

	return &source, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
