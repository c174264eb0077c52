package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/forex_history_app/internal/apperrors"
	"github.com/SscSPs/forex_history_app/internal/core/domain"
	"github.com/SscSPs/forex_history_app/internal/models"
	"github.com/SscSPs/forex_history_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the ports.ExchangeRateRepositoryFacade
// interface using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveRates upserts the batch keyed on (currency_pair, date) within a single
// transaction: either every record commits or none do. An existing row has all
// non-key fields overwritten (last write wins) while created_at keeps its
// first-insert value. Concurrent saves touching overlapping keys serialize on
// Postgres row locks; callers never lock externally.
func (r *PgxExchangeRateRepository) SaveRates(ctx context.Context, rates []domain.ExchangeRateRecord) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO exchange_rates (
			currency_pair, date, open_rate, high_rate, low_rate,
			close_rate, adj_close, volume, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (currency_pair, date) DO UPDATE SET
			open_rate = EXCLUDED.open_rate,
			high_rate = EXCLUDED.high_rate,
			low_rate = EXCLUDED.low_rate,
			close_rate = EXCLUDED.close_rate,
			adj_close = EXCLUDED.adj_close,
			volume = EXCLUDED.volume;
	`

	batch := &pgx.Batch{}
	now := time.Now().UTC()
	for _, rate := range rates {
		model := mapping.ToModelExchangeRate(rate)
		if model.CreatedAt.IsZero() {
			model.CreatedAt = now
		}
		batch.Queue(query,
			model.CurrencyPair, model.Date, model.OpenRate, model.HighRate,
			model.LowRate, model.CloseRate, model.AdjClose, model.Volume,
			model.CreatedAt,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		_ = r.Rollback(ctx, tx)
		return &apperrors.StoreError{Err: err}
	}

	return r.Commit(ctx, tx)
}

// ListRatesByPairAndRange retrieves rates for a pair between two normalized
// dates inclusive, oldest first.
func (r *PgxExchangeRateRepository) ListRatesByPairAndRange(ctx context.Context, pair, fromDate, toDate string) ([]domain.ExchangeRateRecord, error) {
	query := `
		SELECT id, currency_pair, date, open_rate, high_rate, low_rate,
		       close_rate, adj_close, volume, created_at
		FROM exchange_rates
		WHERE currency_pair = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC;
	`

	rows, err := r.Pool.Query(ctx, query, pair, fromDate, toDate)
	if err != nil {
		return nil, &apperrors.StoreError{Err: err}
	}
	defer rows.Close()

	var records []domain.ExchangeRateRecord
	for rows.Next() {
		model, err := scanExchangeRate(rows)
		if err != nil {
			return nil, &apperrors.StoreError{Err: err}
		}
		records = append(records, mapping.ToDomainExchangeRate(model))
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.StoreError{Err: err}
	}
	return records, nil
}

// FindLatestRate retrieves the most recent stored rate for a pair.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, pair string) (*domain.ExchangeRateRecord, error) {
	query := `
		SELECT id, currency_pair, date, open_rate, high_rate, low_rate,
		       close_rate, adj_close, volume, created_at
		FROM exchange_rates
		WHERE currency_pair = $1
		ORDER BY date DESC
		LIMIT 1;
	`

	row := r.Pool.QueryRow(ctx, query, pair)
	model, err := scanExchangeRate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, &apperrors.StoreError{Err: err}
	}

	record := mapping.ToDomainExchangeRate(model)
	return &record, nil
}

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ID, &m.CurrencyPair, &m.Date, &m.OpenRate, &m.HighRate,
		&m.LowRate, &m.CloseRate, &m.AdjClose, &m.Volume, &m.CreatedAt,
	)
	return m, err
}
