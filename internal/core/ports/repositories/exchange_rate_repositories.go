package repositories

import (
	"context"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for stored exchange rate data.
type ExchangeRateReader interface {
	// ListRatesByPairAndRange retrieves all rates for a pair with
	// fromDate <= date <= toDate (dates in domain.DateFormat), ascending.
	ListRatesByPairAndRange(ctx context.Context, pair, fromDate, toDate string) ([]domain.ExchangeRateRecord, error)

	// FindLatestRate retrieves the most recent stored rate for a pair.
	FindLatestRate(ctx context.Context, pair string) (*domain.ExchangeRateRecord, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
type ExchangeRateWriter interface {
	// SaveRates upserts the batch keyed on (currency_pair, date) inside one
	// transaction. Later saves for the same key replace every non-key field
	// except created_at. An empty batch is a no-op returning nil.
	SaveRates(ctx context.Context, rates []domain.ExchangeRateRecord) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository
// interfaces for clients that need full access.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
