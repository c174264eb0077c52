package sources

import (
	"context"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
)

// RateSource retrieves raw rate-history content for one pair and window from
// the upstream provider. Implementations own retry behavior; a returned error
// means attempts are exhausted for that window.
type RateSource interface {
	Fetch(ctx context.Context, pair string, window domain.FetchWindow) (string, error)
}

// RateParser converts raw source content into validated exchange rate records.
// Pure: no I/O, no persistence side effects.
type RateParser interface {
	Parse(content, pair string) ([]domain.ExchangeRateRecord, error)
}
