package services

import (
	"context"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
)

// CurrencySvcFacade provides read access to supported currencies plus the
// startup seeding hook.
type CurrencySvcFacade interface {
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// EnsureCurrencies upserts the configured supported currencies so the
	// table always reflects configuration after startup.
	EnsureCurrencies(ctx context.Context, codes []string) error
}
