package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_history_app/internal/core/ports/repositories"
)

// Display metadata for currencies this deployment commonly serves. Codes
// outside the map are seeded with the code as their name.
var currencyMetadata = map[string]struct {
	Symbol string
	Name   string
}{
	"GBP": {Symbol: "£", Name: "British Pound"},
	"AED": {Symbol: "د.إ", Name: "UAE Dirham"},
	"INR": {Symbol: "₹", Name: "Indian Rupee"},
	"USD": {Symbol: "$", Name: "US Dollar"},
	"EUR": {Symbol: "€", Name: "Euro"},
}

// CurrencyService provides read access to supported currencies.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	logger       *slog.Logger
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, logger *slog.Logger) *CurrencyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CurrencyService{currencyRepo: currencyRepo, logger: logger}
}

// GetCurrencyByCode retrieves a currency by its 3-letter code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all supported currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// EnsureCurrencies upserts the configured currency codes so the table always
// reflects configuration after startup.
func (s *CurrencyService) EnsureCurrencies(ctx context.Context, codes []string) error {
	now := time.Now().UTC()
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}

		meta, ok := currencyMetadata[code]
		if !ok {
			meta.Name = code
		}

		currency := domain.Currency{
			CurrencyCode: code,
			Symbol:       meta.Symbol,
			Name:         meta.Name,
			CreatedAt:    now,
		}
		if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", code, err)
		}
		s.logger.Debug("Seeded currency", slog.String("code", code))
	}
	return nil
}
