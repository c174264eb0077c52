package mapping

import (
	"github.com/SscSPs/forex_history_app/internal/core/domain"
	"github.com/SscSPs/forex_history_app/internal/models"
)

// ToModelExchangeRate converts a domain record to its database model.
func ToModelExchangeRate(r domain.ExchangeRateRecord) models.ExchangeRate {
	return models.ExchangeRate{
		CurrencyPair: r.CurrencyPair,
		Date:         r.Date,
		OpenRate:     r.OpenRate,
		HighRate:     r.HighRate,
		LowRate:      r.LowRate,
		CloseRate:    r.CloseRate,
		AdjClose:     r.AdjClose,
		Volume:       r.Volume,
		CreatedAt:    r.CreatedAt,
	}
}

// ToDomainExchangeRate converts a database model to its domain record.
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRateRecord {
	return domain.ExchangeRateRecord{
		CurrencyPair: m.CurrencyPair,
		Date:         m.Date,
		OpenRate:     m.OpenRate,
		HighRate:     m.HighRate,
		LowRate:      m.LowRate,
		CloseRate:    m.CloseRate,
		AdjClose:     m.AdjClose,
		Volume:       m.Volume,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainCurrency converts a database currency row to its domain form.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
	}
}
