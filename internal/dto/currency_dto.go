package dto

import "github.com/SscSPs/forex_history_app/internal/core/domain"

// CurrencyResponse represents a supported currency in API responses.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ToCurrencyResponse maps a domain currency to its response DTO.
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
	}
}

// ListCurrenciesResponse wraps the currency list payload.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}
