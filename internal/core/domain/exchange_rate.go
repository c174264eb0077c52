package domain

import "time"

// DateFormat is the normalized date layout used for stored rates.
const DateFormat = "2006-01-02"

// ExchangeRateRecord holds one calendar day's quote for one currency pair,
// as scraped from the upstream source.
type ExchangeRateRecord struct {
	CurrencyPair string    `json:"currencyPair"` // Source-formatted, e.g. "GBPINR=X"
	Date         string    `json:"date"`         // Normalized to DateFormat, no time component
	OpenRate     float64   `json:"openRate"`
	HighRate     float64   `json:"highRate"`
	LowRate      float64   `json:"lowRate"`
	CloseRate    float64   `json:"closeRate"`
	AdjClose     float64   `json:"adjClose"`
	Volume       int64     `json:"volume"` // 0 when the source reports no volume
	CreatedAt    time.Time `json:"createdAt"`
}
