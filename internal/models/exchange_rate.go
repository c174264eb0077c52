package models

import "time"

// ExchangeRate is the database row for one day's quote of one currency pair.
// Uniqueness is enforced by the store on (currency_pair, date); created_at is
// set at first insert and never mutated on update.
type ExchangeRate struct {
	ID           int64     `json:"id"`
	CurrencyPair string    `json:"currencyPair"`
	Date         string    `json:"date"`
	OpenRate     float64   `json:"openRate"`
	HighRate     float64   `json:"highRate"`
	LowRate      float64   `json:"lowRate"`
	CloseRate    float64   `json:"closeRate"`
	AdjClose     float64   `json:"adjClose"`
	Volume       int64     `json:"volume"`
	CreatedAt    time.Time `json:"createdAt"`
}
