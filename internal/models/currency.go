package models

import "time"

// Currency is the database row for a supported currency.
type Currency struct {
	CurrencyCode string    `json:"currencyCode"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}
