package domain

import (
	"strings"
	"time"
)

// FormatPair builds the source-formatted pair identifier from two currency
// codes, e.g. ("GBP", "INR") -> "GBPINR=X".
func FormatPair(from, to string) string {
	return strings.ToUpper(from) + strings.ToUpper(to) + "=X"
}

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string    `json:"currencyCode"` // Primary Key (e.g., "GBP")
	Symbol       string    `json:"symbol"`       // e.g., "£"
	Name         string    `json:"name"`         // e.g., "British Pound"
	CreatedAt    time.Time `json:"createdAt"`
}
