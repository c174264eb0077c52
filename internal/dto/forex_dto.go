package dto

import "github.com/shopspring/decimal"

// ForexDataRequest is the payload for querying stored forex history. Omitted
// fields get handler-side defaults.
type ForexDataRequest struct {
	From   string  `json:"from" binding:"omitempty,len=3"`
	To     string  `json:"to" binding:"omitempty,len=3"`
	Period string  `json:"period" binding:"omitempty"`
	Amount float64 `json:"amount" binding:"omitempty,gte=0"`
}

// RatePoint is one day's closing rate in a response series.
type RatePoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// ForexDataResponse carries the stored series plus conversion details.
type ForexDataResponse struct {
	Success         bool             `json:"success"`
	From            string           `json:"from"`
	To              string           `json:"to"`
	Period          string           `json:"period"`
	Data            []RatePoint      `json:"data"`
	CurrentRate     float64          `json:"current_rate"`
	ConvertedAmount *decimal.Decimal `json:"converted_amount,omitempty"`
}

// Sync outcome statuses reported per (pair, period).
const (
	SyncStatusSuccess = "success"
	SyncStatusError   = "error"
)

// PeriodOutcome is the sync result for one period of one pair: "success" with
// a record count, or "error" with a human-readable cause. Never both.
type PeriodOutcome struct {
	Status  string `json:"status"`
	Records *int   `json:"records,omitempty"`
	Message string `json:"message,omitempty"`
}

// PairSyncResult maps period label -> outcome for a single pair. Every
// supported period always has an entry.
type PairSyncResult map[string]PeriodOutcome

// SyncResults maps source-formatted pair -> per-period outcomes.
type SyncResults map[string]PairSyncResult

// SyncResponse is the payload returned by the sync endpoint.
type SyncResponse struct {
	Message string      `json:"message"`
	Results SyncResults `json:"results"`
}
