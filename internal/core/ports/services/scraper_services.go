package services

import (
	"context"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
	"github.com/SscSPs/forex_history_app/internal/dto"
)

// ScraperSvcFacade drives the fetch-parse-save pipeline for currency pair
// history. Pairs are source-formatted identifiers; ranges are epoch seconds.
type ScraperSvcFacade interface {
	// SyncPair plans the range into windows, runs each window through the
	// pipeline on a bounded worker pool and reports an outcome per supported
	// period. It fails only when the range itself is invalid; window-level
	// failures degrade the summary instead.
	SyncPair(ctx context.Context, pair string, fromEpoch, toEpoch int64) (dto.PairSyncResult, error)

	// SyncPairs runs SyncPair for every pair on a bounded outer pool and
	// merges the summaries. Always returns an entry per pair.
	SyncPairs(ctx context.Context, pairs []string, fromEpoch, toEpoch int64) dto.SyncResults

	// FetchAndParse retrieves and parses records for a range without
	// persisting them; used for on-demand retrieval outside the sync path.
	FetchAndParse(ctx context.Context, pair string, fromEpoch, toEpoch int64) ([]domain.ExchangeRateRecord, error)

	// FetchHistory returns the aggregated raw content across all windows of
	// the range, for downstream reuse.
	FetchHistory(ctx context.Context, pair string, fromEpoch, toEpoch int64) (string, error)

	// SaveRates is the direct persistence entry point.
	SaveRates(ctx context.Context, rates []domain.ExchangeRateRecord) error
}
