package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_history_app/internal/core/ports/repositories"
	"github.com/SscSPs/forex_history_app/internal/core/ports/sources"
	"github.com/SscSPs/forex_history_app/internal/dto"
	"github.com/SscSPs/forex_history_app/internal/utils/period"
)

const (
	defaultPairWorkers  = 2
	defaultChunkWorkers = 4
)

// ScraperService orchestrates the fetch-parse-save pipeline: it plans a
// requested range into windows, runs each window through the source, parser
// and store on a bounded worker pool, and aggregates outcomes in completion
// order. Aggregation is a plain union of records and additive counts, so the
// result does not depend on which window finishes first.
type ScraperService struct {
	source       sources.RateSource
	parser       sources.RateParser
	rateRepo     portsrepo.ExchangeRateWriter
	periods      []period.Period
	pairWorkers  int
	chunkWorkers int
	logger       *slog.Logger
	now          func() time.Time
}

// ScraperOption configures a ScraperService.
type ScraperOption func(*ScraperService)

// WithPairWorkers bounds how many pairs sync concurrently.
func WithPairWorkers(n int) ScraperOption {
	return func(s *ScraperService) {
		if n > 0 {
			s.pairWorkers = n
		}
	}
}

// WithChunkWorkers bounds how many windows of one pair fetch concurrently.
func WithChunkWorkers(n int) ScraperOption {
	return func(s *ScraperService) {
		if n > 0 {
			s.chunkWorkers = n
		}
	}
}

// WithScraperLogger sets the diagnostics recorder.
func WithScraperLogger(logger *slog.Logger) ScraperOption {
	return func(s *ScraperService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for period boundaries.
func WithClock(now func() time.Time) ScraperOption {
	return func(s *ScraperService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScraperService creates a new ScraperService. periods defines the
// per-pair summary buckets; any duration-backed period works.
func NewScraperService(
	source sources.RateSource,
	parser sources.RateParser,
	rateRepo portsrepo.ExchangeRateWriter,
	periods []period.Period,
	opts ...ScraperOption,
) *ScraperService {
	s := &ScraperService{
		source:       source,
		parser:       parser,
		rateRepo:     rateRepo,
		periods:      periods,
		pairWorkers:  defaultPairWorkers,
		chunkWorkers: defaultChunkWorkers,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SyncPair fetches, parses and persists history for one pair over
// [fromEpoch, toEpoch] and reports an outcome per supported period. Only an
// invalid range is fatal; a window's terminal failure degrades the summary
// without aborting its siblings.
func (s *ScraperService) SyncPair(ctx context.Context, pair string, fromEpoch, toEpoch int64) (dto.PairSyncResult, error) {
	windows, err := domain.PlanWindows(fromEpoch, toEpoch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Split request into chunks",
		slog.String("pair", pair),
		slog.Int("chunks", len(windows)),
	)

	results := s.runChunks(ctx, pair, windows)

	var records []domain.ExchangeRateRecord
	var failures []domain.ChunkResult
	for _, res := range results {
		if res.Status == domain.ChunkSaved {
			records = append(records, res.Records...)
		} else {
			failures = append(failures, res)
		}
	}

	s.logger.Info("Pair sync finished",
		slog.String("pair", pair),
		slog.Int("records", len(records)),
		slog.Int("failed_chunks", len(failures)),
	)

	return s.summarize(records, failures), nil
}

// SyncPairs runs SyncPair for each pair on a bounded outer worker pool and
// merges the per-pair summaries. Every requested pair gets an entry.
func (s *ScraperService) SyncPairs(ctx context.Context, pairs []string, fromEpoch, toEpoch int64) dto.SyncResults {
	results := make(dto.SyncResults, len(pairs))

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.pairWorkers)

	for _, pair := range pairs {
		wg.Add(1)
		go func(pair string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			summary, err := s.SyncPair(ctx, pair, fromEpoch, toEpoch)
			if err != nil {
				summary = s.errorSummary(err)
			}

			mu.Lock()
			results[pair] = summary
			mu.Unlock()
		}(pair)
	}
	wg.Wait()

	return results
}

// FetchAndParse retrieves and parses records over the range without
// persisting them.
func (s *ScraperService) FetchAndParse(ctx context.Context, pair string, fromEpoch, toEpoch int64) ([]domain.ExchangeRateRecord, error) {
	windows, err := domain.PlanWindows(fromEpoch, toEpoch)
	if err != nil {
		return nil, err
	}

	var records []domain.ExchangeRateRecord
	for _, window := range windows {
		raw, err := s.source.Fetch(ctx, pair, window)
		if err != nil {
			return nil, err
		}
		parsed, err := s.parser.Parse(raw, pair)
		if err != nil {
			return nil, err
		}
		records = append(records, parsed...)
	}
	return records, nil
}

// FetchHistory returns the raw content of every window in the range joined
// together, skipping failed windows. It errors only when no window succeeds.
func (s *ScraperService) FetchHistory(ctx context.Context, pair string, fromEpoch, toEpoch int64) (string, error) {
	windows, err := domain.PlanWindows(fromEpoch, toEpoch)
	if err != nil {
		return "", err
	}

	var parts []string
	var lastErr error
	for _, window := range windows {
		raw, err := s.source.Fetch(ctx, pair, window)
		if err != nil {
			lastErr = err
			s.logger.Warn("Skipping failed window in history fetch",
				slog.String("pair", pair),
				slog.String("window", window.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		parts = append(parts, raw)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no window could be fetched for %s: %w", pair, lastErr)
	}
	return strings.Join(parts, "\n"), nil
}

// SaveRates is the direct persistence entry point.
func (s *ScraperService) SaveRates(ctx context.Context, rates []domain.ExchangeRateRecord) error {
	return s.rateRepo.SaveRates(ctx, rates)
}

// runChunks fans windows out to a bounded worker pool and collects results as
// they complete, not in submission order.
func (s *ScraperService) runChunks(ctx context.Context, pair string, windows []domain.FetchWindow) []domain.ChunkResult {
	jobs := make(chan domain.FetchWindow)
	out := make(chan domain.ChunkResult)

	workers := min(s.chunkWorkers, len(windows))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for window := range jobs {
				out <- s.processChunk(ctx, pair, window)
			}
		}()
	}

	go func() {
		for _, window := range windows {
			jobs <- window
		}
		close(jobs)
		wg.Wait()
		close(out)
	}()

	results := make([]domain.ChunkResult, 0, len(windows))
	for res := range out {
		results = append(results, res)
	}
	return results
}

// processChunk walks one window through fetch, parse and save. Each stage
// failure is terminal for the chunk only.
func (s *ScraperService) processChunk(ctx context.Context, pair string, window domain.FetchWindow) domain.ChunkResult {
	res := domain.ChunkResult{Window: window, Status: domain.ChunkPending}

	res.Status = domain.ChunkFetching
	raw, err := s.source.Fetch(ctx, pair, window)
	if err != nil {
		res.Status = domain.ChunkFetchFailed
		res.Err = err
		s.logger.Error("Chunk fetch failed",
			slog.String("pair", pair),
			slog.String("window", window.String()),
			slog.String("error", err.Error()),
		)
		return res
	}
	res.Raw = raw
	res.Status = domain.ChunkFetched

	res.Status = domain.ChunkParsing
	records, err := s.parser.Parse(raw, pair)
	if err != nil {
		res.Status = domain.ChunkParseFailed
		res.Err = err
		s.logger.Error("Chunk parse failed",
			slog.String("pair", pair),
			slog.String("window", window.String()),
			slog.String("error", err.Error()),
		)
		return res
	}
	res.Records = records
	res.Status = domain.ChunkParsed

	res.Status = domain.ChunkSaving
	if err := s.rateRepo.SaveRates(ctx, records); err != nil {
		res.Status = domain.ChunkSaveFailed
		res.Err = err
		s.logger.Error("Chunk save failed",
			slog.String("pair", pair),
			slog.String("window", window.String()),
			slog.String("error", err.Error()),
		)
		return res
	}
	res.Status = domain.ChunkSaved

	s.logger.Info("Chunk saved",
		slog.String("pair", pair),
		slog.String("window", window.String()),
		slog.Int("records", len(records)),
	)
	return res
}

// summarize computes the per-period outcome from the accumulated records and
// failed chunks. A period reports an error only when it got no records and a
// failed window overlaps it; successfully fetched data always counts,
// whichever window produced it.
func (s *ScraperService) summarize(records []domain.ExchangeRateRecord, failures []domain.ChunkResult) dto.PairSyncResult {
	now := s.now()
	summary := make(dto.PairSyncResult, len(s.periods))

	for _, p := range s.periods {
		start := now.Add(-p.Duration)
		startDate := start.UTC().Format(domain.DateFormat)

		count := 0
		for _, rec := range records {
			// ISO dates compare correctly as strings.
			if rec.Date >= startDate {
				count++
			}
		}

		var overlapping error
		for _, f := range failures {
			if f.Window.To >= start.Unix() {
				overlapping = f.Err
				break
			}
		}

		if count == 0 && overlapping != nil {
			summary[p.Label] = dto.PeriodOutcome{
				Status:  dto.SyncStatusError,
				Message: overlapping.Error(),
			}
			continue
		}

		n := count
		summary[p.Label] = dto.PeriodOutcome{
			Status:  dto.SyncStatusSuccess,
			Records: &n,
		}
	}

	return summary
}

// errorSummary marks every supported period as failed with the same cause.
func (s *ScraperService) errorSummary(err error) dto.PairSyncResult {
	summary := make(dto.PairSyncResult, len(s.periods))
	for _, p := range s.periods {
		summary[p.Label] = dto.PeriodOutcome{
			Status:  dto.SyncStatusError,
			Message: err.Error(),
		}
	}
	return summary
}
