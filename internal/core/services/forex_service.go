package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/forex_history_app/internal/apperrors"
	"github.com/SscSPs/forex_history_app/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_history_app/internal/core/ports/repositories"
	"github.com/SscSPs/forex_history_app/internal/dto"
	"github.com/SscSPs/forex_history_app/internal/utils/period"
	"github.com/shopspring/decimal"
)

// ForexService serves stored forex history to API consumers.
type ForexService struct {
	rateRepo portsrepo.ExchangeRateReader
	logger   *slog.Logger
	now      func() time.Time
}

// NewForexService creates a new ForexService.
func NewForexService(rateRepo portsrepo.ExchangeRateReader, logger *slog.Logger) *ForexService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ForexService{
		rateRepo: rateRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// GetForexData reads the stored series for the requested pair over the
// resolved period and computes the conversion from the latest close rate.
func (s *ForexService) GetForexData(ctx context.Context, req dto.ForexDataRequest) (*dto.ForexDataResponse, error) {
	duration, err := period.Parse(req.Period)
	if err != nil {
		return nil, err
	}

	pair := domain.FormatPair(req.From, req.To)
	end := s.now().UTC()
	start := end.Add(-duration)

	records, err := s.rateRepo.ListRatesByPairAndRange(ctx, pair,
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to read forex history for %s: %w", pair, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no data available for the specified period and currency pair", apperrors.ErrNotFound)
	}

	data := make([]dto.RatePoint, len(records))
	for i, rec := range records {
		data[i] = dto.RatePoint{Date: rec.Date, Rate: rec.CloseRate}
	}

	latest := records[len(records)-1].CloseRate
	resp := &dto.ForexDataResponse{
		Success:     true,
		From:        req.From,
		To:          req.To,
		Period:      req.Period,
		Data:        data,
		CurrentRate: latest,
	}

	if req.Amount > 0 {
		converted := decimal.NewFromFloat(req.Amount).Mul(decimal.NewFromFloat(latest))
		resp.ConvertedAmount = &converted
	}

	return resp, nil
}
