package yahoo

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/SscSPs/forex_history_app/internal/apperrors"
	"github.com/SscSPs/forex_history_app/internal/core/domain"
)

// sourceDateLayout is the textual date format in the source's history table.
const sourceDateLayout = "Jan 2, 2006"

// Parser converts raw history markup into validated exchange rate records.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser emitting row-skip diagnostics through logger.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse extracts one record per structurally valid table row. A row is a
// candidate when it exposes at least 7 cells (date, open, high, low, close,
// adj close, volume). Rows with unparsable dates or placeholder price fields
// are skipped with a warning, never fatal; a placeholder volume maps to 0.
//
// Returns apperrors.ErrNoRowsFound when no row had >= 7 cells at all, which
// signals a source format change. Rows that existed but all failed validation
// yield an empty slice and a nil error.
func (p *Parser) Parse(content, pair string) ([]domain.ExchangeRateRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	now := time.Now().UTC()
	candidates := 0
	var records []domain.ExchangeRateRecord

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 7 {
			return
		}
		candidates++

		fields := make([]string, 7)
		for i := range fields {
			fields[i] = strings.TrimSpace(cells.Eq(i).Text())
		}

		record, ok := p.parseRow(fields, pair)
		if !ok {
			return
		}
		record.CreatedAt = now
		records = append(records, record)
	})

	if candidates == 0 {
		return nil, fmt.Errorf("%w: pair %s", apperrors.ErrNoRowsFound, pair)
	}
	return records, nil
}

// parseRow validates and converts one candidate row. A false return means the
// row was skipped.
func (p *Parser) parseRow(fields []string, pair string) (domain.ExchangeRateRecord, bool) {
	date, err := time.Parse(sourceDateLayout, fields[0])
	if err != nil {
		p.logger.Warn("Row skipped: unparsable date",
			slog.String("pair", pair),
			slog.String("raw_date", fields[0]),
		)
		return domain.ExchangeRateRecord{}, false
	}

	prices := make([]float64, 5)
	for i, name := range [5]string{"open", "high", "low", "close", "adj_close"} {
		raw := fields[i+1]
		if isPlaceholder(raw) {
			p.logger.Warn("Row skipped: placeholder price field",
				slog.String("pair", pair),
				slog.String("date", date.Format(domain.DateFormat)),
				slog.String("field", name),
			)
			return domain.ExchangeRateRecord{}, false
		}
		value, err := strconv.ParseFloat(stripSeparators(raw), 64)
		if err != nil {
			p.logger.Warn("Row skipped: invalid price field",
				slog.String("pair", pair),
				slog.String("date", date.Format(domain.DateFormat)),
				slog.String("field", name),
				slog.String("raw", raw),
			)
			return domain.ExchangeRateRecord{}, false
		}
		prices[i] = value
	}

	// A missing volume does not invalidate the quote.
	var volume int64
	if raw := fields[6]; !isPlaceholder(raw) {
		volume, err = strconv.ParseInt(stripSeparators(raw), 10, 64)
		if err != nil {
			p.logger.Warn("Row skipped: invalid volume",
				slog.String("pair", pair),
				slog.String("date", date.Format(domain.DateFormat)),
				slog.String("raw", raw),
			)
			return domain.ExchangeRateRecord{}, false
		}
	}

	return domain.ExchangeRateRecord{
		CurrencyPair: pair,
		Date:         date.Format(domain.DateFormat),
		OpenRate:     prices[0],
		HighRate:     prices[1],
		LowRate:      prices[2],
		CloseRate:    prices[3],
		AdjClose:     prices[4],
		Volume:       volume,
	}, true
}

// Placeholder tokens the source emits for absent values.
func isPlaceholder(s string) bool {
	switch s {
	case "", "-", "null", "None":
		return true
	}
	return false
}

func stripSeparators(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
