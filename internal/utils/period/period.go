// Package period converts user-facing period labels like "1W" or "3M" into
// durations. Labels are an integer count followed by a unit letter, so any
// length is accepted rather than a hardcoded set.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/forex_history_app/internal/apperrors"
)

// Period pairs a user-facing label with its resolved duration.
type Period struct {
	Label    string
	Duration time.Duration
}

// Calendar-ish unit lengths, matching the upstream convention (months are 30
// days, years 365).
const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// Parse resolves a label such as "1W", "1M", "3M", "6M" or "1Y" into a
// duration. Case-insensitive. Returns apperrors.ErrValidation for anything
// that is not a positive count followed by D, W, M or Y.
func Parse(label string) (time.Duration, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	if len(normalized) < 2 {
		return 0, fmt.Errorf("%w: invalid period %q, supported formats are e.g. 1W, 1M, 3M, 6M, 1Y", apperrors.ErrValidation, label)
	}

	count, err := strconv.Atoi(normalized[:len(normalized)-1])
	if err != nil || count <= 0 {
		return 0, fmt.Errorf("%w: invalid period %q, supported formats are e.g. 1W, 1M, 3M, 6M, 1Y", apperrors.ErrValidation, label)
	}

	var unit time.Duration
	switch normalized[len(normalized)-1] {
	case 'D':
		unit = day
	case 'W':
		unit = week
	case 'M':
		unit = month
	case 'Y':
		unit = year
	default:
		return 0, fmt.Errorf("%w: invalid period unit in %q, supported units are D, W, M, Y", apperrors.ErrValidation, label)
	}

	return time.Duration(count) * unit, nil
}

// ParseList resolves a comma-separated list of labels, preserving order.
func ParseList(csv string) ([]Period, error) {
	var periods []Period
	for _, raw := range strings.Split(csv, ",") {
		label := strings.ToUpper(strings.TrimSpace(raw))
		if label == "" {
			continue
		}
		d, err := Parse(label)
		if err != nil {
			return nil, err
		}
		periods = append(periods, Period{Label: label, Duration: d})
	}
	if len(periods) == 0 {
		return nil, fmt.Errorf("%w: no periods configured", apperrors.ErrValidation)
	}
	return periods, nil
}
