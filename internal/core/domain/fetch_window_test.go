package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/forex_history_app/internal/apperrors"
	"github.com/SscSPs/forex_history_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const daySeconds = int64(24 * 60 * 60)

func TestPlanWindows_SplitsRangeIntoBoundedWindows(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	tests := []struct {
		name        string
		spanDays    int64
		wantWindows int
	}{
		{name: "single short window", spanDays: 10, wantWindows: 1},
		{name: "exactly ninety days", spanDays: 90, wantWindows: 1},
		{name: "just over ninety days", spanDays: 91, wantWindows: 2},
		{name: "one hundred four days", spanDays: 104, wantWindows: 2},
		{name: "one year", spanDays: 365, wantWindows: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from := base
			to := base + tc.spanDays*daySeconds

			windows, err := domain.PlanWindows(from, to)
			require.NoError(t, err)
			require.Len(t, windows, tc.wantWindows)

			// First window starts at the range start, last ends at the range end.
			assert.Equal(t, from, windows[0].From)
			assert.Equal(t, to, windows[len(windows)-1].To)

			maxSpan := int64(domain.MaxWindowSpan / time.Second)
			for i, w := range windows {
				assert.LessOrEqual(t, w.To-w.From, maxSpan, "window %d exceeds max span", i)
				assert.Less(t, w.From, w.To, "window %d is inverted", i)
				if i > 0 {
					// Contiguous: no overlap, no gap.
					assert.Equal(t, windows[i-1].To+1, w.From, "window %d not contiguous", i)
				}
			}
		})
	}
}

func TestPlanWindows_InvalidRange(t *testing.T) {
	now := time.Now().Unix()

	_, err := domain.PlanWindows(now, now)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)

	_, err = domain.PlanWindows(now, now-daySeconds)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestFetchWindowString(t *testing.T) {
	w := domain.FetchWindow{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
		To:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC).Unix(),
	}
	assert.Equal(t, "[2024-01-01, 2024-03-31]", w.String())
}
