package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/forex_history_app/internal/apperrors"
)

// MaxWindowSpan is the widest range the upstream source serves in one request.
const MaxWindowSpan = 90 * 24 * time.Hour

// FetchWindow is a bounded sub-range of a requested date span, fetched as one
// HTTP call. Both bounds are epoch seconds, inclusive. Immutable once planned.
type FetchWindow struct {
	From int64
	To   int64
}

// Span returns the window length.
func (w FetchWindow) Span() time.Duration {
	return time.Duration(w.To-w.From) * time.Second
}

func (w FetchWindow) String() string {
	return fmt.Sprintf("[%s, %s]",
		time.Unix(w.From, 0).UTC().Format(DateFormat),
		time.Unix(w.To, 0).UTC().Format(DateFormat),
	)
}

// PlanWindows splits [from, to] into contiguous windows of at most
// MaxWindowSpan each, in chronological order. The last window may be shorter;
// windows never overlap and never leave gaps. Returns apperrors.ErrInvalidRange
// when from >= to.
func PlanWindows(from, to int64) ([]FetchWindow, error) {
	if from >= to {
		return nil, fmt.Errorf("%w: from %d must precede to %d", apperrors.ErrInvalidRange, from, to)
	}

	span := int64(MaxWindowSpan / time.Second)
	var windows []FetchWindow
	for current := from; current < to; {
		end := current + span
		if end > to {
			end = to
		}
		windows = append(windows, FetchWindow{From: current, To: end})
		current = end + 1
	}
	return windows, nil
}
