package yahoo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource is a RateSource stub that counts fetches per key.
type countingSource struct {
	calls map[string]int
	fail  bool
}

func newCountingSource() *countingSource {
	return &countingSource{calls: make(map[string]int)}
}

func (s *countingSource) Fetch(_ context.Context, pair string, window domain.FetchWindow) (string, error) {
	key := fmt.Sprintf("%s/%d/%d", pair, window.From, window.To)
	s.calls[key]++
	if s.fail {
		return "", errors.New("source unavailable")
	}
	return "content for " + key, nil
}

func TestCachingSource_MemoizesSuccessfulFetches(t *testing.T) {
	source := newCountingSource()
	cached, err := NewCachingSource(source, 4)
	require.NoError(t, err)

	ctx := context.Background()
	w := domain.FetchWindow{From: 100, To: 200}

	first, err := cached.Fetch(ctx, "GBPINR=X", w)
	require.NoError(t, err)
	second, err := cached.Fetch(ctx, "GBPINR=X", w)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls["GBPINR=X/100/200"])

	// A different window is a different key.
	_, err = cached.Fetch(ctx, "GBPINR=X", domain.FetchWindow{From: 201, To: 300})
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls["GBPINR=X/201/300"])
}

func TestCachingSource_DoesNotCacheFailures(t *testing.T) {
	source := newCountingSource()
	source.fail = true

	cached, err := NewCachingSource(source, 4)
	require.NoError(t, err)

	ctx := context.Background()
	w := domain.FetchWindow{From: 100, To: 200}

	_, err = cached.Fetch(ctx, "GBPINR=X", w)
	require.Error(t, err)
	assert.Equal(t, 0, cached.Len())

	// The source recovers; the next call retries instead of replaying the failure.
	source.fail = false
	content, err := cached.Fetch(ctx, "GBPINR=X", w)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
	assert.Equal(t, 2, source.calls["GBPINR=X/100/200"])
}

func TestCachingSource_EvictsLeastRecentlyUsed(t *testing.T) {
	source := newCountingSource()
	cached, err := NewCachingSource(source, 2)
	require.NoError(t, err)

	ctx := context.Background()
	w1 := domain.FetchWindow{From: 1, To: 2}
	w2 := domain.FetchWindow{From: 3, To: 4}
	w3 := domain.FetchWindow{From: 5, To: 6}

	_, _ = cached.Fetch(ctx, "P", w1)
	_, _ = cached.Fetch(ctx, "P", w2)
	_, _ = cached.Fetch(ctx, "P", w3) // evicts w1

	_, err = cached.Fetch(ctx, "P", w1)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls["P/1/2"])
	assert.Equal(t, 2, cached.Len())
}

func TestCachingSource_DefaultSize(t *testing.T) {
	cached, err := NewCachingSource(newCountingSource(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cached.Len())
}
