package yahoo

import (
	"context"
	"fmt"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
	"github.com/SscSPs/forex_history_app/internal/core/ports/sources"
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds how many fetched windows are memoized per scraper
// instance.
const defaultCacheSize = 32

type cacheKey struct {
	pair string
	from int64
	to   int64
}

// CachingSource wraps a RateSource with a bounded, thread-safe LRU keyed on
// (pair, window). Only successful fetches are cached, so a failed window can
// be retried by a later call. The cache lives for the instance's lifetime;
// it is not cross-run durable.
type CachingSource struct {
	source sources.RateSource
	cache  *lru.Cache[cacheKey, string]
}

// NewCachingSource creates the caching wrapper. size <= 0 uses the default.
func NewCachingSource(source sources.RateSource, size int) (*CachingSource, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[cacheKey, string](size)
	if err != nil {
		return nil, fmt.Errorf("create fetch cache: %w", err)
	}
	return &CachingSource{source: source, cache: cache}, nil
}

// Fetch returns the memoized content for the window if present, otherwise
// delegates to the wrapped source and caches a successful result.
func (s *CachingSource) Fetch(ctx context.Context, pair string, window domain.FetchWindow) (string, error) {
	key := cacheKey{pair: pair, from: window.From, to: window.To}
	if content, ok := s.cache.Get(key); ok {
		return content, nil
	}

	content, err := s.source.Fetch(ctx, pair, window)
	if err != nil {
		return "", err
	}
	s.cache.Add(key, content)
	return content, nil
}

// Len reports the number of cached windows.
func (s *CachingSource) Len() int {
	return s.cache.Len()
}
