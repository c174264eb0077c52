// Package yahoo implements the upstream rate source adapter: HTTP retrieval
// with retry and backoff, HTML parsing into exchange rate records, and a
// bounded fetch cache.
package yahoo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/forex_history_app/internal/apperrors"
	"github.com/SscSPs/forex_history_app/internal/core/domain"
)

const (
	defaultBaseURL     = "https://finance.yahoo.com"
	defaultMaxRetries  = 3
	defaultBackoffBase = 1 * time.Second
	defaultTimeout     = 30 * time.Second
)

// ClientConfig holds the knobs for the history fetch client. Zero values fall
// back to defaults.
type ClientConfig struct {
	BaseURL     string
	MaxRetries  int
	BackoffBase time.Duration // attempt i waits BackoffBase << i before the next try
	Timeout     time.Duration
}

// Client fetches raw rate-history pages for a currency pair and window.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	backoffBase time.Duration
	logger      *slog.Logger
}

// NewClient creates a fetch client against the source's history endpoint.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaultBackoffBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		maxRetries:  cfg.MaxRetries,
		backoffBase: cfg.BackoffBase,
		logger:      logger,
	}
}

// Fetch retrieves the raw history page for the pair over the window, retrying
// transport failures and non-success statuses up to MaxRetries attempts with
// exponential backoff. There is no wait after the final attempt; exhaustion
// surfaces an apperrors.FetchError that degrades only this window.
func (c *Client) Fetch(ctx context.Context, pair string, window domain.FetchWindow) (string, error) {
	reqURL := fmt.Sprintf("%s/quote/%s/history?period1=%d&period2=%d&interval=1d",
		c.baseURL, url.PathEscape(pair), window.From, window.To)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		content, err := c.doRequest(ctx, reqURL)
		if err == nil {
			return content, nil
		}
		lastErr = err

		c.logger.Warn("Fetch attempt failed",
			slog.String("pair", pair),
			slog.String("window", window.String()),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", c.maxRetries),
			slog.String("error", err.Error()),
		)

		if attempt == c.maxRetries-1 {
			break
		}

		// 2^attempt times the base, per the source's tolerance for re-polling.
		wait := c.backoffBase << attempt
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
			return "", &apperrors.FetchError{Pair: pair, From: window.From, To: window.To, Err: lastErr}
		case <-time.After(wait):
		}
	}

	return "", &apperrors.FetchError{Pair: pair, From: window.From, To: window.To, Err: lastErr}
}

// doRequest performs a single attempt with a freshly randomized client
// identity header.
func (c *Client) doRequest(ctx context.Context, reqURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", randomUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Rate-limit statuses get the same treatment as any other failure.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	return string(body), nil
}
