// Package upstream contains one client per external data source. Every
// client wraps plain HTTP GETs with a TTL cache keyed by source and
// request, normalizes the raw response into internal DTOs, and returns
// typed failures; callers treat any failure as "source unavailable"
// and degrade to fallback or estimated data.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/cache"
	"github.com/civicforum/civic-engine/pkg/logging"
)

const userAgent = "civic-engine/1.0"

// Fetcher is the shared cached-GET helper behind every single-host
// client. Mirror-backed sources go through Resolver instead.
type Fetcher struct {
	client  *http.Client
	cache   cache.Cache
	logger  *zap.Logger
	timeout time.Duration
}

// NewFetcher creates a Fetcher. timeout bounds each individual request.
func NewFetcher(store cache.Cache, logger *zap.Logger, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{},
		cache:   store,
		logger:  logger.Named("upstream"),
		timeout: timeout,
	}
}

// GetCached returns the body for url, served from cache when fresh.
// source and key identify the entry; url never appears in cache keys
// because it may carry an API key.
func (f *Fetcher) GetCached(ctx context.Context, source, key, url string, ttl time.Duration) ([]byte, error) {
	cacheKey := fmt.Sprintf("upstream:%s:%s", source, key)
	if body, ok := f.cache.Get(ctx, cacheKey); ok {
		return body, nil
	}

	body, err := f.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	f.cache.Set(ctx, cacheKey, body, ttl)
	return body, nil
}

// Get performs a single bounded GET, mapping transport failures and
// non-2xx statuses to ErrSourceUnavailable.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", logging.SanitizeURL(url), err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("Upstream fetch failed",
			zap.String("url", logging.SanitizeURL(url)),
			zap.String("error", logging.SanitizeError(err)))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSourceUnavailable, logging.SanitizeError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Debug("Upstream returned non-2xx",
			zap.String("url", logging.SanitizeURL(url)),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %s", apperrors.ErrSourceUnavailable, logging.SanitizeError(err))
	}
	return body, nil
}
