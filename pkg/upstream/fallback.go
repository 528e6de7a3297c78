package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/logging"
)

// Resolver fetches from an ordered list of mirrors serving the same
// logical dataset. Mirrors are tried strictly in order with no backoff:
// the first 2xx body wins, and only when every mirror has failed does
// the caller see ErrAllMirrorsFailed.
type Resolver struct {
	client  *http.Client
	logger  *zap.Logger
	timeout time.Duration
}

// NewResolver creates a Resolver. timeout bounds each individual
// attempt, not the whole sequence.
func NewResolver(logger *zap.Logger, timeout time.Duration) *Resolver {
	return &Resolver{
		client:  &http.Client{},
		logger:  logger.Named("resolver"),
		timeout: timeout,
	}
}

// Resolve tries each mirror in order and returns the first successful
// body. A canceled parent context aborts the sequence immediately.
func (r *Resolver) Resolve(ctx context.Context, mirrors []string) ([]byte, error) {
	if len(mirrors) == 0 {
		return nil, fmt.Errorf("%w: no mirrors configured", apperrors.ErrAllMirrorsFailed)
	}

	var lastErr error
	for i, url := range mirrors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := r.attempt(ctx, url)
		if err == nil {
			if i > 0 {
				r.logger.Info("Primary mirror down, served from fallback",
					zap.String("url", logging.SanitizeURL(url)),
					zap.Int("attempt", i+1))
			}
			return body, nil
		}

		lastErr = err
		r.logger.Warn("Mirror attempt failed",
			zap.String("url", logging.SanitizeURL(url)),
			zap.Int("attempt", i+1),
			zap.String("error", logging.SanitizeError(err)))
	}

	return nil, fmt.Errorf("%w: %s", apperrors.ErrAllMirrorsFailed, logging.SanitizeError(lastErr))
}

func (r *Resolver) attempt(ctx context.Context, url string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
