package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/models"
)

// bioSummaryLimit truncates encyclopedia extracts for the profile card.
const bioSummaryLimit = 500

// WikipediaClient resolves a senator's encyclopedia summary in two
// steps: a title search scoped with "United States Senator", then an
// intro extract for the top hit.
type WikipediaClient struct {
	fetcher *Fetcher
	logger  *zap.Logger
	baseURL string
	ttl     time.Duration
}

func NewWikipediaClient(fetcher *Fetcher, logger *zap.Logger, baseURL string, ttl time.Duration) *WikipediaClient {
	return &WikipediaClient{
		fetcher: fetcher,
		logger:  logger.Named("wikipedia"),
		baseURL: baseURL,
		ttl:     ttl,
	}
}

type rawSearchResult struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type rawExtractResult struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			Extract   string `json:"extract"`
			Missing   *bool  `json:"missing"`
			Thumbnail struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}

// Summary fetches the bio extract for a senator, or ErrNoMatch when the
// search finds no page.
func (c *WikipediaClient) Summary(ctx context.Context, name string) (*models.BioSummary, error) {
	title, err := c.search(ctx, name)
	if err != nil {
		return nil, err
	}
	return c.extract(ctx, title)
}

func (c *WikipediaClient) search(ctx context.Context, name string) (string, error) {
	query := url.Values{}
	query.Set("action", "query")
	query.Set("list", "search")
	query.Set("srsearch", name+" United States Senator")
	query.Set("format", "json")
	query.Set("origin", "*")
	requestURL := c.baseURL + "?" + query.Encode()

	body, err := c.fetcher.GetCached(ctx, "wikipedia", "search:"+name, requestURL, c.ttl)
	if err != nil {
		return "", err
	}

	var data rawSearchResult
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("%w: encyclopedia search: %v", apperrors.ErrMalformedResponse, err)
	}
	if len(data.Query.Search) == 0 {
		return "", apperrors.ErrNoMatch
	}
	return data.Query.Search[0].Title, nil
}

func (c *WikipediaClient) extract(ctx context.Context, title string) (*models.BioSummary, error) {
	query := url.Values{}
	query.Set("action", "query")
	query.Set("prop", "extracts|pageimages")
	query.Set("exintro", "")
	query.Set("explaintext", "")
	query.Set("titles", title)
	query.Set("format", "json")
	query.Set("origin", "*")
	query.Set("pithumbsize", "300")
	requestURL := c.baseURL + "?" + query.Encode()

	body, err := c.fetcher.GetCached(ctx, "wikipedia", "extract:"+title, requestURL, c.ttl)
	if err != nil {
		return nil, err
	}

	var data rawExtractResult
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: encyclopedia extract: %v", apperrors.ErrMalformedResponse, err)
	}

	for _, page := range data.Query.Pages {
		if page.Missing != nil {
			continue
		}
		summary := page.Extract
		if len(summary) > bioSummaryLimit {
			summary = strings.TrimSpace(summary[:bioSummaryLimit]) + "..."
		}
		return &models.BioSummary{
			Title:     page.Title,
			Summary:   summary,
			Thumbnail: page.Thumbnail.Source,
			URL:       "https://en.wikipedia.org/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_")),
		}, nil
	}
	return nil, apperrors.ErrNoMatch
}
