package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/models"
)

const newsRecordLimit = 10

// NewsClient queries the global news index for recent mentions of a
// senator. The index sometimes answers errors as plain text with a 200
// status, so the body is only trusted after it parses as JSON.
type NewsClient struct {
	fetcher *Fetcher
	logger  *zap.Logger
	baseURL string
	ttl     time.Duration
}

func NewNewsClient(fetcher *Fetcher, logger *zap.Logger, baseURL string, ttl time.Duration) *NewsClient {
	return &NewsClient{
		fetcher: fetcher,
		logger:  logger.Named("news"),
		baseURL: baseURL,
		ttl:     ttl,
	}
}

type rawArticleList struct {
	Articles []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Domain      string `json:"domain"`
		SeenDate    string `json:"seendate"`
		SocialImage string `json:"socialimage"`
		Language    string `json:"language"`
	} `json:"articles"`
}

// Mentions returns recent articles naming the senator, newest first.
// The index does no real sentiment scoring, so every article counts as
// neutral.
func (c *NewsClient) Mentions(ctx context.Context, name string) ([]models.NewsArticle, models.NewsSentiment, error) {
	query := url.Values{}
	query.Set("query", fmt.Sprintf("%q", name))
	query.Set("mode", "artlist")
	query.Set("maxrecords", fmt.Sprintf("%d", newsRecordLimit))
	query.Set("format", "json")
	query.Set("sort", "datedesc")
	requestURL := c.baseURL + "?" + query.Encode()

	body, err := c.fetcher.GetCached(ctx, "news", "mentions:"+name, requestURL, c.ttl)
	if err != nil {
		return nil, models.NewsSentiment{}, err
	}

	var data rawArticleList
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, models.NewsSentiment{}, fmt.Errorf("%w: news index: %v", apperrors.ErrMalformedResponse, err)
	}

	articles := make([]models.NewsArticle, 0, len(data.Articles))
	for _, raw := range data.Articles {
		articles = append(articles, models.NewsArticle{
			Title:    raw.Title,
			URL:      raw.URL,
			Source:   raw.Domain,
			Date:     raw.SeenDate,
			Image:    raw.SocialImage,
			Language: raw.Language,
		})
	}

	return articles, models.NewsSentiment{Neutral: len(articles)}, nil
}
