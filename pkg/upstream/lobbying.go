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

// lobbyFilingLimit caps how many filings a profile shows.
const lobbyFilingLimit = 20

// LobbyingClient searches Lobbying Disclosure Act filings that mention
// a senator by name. The registry needs no key; failures degrade to an
// empty filing list at the service layer.
type LobbyingClient struct {
	fetcher *Fetcher
	logger  *zap.Logger
	baseURL string
	ttl     time.Duration
}

func NewLobbyingClient(fetcher *Fetcher, logger *zap.Logger, baseURL string, ttl time.Duration) *LobbyingClient {
	return &LobbyingClient{
		fetcher: fetcher,
		logger:  logger.Named("lobbying"),
		baseURL: baseURL,
		ttl:     ttl,
	}
}

type rawLDAFilings struct {
	Count   int `json:"count"`
	Results []struct {
		Registrant struct {
			Name string `json:"name"`
		} `json:"registrant"`
		Client struct {
			Name string `json:"name"`
		} `json:"client"`
		FilingType         string `json:"filing_type"`
		FilingYear         int    `json:"filing_year"`
		Income             string `json:"income"`
		Expenses           string `json:"expenses"`
		LobbyingActivities []struct {
			GeneralIssueCode string `json:"general_issue_code"`
		} `json:"lobbying_activities"`
	} `json:"results"`
}

// Filings returns up to lobbyFilingLimit filings mentioning name, plus
// the registry's total match count.
func (c *LobbyingClient) Filings(ctx context.Context, name string) ([]models.LobbyFiling, int, error) {
	query := url.Values{}
	query.Set("filing_year", "2024")
	query.Set("search", name)
	query.Set("format", "json")
	requestURL := c.baseURL + "/filings/?" + query.Encode()

	body, err := c.fetcher.GetCached(ctx, "lobbying", "filings:"+name, requestURL, c.ttl)
	if err != nil {
		return nil, 0, err
	}

	var data rawLDAFilings
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, 0, fmt.Errorf("%w: lobbying filings: %v", apperrors.ErrMalformedResponse, err)
	}

	results := data.Results
	if len(results) > lobbyFilingLimit {
		results = results[:lobbyFilingLimit]
	}

	filings := make([]models.LobbyFiling, 0, len(results))
	for _, raw := range results {
		registrant := raw.Registrant.Name
		if registrant == "" {
			registrant = "Unknown"
		}
		client := raw.Client.Name
		if client == "" {
			client = "Unknown"
		}
		amount := raw.Income
		if amount == "" {
			amount = raw.Expenses
		}
		issues := make([]string, 0, len(raw.LobbyingActivities))
		for _, activity := range raw.LobbyingActivities {
			if activity.GeneralIssueCode != "" {
				issues = append(issues, activity.GeneralIssueCode)
			}
		}
		filings = append(filings, models.LobbyFiling{
			RegistrantName: registrant,
			ClientName:     client,
			FilingType:     raw.FilingType,
			FilingYear:     raw.FilingYear,
			Amount:         amount,
			Issues:         issues,
		})
	}

	return filings, data.Count, nil
}
