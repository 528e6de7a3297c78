package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/models"
)

// DefaultFECCycle is the election cycle totals are pulled for.
const DefaultFECCycle = 2024

// FECClient queries the federal campaign finance API for candidate
// cycle totals.
type FECClient struct {
	fetcher *Fetcher
	logger  *zap.Logger
	baseURL string
	apiKey  string
	ttl     time.Duration
}

func NewFECClient(fetcher *Fetcher, logger *zap.Logger, baseURL, apiKey string, ttl time.Duration) *FECClient {
	return &FECClient{
		fetcher: fetcher,
		logger:  logger.Named("fec"),
		baseURL: baseURL,
		apiKey:  apiKey,
		ttl:     ttl,
	}
}

type rawFECTotals struct {
	Results []struct {
		Receipts                float64 `json:"receipts"`
		Disbursements           float64 `json:"disbursements"`
		CashOnHandEndPeriod     float64 `json:"cash_on_hand_end_period"`
		DebtsOwedByCommittee    float64 `json:"debts_owed_by_committee"`
		IndividualContributions float64 `json:"individual_contributions"`
		OtherPACContributions   float64 `json:"other_political_committee_contributions"`
	} `json:"results"`
}

// Totals returns a candidate's finance totals for the cycle. A keyed
// response with no result rows yields zero-value totals, not an error:
// some sitting senators have no active committee in a given cycle.
func (c *FECClient) Totals(ctx context.Context, candidateID string, cycle int) (*models.FECTotals, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrAPIKeyMissing
	}

	url := fmt.Sprintf("%s/candidate/%s/totals/?api_key=%s&cycle=%d", c.baseURL, candidateID, c.apiKey, cycle)
	body, err := c.fetcher.GetCached(ctx, "fec", fmt.Sprintf("totals:%s:%d", candidateID, cycle), url, c.ttl)
	if err != nil {
		return nil, err
	}

	var data rawFECTotals
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: candidate totals %s: %v", apperrors.ErrMalformedResponse, candidateID, err)
	}

	totals := &models.FECTotals{Cycle: cycle}
	if len(data.Results) > 0 {
		r := data.Results[0]
		totals.Receipts = r.Receipts
		totals.Disbursements = r.Disbursements
		totals.CashOnHand = r.CashOnHandEndPeriod
		totals.Debt = r.DebtsOwedByCommittee
		totals.IndividualContributions = r.IndividualContributions
		totals.PACContributions = r.OtherPACContributions
	}
	return totals, nil
}
