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

// CongressClient queries the congressional API for member committee
// assignments, sponsored legislation, and roll-call votes. All three
// endpoints require an API key; unkeyed deployments get
// ErrAPIKeyMissing and callers substitute seeded fallbacks.
type CongressClient struct {
	fetcher *Fetcher
	logger  *zap.Logger
	baseURL string
	apiKey  string
	ttl     time.Duration
}

func NewCongressClient(fetcher *Fetcher, logger *zap.Logger, baseURL, apiKey string, ttl time.Duration) *CongressClient {
	return &CongressClient{
		fetcher: fetcher,
		logger:  logger.Named("congress"),
		baseURL: baseURL,
		apiKey:  apiKey,
		ttl:     ttl,
	}
}

type rawMember struct {
	Member struct {
		Terms []struct {
			Committees []struct {
				Name string `json:"name"`
			} `json:"committees"`
		} `json:"terms"`
		Committees []struct {
			Name      string `json:"name"`
			Committee struct {
				Name string `json:"name"`
			} `json:"committee"`
		} `json:"committees"`
	} `json:"member"`
}

// Committees returns the member's committee assignment names, merging
// the current term's list with the member-level list and dropping
// duplicates.
func (c *CongressClient) Committees(ctx context.Context, bioguideID string) ([]string, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrAPIKeyMissing
	}

	url := fmt.Sprintf("%s/member/%s?api_key=%s", c.baseURL, bioguideID, c.apiKey)
	body, err := c.fetcher.GetCached(ctx, "congress", "member:"+bioguideID, url, c.ttl)
	if err != nil {
		return nil, err
	}

	var data rawMember
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: member %s: %v", apperrors.ErrMalformedResponse, bioguideID, err)
	}

	var committees []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		committees = append(committees, name)
	}

	if terms := data.Member.Terms; len(terms) > 0 {
		for _, committee := range terms[len(terms)-1].Committees {
			add(committee.Name)
		}
	}
	for _, committee := range data.Member.Committees {
		name := committee.Name
		if name == "" {
			name = committee.Committee.Name
		}
		add(name)
	}

	return committees, nil
}

type rawSponsoredLegislation struct {
	SponsoredLegislation []struct {
		Number         string `json:"number"`
		Title          string `json:"title"`
		Type           string `json:"type"`
		Congress       int    `json:"congress"`
		IntroducedDate string `json:"introducedDate"`
		LatestAction   struct {
			Text       string `json:"text"`
			ActionDate string `json:"actionDate"`
		} `json:"latestAction"`
		URL string `json:"url"`
	} `json:"sponsoredLegislation"`
}

// SponsoredBills returns up to limit recent sponsored bills.
func (c *CongressClient) SponsoredBills(ctx context.Context, bioguideID string, limit int) ([]models.Bill, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrAPIKeyMissing
	}

	url := fmt.Sprintf("%s/member/%s/sponsored-legislation?api_key=%s&limit=%d", c.baseURL, bioguideID, c.apiKey, limit)
	body, err := c.fetcher.GetCached(ctx, "congress", fmt.Sprintf("bills:%s:%d", bioguideID, limit), url, c.ttl)
	if err != nil {
		return nil, err
	}

	var data rawSponsoredLegislation
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: sponsored legislation %s: %v", apperrors.ErrMalformedResponse, bioguideID, err)
	}

	bills := make([]models.Bill, 0, len(data.SponsoredLegislation))
	for _, raw := range data.SponsoredLegislation {
		action := raw.LatestAction.Text
		if action == "" {
			action = "No action"
		}
		bills = append(bills, models.Bill{
			Number:           raw.Number,
			Title:            raw.Title,
			Type:             raw.Type,
			Congress:         raw.Congress,
			IntroducedDate:   raw.IntroducedDate,
			LatestAction:     action,
			LatestActionDate: raw.LatestAction.ActionDate,
			URL:              raw.URL,
		})
	}
	return bills, nil
}

// voteFetchLimit and voteWindow: fetch a wider slice, keep the recent
// window the statistics are computed over.
const (
	voteFetchLimit = 50
	voteWindow     = 30
)

type rawVotes struct {
	Votes []struct {
		RollNumber     int    `json:"rollNumber"`
		RollCallNumber int    `json:"rollCallNumber"`
		Date           string `json:"date"`
		Question       string `json:"question"`
		Result         string `json:"result"`
		Description    string `json:"description"`
		Position       string `json:"position"`
		Bill           struct {
			Number string `json:"number"`
			Title  string `json:"title"`
		} `json:"bill"`
		MemberVotes []struct {
			VotePosition string `json:"votePosition"`
		} `json:"memberVotes"`
		Yea struct {
			Democratic int `json:"democratic"`
			Republican int `json:"republican"`
		} `json:"yea"`
		Nay struct {
			Democratic int `json:"democratic"`
			Republican int `json:"republican"`
		} `json:"nay"`
	} `json:"votes"`
}

// Votes returns the member's recent roll calls plus computed statistics.
func (c *CongressClient) Votes(ctx context.Context, bioguideID string) ([]models.Vote, models.VoteStatistics, error) {
	if c.apiKey == "" {
		return nil, models.VoteStatistics{}, apperrors.ErrAPIKeyMissing
	}

	url := fmt.Sprintf("%s/member/%s/votes?api_key=%s&limit=%d", c.baseURL, bioguideID, c.apiKey, voteFetchLimit)
	body, err := c.fetcher.GetCached(ctx, "congress", "votes:"+bioguideID, url, c.ttl)
	if err != nil {
		return nil, models.VoteStatistics{}, err
	}

	var data rawVotes
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, models.VoteStatistics{}, fmt.Errorf("%w: votes %s: %v", apperrors.ErrMalformedResponse, bioguideID, err)
	}

	raw := data.Votes
	if len(raw) > voteWindow {
		raw = raw[:voteWindow]
	}

	votes := make([]models.Vote, 0, len(raw))
	for _, v := range raw {
		rollCall := v.RollNumber
		if rollCall == 0 {
			rollCall = v.RollCallNumber
		}
		question := v.Question
		if question == "" {
			question = "Vote"
		}
		result := v.Result
		if result == "" {
			result = "Unknown"
		}
		position := v.Position
		if len(v.MemberVotes) > 0 && v.MemberVotes[0].VotePosition != "" {
			position = v.MemberVotes[0].VotePosition
		}
		if position == "" {
			position = "Not Voting"
		}

		votes = append(votes, models.Vote{
			RollCallNumber: rollCall,
			Date:           v.Date,
			Question:       question,
			Result:         result,
			Description:    v.Description,
			BillNumber:     v.Bill.Number,
			BillTitle:      v.Bill.Title,
			MemberVote:     position,
			Democratic:     models.PartyVoteCount{Yea: v.Yea.Democratic, Nay: v.Nay.Democratic},
			Republican:     models.PartyVoteCount{Yea: v.Yea.Republican, Nay: v.Nay.Republican},
		})
	}

	return votes, VoteStats(votes), nil
}

// VoteStats computes the participation summary over a vote window.
func VoteStats(votes []models.Vote) models.VoteStatistics {
	stats := models.VoteStatistics{TotalVotes: len(votes)}
	for _, v := range votes {
		switch v.MemberVote {
		case "Yea":
			stats.YeaVotes++
		case "Nay":
			stats.NayVotes++
		case "Not Voting":
			stats.MissedVotes++
		}
	}
	if stats.TotalVotes > 0 {
		attended := stats.TotalVotes - stats.MissedVotes
		stats.ParticipationRate = int(float64(attended)/float64(stats.TotalVotes)*100 + 0.5)
	}
	return stats
}
