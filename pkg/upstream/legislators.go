package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/cache"
	"github.com/civicforum/civic-engine/pkg/models"
)

// LegislatorClient serves the canonical roster of current senators,
// joined with social handles. Both datasets come from mirror lists; the
// roster is required, the social join is best-effort.
type LegislatorClient struct {
	resolver      *Resolver
	cache         cache.Cache
	logger        *zap.Logger
	rosterMirrors []string
	socialMirrors []string
	ttl           time.Duration
	now           func() time.Time
}

func NewLegislatorClient(resolver *Resolver, store cache.Cache, logger *zap.Logger, rosterMirrors, socialMirrors []string, ttl time.Duration) *LegislatorClient {
	return &LegislatorClient{
		resolver:      resolver,
		cache:         store,
		logger:        logger.Named("legislators"),
		rosterMirrors: rosterMirrors,
		socialMirrors: socialMirrors,
		ttl:           ttl,
		now:           time.Now,
	}
}

type rawTerm struct {
	Type      string `json:"type"`
	Start     string `json:"start"`
	End       string `json:"end"`
	State     string `json:"state"`
	Party     string `json:"party"`
	StateRank string `json:"state_rank"`
	URL       string `json:"url"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type rawLegislator struct {
	ID struct {
		Bioguide    string   `json:"bioguide"`
		OpenSecrets string   `json:"opensecrets"`
		FEC         []string `json:"fec"`
	} `json:"id"`
	Name struct {
		First        string `json:"first"`
		Last         string `json:"last"`
		OfficialFull string `json:"official_full"`
	} `json:"name"`
	Terms []rawTerm `json:"terms"`
}

type rawSocial struct {
	ID struct {
		Bioguide string `json:"bioguide"`
	} `json:"id"`
	Social struct {
		Twitter  string `json:"twitter"`
		Facebook string `json:"facebook"`
		YouTube  string `json:"youtube"`
	} `json:"social"`
}

// CurrentSenators returns every legislator holding an active Senate
// term. The roster and social datasets are fetched concurrently; if the
// social fetch fails, senators are returned without handles rather than
// failing the whole call.
func (c *LegislatorClient) CurrentSenators(ctx context.Context) ([]models.Legislator, error) {
	var (
		wg        sync.WaitGroup
		rosterRaw []byte
		rosterErr error
		socialRaw []byte
		socialErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rosterRaw, rosterErr = c.fetchDataset(ctx, "roster", c.rosterMirrors)
	}()
	go func() {
		defer wg.Done()
		socialRaw, socialErr = c.fetchDataset(ctx, "social", c.socialMirrors)
	}()
	wg.Wait()

	if rosterErr != nil {
		return nil, rosterErr
	}

	var roster []rawLegislator
	if err := json.Unmarshal(rosterRaw, &roster); err != nil {
		return nil, fmt.Errorf("%w: legislator roster: %v", apperrors.ErrMalformedResponse, err)
	}

	social := make(map[string]rawSocial)
	if socialErr != nil {
		c.logger.Warn("Social handle dataset unavailable, continuing without handles",
			zap.Error(socialErr))
	} else {
		var entries []rawSocial
		if err := json.Unmarshal(socialRaw, &entries); err != nil {
			c.logger.Warn("Social handle dataset malformed, continuing without handles",
				zap.Error(err))
		} else {
			for _, entry := range entries {
				social[entry.ID.Bioguide] = entry
			}
		}
	}

	today := c.now().Format("2006-01-02")
	var senators []models.Legislator
	for _, raw := range roster {
		term, ok := currentSenateTerm(raw.Terms, today)
		if !ok {
			continue
		}
		senators = append(senators, c.toModel(raw, term, social))
	}

	c.logger.Debug("Resolved current senators", zap.Int("count", len(senators)))
	return senators, nil
}

func (c *LegislatorClient) fetchDataset(ctx context.Context, name string, mirrors []string) ([]byte, error) {
	cacheKey := "upstream:legislators:" + name
	if body, ok := c.cache.Get(ctx, cacheKey); ok {
		return body, nil
	}

	body, err := c.resolver.Resolve(ctx, mirrors)
	if err != nil {
		return nil, err
	}

	c.cache.Set(ctx, cacheKey, body, c.ttl)
	return body, nil
}

// termStartYear pulls the year out of an ISO term-start date; dates in
// the registry are always YYYY-MM-DD.
func termStartYear(start string) int {
	if len(start) < 4 {
		return 0
	}
	year, err := strconv.Atoi(start[:4])
	if err != nil {
		return 0
	}
	return year
}

// currentSenateTerm returns the latest term when it is a Senate term
// still in effect. House members and former senators are filtered here.
func currentSenateTerm(terms []rawTerm, today string) (rawTerm, bool) {
	if len(terms) == 0 {
		return rawTerm{}, false
	}
	last := terms[len(terms)-1]
	if last.Type != "sen" || last.End <= today {
		return rawTerm{}, false
	}
	return last, true
}

func (c *LegislatorClient) toModel(raw rawLegislator, term rawTerm, social map[string]rawSocial) models.Legislator {
	name := raw.Name.OfficialFull
	if name == "" {
		name = raw.Name.First + " " + raw.Name.Last
	}

	sinceYear := termStartYear(term.Start)
	for _, t := range raw.Terms {
		if t.Type == "sen" {
			sinceYear = termStartYear(t.Start)
			break
		}
	}

	leg := models.Legislator{
		BioguideID:    raw.ID.Bioguide,
		Name:          name,
		FirstName:     raw.Name.First,
		LastName:      raw.Name.Last,
		State:         models.StateName(term.State),
		StateAbbr:     term.State,
		Party:         models.NormalizeParty(term.Party),
		Photo:         fmt.Sprintf("https://www.congress.gov/img/member/%s_200.jpg", strings.ToLower(raw.ID.Bioguide)),
		Since:         sinceYear,
		TermEnd:       term.End,
		StateRank:     term.StateRank,
		Phone:         term.Phone,
		Website:       term.URL,
		Office:        term.Address,
		OpenSecretsID: raw.ID.OpenSecrets,
	}
	if len(raw.ID.FEC) > 0 {
		leg.FECID = raw.ID.FEC[0]
	}
	if entry, ok := social[raw.ID.Bioguide]; ok {
		leg.Twitter = entry.Social.Twitter
		leg.Facebook = entry.Social.Facebook
		leg.YouTube = entry.Social.YouTube
	}
	return leg
}
