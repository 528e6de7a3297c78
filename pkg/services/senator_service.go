// Package services assembles upstream, reconciled, and estimated data
// into the read models the handlers serve. Each assembly branch
// degrades independently: one source being down never empties the
// others, and anything non-live is labeled with its provenance.
package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/conflict"
	"github.com/civicforum/civic-engine/pkg/estimate"
	"github.com/civicforum/civic-engine/pkg/models"
	"github.com/civicforum/civic-engine/pkg/reconcile"
	"github.com/civicforum/civic-engine/pkg/upstream"
)

// Source interfaces over the upstream clients, narrowed to what the
// assembler consumes. Mock implementations back the tests.

type LegislatorSource interface {
	CurrentSenators(ctx context.Context) ([]models.Legislator, error)
}

type TradeSource interface {
	AllTrades(ctx context.Context) ([]models.TradeRecord, error)
	TradesForSenator(ctx context.Context, name string) ([]models.TradeRecord, models.TradeStats, models.Provenance, error)
}

type CongressSource interface {
	Committees(ctx context.Context, bioguideID string) ([]string, error)
	SponsoredBills(ctx context.Context, bioguideID string, limit int) ([]models.Bill, error)
	Votes(ctx context.Context, bioguideID string) ([]models.Vote, models.VoteStatistics, error)
}

type FECSource interface {
	Totals(ctx context.Context, candidateID string, cycle int) (*models.FECTotals, error)
}

type LobbyingSource interface {
	Filings(ctx context.Context, name string) ([]models.LobbyFiling, int, error)
}

type NewsSource interface {
	Mentions(ctx context.Context, name string) ([]models.NewsArticle, models.NewsSentiment, error)
}

type BioSource interface {
	Summary(ctx context.Context, name string) (*models.BioSummary, error)
}

// sponsoredBillLimit caps the bills branch of a profile.
const sponsoredBillLimit = 10

// ListOptions are the query-level filters and sort for the senator
// list. Zero values mean "no filtering" and the default last-name sort.
type ListOptions struct {
	Party         string
	State         string
	ConflictsOnly bool
	Sort          string // name / trades / netWorth / conflicts
}

// SenatorService assembles senator view models and full profiles.
type SenatorService interface {
	ListSenators(ctx context.Context, opts ListOptions) ([]models.SenatorViewModel, models.ChamberStats, error)
	GetProfile(ctx context.Context, bioguideID string) (*models.SenatorProfile, error)
}

type senatorService struct {
	legislators LegislatorSource
	trades      TradeSource
	congress    CongressSource
	fec         FECSource
	lobbying    LobbyingSource
	news        NewsSource
	bio         BioSource
	thresholds  conflict.Thresholds
	logger      *zap.Logger
}

// NewSenatorService creates the assembler over its sources.
func NewSenatorService(
	legislators LegislatorSource,
	trades TradeSource,
	congress CongressSource,
	fec FECSource,
	lobbying LobbyingSource,
	news NewsSource,
	bio BioSource,
	logger *zap.Logger,
) SenatorService {
	return &senatorService{
		legislators: legislators,
		trades:      trades,
		congress:    congress,
		fec:         fec,
		lobbying:    lobbying,
		news:        news,
		bio:         bio,
		thresholds:  conflict.DefaultThresholds,
		logger:      logger.Named("senators"),
	}
}

var _ SenatorService = (*senatorService)(nil)

func (s *senatorService) ListSenators(ctx context.Context, opts ListOptions) ([]models.SenatorViewModel, models.ChamberStats, error) {
	senators, err := s.legislators.CurrentSenators(ctx)
	if err != nil {
		return nil, models.ChamberStats{}, err
	}

	// Trade enrichment is best effort: the roster renders without
	// counts when the disclosure mirrors are down.
	tradeStats := make(map[string]*reconcile.EntityStats)
	if trades, err := s.trades.AllTrades(ctx); err != nil {
		s.logger.Warn("Trade aggregation unavailable for senator list", zap.Error(err))
	} else {
		tradeStats = reconcile.AggregateByMatchedEntity(trades, senators)
	}

	views := make([]models.SenatorViewModel, 0, len(senators))
	for _, senator := range senators {
		view := s.toViewModel(senator)
		if entry, ok := tradeStats[senator.BioguideID]; ok {
			view.StockTrades = entry.Count
		}
		view.Conflicts = conflict.Detect(conflict.Signals{TradeCount: view.StockTrades})
		view.ConflictScore = conflict.Score(view.Conflicts)
		view.RiskLabel = s.thresholds.Label(view.ConflictScore)

		if !matchesFilters(view, opts) {
			continue
		}
		views = append(views, view)
	}

	sortViews(views, opts.Sort)

	stats := models.ChamberStats{TotalSenators: len(views)}
	for _, view := range views {
		stats.TotalTrades += view.StockTrades
		stats.TotalConflicts += len(view.Conflicts)
	}

	return views, stats, nil
}

func (s *senatorService) toViewModel(senator models.Legislator) models.SenatorViewModel {
	return models.SenatorViewModel{
		ID:            strings.ToLower(senator.BioguideID),
		BioguideID:    senator.BioguideID,
		Name:          senator.Name,
		FirstName:     senator.FirstName,
		LastName:      senator.LastName,
		State:         senator.State,
		StateAbbr:     senator.StateAbbr,
		Party:         senator.Party,
		Photo:         senator.Photo,
		Since:         senator.Since,
		TermEnd:       senator.TermEnd,
		StateRank:     senator.StateRank,
		Phone:         senator.Phone,
		Website:       senator.Website,
		Office:        senator.Office,
		Twitter:       senator.Twitter,
		Facebook:      senator.Facebook,
		YouTube:       senator.YouTube,
		OpenSecretsID: senator.OpenSecretsID,
		FECID:         senator.FECID,
		NetWorth:      "N/A",
		Committees:    []string{},
		Conflicts:     []models.Conflict{},
	}
}

func matchesFilters(view models.SenatorViewModel, opts ListOptions) bool {
	if opts.Party != "" && string(view.Party) != opts.Party {
		return false
	}
	if opts.State != "" && view.StateAbbr != opts.State {
		return false
	}
	if opts.ConflictsOnly && view.ConflictScore == 0 {
		return false
	}
	return true
}

func sortViews(views []models.SenatorViewModel, key string) {
	switch key {
	case "trades":
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].StockTrades > views[j].StockTrades
		})
	case "netWorth":
		sort.SliceStable(views, func(i, j int) bool {
			return netWorthValue(views[i].NetWorth) > netWorthValue(views[j].NetWorth)
		})
	case "conflicts":
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].ConflictScore > views[j].ConflictScore
		})
	default: // "name" and unknown keys fall back to last-name order
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].LastName < views[j].LastName
		})
	}
}

// netWorthValue orders the display string; "N/A" sorts as zero.
func netWorthValue(display string) float64 {
	cleaned := strings.TrimPrefix(display, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	multiplier := 1.0
	if strings.HasSuffix(cleaned, "M") {
		multiplier = 1e6
		cleaned = strings.TrimSuffix(cleaned, "M")
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value * multiplier
}

func (s *senatorService) GetProfile(ctx context.Context, bioguideID string) (*models.SenatorProfile, error) {
	senators, err := s.legislators.CurrentSenators(ctx)
	if err != nil {
		return nil, err
	}

	var senator *models.Legislator
	for i := range senators {
		if strings.EqualFold(senators[i].BioguideID, bioguideID) {
			senator = &senators[i]
			break
		}
	}
	if senator == nil {
		return nil, apperrors.ErrNotFound
	}

	profile := &models.SenatorProfile{
		SenatorViewModel: s.toViewModel(*senator),
		Bills:            []models.Bill{},
		Votes:            []models.Vote{},
		Trades:           []models.TradeRecord{},
		LobbyFilings:     []models.LobbyFiling{},
		News:             []models.NewsArticle{},
	}

	// Independent branches fetch concurrently; each failure degrades
	// that branch alone.
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		committees, err := s.congress.Committees(ctx, senator.BioguideID)
		if err != nil {
			s.logBranch("committees", senator.BioguideID, err)
			return
		}
		profile.Committees = committees
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		bills, err := s.congress.SponsoredBills(ctx, senator.BioguideID, sponsoredBillLimit)
		if err != nil {
			s.logBranch("bills", senator.BioguideID, err)
			return
		}
		profile.Bills = bills
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		votes, stats, err := s.congress.Votes(ctx, senator.BioguideID)
		if err != nil {
			s.logBranch("votes", senator.BioguideID, err)
			fallback := estimate.FallbackVotes(senator.BioguideID)
			profile.Votes = fallback
			profile.VoteStats = upstream.VoteStats(fallback)
			profile.VotesSource = models.SourceFallback
			return
		}
		profile.Votes = votes
		profile.VoteStats = stats
		profile.VotesSource = models.SourceLive
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		trades, stats, source, err := s.trades.TradesForSenator(ctx, senator.Name)
		if err != nil {
			s.logBranch("trades", senator.BioguideID, err)
			return
		}
		profile.Trades = trades
		profile.TradeStats = stats
		profile.TradesSource = source
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if senator.FECID == "" {
			return
		}
		totals, err := s.fec.Totals(ctx, senator.FECID, upstream.DefaultFECCycle)
		if err != nil {
			s.logBranch("fec", senator.BioguideID, err)
			return
		}
		profile.FEC = totals
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		filings, _, err := s.lobbying.Filings(ctx, senator.Name)
		if err != nil {
			s.logBranch("lobbying", senator.BioguideID, err)
			return
		}
		profile.LobbyFilings = filings
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		articles, sentiment, err := s.news.Mentions(ctx, senator.Name)
		if err != nil {
			s.logBranch("news", senator.BioguideID, err)
			return
		}
		profile.News = articles
		profile.NewsSentiment = sentiment
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		bio, err := s.bio.Summary(ctx, senator.Name)
		if err != nil {
			s.logBranch("bio", senator.BioguideID, err)
			return
		}
		profile.Bio = bio
	}()

	wg.Wait()

	profile.StockTrades = profile.TradeStats.Total
	profile.Conflicts = conflict.Detect(conflict.Signals{
		Committees: profile.Committees,
		TradeCount: profile.StockTrades,
	})
	profile.ConflictScore = conflict.Score(profile.Conflicts)
	profile.RiskLabel = s.thresholds.Label(profile.ConflictScore)

	historical := estimate.Historical(senator.BioguideID)
	profile.Historical = &historical

	seed := estimate.Seed(senator.BioguideID)
	profile.DarkMoney = estimate.DarkMoney(seed)
	profile.Lobbyists = estimate.Lobbyists(seed)
	profile.Timeline = estimate.Timeline(seed, profile.StockTrades, senator.Party)

	return profile, nil
}

func (s *senatorService) logBranch(branch, bioguideID string, err error) {
	s.logger.Debug("Profile branch degraded",
		zap.String("branch", branch),
		zap.String("bioguide_id", bioguideID),
		zap.Error(err))
}
