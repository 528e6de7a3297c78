package services

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/models"
	"github.com/civicforum/civic-engine/pkg/reconcile"
	"github.com/civicforum/civic-engine/pkg/repositories"
)

// Input validation for watchlist writes. These bound what can be stored
// under a user-controlled payload.
const maxPoliticianNameLength = 100

var (
	politicianIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	politicianNamePattern = regexp.MustCompile(`^[a-zA-Z\s.'-]+$`)
	statePattern          = regexp.MustCompile(`^[A-Z]{2}$`)
)

// tradeAlertLimit is how many recent disclosures the alert feed shows.
const tradeAlertLimit = 5

// AddWatchlistInput is the validated payload for a watchlist add.
type AddWatchlistInput struct {
	PoliticianID   string `json:"politicianId"`
	PoliticianName string `json:"politicianName"`
	Party          string `json:"party"`
	State          string `json:"state"`
	Chamber        string `json:"chamber"`
}

// Validate checks every field against its format rule.
func (in AddWatchlistInput) Validate() error {
	if in.PoliticianID == "" || !politicianIDPattern.MatchString(in.PoliticianID) {
		return fmt.Errorf("%w: invalid politician id format", apperrors.ErrInvalidInput)
	}
	if in.PoliticianName == "" {
		return fmt.Errorf("%w: politician name is required", apperrors.ErrInvalidInput)
	}
	if len(in.PoliticianName) > maxPoliticianNameLength {
		return fmt.Errorf("%w: politician name too long", apperrors.ErrInvalidInput)
	}
	if !politicianNamePattern.MatchString(in.PoliticianName) {
		return fmt.Errorf("%w: politician name contains invalid characters", apperrors.ErrInvalidInput)
	}
	if !models.ValidParty(in.Party) {
		return fmt.Errorf("%w: invalid party", apperrors.ErrInvalidInput)
	}
	if !statePattern.MatchString(in.State) {
		return fmt.Errorf("%w: invalid state format", apperrors.ErrInvalidInput)
	}
	if !models.ValidChamber(in.Chamber) {
		return fmt.Errorf("%w: invalid chamber", apperrors.ErrInvalidInput)
	}
	return nil
}

// ValidPoliticianID is used by the delete path, where only the ID
// crosses the wire.
func ValidPoliticianID(id string) bool {
	return id != "" && politicianIDPattern.MatchString(id)
}

// AlertTradeSource is the slice of the trade client the alert feed
// needs.
type AlertTradeSource interface {
	RecentTrades(ctx context.Context) ([]models.TradeRecord, int, models.Provenance, error)
}

// WatchlistService manages per-user watchlists and the alert feed.
type WatchlistService interface {
	Add(ctx context.Context, userID string, input AddWatchlistInput) (*models.WatchlistEntry, error)
	List(ctx context.Context, userID string) ([]*models.WatchlistEntry, error)
	Remove(ctx context.Context, userID, politicianID string) error
	Alerts(ctx context.Context, userID string) ([]models.TradeAlert, error)
}

type watchlistService struct {
	repo   repositories.WatchlistRepository
	trades AlertTradeSource
	logger *zap.Logger
}

// NewWatchlistService creates a WatchlistService.
func NewWatchlistService(repo repositories.WatchlistRepository, trades AlertTradeSource, logger *zap.Logger) WatchlistService {
	return &watchlistService{
		repo:   repo,
		trades: trades,
		logger: logger.Named("watchlist"),
	}
}

var _ WatchlistService = (*watchlistService)(nil)

func (s *watchlistService) Add(ctx context.Context, userID string, input AddWatchlistInput) (*models.WatchlistEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := &models.WatchlistEntry{
		UserID:         userID,
		PoliticianID:   input.PoliticianID,
		PoliticianName: input.PoliticianName,
		Party:          models.Party(input.Party),
		State:          input.State,
		Chamber:        input.Chamber,
		AlertsEnabled:  true,
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Debug("Watchlist entry added",
		zap.String("user_id", userID),
		zap.String("politician_id", input.PoliticianID))
	return entry, nil
}

func (s *watchlistService) List(ctx context.Context, userID string) ([]*models.WatchlistEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.WatchlistEntry{}
	}
	return entries, nil
}

func (s *watchlistService) Remove(ctx context.Context, userID, politicianID string) error {
	if !ValidPoliticianID(politicianID) {
		return fmt.Errorf("%w: invalid politician id format", apperrors.ErrInvalidInput)
	}
	return s.repo.Remove(ctx, userID, politicianID)
}

// Alerts returns the latest disclosed trades for senators the user
// watches with alerts enabled. An empty watchlist yields an empty feed.
func (s *watchlistService) Alerts(ctx context.Context, userID string) ([]models.TradeAlert, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var watched []string
	for _, entry := range entries {
		if entry.AlertsEnabled {
			watched = append(watched, entry.PoliticianName)
		}
	}
	if len(watched) == 0 {
		return []models.TradeAlert{}, nil
	}

	trades, _, _, err := s.trades.RecentTrades(ctx)
	if err != nil {
		return nil, err
	}

	alerts := []models.TradeAlert{}
	for i, trade := range trades {
		// The dataset files free-text names ("Thomas H Tuberville")
		// that rarely equal the stored display name, so matching goes
		// through the same heuristic as every other trade join.
		if !anyNameMatches(trade.Senator, watched) {
			continue
		}
		alerts = append(alerts, models.TradeAlert{
			ID:             fmt.Sprintf("%s-%d", trade.TransactionDate, i),
			PoliticianName: trade.Senator,
			Ticker:         trade.Ticker,
			TradeType:      trade.Type,
			Amount:         trade.Amount.Raw,
			TradeDate:      trade.TransactionDate,
			CreatedAt:      trade.DisclosureDate,
		})
		if len(alerts) == tradeAlertLimit {
			break
		}
	}

	return alerts, nil
}

func anyNameMatches(recordName string, watched []string) bool {
	for _, name := range watched {
		if reconcile.NameMatches(recordName, name) {
			return true
		}
	}
	return false
}
