package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/models"
)

// mockWatchlistRepo is an in-memory WatchlistRepository that enforces
// the same uniqueness rule as the database constraint.
type mockWatchlistRepo struct {
	entries []*models.WatchlistEntry
	err     error
}

func (m *mockWatchlistRepo) Add(ctx context.Context, entry *models.WatchlistEntry) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.entries {
		if existing.UserID == entry.UserID && existing.PoliticianID == entry.PoliticianID {
			return apperrors.ErrDuplicate
		}
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockWatchlistRepo) ListByUser(ctx context.Context, userID string) ([]*models.WatchlistEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*models.WatchlistEntry
	for _, entry := range m.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (m *mockWatchlistRepo) Remove(ctx context.Context, userID, politicianID string) error {
	for i, entry := range m.entries {
		if entry.UserID == userID && entry.PoliticianID == politicianID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type mockAlertTrades struct {
	trades []models.TradeRecord
	err    error
}

func (m *mockAlertTrades) RecentTrades(ctx context.Context) ([]models.TradeRecord, int, models.Provenance, error) {
	return m.trades, len(m.trades), models.SourceLive, m.err
}

func validInput() AddWatchlistInput {
	return AddWatchlistInput{
		PoliticianID:   "S000001",
		PoliticianName: "Jane Smith",
		Party:          "D",
		State:          "CA",
		Chamber:        models.ChamberSenate,
	}
}

func TestWatchlistAddAndList(t *testing.T) {
	repo := &mockWatchlistRepo{}
	svc := NewWatchlistService(repo, &mockAlertTrades{}, zap.NewNop())

	entry, err := svc.Add(context.Background(), "user-1", validInput())
	require.NoError(t, err)
	assert.True(t, entry.AlertsEnabled, "alerts default on")

	entries, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "S000001", entries[0].PoliticianID)

	// Other users see an empty list, not nil.
	entries, err = svc.List(context.Background(), "user-2")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestWatchlistAddRejectsDuplicate(t *testing.T) {
	repo := &mockWatchlistRepo{}
	svc := NewWatchlistService(repo, &mockAlertTrades{}, zap.NewNop())

	_, err := svc.Add(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), "user-1", validInput())
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// Same politician is fine for a different user.
	_, err = svc.Add(context.Background(), "user-2", validInput())
	assert.NoError(t, err)
}

func TestWatchlistAddValidation(t *testing.T) {
	svc := NewWatchlistService(&mockWatchlistRepo{}, &mockAlertTrades{}, zap.NewNop())

	tests := []struct {
		name   string
		mutate func(*AddWatchlistInput)
	}{
		{"bad id characters", func(in *AddWatchlistInput) { in.PoliticianID = "S0001; DROP TABLE" }},
		{"empty id", func(in *AddWatchlistInput) { in.PoliticianID = "" }},
		{"empty name", func(in *AddWatchlistInput) { in.PoliticianName = "" }},
		{"name with digits", func(in *AddWatchlistInput) { in.PoliticianName = "Jane Smith 2" }},
		{"name too long", func(in *AddWatchlistInput) {
			long := make([]byte, 101)
			for i := range long {
				long[i] = 'a'
			}
			in.PoliticianName = string(long)
		}},
		{"bad party", func(in *AddWatchlistInput) { in.Party = "X" }},
		{"lowercase state", func(in *AddWatchlistInput) { in.State = "ca" }},
		{"bad chamber", func(in *AddWatchlistInput) { in.Chamber = "parliament" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.Add(context.Background(), "user-1", input)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestWatchlistRemove(t *testing.T) {
	repo := &mockWatchlistRepo{}
	svc := NewWatchlistService(repo, &mockAlertTrades{}, zap.NewNop())

	_, err := svc.Add(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), "user-1", "S000001"))
	assert.ErrorIs(t, svc.Remove(context.Background(), "user-1", "S000001"), apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.Remove(context.Background(), "user-1", "bad id!"), apperrors.ErrInvalidInput)
}

func TestWatchlistAlerts(t *testing.T) {
	repo := &mockWatchlistRepo{}
	svc := NewWatchlistService(repo, &mockAlertTrades{trades: []models.TradeRecord{
		{Senator: "Jane Smith", Ticker: "NVDA", Type: "Purchase", Amount: models.AmountBand{Raw: "$15,001 - $50,000"}, TransactionDate: "2024-11-15", DisclosureDate: "2024-11-20"},
		{Senator: "Someone Else", Ticker: "XOM", Type: "Purchase", TransactionDate: "2024-11-14"},
		{Senator: "Jane Smith", Ticker: "AAPL", Type: "Sale", TransactionDate: "2024-11-10"},
		{Senator: "Jane Smith", Ticker: "MSFT", Type: "Purchase", TransactionDate: "2024-11-09"},
		{Senator: "Jane Smith", Ticker: "GOOGL", Type: "Purchase", TransactionDate: "2024-11-08"},
		{Senator: "Jane Smith", Ticker: "TSLA", Type: "Sale", TransactionDate: "2024-11-07"},
		{Senator: "Jane Smith", Ticker: "META", Type: "Sale", TransactionDate: "2024-11-06"},
	}}, zap.NewNop())

	_, err := svc.Add(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	alerts, err := svc.Alerts(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 5, "alert feed is capped")
	assert.Equal(t, "NVDA", alerts[0].Ticker)
	assert.Equal(t, "$15,001 - $50,000", alerts[0].Amount)
	for _, alert := range alerts {
		assert.Equal(t, "Jane Smith", alert.PoliticianName)
	}
}

func TestWatchlistAlertsMatchFreeTextFilerNames(t *testing.T) {
	repo := &mockWatchlistRepo{}
	svc := NewWatchlistService(repo, &mockAlertTrades{trades: []models.TradeRecord{
		{Senator: "Thomas H Tuberville", Ticker: "NVDA", Type: "Purchase", TransactionDate: "2024-11-15"},
		{Senator: "Someone Else", Ticker: "XOM", Type: "Purchase", TransactionDate: "2024-11-14"},
	}}, zap.NewNop())

	input := validInput()
	input.PoliticianID = "T000278"
	input.PoliticianName = "Tommy Tuberville"
	input.Party = "R"
	input.State = "AL"
	_, err := svc.Add(context.Background(), "user-1", input)
	require.NoError(t, err)

	alerts, err := svc.Alerts(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1, "dataset filer name must reconcile to the watched display name")
	assert.Equal(t, "NVDA", alerts[0].Ticker)
}

func TestWatchlistAlertsEmptyWatchlist(t *testing.T) {
	svc := NewWatchlistService(&mockWatchlistRepo{}, &mockAlertTrades{}, zap.NewNop())

	alerts, err := svc.Alerts(context.Background(), "user-1")

	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
