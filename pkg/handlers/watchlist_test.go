package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/auth"
	"github.com/civicforum/civic-engine/pkg/models"
	"github.com/civicforum/civic-engine/pkg/services"
)

type mockWatchlistService struct {
	entries []*models.WatchlistEntry
	addErr  error
	remErr  error
	alerts  []models.TradeAlert
}

func (m *mockWatchlistService) Add(ctx context.Context, userID string, input services.AddWatchlistInput) (*models.WatchlistEntry, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	entry := &models.WatchlistEntry{
		UserID:         userID,
		PoliticianID:   input.PoliticianID,
		PoliticianName: input.PoliticianName,
		AlertsEnabled:  true,
	}
	m.entries = append(m.entries, entry)
	return entry, nil
}

func (m *mockWatchlistService) List(ctx context.Context, userID string) ([]*models.WatchlistEntry, error) {
	return m.entries, nil
}

func (m *mockWatchlistService) Remove(ctx context.Context, userID, politicianID string) error {
	return m.remErr
}

func (m *mockWatchlistService) Alerts(ctx context.Context, userID string) ([]models.TradeAlert, error) {
	return m.alerts, nil
}

func authedRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	claims := &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}
	return req.WithContext(context.WithValue(req.Context(), auth.ClaimsKey, claims))
}

func TestWatchlistAddSuccess(t *testing.T) {
	service := &mockWatchlistService{}
	mux := NewWatchlistHandler(service, zap.NewNop()).Routes()

	body := `{"politicianId":"S000001","politicianName":"Jane Smith","party":"D","state":"CA","chamber":"senate"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/watchlist", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"politicianId":"S000001"`)
	assert.Contains(t, rec.Body.String(), `"alertsEnabled":true`)
}

func TestWatchlistAddInvalidJSON(t *testing.T) {
	mux := NewWatchlistHandler(&mockWatchlistService{}, zap.NewNop()).Routes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/watchlist", "{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON body")
}

func TestWatchlistAddInvalidInput(t *testing.T) {
	mux := NewWatchlistHandler(&mockWatchlistService{}, zap.NewNop()).Routes()

	body := `{"politicianId":"S000001; DROP","politicianName":"Jane Smith","party":"D","state":"CA","chamber":"senate"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/watchlist", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWatchlistAddDuplicate(t *testing.T) {
	service := &mockWatchlistService{addErr: apperrors.ErrDuplicate}
	mux := NewWatchlistHandler(service, zap.NewNop()).Routes()

	body := `{"politicianId":"S000001","politicianName":"Jane Smith","party":"D","state":"CA","chamber":"senate"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/watchlist", body))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Already in watchlist")
}

func TestWatchlistRequiresAuthContext(t *testing.T) {
	mux := NewWatchlistHandler(&mockWatchlistService{}, zap.NewNop()).Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWatchlistRemoveNotFound(t *testing.T) {
	service := &mockWatchlistService{remErr: apperrors.ErrNotFound}
	mux := NewWatchlistHandler(service, zap.NewNop()).Routes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/watchlist?politicianId=S000001", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWatchlistAlerts(t *testing.T) {
	service := &mockWatchlistService{alerts: []models.TradeAlert{
		{PoliticianName: "Jane Smith", Ticker: "NVDA", TradeType: "Purchase"},
	}}
	mux := NewWatchlistHandler(service, zap.NewNop()).Routes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/watchlist/alerts", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ticker":"NVDA"`)
}
