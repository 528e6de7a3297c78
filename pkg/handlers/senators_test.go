package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/apperrors"
	"github.com/civicforum/civic-engine/pkg/models"
	"github.com/civicforum/civic-engine/pkg/services"
)

type mockSenatorService struct {
	views    []models.SenatorViewModel
	stats    models.ChamberStats
	listErr  error
	lastOpts services.ListOptions
	profile  *models.SenatorProfile
	profErr  error
}

func (m *mockSenatorService) ListSenators(ctx context.Context, opts services.ListOptions) ([]models.SenatorViewModel, models.ChamberStats, error) {
	m.lastOpts = opts
	return m.views, m.stats, m.listErr
}

func (m *mockSenatorService) GetProfile(ctx context.Context, bioguideID string) (*models.SenatorProfile, error) {
	return m.profile, m.profErr
}

func newSenatorsMux(service services.SenatorService) *http.ServeMux {
	mux := http.NewServeMux()
	NewSenatorsHandler(service, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestSenatorListPassesQueryOptions(t *testing.T) {
	service := &mockSenatorService{views: []models.SenatorViewModel{{BioguideID: "S000001", LastName: "Smith"}}}
	mux := newSenatorsMux(service)

	req := httptest.NewRequest(http.MethodGet, "/api/senators?party=D&state=CA&conflicts=true&sort=trades", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.ListOptions{Party: "D", State: "CA", ConflictsOnly: true, Sort: "trades"}, service.lastOpts)

	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestSenatorListUpstreamFailure(t *testing.T) {
	service := &mockSenatorService{listErr: apperrors.ErrAllMirrorsFailed}
	mux := newSenatorsMux(service)

	req := httptest.NewRequest(http.MethodGet, "/api/senators", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch senators")
}

func TestSenatorProfileNotFound(t *testing.T) {
	service := &mockSenatorService{profErr: apperrors.ErrNotFound}
	mux := newSenatorsMux(service)

	req := httptest.NewRequest(http.MethodGet, "/api/senators/Z999999", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSenatorProfileSuccess(t *testing.T) {
	profile := &models.SenatorProfile{}
	profile.BioguideID = "S000001"
	profile.Name = "Jane Smith"
	profile.RiskLabel = "Clean"
	service := &mockSenatorService{profile: profile}
	mux := newSenatorsMux(service)

	req := httptest.NewRequest(http.MethodGet, "/api/senators/S000001", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bioguideId":"S000001"`)
	assert.Contains(t, rec.Body.String(), `"riskLabel":"Clean"`)
}
