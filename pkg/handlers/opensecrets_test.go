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

	"github.com/civicforum/civic-engine/pkg/models"
	"github.com/civicforum/civic-engine/pkg/upstream"
)

type mockOpenSecrets struct {
	result upstream.OpenSecretsResult
	called bool
}

func (m *mockOpenSecrets) Query(ctx context.Context, method, cid, cycle string) upstream.OpenSecretsResult {
	m.called = true
	return m.result
}

func newOpenSecretsMux(client OpenSecretsQuerier) *http.ServeMux {
	mux := http.NewServeMux()
	NewOpenSecretsHandler(client, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestOpenSecretsRejectsInvalidInputBeforeQuerying(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown method", "/api/opensecrets?method=dropTables&cid=N00000001"},
		{"missing method", "/api/opensecrets?cid=N00000001"},
		{"bad cycle", "/api/opensecrets?method=candSummary&cid=N00000001&cycle=1999"},
		{"bad cid", "/api/opensecrets?method=candSummary&cid=bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockOpenSecrets{}
			mux := newOpenSecretsMux(client)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, client.called, "invalid input must never reach the client")
		})
	}
}

func TestOpenSecretsSampleDataCarriesWarning(t *testing.T) {
	client := &mockOpenSecrets{result: upstream.OpenSecretsResult{
		Data:       json.RawMessage(`{"response":{"contributors":{"contributor":[{"@attributes":{"org_name":"Alphabet Inc","total":"$125,000"}}]}}}`),
		Warning:    "OpenSecrets API key not configured. Using sample data.",
		Provenance: models.SourceSample,
	}}
	mux := newOpenSecretsMux(client)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/opensecrets?method=candContrib&cid=N00000001", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "OpenSecrets API key not configured. Using sample data.", resp.Warning)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Alphabet Inc")
	assert.Contains(t, string(raw), "$125,000")
}

func TestOpenSecretsDefaultsCycle(t *testing.T) {
	client := &mockOpenSecrets{result: upstream.OpenSecretsResult{
		Data:       json.RawMessage(`{}`),
		Provenance: models.SourceLive,
	}}
	mux := newOpenSecretsMux(client)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/opensecrets?method=candSummary&cid=N00000001", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, client.called)
}
