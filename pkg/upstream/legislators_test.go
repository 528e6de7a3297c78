package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civicforum/civic-engine/pkg/cache"
	"github.com/civicforum/civic-engine/pkg/models"
)

const rosterPayload = `[
  {
    "id": {"bioguide": "S000001", "opensecrets": "N00000001", "fec": ["S0CA00001"]},
    "name": {"first": "Jane", "last": "Smith", "official_full": "Jane Smith"},
    "terms": [
      {"type": "sen", "start": "2019-01-03", "end": "2031-01-03", "state": "CA", "party": "Democrat", "state_rank": "senior", "phone": "202-224-0001"}
    ]
  },
  {
    "id": {"bioguide": "H000001"},
    "name": {"first": "Harry", "last": "House", "official_full": "Harry House"},
    "terms": [
      {"type": "rep", "start": "2023-01-03", "end": "2031-01-03", "state": "TX", "party": "Republican"}
    ]
  },
  {
    "id": {"bioguide": "S000002"},
    "name": {"first": "Frank", "last": "Former", "official_full": "Frank Former"},
    "terms": [
      {"type": "sen", "start": "2013-01-03", "end": "2019-01-03", "state": "OH", "party": "Republican"}
    ]
  }
]`

const socialPayload = `[
  {"id": {"bioguide": "S000001"}, "social": {"twitter": "SenSmith", "facebook": "senatorsmith"}}
]`

func newTestLegislatorClient(t *testing.T, rosterURL, socialURL string) *LegislatorClient {
	t.Helper()
	resolver := NewResolver(zap.NewNop(), time.Second)
	client := NewLegislatorClient(resolver, cache.NewMemory(), zap.NewNop(),
		[]string{rosterURL}, []string{socialURL}, time.Hour)
	client.now = func() time.Time { return time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC) }
	return client
}

func TestCurrentSenatorsMapsAndFilters(t *testing.T) {
	roster := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rosterPayload))
	}))
	defer roster.Close()
	social := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(socialPayload))
	}))
	defer social.Close()

	client := newTestLegislatorClient(t, roster.URL, social.URL)
	senators, err := client.CurrentSenators(context.Background())

	require.NoError(t, err)
	require.Len(t, senators, 1, "house members and expired terms are filtered")

	senator := senators[0]
	assert.Equal(t, "S000001", senator.BioguideID)
	assert.Equal(t, "Jane Smith", senator.Name)
	assert.Equal(t, models.PartyDemocrat, senator.Party)
	assert.Equal(t, "California", senator.State)
	assert.Equal(t, "CA", senator.StateAbbr)
	assert.Equal(t, 2019, senator.Since)
	assert.Equal(t, "SenSmith", senator.Twitter)
	assert.Equal(t, "https://www.congress.gov/img/member/s000001_200.jpg", senator.Photo)
	assert.Equal(t, "S0CA00001", senator.FECID)
}

func TestCurrentSenatorsFallsBackToSecondRosterMirror(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()
	roster := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rosterPayload))
	}))
	defer roster.Close()
	social := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(socialPayload))
	}))
	defer social.Close()

	resolver := NewResolver(zap.NewNop(), time.Second)
	client := NewLegislatorClient(resolver, cache.NewMemory(), zap.NewNop(),
		[]string{broken.URL, roster.URL}, []string{social.URL}, time.Hour)
	client.now = func() time.Time { return time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC) }

	senators, err := client.CurrentSenators(context.Background())

	require.NoError(t, err)
	require.Len(t, senators, 1)
	assert.Equal(t, "Jane Smith", senators[0].Name)
}

func TestCurrentSenatorsSocialFailureDegrades(t *testing.T) {
	roster := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rosterPayload))
	}))
	defer roster.Close()
	social := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer social.Close()

	client := newTestLegislatorClient(t, roster.URL, social.URL)
	senators, err := client.CurrentSenators(context.Background())

	require.NoError(t, err, "social outage must not fail the roster")
	require.Len(t, senators, 1)
	assert.Empty(t, senators[0].Twitter)
}

func TestCurrentSenatorsRosterFailureIsFatal(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()
	social := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(socialPayload))
	}))
	defer social.Close()

	client := newTestLegislatorClient(t, broken.URL, social.URL)
	_, err := client.CurrentSenators(context.Background())

	assert.Error(t, err)
}

func TestCurrentSenatorsServedFromCache(t *testing.T) {
	hits := 0
	roster := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(rosterPayload))
	}))
	defer roster.Close()
	social := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(socialPayload))
	}))
	defer social.Close()

	client := newTestLegislatorClient(t, roster.URL, social.URL)

	_, err := client.CurrentSenators(context.Background())
	require.NoError(t, err)
	_, err = client.CurrentSenators(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second call should be served from cache")
}
