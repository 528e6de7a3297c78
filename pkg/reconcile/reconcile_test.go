package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicforum/civic-engine/pkg/models"
)

func canonical() []models.Legislator {
	return []models.Legislator{
		{BioguideID: "S000001", Name: "Jane Smith", LastName: "Smith"},
		{BioguideID: "A000002", Name: "Alan Adams", LastName: "Adams"},
	}
}

func TestMatchByName(t *testing.T) {
	tests := []struct {
		name     string
		freeText string
		want     string // bioguide ID, empty for no match
	}{
		{"exact display name", "Jane Smith", "S000001"},
		{"honorific prefix", "Sen. Jane Smith", "S000001"},
		{"bare surname", "Smith", "S000001"},
		{"comma-reversed", "Smith, Jane", "S000001"},
		{"case insensitive", "jane SMITH", "S000001"},
		{"unknown name", "Jane Doe", ""},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := MatchByName(tt.freeText, canonical())
			if tt.want == "" {
				assert.Nil(t, matched)
				return
			}
			require.NotNil(t, matched)
			assert.Equal(t, tt.want, matched.BioguideID)
		})
	}
}

func TestMatchByNameFirstMatchWins(t *testing.T) {
	shared := []models.Legislator{
		{BioguideID: "S000010", Name: "Tim Scott", LastName: "Scott"},
		{BioguideID: "S000020", Name: "Rick Scott", LastName: "Scott"},
	}

	matched := MatchByName("Scott", shared)
	require.NotNil(t, matched)
	assert.Equal(t, "S000010", matched.BioguideID)
}

func TestNameMatches(t *testing.T) {
	assert.True(t, NameMatches("Jane Smith", "Jane Smith"))
	assert.True(t, NameMatches("Jane Smith", "jane smith"))
	assert.True(t, NameMatches("Thomas H Tuberville", "Tommy Tuberville"))
	assert.False(t, NameMatches("Jane Smith", "Alan Adams"))
	assert.False(t, NameMatches("", "Jane Smith"))
	assert.False(t, NameMatches("Jane Smith", ""))
}

func TestAggregateByMatchedEntity(t *testing.T) {
	records := []models.TradeRecord{
		{Senator: "Sen. Jane Smith", Ticker: "NVDA", Type: "Purchase"},
		{Senator: "Jane Smith", Ticker: "NVDA", Type: "Sale (Full)"},
		{Senator: "Jane Smith", Ticker: "AAPL", Type: "Purchase"},
		{Senator: "Alan Adams", Ticker: "XOM", Type: "Purchase"},
		{Senator: "Nobody Known", Ticker: "ZZZ", Type: "Purchase"},
	}

	stats := AggregateByMatchedEntity(records, canonical())

	require.Len(t, stats, 2)
	smith := stats["S000001"]
	require.NotNil(t, smith)
	assert.Equal(t, 3, smith.Count)
	assert.Len(t, smith.Tickers, 2)
	assert.Len(t, smith.Types, 2)
	assert.Equal(t, 1, stats["A000002"].Count)
}

func TestActiveTradersFloor(t *testing.T) {
	records := []models.TradeRecord{
		{Senator: "Jane Smith", Ticker: "NVDA", Type: "Purchase"},
		{Senator: "Jane Smith", Ticker: "AAPL", Type: "Sale"},
		{Senator: "Jane Smith", Ticker: "MSFT", Type: "Purchase"},
		{Senator: "Alan Adams", Ticker: "XOM", Type: "Purchase"},
	}

	active := ActiveTraders(AggregateByMatchedEntity(records, canonical()))

	require.Len(t, active, 1)
	assert.Contains(t, active, "S000001")
}

func TestFilterTradesForName(t *testing.T) {
	records := []models.TradeRecord{
		{Senator: "Thomas H Tuberville", Ticker: "NVDA"},
		{Senator: "Jane Smith", Ticker: "AAPL"},
	}

	matched := FilterTradesForName(records, "Tommy Tuberville")
	require.Len(t, matched, 1)
	assert.Equal(t, "NVDA", matched[0].Ticker)

	assert.Empty(t, FilterTradesForName(records, "Jane Doe"))
}
