package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLobbyistsSeededRelationships(t *testing.T) {
	lobbyists := Lobbyists(5)

	require.Len(t, lobbyists, 3)
	first := lobbyists[0]
	assert.Equal(t, "Trent Lott", first.Name)
	assert.Equal(t, "Squire Patton Boggs", first.Firm)
	assert.Equal(t, "Technology", first.Industry)
	assert.Equal(t, "Meta Platforms", first.Client)
	assert.Equal(t, "$200,005", first.Amount)
	assert.Equal(t, 2024, first.Year)
}

func TestLobbyistsCountRange(t *testing.T) {
	for seed := 0; seed < 8; seed++ {
		lobbyists := Lobbyists(seed)
		assert.GreaterOrEqual(t, len(lobbyists), 2)
		assert.LessOrEqual(t, len(lobbyists), 5)
	}
}

func TestLobbyistsClientMatchesIndustry(t *testing.T) {
	for _, l := range Lobbyists(123) {
		clients := lobbyClientsByIndustry[l.Industry]
		found := false
		for _, c := range clients {
			if c.client == l.Client {
				found = true
			}
		}
		assert.True(t, found, "client %q must belong to industry %q", l.Client, l.Industry)
	}
}

func TestLobbyistsIsDeterministic(t *testing.T) {
	assert.Equal(t, Lobbyists(123), Lobbyists(123))
}
