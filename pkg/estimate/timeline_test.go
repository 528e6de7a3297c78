package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicforum/civic-engine/pkg/models"
)

func TestTimelineCapsTradeEvents(t *testing.T) {
	events := Timeline(10, 25, models.PartyDemocrat)

	trades := 0
	for _, event := range events {
		if event.Type == "trade" {
			trades++
		}
	}
	assert.Equal(t, 3, trades)
	assert.Len(t, events, 6) // 3 trades + donation + vote + bill
}

func TestTimelineSortedNewestFirst(t *testing.T) {
	events := Timeline(10, 25, models.PartyDemocrat)

	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(t, events[i-1].Date, events[i].Date)
	}
	assert.Equal(t, "2024-10-25", events[len(events)-1].Date)
}

func TestTimelineHeavyTraderVoteConnection(t *testing.T) {
	events := Timeline(10, 25, models.PartyDemocrat)

	for _, event := range events {
		if event.Type == "vote" {
			assert.Equal(t, "Potential conflict with stock holdings", event.Connection)
			return
		}
	}
	t.Fatal("no vote event generated")
}

func TestTimelineDonorFollowsParty(t *testing.T) {
	find := func(events []models.TimelineEvent) string {
		for _, event := range events {
			if event.Type == "donation" {
				return event.Connection
			}
		}
		return ""
	}

	assert.Equal(t, "AFL-CIO", find(Timeline(10, 0, models.PartyDemocrat)))
	assert.Equal(t, "Chamber of Commerce", find(Timeline(10, 0, models.PartyRepublican)))
}

func TestTimelineIsDeterministic(t *testing.T) {
	assert.Equal(t, Timeline(42, 5, models.PartyIndependent), Timeline(42, 5, models.PartyIndependent))
}
