package estimate

import (
	"github.com/civicforum/civic-engine/pkg/models"
)

type lobbyistProfile struct {
	name string
	firm string
}

var lobbyistPool = []lobbyistProfile{
	{"Robert Portman Jr.", "K&L Gates LLP"},
	{"Heather Podesta", "Invariant LLC"},
	{"Thomas Daschle", "Baker Donelson"},
	{"John Ashcroft", "Ashcroft Law Firm"},
	{"Tony Podesta", "Podesta Group"},
	{"Trent Lott", "Squire Patton Boggs"},
	{"John Breaux", "Breaux Lott Leadership"},
	{"Haley Barbour", "BGR Group"},
}

type lobbyClient struct {
	client string
	issues []string
}

// Industry order is fixed; generator output indexes into it.
var lobbyIndustries = []string{"Technology", "Pharmaceuticals", "Defense", "Finance", "Energy"}

var lobbyClientsByIndustry = map[string][]lobbyClient{
	"Technology": {
		{"Amazon.com Inc", []string{"E-Commerce", "Data Privacy", "Labor"}},
		{"Meta Platforms", []string{"Content Moderation", "Antitrust"}},
		{"Google LLC", []string{"Antitrust", "AI Regulation"}},
		{"Microsoft Corp", []string{"Cloud Computing", "AI"}},
	},
	"Pharmaceuticals": {
		{"Pfizer Inc", []string{"Drug Pricing", "Medicare"}},
		{"Johnson & Johnson", []string{"FDA Regulation", "Healthcare"}},
		{"Merck & Co", []string{"Patent Reform", "Clinical Trials"}},
	},
	"Defense": {
		{"Boeing Co", []string{"Defense Contracts", "Trade"}},
		{"Lockheed Martin", []string{"Military Spending", "Space"}},
		{"Raytheon", []string{"Weapons Systems", "Cybersecurity"}},
	},
	"Finance": {
		{"Goldman Sachs", []string{"Banking Regulation", "Tax Policy"}},
		{"JPMorgan Chase", []string{"Consumer Protection", "Fintech"}},
		{"Blackrock", []string{"ESG", "Asset Management"}},
	},
	"Energy": {
		{"Exxon Mobil", []string{"Energy Policy", "Climate"}},
		{"Chevron Corp", []string{"Drilling Rights", "Pipelines"}},
		{"NextEra Energy", []string{"Renewable Energy", "Grid"}},
	},
}

// Lobbyists generates a senator's estimated lobbying relationships:
// two to five lobbyist/client pairs with seed-derived industries and
// spend in the $200K-$1M range.
func Lobbyists(seed int) []models.Lobbyist {
	numLobbyists := (seed % 4) + 2
	result := make([]models.Lobbyist, 0, numLobbyists)

	for i := 0; i < numLobbyists; i++ {
		profile := lobbyistPool[(seed+i)%len(lobbyistPool)]
		industry := lobbyIndustries[(seed+i)%len(lobbyIndustries)]
		clients := lobbyClientsByIndustry[industry]
		clientInfo := clients[(seed+i)%len(clients)]
		amount := int64((seed*(i+1))%800000) + 200000

		result = append(result, models.Lobbyist{
			Name:     profile.name,
			Firm:     profile.firm,
			Client:   clientInfo.client,
			Industry: industry,
			Amount:   formatDollars(amount),
			Issues:   clientInfo.issues,
			Year:     2024,
		})
	}

	return result
}
