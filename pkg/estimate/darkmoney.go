package estimate

import (
	"github.com/civicforum/civic-engine/pkg/models"
)

var superPACs = []string{
	"American Crossroads", "Senate Majority PAC", "Senate Leadership Fund",
	"Priorities USA Action", "Club for Growth Action", "Independence USA PAC",
}

var c4Groups = []string{
	"Americans for Prosperity", "Majority Forward", "One Nation",
	"Crossroads GPS", "American Action Network", "League of Conservation Voters",
}

// DarkMoney generates a senator's estimated undisclosed-spending
// sources. Whether any exist at all is itself seed-derived: one third
// of seeds produce an empty result, and that emptiness is stable.
func DarkMoney(seed int) []models.DarkMoneySource {
	if seed%3 == 0 {
		return []models.DarkMoneySource{}
	}

	numSources := (seed % 4) + 1
	sources := make([]models.DarkMoneySource, 0, numSources)

	for i := 0; i < numSources; i++ {
		isSuper := (seed+i)%2 == 0
		orgList := c4Groups
		orgType := "501c4"
		if isSuper {
			orgList = superPACs
			orgType = "super_pac"
		}
		amount := int64((seed*(i+1))%2000000) + 500000

		sources = append(sources, models.DarkMoneySource{
			Name:      orgList[(seed+i)%len(orgList)],
			Type:      orgType,
			Amount:    formatMillions(amount),
			Cycle:     "2024",
			Disclosed: (seed+i)%3 == 0,
		})
	}

	return sources
}
