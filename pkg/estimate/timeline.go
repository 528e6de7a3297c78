package estimate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/civicforum/civic-engine/pkg/models"
)

var timelineTickers = []string{"NVDA", "AAPL", "MSFT", "GOOGL", "META", "AMZN", "JPM", "XOM", "LMT", "PFE"}

var timelineAmounts = []string{"$50K-$100K", "$100K-$250K", "$250K-$500K", "$500K-$1M", "$1M-$5M"}

var timelineCommittees = []string{"Commerce", "Finance", "Armed Services", "Energy", "Banking", "Health"}

// Timeline generates the estimated activity timeline shown on a
// senator's profile: up to three trade events plus a donation, a vote,
// and a bill event, sorted newest first.
func Timeline(seed int, stockTrades int, party models.Party) []models.TimelineEvent {
	var events []models.TimelineEvent

	numTrades := stockTrades
	if numTrades > 3 {
		numTrades = 3
	}
	if numTrades == 0 {
		numTrades = (seed % 3) + 1
	}

	for i := 0; i < numTrades; i++ {
		ticker := timelineTickers[(seed+i)%len(timelineTickers)]
		amount := timelineAmounts[(seed+i)%len(timelineAmounts)]
		isBuy := (seed+i)%2 == 0
		day := 25 - i*5

		var severity models.ConflictSeverity
		switch {
		case strings.Contains(amount, "$500K") || strings.Contains(amount, "$1M"):
			severity = models.SeverityHigh
		case strings.Contains(amount, "$250K"):
			severity = models.SeverityMedium
		}

		action, verb := "Sold", "sale"
		if isBuy {
			action, verb = "Purchased", "purchase"
		}

		event := models.TimelineEvent{
			Date:        fmt.Sprintf("2024-11-%02d", day),
			Type:        "trade",
			Title:       fmt.Sprintf("%s %s in %s", action, amount, ticker),
			Description: fmt.Sprintf("Stock %s disclosed in periodic transaction report", verb),
			Severity:    severity,
		}
		if severity != "" {
			event.Connection = fmt.Sprintf("%s Committee Member", timelineCommittees[(seed+i)%len(timelineCommittees)])
		}
		events = append(events, event)
	}

	pacAmount := int64(((seed % 50) + 10) * 1000)
	donorKind, donorName := "Labor", "AFL-CIO"
	if party == models.PartyRepublican {
		donorKind, donorName = "Business", "Chamber of Commerce"
	}
	events = append(events, models.TimelineEvent{
		Date:        "2024-11-10",
		Type:        "donation",
		Title:       fmt.Sprintf("Received %s from Industry PAC", formatDollars(pacAmount)),
		Description: fmt.Sprintf("%s PAC contribution", donorKind),
		Connection:  donorName,
	})

	position := "NAY"
	if seed%2 == 0 {
		position = "YEA"
	}
	voteEvent := models.TimelineEvent{
		Date:        "2024-11-08",
		Type:        "vote",
		Title:       fmt.Sprintf("Voted %s on Key Legislation", position),
		Description: "Legislative vote on committee-related bill",
		Severity:    models.SeverityMedium,
	}
	if stockTrades > 20 {
		voteEvent.Connection = "Potential conflict with stock holdings"
	}
	events = append(events, voteEvent)

	billSubject := "Consumer protection"
	if party == models.PartyRepublican {
		billSubject = "Tax reform"
	}
	events = append(events, models.TimelineEvent{
		Date:        "2024-10-25",
		Type:        "bill",
		Title:       fmt.Sprintf("Co-sponsored S.%d", seed%9000+1000),
		Description: fmt.Sprintf("%s legislation", billSubject),
	})

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date > events[j].Date
	})
	return events
}
