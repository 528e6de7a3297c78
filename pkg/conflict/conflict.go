// Package conflict derives conflict-of-interest signals and the 0-100
// conflict score from aggregated data. The score is this system's own
// synthetic metric, not a recognized external rating; the weights and
// label thresholds are policy, not universal constants.
package conflict

import (
	"fmt"
	"strings"

	"github.com/civicforum/civic-engine/pkg/models"
)

// sensitiveCommittees are the committee-name keywords that, combined
// with trading activity, flag potential access to non-public information.
var sensitiveCommittees = []string{"finance", "banking", "commerce", "energy"}

// Signals are the aggregated inputs the detector consumes. All are
// computed fresh per assembly; nothing here is persisted.
type Signals struct {
	Committees       []string
	TradeCount       int
	PartyVotePercent int
}

// Severity weights for the score sum.
const (
	weightHigh   = 30
	weightMedium = 15
	weightLow    = 5
	scoreCap     = 100
)

// Thresholds are the score cutoffs for risk labels.
type Thresholds struct {
	HighRisk     int
	ModerateRisk int
}

// DefaultThresholds is the shipped labeling policy.
var DefaultThresholds = Thresholds{HighRisk: 60, ModerateRisk: 30}

// Detect applies every rule that matches and returns the signals in
// rule-evaluation order: committee/trade overlap first, then raw
// trade-volume thresholds. The set is order-independent; the display
// order is not.
func Detect(signals Signals) []models.Conflict {
	detected := []models.Conflict{}

	var financeCommittees []string
	for _, committee := range signals.Committees {
		lower := strings.ToLower(committee)
		for _, keyword := range sensitiveCommittees {
			if strings.Contains(lower, keyword) {
				financeCommittees = append(financeCommittees, committee)
				break
			}
		}
	}

	if len(financeCommittees) > 0 && signals.TradeCount > 10 {
		severity := models.SeverityMedium
		if signals.TradeCount > 50 {
			severity = models.SeverityHigh
		}
		detected = append(detected, models.Conflict{
			Category: models.ConflictInsiderTrading,
			Severity: severity,
			Title:    "Committee + Stock Trade Overlap",
			Description: fmt.Sprintf(
				"Sits on %s while making %d stock trades. Potential access to non-public information.",
				financeCommittees[0], signals.TradeCount),
		})
	}

	if signals.TradeCount > 100 {
		detected = append(detected, models.Conflict{
			Category: models.ConflictInsiderTrading,
			Severity: models.SeverityHigh,
			Title:    "Unusually High Trading Activity",
			Description: fmt.Sprintf(
				"%d stock trades is significantly above average for senators. May warrant scrutiny.",
				signals.TradeCount),
		})
	} else if signals.TradeCount > 50 {
		detected = append(detected, models.Conflict{
			Category: models.ConflictInsiderTrading,
			Severity: models.SeverityMedium,
			Title:    "Above Average Trading",
			Description: fmt.Sprintf(
				"%d trades is above the Senate average. Worth monitoring.",
				signals.TradeCount),
		})
	}

	return detected
}

// Score sums severity weights across the signal set, capped at 100.
// It is a pure function of the signals: recompute it, never cache it
// independently of its inputs.
func Score(conflicts []models.Conflict) int {
	score := 0
	for _, c := range conflicts {
		switch c.Severity {
		case models.SeverityHigh:
			score += weightHigh
		case models.SeverityMedium:
			score += weightMedium
		default:
			score += weightLow
		}
	}
	if score > scoreCap {
		score = scoreCap
	}
	return score
}

// Label maps a score to its risk label under the given thresholds.
func (t Thresholds) Label(score int) string {
	switch {
	case score >= t.HighRisk:
		return "High Risk"
	case score >= t.ModerateRisk:
		return "Moderate Risk"
	case score > 0:
		return "Low Risk"
	default:
		return "Clean"
	}
}
