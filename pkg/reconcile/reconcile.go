// Package reconcile joins free-text senator names appearing in one
// source against canonical legislator records from another. Display
// names are not reliable join keys - sources render "John Smith",
// "Smith, John", or a bare surname - so matching is a deliberate
// last-name heuristic, documented as such.
package reconcile

import (
	"strings"

	"github.com/civicforum/civic-engine/pkg/models"
)

// MinActiveTrades is the significance floor for "active trader" style
// rollups: entities with fewer reconciled trades are excluded. This is
// a significance filter, not a data-quality filter.
const MinActiveTrades = 3

// MatchByName resolves a free-text name against the canonical set.
// Both sides are lowercased; a candidate matches when its last name is
// a substring of the free text, or the free text's last
// whitespace-token equals the last name. Permissive by design:
// "Sen. Smith" matches canonical "John Smith". When two legislators
// share a surname the first match in input order wins - there is no
// further disambiguation; callers needing stricter behavior should
// pre-filter the canonical set (e.g. by state). Returns nil when
// nothing matches.
func MatchByName(freeText string, canonical []models.Legislator) *models.Legislator {
	name := strings.ToLower(strings.TrimSpace(freeText))
	if name == "" {
		return nil
	}

	tokens := strings.Fields(name)
	lastToken := tokens[len(tokens)-1]

	for i := range canonical {
		lastName := strings.ToLower(canonical[i].LastName)
		if lastName == "" {
			continue
		}
		if strings.Contains(name, lastName) || lastToken == lastName {
			return &canonical[i]
		}
	}
	return nil
}

// NameMatches reports whether a trade record's free-text senator field
// refers to the queried name, using the dataset's own loose convention:
// the record name contains the query, or the query contains the record
// name's last token.
func NameMatches(recordName, queryName string) bool {
	record := strings.ToLower(recordName)
	query := strings.ToLower(queryName)
	if record == "" || query == "" {
		return false
	}
	if strings.Contains(record, query) {
		return true
	}
	tokens := strings.Fields(record)
	return strings.Contains(query, tokens[len(tokens)-1])
}

// EntityStats aggregates one matched legislator's trade records.
type EntityStats struct {
	Legislator *models.Legislator
	Count      int
	Tickers    map[string]struct{}
	Types      map[string]struct{}
}

// AggregateByMatchedEntity reconciles each record's free-text name and
// accumulates per-entity counts, distinct tickers, and distinct
// transaction types, keyed by bioguide ID. Records that match no
// canonical legislator are excluded - never guessed at.
func AggregateByMatchedEntity(records []models.TradeRecord, canonical []models.Legislator) map[string]*EntityStats {
	stats := make(map[string]*EntityStats)

	for _, record := range records {
		matched := MatchByName(record.Senator, canonical)
		if matched == nil {
			continue
		}

		entry, ok := stats[matched.BioguideID]
		if !ok {
			entry = &EntityStats{
				Legislator: matched,
				Tickers:    make(map[string]struct{}),
				Types:      make(map[string]struct{}),
			}
			stats[matched.BioguideID] = entry
		}

		entry.Count++
		if record.Ticker != "" {
			entry.Tickers[record.Ticker] = struct{}{}
		}
		if record.Type != "" {
			entry.Types[strings.ToLower(record.Type)] = struct{}{}
		}
	}

	return stats
}

// ActiveTraders filters an aggregation down to entities at or above the
// significance floor.
func ActiveTraders(stats map[string]*EntityStats) map[string]*EntityStats {
	active := make(map[string]*EntityStats)
	for id, entry := range stats {
		if entry.Count >= MinActiveTrades {
			active[id] = entry
		}
	}
	return active
}

// FilterTradesForName returns the subset of records whose senator field
// refers to the queried free-text name.
func FilterTradesForName(records []models.TradeRecord, name string) []models.TradeRecord {
	var matched []models.TradeRecord
	for _, record := range records {
		if NameMatches(record.Senator, name) {
			matched = append(matched, record)
		}
	}
	return matched
}
