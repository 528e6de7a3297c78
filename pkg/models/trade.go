package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AmountBand is a disclosed transaction amount range. STOCK Act filings
// report ranges, never exact figures, so both bounds are preserved; the
// midpoint is the only sanctioned single-value representative and is
// what volume rollups use.
type AmountBand struct {
	Raw string `json:"raw"`
	Min int64  `json:"min"`
	Max int64  `json:"max"`
}

// Midpoint returns the band's midpoint in whole dollars.
func (b AmountBand) Midpoint() int64 {
	return (b.Min + b.Max) / 2
}

// ParseAmountBand parses a disclosed range string such as
// "$15,001 - $50,000". Single-bound strings like "Over $50,000,000"
// parse with Max == Min. The raw string is always retained.
func ParseAmountBand(raw string) (AmountBand, error) {
	band := AmountBand{Raw: raw}

	var values []int64
	for _, field := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == '-' || r == ' '
	}) {
		cleaned := strings.ReplaceAll(strings.TrimPrefix(field, "$"), ",", "")
		if cleaned == "" {
			continue
		}
		v, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}

	switch len(values) {
	case 0:
		return band, fmt.Errorf("no dollar values in amount %q", raw)
	case 1:
		band.Min, band.Max = values[0], values[0]
	default:
		band.Min, band.Max = values[0], values[1]
	}
	return band, nil
}

// TradeRecord is one disclosed securities transaction. Senator is the
// filer's free-text name as it appears in the dataset, not a bioguide
// ID: it must go through reconciliation before any per-senator rollup.
type TradeRecord struct {
	Senator          string     `json:"senator,omitempty"`
	Ticker           string     `json:"ticker,omitempty"` // Dataset may omit
	AssetDescription string     `json:"assetDescription"`
	AssetType        string     `json:"assetType,omitempty"`
	Type             string     `json:"type"` // Purchase / Sale / Exchange, free text
	Amount           AmountBand `json:"amount"`
	TransactionDate  string     `json:"transactionDate"`
	DisclosureDate   string     `json:"disclosureDate"` // Always >= TransactionDate
	PTRLink          string     `json:"ptrLink,omitempty"`
	Owner            string     `json:"owner,omitempty"` // Self / Spouse / Joint / Dependent
}

// IsPurchase matches the dataset's case-insensitive free-text type field.
func (t TradeRecord) IsPurchase() bool {
	return strings.Contains(strings.ToLower(t.Type), "purchase")
}

// IsSale matches sales and partial sales.
func (t TradeRecord) IsSale() bool {
	return strings.Contains(strings.ToLower(t.Type), "sale")
}

// TradeStats summarizes a reconciled senator's trade records.
type TradeStats struct {
	Total     int `json:"total"`
	Purchases int `json:"purchases"`
	Sales     int `json:"sales"`
}
