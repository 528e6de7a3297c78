package models

import (
	"time"

	"github.com/google/uuid"
)

// Chamber identifies which chamber a watched politician sits in.
const (
	ChamberSenate = "senate"
	ChamberHouse  = "house"
)

// ValidChamber reports whether c is an accepted chamber value.
func ValidChamber(c string) bool {
	return c == ChamberSenate || c == ChamberHouse
}

// WatchlistEntry is one row of a user's watchlist. The external store
// enforces (UserID, PoliticianID) uniqueness with a database constraint.
type WatchlistEntry struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"userId"`
	PoliticianID  string    `json:"politicianId"`
	PoliticianName string   `json:"politicianName"`
	Party         Party     `json:"party"`
	State         string    `json:"state"` // Two-letter code
	Chamber       string    `json:"chamber"`
	AlertsEnabled bool      `json:"alertsEnabled"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TradeAlert is one recent-disclosure notification shown to a user with
// alerts enabled.
type TradeAlert struct {
	ID             string `json:"id"`
	PoliticianName string `json:"politicianName"`
	Ticker         string `json:"ticker"`
	TradeType      string `json:"tradeType"`
	Amount         string `json:"amount"`
	TradeDate      string `json:"tradeDate"`
	CreatedAt      string `json:"createdAt"`
}
