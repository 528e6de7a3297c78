package models

// ConflictCategory classifies a detected conflict signal.
type ConflictCategory string

const (
	ConflictInsiderTrading    ConflictCategory = "insider_trading"
	ConflictPayToPlay         ConflictCategory = "pay_to_play"
	ConflictLobbyingInfluence ConflictCategory = "lobbying_influence"
	ConflictUnexplainedWealth ConflictCategory = "unexplained_wealth"
)

// ConflictSeverity is the weight class of a signal.
type ConflictSeverity string

const (
	SeverityHigh   ConflictSeverity = "high"
	SeverityMedium ConflictSeverity = "medium"
	SeverityLow    ConflictSeverity = "low"
)

// Conflict is a derived signal, computed fresh on every assembly from
// current trade counts and committee lists. Never persisted.
type Conflict struct {
	Category    ConflictCategory `json:"type"`
	Severity    ConflictSeverity `json:"severity"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}
