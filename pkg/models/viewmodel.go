package models

// SenatorViewModel is the list-level read model consumed by the
// presentation layer. Real upstream data always wins over estimates for
// the same field; estimated fields are labeled through the profile's
// provenance markers, never silently mixed in here.
type SenatorViewModel struct {
	ID            string     `json:"id"`
	BioguideID    string     `json:"bioguideId"`
	Name          string     `json:"name"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	State         string     `json:"state"`
	StateAbbr     string     `json:"stateAbbr"`
	Party         Party      `json:"party"`
	Photo         string     `json:"photo"`
	Since         int        `json:"since"`
	TermEnd       string     `json:"termEnd,omitempty"`
	StateRank     string     `json:"stateRank,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Website       string     `json:"website,omitempty"`
	Office        string     `json:"office,omitempty"`
	Twitter       string     `json:"twitter,omitempty"`
	Facebook      string     `json:"facebook,omitempty"`
	YouTube       string     `json:"youtube,omitempty"`
	OpenSecretsID string     `json:"opensecretsId,omitempty"`
	FECID         string     `json:"fecId,omitempty"`
	NetWorth      string     `json:"netWorth"` // "N/A" until a disclosure-backed figure exists
	StockTrades   int        `json:"stockTrades"`
	Committees    []string   `json:"committees"`
	Conflicts     []Conflict `json:"conflicts"`
	ConflictScore int        `json:"conflictScore"`
	RiskLabel     string     `json:"riskLabel"`
}

// SenatorProfile is the full per-senator read model: the view model
// plus every joined and derived dataset, each branch labeled with its
// own provenance so degraded sources are visible to the consumer.
type SenatorProfile struct {
	SenatorViewModel

	Bills         []Bill          `json:"bills"`
	Votes         []Vote          `json:"votes"`
	VoteStats     VoteStatistics  `json:"voteStatistics"`
	VotesSource   Provenance      `json:"votesSource"`
	Trades        []TradeRecord   `json:"trades"`
	TradeStats    TradeStats      `json:"tradeStats"`
	TradesSource  Provenance      `json:"tradesSource"`
	FEC           *FECTotals      `json:"fec,omitempty"`
	LobbyFilings  []LobbyFiling   `json:"lobbyFilings"`
	News          []NewsArticle   `json:"news"`
	NewsSentiment NewsSentiment   `json:"newsSentiment"`
	Bio           *BioSummary     `json:"bio,omitempty"`
	Historical    *HistoricalData `json:"historical,omitempty"`
	DarkMoney     []DarkMoneySource `json:"darkMoney"`
	Lobbyists     []Lobbyist        `json:"lobbyists"`
	Timeline      []TimelineEvent   `json:"timeline"`
}

// ChamberStats aggregates the assembled collection for the dashboard
// stats ticker.
type ChamberStats struct {
	TotalSenators  int `json:"totalSenators"`
	TotalTrades    int `json:"totalTrades"`
	TotalConflicts int `json:"totalConflicts"`
}
