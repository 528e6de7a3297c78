package models

// Provenance labels where a dataset came from. Everything the service
// returns is attributable: consumers must be able to tell live upstream
// data from mirrors' fallback rows and from seeded estimates.
type Provenance string

const (
	// SourceLive is data fetched from the authoritative upstream.
	SourceLive Provenance = "live"
	// SourceFallback is the embedded illustrative dataset used when
	// every mirror of a source failed.
	SourceFallback Provenance = "fallback"
	// SourceEstimated is deterministic seeded synthetic data.
	SourceEstimated Provenance = "estimated"
	// SourceSample is an embedded sample payload substituted for a keyed
	// API whose key is absent.
	SourceSample Provenance = "sample"
)

// NetWorthPoint is one year of an estimated net-worth history. Asset
// and liability bounds are ranges, mirroring how financial disclosures
// report them.
type NetWorthPoint struct {
	Year           int   `json:"year"`
	NetWorth       int64 `json:"netWorth"`
	AssetsMin      int64 `json:"assetsMin"`
	AssetsMax      int64 `json:"assetsMax"`
	LiabilitiesMin int64 `json:"liabilitiesMin"`
	LiabilitiesMax int64 `json:"liabilitiesMax"`
}

// TradingActivityPoint is one month of estimated trading activity.
// EstimatedValue is a cumulative index starting at 100, compared
// against the fixed S&P 500 reference series.
type TradingActivityPoint struct {
	Month          string  `json:"month"`
	Trades         int     `json:"trades"`
	Buys           int     `json:"buys"`
	Sells          int     `json:"sells"`
	EstimatedValue float64 `json:"estimatedValue"`
	SP500          float64 `json:"sp500"`
}

// TradingPerformancePoint is the month-over-month return view of the
// activity series.
type TradingPerformancePoint struct {
	Month         string  `json:"month"`
	SenatorReturn float64 `json:"senatorReturn"`
	SP500Return   float64 `json:"sp500Return"`
	TradeCount    int     `json:"tradeCount"`
}

// TradingSummary aggregates a full year of estimated activity.
type TradingSummary struct {
	TotalTrades     int     `json:"totalTrades"`
	EstimatedGain   int64   `json:"estimatedGain"`
	WinRate         int     `json:"winRate"`
	SP500Comparison float64 `json:"sp500Comparison"`
}

// HistoricalData bundles every estimated series for one senator.
type HistoricalData struct {
	BioguideID         string                    `json:"bioguideId"`
	NetWorth           []NetWorthPoint           `json:"netWorth"`
	TradingActivity    []TradingActivityPoint    `json:"tradingActivity"`
	TradingPerformance []TradingPerformancePoint `json:"tradingPerformance"`
	TradingSummary     TradingSummary            `json:"tradingSummary"`
	Source             Provenance                `json:"source"`
	Disclaimer         string                    `json:"disclaimer,omitempty"`
}

// DarkMoneySource is one estimated undisclosed-spending organization.
type DarkMoneySource struct {
	Name      string `json:"name"`
	Type      string `json:"type"` // super_pac / 501c4
	Amount    string `json:"amount"`
	Cycle     string `json:"cycle"`
	Disclosed bool   `json:"disclosed"`
}

// Lobbyist is one estimated lobbying relationship.
type Lobbyist struct {
	Name     string   `json:"name"`
	Firm     string   `json:"firm"`
	Client   string   `json:"client"`
	Industry string   `json:"industry"`
	Amount   string   `json:"amount"`
	Issues   []string `json:"issues"`
	Year     int      `json:"year"`
}

// TimelineEvent is one entry in the estimated activity timeline.
type TimelineEvent struct {
	Date        string           `json:"date"`
	Type        string           `json:"type"` // trade / vote / donation / bill / scandal
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Severity    ConflictSeverity `json:"severity,omitempty"`
	Connection  string           `json:"connection,omitempty"`
}

// PartyVoteCount is one party's yea/nay split on a roll call.
type PartyVoteCount struct {
	Yea int `json:"yea"`
	Nay int `json:"nay"`
}

// Vote is one roll-call vote with the member's recorded position.
type Vote struct {
	RollCallNumber int            `json:"rollCallNumber"`
	Date           string         `json:"date"`
	Question       string         `json:"question"`
	Result         string         `json:"result"`
	Description    string         `json:"description"`
	BillNumber     string         `json:"billNumber,omitempty"`
	BillTitle      string         `json:"billTitle,omitempty"`
	MemberVote     string         `json:"memberVote"` // Yea / Nay / Not Voting / Present
	Democratic     PartyVoteCount `json:"democraticVote"`
	Republican     PartyVoteCount `json:"republicanVote"`
}

// VoteStatistics summarizes a member's recent roll-call record.
type VoteStatistics struct {
	TotalVotes        int `json:"totalVotes"`
	YeaVotes          int `json:"yeaVotes"`
	NayVotes          int `json:"nayVotes"`
	MissedVotes       int `json:"missedVotes"`
	ParticipationRate int `json:"participationRate"`
}

// Bill is one piece of sponsored legislation.
type Bill struct {
	Number           string `json:"number"`
	Title            string `json:"title"`
	Type             string `json:"type"`
	Congress         int    `json:"congress"`
	IntroducedDate   string `json:"introducedDate"`
	LatestAction     string `json:"latestAction"`
	LatestActionDate string `json:"latestActionDate,omitempty"`
	URL              string `json:"url,omitempty"`
}

// LobbyFiling is one Lobbying Disclosure Act filing touching a senator.
type LobbyFiling struct {
	RegistrantName string   `json:"registrantName"`
	ClientName     string   `json:"clientName"`
	FilingType     string   `json:"filingType"`
	FilingYear     int      `json:"filingYear"`
	Amount         string   `json:"amount,omitempty"`
	Issues         []string `json:"issues"`
}

// NewsArticle is one indexed news mention.
type NewsArticle struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Source   string `json:"source"`
	Date     string `json:"date"`
	Image    string `json:"image,omitempty"`
	Language string `json:"language,omitempty"`
}

// NewsSentiment is the mention-count split. The index provides no real
// scoring, so all articles count as neutral.
type NewsSentiment struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// BioSummary is an encyclopedia extract for one senator.
type BioSummary struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Thumbnail string `json:"thumbnail,omitempty"`
	URL       string `json:"url"`
}

// FECTotals is a candidate's cycle-scoped campaign finance summary.
type FECTotals struct {
	Receipts                float64 `json:"receipts"`
	Disbursements           float64 `json:"disbursements"`
	CashOnHand              float64 `json:"cashOnHand"`
	Debt                    float64 `json:"debt"`
	IndividualContributions float64 `json:"individualContributions"`
	PACContributions        float64 `json:"pacContributions"`
	Cycle                   int     `json:"cycle"`
}
