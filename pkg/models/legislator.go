package models

// Party is the normalized single-letter party code.
type Party string

const (
	PartyRepublican  Party = "R"
	PartyDemocrat    Party = "D"
	PartyIndependent Party = "I"
)

// NormalizeParty maps the registry's free-text party name to a code.
// Anything that is not Republican or Democrat(ic) is Independent.
func NormalizeParty(raw string) Party {
	switch raw {
	case "Republican":
		return PartyRepublican
	case "Democrat", "Democratic":
		return PartyDemocrat
	default:
		return PartyIndependent
	}
}

// ValidParty reports whether p is one of the three accepted codes.
func ValidParty(p string) bool {
	switch Party(p) {
	case PartyRepublican, PartyDemocrat, PartyIndependent:
		return true
	}
	return false
}

// Legislator is the canonical identity record for a sitting senator.
// BioguideID is the immutable join key across every other source;
// display names vary by source and must never be used as a key.
type Legislator struct {
	BioguideID string `json:"bioguideId"`
	Name       string `json:"name"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	State      string `json:"state"`     // Full state name
	StateAbbr  string `json:"stateAbbr"` // Two-letter code
	Party      Party  `json:"party"`
	Photo      string `json:"photo"`
	Since      int    `json:"since"` // First senate term start year
	TermEnd    string `json:"termEnd,omitempty"`
	StateRank  string `json:"stateRank,omitempty"` // junior / senior
	Phone      string `json:"phone,omitempty"`
	Website    string `json:"website,omitempty"`
	Office     string `json:"office,omitempty"`

	// Social handles, joined from the social-media registry.
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	YouTube  string `json:"youtube,omitempty"`

	// Cross-reference IDs into other sources.
	OpenSecretsID string `json:"opensecretsId,omitempty"`
	FECID         string `json:"fecId,omitempty"`
}

// StateNames maps two-letter state codes to full names.
var StateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas", "CA": "California",
	"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware", "FL": "Florida", "GA": "Georgia",
	"HI": "Hawaii", "ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi", "MO": "Missouri",
	"MT": "Montana", "NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey",
	"NM": "New Mexico", "NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

// StateName resolves a two-letter code to the full state name, falling
// back to the code itself for territories the table does not cover.
func StateName(abbr string) string {
	if name, ok := StateNames[abbr]; ok {
		return name
	}
	return abbr
}
