package estimate

import (
	"github.com/civicforum/civic-engine/pkg/models"
)

// votePositions is the cycle of member positions assigned across the
// fallback slate. Roughly 70% yea, 20% nay, 10% missed.
var votePositions = []string{"Yea", "Yea", "Yea", "Yea", "Nay", "Yea", "Yea", "Nay", "Yea", "Not Voting"}

// fallbackVoteSlate is a fixed set of recent-style Senate roll calls
// used when the congressional API cannot be queried. Party splits are
// illustrative; member positions are seeded per legislator.
var fallbackVoteSlate = []models.Vote{
	{
		RollCallNumber: 325, Date: "2024-11-15",
		Question: "On the Motion to Proceed", Result: "Motion Agreed to",
		Description: "A bill to provide funding for federal agencies",
		BillNumber:  "H.R.9456", BillTitle: "Continuing Appropriations Act, 2025",
		Democratic: models.PartyVoteCount{Yea: 48, Nay: 0}, Republican: models.PartyVoteCount{Yea: 12, Nay: 37},
	},
	{
		RollCallNumber: 318, Date: "2024-11-12",
		Question: "On the Nomination", Result: "Nomination Confirmed",
		Description: "Nomination of judicial appointment",
		BillTitle:   "District Court Nomination",
		Democratic:  models.PartyVoteCount{Yea: 49, Nay: 0}, Republican: models.PartyVoteCount{Yea: 5, Nay: 44},
	},
	{
		RollCallNumber: 312, Date: "2024-11-08",
		Question: "On Passage of the Bill", Result: "Bill Passed",
		Description: "National Defense Authorization Act for Fiscal Year 2025",
		BillNumber:  "S.4638", BillTitle: "National Defense Authorization Act",
		Democratic: models.PartyVoteCount{Yea: 42, Nay: 6}, Republican: models.PartyVoteCount{Yea: 45, Nay: 4},
	},
	{
		RollCallNumber: 305, Date: "2024-11-05",
		Question: "On the Cloture Motion", Result: "Cloture Motion Agreed to",
		Description: "Motion to invoke cloture on judicial nomination",
		BillTitle:   "Circuit Court Nomination",
		Democratic:  models.PartyVoteCount{Yea: 48, Nay: 1}, Republican: models.PartyVoteCount{Yea: 8, Nay: 41},
	},
	{
		RollCallNumber: 298, Date: "2024-10-30",
		Question: "On the Amendment", Result: "Amendment Rejected",
		Description: "Amendment to reduce spending by 5%",
		BillNumber:  "S.Amdt.3245", BillTitle: "Spending Reduction Amendment",
		Democratic: models.PartyVoteCount{Yea: 2, Nay: 47}, Republican: models.PartyVoteCount{Yea: 42, Nay: 7},
	},
	{
		RollCallNumber: 291, Date: "2024-10-25",
		Question: "On Passage of the Bill", Result: "Bill Passed",
		Description: "Veterans Health Care Improvement Act",
		BillNumber:  "S.4521", BillTitle: "Veterans Health Care Improvement Act",
		Democratic: models.PartyVoteCount{Yea: 49, Nay: 0}, Republican: models.PartyVoteCount{Yea: 49, Nay: 0},
	},
	{
		RollCallNumber: 284, Date: "2024-10-20",
		Question: "On the Resolution", Result: "Resolution Agreed to",
		Description: "Resolution condemning foreign interference in elections",
		BillNumber:  "S.Res.845", BillTitle: "Election Security Resolution",
		Democratic: models.PartyVoteCount{Yea: 49, Nay: 0}, Republican: models.PartyVoteCount{Yea: 48, Nay: 1},
	},
	{
		RollCallNumber: 277, Date: "2024-10-15",
		Question: "On Passage of the Bill", Result: "Bill Passed",
		Description: "Infrastructure maintenance and improvement",
		BillNumber:  "H.R.8934", BillTitle: "Surface Transportation Reauthorization",
		Democratic: models.PartyVoteCount{Yea: 45, Nay: 4}, Republican: models.PartyVoteCount{Yea: 38, Nay: 11},
	},
	{
		RollCallNumber: 270, Date: "2024-10-10",
		Question: "On the Motion", Result: "Motion Rejected",
		Description: "Motion to table the amendment",
		BillNumber:  "S.Amdt.3198", BillTitle: "Tax Reform Amendment",
		Democratic: models.PartyVoteCount{Yea: 48, Nay: 1}, Republican: models.PartyVoteCount{Yea: 3, Nay: 46},
	},
	{
		RollCallNumber: 263, Date: "2024-10-05",
		Question: "On Passage of the Bill", Result: "Bill Passed",
		Description: "Water Resources Development Act of 2024",
		BillNumber:  "S.4367", BillTitle: "Water Resources Development Act",
		Democratic: models.PartyVoteCount{Yea: 48, Nay: 1}, Republican: models.PartyVoteCount{Yea: 47, Nay: 2},
	},
}

// FallbackVotes returns the fixed roll-call slate with member positions
// seeded from the bioguide ID, for use when the congressional API is
// unavailable or unkeyed.
func FallbackVotes(bioguideID string) []models.Vote {
	seed := Seed(bioguideID)

	votes := make([]models.Vote, len(fallbackVoteSlate))
	for i, vote := range fallbackVoteSlate {
		vote.MemberVote = votePositions[(seed+i)%len(votePositions)]
		votes[i] = vote
	}
	return votes
}
