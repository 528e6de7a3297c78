package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackVotesSeedsPositions(t *testing.T) {
	votes := FallbackVotes("S000001") // seed 372

	require.Len(t, votes, 10)
	assert.Equal(t, "Yea", votes[0].MemberVote)
	assert.Equal(t, "Nay", votes[2].MemberVote)
	assert.Equal(t, "Not Voting", votes[7].MemberVote)
}

func TestFallbackVotesCarriesSlateFields(t *testing.T) {
	votes := FallbackVotes("S000001")

	assert.Equal(t, 325, votes[0].RollCallNumber)
	assert.Equal(t, "2024-11-15", votes[0].Date)
	assert.Equal(t, "On the Motion to Proceed", votes[0].Question)
	assert.Equal(t, 48, votes[0].Democratic.Yea)
}

func TestFallbackVotesDoesNotMutateSlate(t *testing.T) {
	FallbackVotes("S000001")
	FallbackVotes("Z999999")

	for _, vote := range fallbackVoteSlate {
		assert.Empty(t, vote.MemberVote)
	}
}

func TestFallbackVotesIsDeterministic(t *testing.T) {
	assert.Equal(t, FallbackVotes("S000001"), FallbackVotes("S000001"))
}
