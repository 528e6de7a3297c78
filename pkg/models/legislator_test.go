package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeParty(t *testing.T) {
	assert.Equal(t, PartyRepublican, NormalizeParty("Republican"))
	assert.Equal(t, PartyDemocrat, NormalizeParty("Democrat"))
	assert.Equal(t, PartyDemocrat, NormalizeParty("Democratic"))
	assert.Equal(t, PartyIndependent, NormalizeParty("Independent"))
	assert.Equal(t, PartyIndependent, NormalizeParty("Libertarian"))
	assert.Equal(t, PartyIndependent, NormalizeParty(""))
}

func TestValidParty(t *testing.T) {
	assert.True(t, ValidParty("R"))
	assert.True(t, ValidParty("D"))
	assert.True(t, ValidParty("I"))
	assert.False(t, ValidParty("G"))
	assert.False(t, ValidParty("DEM"))
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "California", StateName("CA"))
	assert.Equal(t, "Wyoming", StateName("WY"))
	assert.Equal(t, "PR", StateName("PR"), "territories fall back to the code")
}
