package main

import (
	"math/rand/v2"
	"testing"

	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/stretchr/testify/assert"
)

func TestDemoScoresLeaveOneInactiveTeam(t *testing.T) {
	teams := []league.Team{{ID: 1}, {ID: 2}, {ID: 3}}
	entries := demoScores(teams, rand.New(rand.NewPCG(1, 1)))
	assert.Len(t, entries, len(teams)*seededMatchdays)

	rounds := league.GroupScores(entries)
	inactive := league.InactiveTeams(teams, rounds, league.InactivityWindow)
	assert.True(t, inactive.Has(3))
	assert.False(t, inactive.Has(1))
	assert.False(t, inactive.Has(2))
}
