package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStreakRule(t *testing.T) {
	tests := []struct {
		in      string
		want    StreakRule
		wantErr bool
	}{
		{"", TrailingAverageRule, false},
		{"trailing", TrailingAverageRule, false},
		{" Per-Round ", PerRoundRule, false},
		{"weekly", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStreakRule(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStreaksTrailingAverage(t *testing.T) {
	teams := append(fourTeams(), Team{ID: 5, Name: "Team Epsilon"})
	rounds := scenarioRounds()
	rounds[0].Scores[5] = 10
	rounds[1].Scores[5] = 20
	rounds[2].Scores[5] = 30

	streaks := Streaks(teams, rounds, TrailingAverageRule)
	require.Len(t, streaks, 5)

	// Threshold: (50+0+0 + 60+70+65 + 70+60+75 + 10+20+30) / 12 = 42.5
	assert.Equal(t, StreakHot, streaks[2].Kind)
	assert.Equal(t, 3, streaks[2].Length)
	assert.Equal(t, "above the league average of 42.50 in each of the last 3 matchdays", streaks[2].Reason)
	assert.Equal(t, StreakHot, streaks[4].Kind)
	assert.Equal(t, StreakCold, streaks[5].Kind)
	assert.Contains(t, streaks[5].Reason, "below the league average of 42.50")
	assert.Equal(t, StreakNone, streaks[1].Kind, "a mixed run is neither hot nor cold")

	assert.Equal(t, StreakInactive, streaks[3].Kind)
	assert.Equal(t, 3, streaks[3].Length)
	assert.Equal(t, "no points in the last 3 matchdays", streaks[3].Reason)
}

func TestStreaksTrailingAverageScoreAtThreshold(t *testing.T) {
	rounds := []Round{
		{Label: "J1", Scores: map[TeamID]int{1: 60, 2: 40, 3: 70, 4: 30}},
		{Label: "J2", Scores: map[TeamID]int{1: 50, 2: 50, 3: 70, 4: 30}},
		{Label: "J3", Scores: map[TeamID]int{1: 60, 2: 40, 3: 70, 4: 30}},
	}

	// Threshold: (170 + 130 + 210 + 90) / 12 = 50
	streaks := Streaks(fourTeams(), rounds, TrailingAverageRule)
	assert.Equal(t, StreakHot, streaks[3].Kind)
	assert.Contains(t, streaks[3].Reason, "league average of 50.00")
	assert.Equal(t, StreakCold, streaks[4].Kind)
	assert.Equal(t, StreakNone, streaks[1].Kind, "a score equal to the average is not above it")
	assert.Equal(t, StreakNone, streaks[2].Kind, "a score equal to the average is not below it")
}

func TestStreaksTrailingAverageNeedsFullWindow(t *testing.T) {
	rounds := scenarioRounds()[:2]
	for id, s := range Streaks(fourTeams(), rounds, TrailingAverageRule) {
		assert.Equal(t, StreakNone, s.Kind, "team %d", id)
	}
}

func TestStreaksTrailingAverageMissingEntry(t *testing.T) {
	teams := fourTeams()[:3]
	rounds := []Round{
		{Label: "J1", Scores: map[TeamID]int{1: 80, 2: 20, 3: 50}},
		{Label: "J2", Scores: map[TeamID]int{2: 20, 3: 50}},
		{Label: "J3", Scores: map[TeamID]int{1: 80, 2: 20, 3: 50}},
	}
	streaks := Streaks(teams, rounds, TrailingAverageRule)
	assert.Equal(t, StreakNone, streaks[1].Kind)
	assert.Equal(t, StreakCold, streaks[2].Kind)
}

func steadyRounds() []Round {
	var rounds []Round
	for _, label := range []string{"J1", "J2", "J3", "J4"} {
		rounds = append(rounds, Round{Label: label, Scores: map[TeamID]int{1: 80, 2: 20, 3: 50}})
	}
	return rounds
}

func TestStreaksPerRound(t *testing.T) {
	teams := fourTeams()[:3]

	streaks := Streaks(teams, steadyRounds(), PerRoundRule)
	assert.Equal(t, Streak{Kind: StreakHot, Length: 4, Reason: "above the matchday average in each of the last 4 matchdays"}, streaks[1])
	assert.Equal(t, StreakCold, streaks[2].Kind)
	assert.Equal(t, 4, streaks[2].Length)
	assert.Equal(t, StreakNone, streaks[3].Kind, "scoring exactly the average breaks a run")

	t.Run("rules stay separate", func(t *testing.T) {
		trailing := Streaks(teams, steadyRounds(), TrailingAverageRule)
		assert.Equal(t, StreakHot, trailing[1].Kind)
		assert.Equal(t, 3, trailing[1].Length)
	})

	t.Run("direction change stops the walk", func(t *testing.T) {
		rounds := steadyRounds()
		rounds[1].Scores[1] = 10
		streaks := Streaks(teams, rounds, PerRoundRule)
		assert.Equal(t, StreakNone, streaks[1].Kind)
	})

	t.Run("missing entry stops the walk", func(t *testing.T) {
		rounds := steadyRounds()
		delete(rounds[2].Scores, 2)
		streaks := Streaks(teams, rounds, PerRoundRule)
		assert.Equal(t, StreakNone, streaks[2].Kind)
	})

	t.Run("short runs are not reported", func(t *testing.T) {
		streaks := Streaks(teams, steadyRounds()[:2], PerRoundRule)
		assert.Equal(t, StreakNone, streaks[1].Kind)
	})
}

func TestStreaksInactiveTeamsDoNotMoveTheAverage(t *testing.T) {
	teams := fourTeams()
	rounds := steadyRounds()
	for _, r := range rounds {
		r.Scores[4] = 0
	}
	streaks := Streaks(teams, rounds, PerRoundRule)
	assert.Equal(t, StreakInactive, streaks[4].Kind)
	assert.Equal(t, 4, streaks[4].Length)
	assert.Equal(t, StreakNone, streaks[3].Kind, "50 is still the average without the inactive team")
}
