package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id TeamID) *TeamID { return &id }

func duelRounds() []Round {
	return []Round{
		{Label: "J1", Scores: map[TeamID]int{1: 50, 2: 60, 3: 40, 4: 70}},
		{Label: "J2", Scores: map[TeamID]int{1: 55, 2: 55, 3: 80, 4: 20}},
		{Label: "J3", Scores: map[TeamID]int{1: 30, 2: 90, 4: 10}},
	}
}

func duelMatchups() []Matchup {
	return []Matchup{
		{ID: "d7", Gameweek: 4, Player1: 1, Player2: ptr(2)},
		{ID: "d5", Gameweek: 3, Player1: 1, Player2: ptr(2), Winner: ptr(1)},
		{ID: "d6", Gameweek: 3, Player1: 3, Player2: ptr(4)},
		{ID: "d1", Gameweek: 1, Player1: 1, Player2: ptr(2)},
		{ID: "d2", Gameweek: 1, Player1: 3, Player2: ptr(4)},
		{ID: "d3", Gameweek: 2, Player1: 1, Player2: ptr(2)},
		{ID: "d4", Gameweek: 2, Player1: 3, Player2: ptr(4)},
	}
}

func TestResolveDuel(t *testing.T) {
	rounds := duelRounds()

	t.Run("higher score wins", func(t *testing.T) {
		res := ResolveDuel(Matchup{Gameweek: 1, Player1: 1, Player2: ptr(2)}, rounds)
		assert.Equal(t, OutcomeWin, res.Outcome)
		require.NotNil(t, res.WinnerID)
		assert.Equal(t, TeamID(2), *res.WinnerID)
		assert.Equal(t, 50, res.Points1)
		assert.Equal(t, 60, res.Points2)
		assert.Equal(t, 10, res.Margin)
	})

	t.Run("equal scores draw", func(t *testing.T) {
		res := ResolveDuel(Matchup{Gameweek: 2, Player1: 1, Player2: ptr(2)}, rounds)
		assert.Equal(t, OutcomeDraw, res.Outcome)
		assert.Nil(t, res.WinnerID)
		assert.True(t, res.Played())
	})

	t.Run("recorded winner takes precedence", func(t *testing.T) {
		res := ResolveDuel(Matchup{Gameweek: 3, Player1: 1, Player2: ptr(2), Winner: ptr(1)}, rounds)
		assert.Equal(t, OutcomeWin, res.Outcome)
		assert.Equal(t, TeamID(1), *res.WinnerID)
		assert.Equal(t, 60, res.Margin)
	})

	t.Run("recorded winner outside the duel is ignored", func(t *testing.T) {
		res := ResolveDuel(Matchup{Gameweek: 3, Player1: 1, Player2: ptr(2), Winner: ptr(9)}, rounds)
		assert.Equal(t, TeamID(2), *res.WinnerID)
	})

	t.Run("missing score counts as zero", func(t *testing.T) {
		res := ResolveDuel(Matchup{Gameweek: 3, Player1: 3, Player2: ptr(4)}, rounds)
		assert.Equal(t, 0, res.Points1)
		assert.Equal(t, TeamID(4), *res.WinnerID)
	})

	t.Run("unscored round is pending", func(t *testing.T) {
		res := ResolveDuel(Matchup{Gameweek: 4, Player1: 1, Player2: ptr(2)}, rounds)
		assert.Equal(t, OutcomePending, res.Outcome)
		assert.False(t, res.Played())
	})

	t.Run("bye", func(t *testing.T) {
		res := ResolveDuel(Matchup{Gameweek: 1, Player1: 4}, rounds)
		assert.Equal(t, OutcomeBye, res.Outcome)
		assert.Equal(t, 70, res.Points1)
		assert.False(t, res.Played())
	})
}

func TestDuelStandings(t *testing.T) {
	matchups := append(duelMatchups(), Matchup{Gameweek: 3, Player1: 2})
	rows := DuelStandings(fourTeams(), duelRounds(), matchups)
	require.Len(t, rows, 4)

	got := make(map[TeamID]DuelRecord)
	for _, r := range rows {
		got[r.Team.ID] = r
	}

	// T1: lost gw1, drew gw2, won gw3 by recorded result.
	assert.Equal(t, 3, got[1].Played)
	assert.Equal(t, 1, got[1].Wins)
	assert.Equal(t, 1, got[1].Draws)
	assert.Equal(t, 1, got[1].Losses)
	assert.Equal(t, 4, got[1].Points)
	assert.False(t, got[1].LostLast)

	assert.Equal(t, 4, got[2].Points)
	assert.True(t, got[2].LostLast)
	assert.Equal(t, 3, got[2].Played, "byes are not played duels")

	assert.Equal(t, 3, got[3].Points)
	assert.True(t, got[3].LostLast)

	assert.Equal(t, 6, got[4].Points)
	assert.Equal(t, 2, got[4].Wins)
	assert.False(t, got[4].LostLast)

	order := make([]TeamID, len(rows))
	for i, r := range rows {
		order[i] = r.Team.ID
	}
	assert.Equal(t, []TeamID{4, 1, 2, 3}, order)
}

func TestDuelStandingsDrawKeepsLostLast(t *testing.T) {
	rounds := []Round{
		{Label: "J1", Scores: map[TeamID]int{1: 10, 2: 20}},
		{Label: "J2", Scores: map[TeamID]int{1: 30, 2: 30}},
	}
	matchups := []Matchup{
		{Gameweek: 2, Player1: 1, Player2: ptr(2)},
		{Gameweek: 1, Player1: 1, Player2: ptr(2)},
	}
	rows := DuelStandings(fourTeams()[:2], rounds, matchups)
	for _, r := range rows {
		if r.Team.ID == 1 {
			assert.True(t, r.LostLast)
			assert.Equal(t, 1, r.Points)
		}
	}
}

func TestDuelCards(t *testing.T) {
	matchups := append(duelMatchups(), Matchup{ID: "d8", Gameweek: 3, Player1: 99})
	cards := DuelCards(fourTeams(), duelRounds(), matchups, 3)
	require.Len(t, cards, 3)

	assert.Equal(t, "d5", cards[0].ID)
	assert.Equal(t, DuelSide{TeamID: 1, Name: "Team Alpha", Points: 30}, cards[0].Home)
	require.NotNil(t, cards[0].Away)
	assert.Equal(t, 90, cards[0].Away.Points)
	assert.Equal(t, OutcomeWin, cards[0].Outcome)

	assert.Equal(t, UnknownTeamName, cards[2].Home.Name)
	assert.Nil(t, cards[2].Away)
	assert.Equal(t, OutcomeBye, cards[2].Outcome)

	assert.Empty(t, DuelCards(fourTeams(), duelRounds(), matchups, 12))
}

func TestGameweeks(t *testing.T) {
	assert.Equal(t, []int{4, 3, 2, 1}, Gameweeks(duelMatchups()))
	assert.Equal(t, 4, LatestGameweek(duelMatchups()))
	assert.Zero(t, LatestGameweek(nil))
}
