package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
	"github.com/mauv0809/fantasy-duels/internal/notifier"
	"github.com/mauv0809/fantasy-duels/internal/pubsub"
	"github.com/mauv0809/fantasy-duels/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id league.TeamID) *league.TeamID { return &id }

func leagueSnapshot() store.Snapshot {
	return store.Snapshot{
		Teams: []league.Team{{ID: 1, Name: "Team Alpha"}, {ID: 2, Name: "Team Beta"}, {ID: 3, Name: "Team Gamma"}},
		Rounds: []league.Round{
			{Label: "J1", Scores: map[league.TeamID]int{1: 50, 2: 60, 3: 10}},
		},
		Matchups: []league.Matchup{
			{ID: "m1", Gameweek: 1, Player1: 1, Player2: ptr(2)},
			{ID: "m2", Gameweek: 1, Player1: 3},
			{ID: "m3", Gameweek: 2, Player1: 1, Player2: ptr(3)},
		},
	}
}

func TestProcessor_RecordScores(t *testing.T) {
	t.Run("stores entries and publishes one event per matchday", func(t *testing.T) {
		st := store.NewMock()
		ps := pubsub.NewMock()
		p := New(st, notifier.NewMock(), metrics.NewMock(), metrics.NewMockStore(), ps)

		entries := []league.ScoreEntry{
			{Matchday: " J2 ", TeamID: 1, Points: 40},
			{Matchday: "J2", TeamID: 2, Points: 0},
			{Matchday: "J3", TeamID: 1, Points: 12},
		}
		matchdays, err := p.RecordScores(context.Background(), entries, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"J2", "J3"}, matchdays)
		assert.Equal(t, " J2 ", entries[0].Matchday, "the caller's slice is not modified")

		require.Len(t, st.UpsertScoresCalls, 1)
		assert.Equal(t, "J2", st.UpsertScoresCalls[0][0].Matchday)

		require.Len(t, ps.SendMessageCalls, 2)
		assert.Equal(t, pubsub.EventRoundScored, ps.SendMessageCalls[0].Topic)
		assert.Equal(t, pubsub.RoundScoredEvent{Matchday: "J2", Entries: 2}, ps.SendMessageCalls[0].Data)
		assert.Equal(t, pubsub.RoundScoredEvent{Matchday: "J3", Entries: 1}, ps.SendMessageCalls[1].Data)
	})

	t.Run("dry run stores nothing", func(t *testing.T) {
		st := store.NewMock()
		ps := pubsub.NewMock()
		p := New(st, notifier.NewMock(), metrics.NewMock(), metrics.NewMockStore(), ps)

		_, err := p.RecordScores(context.Background(), []league.ScoreEntry{{Matchday: "J1", TeamID: 1, Points: 5}}, true)
		require.NoError(t, err)
		assert.Empty(t, st.UpsertScoresCalls)
		assert.Empty(t, ps.SendMessageCalls)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		st := store.NewMock()
		p := New(st, notifier.NewMock(), metrics.NewMock(), metrics.NewMockStore(), pubsub.NewMock())

		_, err := p.RecordScores(context.Background(), nil, false)
		assert.Error(t, err)
		_, err = p.RecordScores(context.Background(), []league.ScoreEntry{{TeamID: 1}}, false)
		assert.Error(t, err)
		assert.Empty(t, st.UpsertScoresCalls)
	})

	t.Run("rejects negative points", func(t *testing.T) {
		st := store.NewMock()
		ps := pubsub.NewMock()
		p := New(st, notifier.NewMock(), metrics.NewMock(), metrics.NewMockStore(), ps)

		_, err := p.RecordScores(context.Background(), []league.ScoreEntry{
			{Matchday: "J1", TeamID: 1, Points: -40},
			{Matchday: "J1", TeamID: 2, Points: 10},
		}, false)
		assert.ErrorIs(t, err, ErrInvalidScore)
		assert.Empty(t, st.UpsertScoresCalls)
		assert.Empty(t, ps.SendMessageCalls)

		_, err = p.RecordScores(context.Background(), []league.ScoreEntry{{Matchday: "J1", TeamID: 1, Points: -1}}, true)
		assert.ErrorIs(t, err, ErrInvalidScore, "dry runs validate too")
	})

	t.Run("store failure is returned and nothing is published", func(t *testing.T) {
		st := store.NewMock()
		st.UpsertScoresFunc = func([]league.ScoreEntry) error { return errors.New("constraint failed") }
		ps := pubsub.NewMock()
		p := New(st, notifier.NewMock(), metrics.NewMock(), metrics.NewMockStore(), ps)

		_, err := p.RecordScores(context.Background(), []league.ScoreEntry{{Matchday: "J1", TeamID: 9}}, false)
		assert.Error(t, err)
		assert.Empty(t, ps.SendMessageCalls)
	})
}

func TestProcessor_ProcessRoundScored(t *testing.T) {
	t.Run("announces results and standings", func(t *testing.T) {
		st := store.NewMock()
		st.SnapshotFunc = func() (store.Snapshot, error) { return leagueSnapshot(), nil }
		notif := notifier.NewMock()
		metr := metrics.NewMock()
		counters := metrics.NewMockStore()
		p := New(st, notif, metr, counters, pubsub.NewMock())

		report, err := p.ProcessRoundScored(pubsub.RoundScoredEvent{Matchday: "J1"})
		require.NoError(t, err)
		assert.Equal(t, &RoundReport{Matchday: "J1", Gameweek: 1, Duels: 1, DuelsDecided: 1}, report)

		require.Len(t, notif.SendDuelResultsCalls, 1)
		cards := notif.SendDuelResultsCalls[0].Cards
		require.Len(t, cards, 2)
		require.NotNil(t, cards[0].WinnerID)
		assert.Equal(t, league.TeamID(2), *cards[0].WinnerID)

		require.Len(t, notif.SendStandingsCalls, 1)
		assert.Equal(t, league.TeamID(2), notif.SendStandingsCalls[0][0].Team.ID)

		assert.Equal(t, 1, metr.RoundsProcessed())
		assert.Equal(t, 1, counters.Get(metrics.KeyRoundsScored))
		assert.Equal(t, 1, counters.Get(metrics.KeyDuelsResolved))
	})

	t.Run("round without duels only sends standings", func(t *testing.T) {
		st := store.NewMock()
		st.SnapshotFunc = func() (store.Snapshot, error) { return leagueSnapshot(), nil }
		notif := notifier.NewMock()
		p := New(st, notif, metrics.NewMock(), metrics.NewMockStore(), pubsub.NewMock())

		report, err := p.ProcessRoundScored(pubsub.RoundScoredEvent{Matchday: "J7"})
		require.NoError(t, err)
		assert.Zero(t, report.Duels)
		assert.Empty(t, notif.SendDuelResultsCalls)
		assert.Len(t, notif.SendStandingsCalls, 1)
	})

	t.Run("snapshot failure", func(t *testing.T) {
		st := store.NewMock()
		st.SnapshotFunc = func() (store.Snapshot, error) { return store.Snapshot{}, errors.New("db down") }
		metr := metrics.NewMock()
		p := New(st, notifier.NewMock(), metr, metrics.NewMockStore(), pubsub.NewMock())

		_, err := p.ProcessRoundScored(pubsub.RoundScoredEvent{Matchday: "J1"})
		assert.Error(t, err)
		assert.Zero(t, metr.RoundsProcessed())
	})
}
