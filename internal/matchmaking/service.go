package matchmaking

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
	"github.com/mauv0809/fantasy-duels/internal/notifier"
	"github.com/mauv0809/fantasy-duels/internal/pubsub"
	"github.com/mauv0809/fantasy-duels/internal/store"
)

var _ DuelGenerator = (*Service)(nil)

// New creates a Service.
func New(store store.LeagueStore, pairer Pairer, notifier notifier.Notifier, metrics metrics.Metrics, counters metrics.MetricsStore, pubsub pubsub.PubSubClient) *Service {
	return &Service{
		store:    store,
		pairer:   pairer,
		notifier: notifier,
		metrics:  metrics,
		counters: counters,
		pubsub:   pubsub,
	}
}

// Candidates returns the teams eligible for gameweek: every team not
// inactive over the rounds played strictly before it. It uses the same
// inactivity window as the standings.
func Candidates(teams []league.Team, rounds []league.Round, gameweek int) []league.TeamID {
	active := league.ActiveTeams(teams, league.Before(rounds, gameweek), league.InactivityWindow)
	ids := make([]league.TeamID, len(active))
	for i, t := range active {
		ids[i] = t.ID
	}
	return ids
}

// History returns the matchups that precede gameweek.
func History(matchups []league.Matchup, gameweek int) []league.Matchup {
	var out []league.Matchup
	for _, m := range matchups {
		if m.Gameweek < gameweek {
			out = append(out, m)
		}
	}
	return out
}

// GenerateDuels pairs the active teams for gameweek and replaces any existing
// matchups of that gameweek. In dry-run mode nothing is persisted.
func (s *Service) GenerateDuels(ctx context.Context, gameweek int, dryRun bool) (*Result, error) {
	start := time.Now()
	log.Info("Generating duels", "gameweek", gameweek, "dryRun", dryRun)

	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load league: %w", err)
	}

	candidates := Candidates(snap.Teams, snap.Rounds, gameweek)
	drafts, err := s.pairer.Generate(candidates, History(snap.Matchups, gameweek), gameweek)
	if err != nil {
		return nil, fmt.Errorf("failed to pair gameweek %d: %w", gameweek, err)
	}

	saved := drafts
	if !dryRun {
		if err := s.store.DeleteMatchups(gameweek); err != nil {
			return nil, err
		}
		saved, err = s.store.InsertMatchups(drafts)
		if err != nil {
			return nil, err
		}
		s.counters.Increment(metrics.KeyGameweeksGenerated)
	}

	res := &Result{
		Gameweek:   gameweek,
		Candidates: candidates,
		Matchups:   saved,
		Cards:      league.DuelCards(snap.Teams, snap.Rounds, saved, gameweek),
		DryRun:     dryRun,
	}
	for _, m := range saved {
		if m.IsBye() {
			id := m.Player1
			res.Bye = &id
			s.metrics.IncByesAssigned()
			continue
		}
		s.metrics.IncPairingsGenerated()
	}
	s.metrics.ObserveGenerationDuration(time.Since(start).Seconds())
	log.Info("Generated duels", "gameweek", gameweek, "candidates", len(candidates), "matchups", len(saved))

	if err := s.notifier.SendPairings(gameweek, res.Cards, dryRun); err != nil {
		log.Error("Failed to announce pairings", "error", err, "gameweek", gameweek)
	}
	if !dryRun {
		event := pubsub.DuelsGeneratedEvent{Gameweek: gameweek, Matchups: len(saved)}
		if res.Bye != nil {
			bye := int64(*res.Bye)
			event.ByeTeam = &bye
		}
		if err := s.pubsub.SendMessage(ctx, pubsub.EventDuelsGenerated, event); err != nil {
			log.Error("Failed to publish duels generated event", "error", err, "gameweek", gameweek)
		}
	}
	return res, nil
}
