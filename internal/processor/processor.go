package processor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
	"github.com/mauv0809/fantasy-duels/internal/pubsub"
)

// New creates a new Processor.
func New(store Store, notifier Notifier, metrics metrics.Metrics, counters metrics.MetricsStore, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
		counters: counters,
	}
}

// RecordScores stores the entries and publishes one round-scored event per matchday.
func (p *Processor) RecordScores(ctx context.Context, entries []league.ScoreEntry, dryRun bool) ([]string, error) {
	if len(entries) == 0 {
		return nil, errors.New("no score entries provided")
	}
	entries = slices.Clone(entries)
	perMatchday := make(map[string]int)
	var matchdays []string
	for i := range entries {
		entries[i].Matchday = strings.TrimSpace(entries[i].Matchday)
		md := entries[i].Matchday
		if md == "" {
			return nil, fmt.Errorf("entry %d has no matchday", i)
		}
		if entries[i].Points < 0 {
			return nil, fmt.Errorf("entry %d for team %d has %d points: %w", i, entries[i].TeamID, entries[i].Points, ErrInvalidScore)
		}
		if _, ok := perMatchday[md]; !ok {
			matchdays = append(matchdays, md)
		}
		perMatchday[md]++
	}

	if dryRun {
		log.Info("[Dry Run] Would store scores", "entries", len(entries), "matchdays", matchdays)
		return matchdays, nil
	}
	if err := p.store.UpsertScores(entries); err != nil {
		return nil, fmt.Errorf("failed to store scores: %w", err)
	}
	log.Info("Stored scores", "entries", len(entries), "matchdays", matchdays)

	for _, md := range matchdays {
		event := pubsub.RoundScoredEvent{Matchday: md, Entries: perMatchday[md]}
		if err := p.pubsub.SendMessage(ctx, pubsub.EventRoundScored, event); err != nil {
			log.Error("Failed to publish round scored event", "error", err, "matchday", md)
		}
	}
	return matchdays, nil
}

// ProcessRoundScored announces the duel results of the scored matchday and the
// updated standings.
func (p *Processor) ProcessRoundScored(event pubsub.RoundScoredEvent) (*RoundReport, error) {
	log.Info("Processing scored round", "matchday", event.Matchday)
	snap, err := p.store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load league: %w", err)
	}

	report := &RoundReport{Matchday: event.Matchday, Gameweek: league.MatchdayNumber(event.Matchday)}
	cards := league.DuelCards(snap.Teams, snap.Rounds, snap.Matchups, report.Gameweek)
	for _, c := range cards {
		if c.Away == nil {
			continue
		}
		report.Duels++
		if c.Outcome == league.OutcomeWin || c.Outcome == league.OutcomeDraw {
			report.DuelsDecided++
		}
	}

	p.metrics.IncRoundsProcessed()
	if !event.DryRun {
		p.counters.Increment(metrics.KeyRoundsScored)
		for range report.DuelsDecided {
			p.counters.Increment(metrics.KeyDuelsResolved)
		}
	}

	if len(cards) > 0 {
		if err := p.notifier.SendDuelResults(report.Gameweek, cards, event.DryRun); err != nil {
			log.Error("Failed to send duel results", "error", err, "gameweek", report.Gameweek)
		}
	}
	if err := p.notifier.SendStandings(league.Standings(snap.Teams, snap.Rounds), event.DryRun); err != nil {
		log.Error("Failed to send standings", "error", err)
	}
	log.Info("Processed scored round", "matchday", event.Matchday, "duels", report.Duels, "decided", report.DuelsDecided)
	return report, nil
}
