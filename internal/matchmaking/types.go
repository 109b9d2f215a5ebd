package matchmaking

import (
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
	"github.com/mauv0809/fantasy-duels/internal/notifier"
	"github.com/mauv0809/fantasy-duels/internal/pubsub"
	"github.com/mauv0809/fantasy-duels/internal/store"
)

// Service generates weekly duels from the stored league.
type Service struct {
	store    store.LeagueStore
	pairer   Pairer
	notifier notifier.Notifier
	metrics  metrics.Metrics
	counters metrics.MetricsStore
	pubsub   pubsub.PubSubClient
}

// Result describes a generated gameweek.
type Result struct {
	Gameweek   int               `json:"gameweek"`
	Candidates []league.TeamID   `json:"candidates"`
	Matchups   []league.Matchup  `json:"matchups"`
	Cards      []league.DuelCard `json:"cards"`
	Bye        *league.TeamID    `json:"bye,omitempty"`
	DryRun     bool              `json:"dry_run"`
}
