package processor

import (
	"errors"

	"github.com/mauv0809/fantasy-duels/internal/metrics"
	"github.com/mauv0809/fantasy-duels/internal/pubsub"
)

// ErrInvalidScore is returned for an entry with negative points.
var ErrInvalidScore = errors.New("points must not be negative")

// Processor handles what happens after scores are recorded.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	counters metrics.MetricsStore
}

// RoundReport summarizes a processed round.
type RoundReport struct {
	Matchday     string `json:"matchday"`
	Gameweek     int    `json:"gameweek"`
	Duels        int    `json:"duels"`
	DuelsDecided int    `json:"duels_decided"`
}
