package metrics

import (
	"database/sql"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Keys of the persisted counters.
const (
	KeyGameweeksGenerated = "gameweeks_generated"
	KeyRoundsScored       = "rounds_scored"
	KeyDuelsResolved      = "duels_resolved"
)

// Service holds all the Prometheus metrics for the application.
type Service struct {
	PairingsGenerated  prometheus.Counter
	ByesAssigned       prometheus.Counter
	GenerationDuration prometheus.Histogram
	RoundsProcessed    prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

// store handles metric-related database operations.
type store struct {
	db *sql.DB
	mu sync.Mutex
}
