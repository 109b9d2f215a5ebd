package metrics

// Metrics defines the interface for collecting application metrics.
type Metrics interface {
	IncPairingsGenerated()
	IncByesAssigned()
	ObserveGenerationDuration(duration float64)
	IncRoundsProcessed()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore persists counters that must survive restarts.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
