package processor

import (
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/notifier"
	"github.com/mauv0809/fantasy-duels/internal/store"
)

// Store defines the database operations required by the processor.
type Store interface {
	UpsertScores(entries []league.ScoreEntry) error
	Snapshot() (store.Snapshot, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
