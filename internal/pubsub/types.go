package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
}

// noopClient encodes messages but never publishes them.
type noopClient struct{}

// EventType represents the type of event/message sent via pubsub.
// It doubles as the topic name.
type EventType string

const (
	EventRoundScored    EventType = "round-scored"
	EventDuelsGenerated EventType = "duels-generated"
)

// RoundScoredEvent is published after scores for a matchday are stored.
type RoundScoredEvent struct {
	Matchday string `msgpack:"matchday" json:"matchday"`
	Entries  int    `msgpack:"entries" json:"entries"`
	DryRun   bool   `msgpack:"dry_run" json:"dry_run"`
}

// DuelsGeneratedEvent is published after a gameweek's duels are replaced.
type DuelsGeneratedEvent struct {
	Gameweek int    `msgpack:"gameweek" json:"gameweek"`
	Matchups int    `msgpack:"matchups" json:"matchups"`
	ByeTeam  *int64 `msgpack:"bye_team,omitempty" json:"bye_team,omitempty"`
}
