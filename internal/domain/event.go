package domain

import "time"

// EventType classifies a live match event from the provider feed.
type EventType string

const (
	EventGoal            EventType = "GOAL"
	EventYellowCard      EventType = "YELLOW_CARD"
	EventRedCard         EventType = "RED_CARD"
	EventSubstitution    EventType = "SUBSTITUTION"
	EventLineupPublished EventType = "LINEUP_PUBLISHED"
	EventMatchStarted    EventType = "MATCH_STARTED"
	EventMatchFinished   EventType = "MATCH_FINISHED"
)

// LiveEvent is the normalized payload forwarded from the listener to the
// invalidation gateway. It is ephemeral and never persisted.
type LiveEvent struct {
	MatchID   string    `json:"matchId"`
	LeagueID  string    `json:"leagueId"`
	EventType EventType `json:"eventType"`
	Secret    string    `json:"secret"`
	Topic     string    `json:"topic,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Invalidation is the exact set of cache scopes the gateway purges for
// one event.
type Invalidation struct {
	Tags  []string `json:"tags"`
	Paths []string `json:"paths"`
}
