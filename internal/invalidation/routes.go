package invalidation

import (
	"strings"

	"matchsync/internal/domain"
)

// scope is the invalidation template for one event type. {id} expands to
// the match id; paths additionally expand {leagueId}.
type scope struct {
	tags []string
}

// routes is the event-type → invalidation-scope policy. It is a plain
// table so it can be audited and tested row by row.
var routes = map[domain.EventType]scope{
	domain.EventGoal:            {tags: []string{"match-{id}", "match-events-{id}", "match-live-{id}"}},
	domain.EventYellowCard:      {tags: []string{"match-{id}", "match-events-{id}", "match-live-{id}"}},
	domain.EventRedCard:         {tags: []string{"match-{id}", "match-events-{id}", "match-live-{id}"}},
	domain.EventSubstitution:    {tags: []string{"match-{id}", "match-events-{id}", "match-live-{id}"}},
	domain.EventLineupPublished: {tags: []string{"match-lineup-{id}", "match-{id}"}},
	domain.EventMatchStarted:    {tags: []string{"match-{id}", "matches-list"}},
	domain.EventMatchFinished:   {tags: []string{"match-{id}", "matches-list", "finished-matches"}},
}

// defaultScope applies to unknown event types. Deliberately not a no-op:
// under-invalidating would serve stale live data, which is worse than
// purging a scope too many.
var defaultScope = scope{tags: []string{"match-{id}", "matches-list"}}

// ScopeFor resolves the exact set of tag and path invalidations for one
// event.
func ScopeFor(eventType domain.EventType, matchID, leagueID string) domain.Invalidation {
	s, ok := routes[eventType]
	if !ok {
		s = defaultScope
	}

	tags := make([]string, len(s.tags))
	for i, tag := range s.tags {
		tags[i] = strings.ReplaceAll(tag, "{id}", matchID)
	}

	return domain.Invalidation{
		Tags: tags,
		Paths: []string{
			"/matcher/" + leagueID + "/" + matchID,
			"/matcher",
		},
	}
}
