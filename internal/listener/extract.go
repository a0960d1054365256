package listener

import (
	"bytes"
	"encoding/json"

	"matchsync/internal/domain"
)

// The provider's message schema drifts between feed versions, so each
// logical field is resolved through an ordered list of aliases, once, at
// the ingestion boundary. First present non-empty alias wins.
var (
	matchIDAliases   = []string{"matchId", "id", "match_id"}
	leagueIDAliases  = []string{"leagueId", "league_id", "competitionId", "competition_id"}
	eventTypeAliases = []string{"type", "eventType", "event_type"}
)

// extractEvent pulls the actionable identifiers out of a raw message body.
// ok is false when the body is not a JSON object or carries no match id;
// such a message cannot be acted upon or meaningfully retried.
func extractEvent(body []byte) (event domain.LiveEvent, ok bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return domain.LiveEvent{}, false
	}

	matchID := firstString(fields, matchIDAliases)
	if matchID == "" {
		return domain.LiveEvent{}, false
	}

	return domain.LiveEvent{
		MatchID:   matchID,
		LeagueID:  firstString(fields, leagueIDAliases),
		EventType: domain.EventType(firstString(fields, eventTypeAliases)),
	}, true
}

func firstString(fields map[string]any, aliases []string) string {
	for _, alias := range aliases {
		switch v := fields[alias].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}
