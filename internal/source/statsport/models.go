package statsport

// League is one competition instance as returned by GET /leagues.
type League struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	TournamentNumber int    `json:"tournamentNumericId"`
}

// Team is a roster entry from GET /leagues/{id}/teams. The ID is only
// valid within the league it was listed under.
type Team struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
}

// Match is the raw match shape from GET /leagues/{id}/matches.
type Match struct {
	ID           string `json:"id"`
	LeagueID     string `json:"leagueId"`
	HomeTeamID   string `json:"homeTeamId"`
	HomeTeamName string `json:"homeTeamName"`
	AwayTeamID   string `json:"awayTeamId"`
	AwayTeamName string `json:"awayTeamName"`
	Kickoff      string `json:"kickoff"`
	Venue        string `json:"venue"`
	Status       string `json:"status"`
	GoalsHome    int    `json:"goalsHome"`
	GoalsAway    int    `json:"goalsAway"`
}

// LiveStats is the live scoreboard from GET /leagues/{id}/matches/{id}/live-stats.
type LiveStats struct {
	MatchID    string `json:"matchId"`
	Status     string `json:"status"`
	Minute     int    `json:"minute"`
	GoalsHome  int    `json:"goalsHome"`
	GoalsAway  int    `json:"goalsAway"`
	Possession int    `json:"possessionHome"`
}

// MatchEvent is one entry from GET /leagues/{id}/matches/{id}/events.
type MatchEvent struct {
	ID       string `json:"id"`
	MatchID  string `json:"matchId"`
	Type     string `json:"type"`
	Minute   int    `json:"minute"`
	PlayerID string `json:"playerId"`
}
