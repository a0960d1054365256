package domain

import (
	"fmt"
	"sort"
	"time"
)

// MatchStatus mirrors the provider's three-state match lifecycle.
type MatchStatus string

const (
	StatusScheduled  MatchStatus = "Scheduled"
	StatusInProgress MatchStatus = "In progress"
	StatusOver       MatchStatus = "Over"
)

// Competition is one tournament instance for one season as the provider
// models it. TeamScopedID is the target team's id as known within this
// competition only; providers assign different ids to the same team per
// competition, so it must never be substituted with a global id.
type Competition struct {
	CompetitionID    string `json:"competitionId"`
	CompetitionName  string `json:"competitionName"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	TournamentNumber int    `json:"tournamentNumericId"`
	SeasonYear       string `json:"seasonYear"`
	TeamScopedID     string `json:"teamScopedId,omitempty"`
}

// DiscoveryCache is the persisted result of one full discovery sweep.
// It is replaced wholesale on every refresh.
type DiscoveryCache struct {
	TeamID       string        `json:"teamId"`
	TeamName     string        `json:"teamName"`
	LastUpdated  *time.Time    `json:"lastUpdated,omitempty"`
	Competitions []Competition `json:"competitions"`
}

// SortCompetitions orders entries season descending, then name ascending,
// so repeated sweeps over an unchanged provider are byte-identical.
func (c *DiscoveryCache) SortCompetitions() {
	sort.SliceStable(c.Competitions, func(i, j int) bool {
		a, b := c.Competitions[i], c.Competitions[j]
		if a.SeasonYear != b.SeasonYear {
			return a.SeasonYear > b.SeasonYear
		}
		return a.CompetitionName < b.CompetitionName
	})
}

// TeamKeys identifies the target team towards the provider. A roster entry
// matches when any one of the three keys matches.
type TeamKeys struct {
	InternalID  string `yaml:"internal_id" json:"internalId"`
	ExternalID  string `yaml:"external_id" json:"externalId"`
	DisplayName string `yaml:"display_name" json:"displayName"`
}

// ExternalMatch is the provider's raw match shape after response validation.
type ExternalMatch struct {
	MatchID       string
	CompetitionID string
	HomeTeamID    string
	HomeTeamName  string
	AwayTeamID    string
	AwayTeamName  string
	Kickoff       time.Time
	Venue         string
	Status        MatchStatus
	GoalsHome     int
	GoalsAway     int
}

// MatchRecord is the durable CMS match record. ExternalMatchID plus
// ExternalCompetitionID form the natural key for idempotent matching;
// records with IsCustomMatch set are operator-created and are invisible
// to the sync engine.
type MatchRecord struct {
	CMSID                 int64       `db:"id"`
	Title                 string      `db:"title"`
	Slug                  string      `db:"slug"`
	HomeTeam              string      `db:"home_team"`
	AwayTeam              string      `db:"away_team"`
	KickoffDate           string      `db:"kickoff_date"`
	KickoffTime           string      `db:"kickoff_time"`
	Venue                 string      `db:"venue"`
	Status                MatchStatus `db:"status"`
	GoalsHome             int         `db:"goals_home"`
	GoalsAway             int         `db:"goals_away"`
	CompetitionName       string      `db:"competition_name"`
	Season                string      `db:"season"`
	ExternalMatchID       string      `db:"external_match_id"`
	ExternalCompetitionID string      `db:"external_competition_id"`
	IsCustomMatch         bool        `db:"is_custom_match"`
	LastSyncedAt          time.Time   `db:"last_synced_at"`
}

// ContentEquals reports whether the tracked content fields are identical.
// CMS-only fields an editor may set are deliberately not compared, so a
// sync run never clobbers operator customizations on an otherwise
// unchanged record.
func (m *MatchRecord) ContentEquals(other *MatchRecord) bool {
	return m.HomeTeam == other.HomeTeam &&
		m.AwayTeam == other.AwayTeam &&
		m.KickoffDate == other.KickoffDate &&
		m.KickoffTime == other.KickoffTime &&
		m.Venue == other.Venue &&
		m.Status == other.Status &&
		m.GoalsHome == other.GoalsHome &&
		m.GoalsAway == other.GoalsAway &&
		m.CompetitionName == other.CompetitionName &&
		m.Season == other.Season
}

// SyncError records one failed item without aborting the run.
type SyncError struct {
	CompetitionID string `json:"competitionId,omitempty"`
	MatchID       string `json:"matchId,omitempty"`
	Message       string `json:"message"`
}

// SyncResult accumulates across every competition processed in one run.
// A single competition's failure appends to Errors but does not flip
// Success; only fatal precondition failures do.
type SyncResult struct {
	Success  bool          `json:"success"`
	Created  int           `json:"created"`
	Updated  int           `json:"updated"`
	Skipped  int           `json:"skipped"`
	Errors   []SyncError   `json:"errors"`
	DryRun   bool          `json:"dryRun"`
	Duration time.Duration `json:"-"`
}

// Summary renders the run for humans, alongside the structured result.
func (r *SyncResult) Summary() string {
	mode := "sync"
	if r.DryRun {
		mode = "dry-run"
	}
	return fmt.Sprintf("%s completed: %d created, %d updated, %d skipped, %d errors",
		mode, r.Created, r.Updated, r.Skipped, len(r.Errors))
}

// AuditReport is the non-target auditor's read-only partition of the CMS
// match collection. Nothing in this repo ever deletes from ToDelete;
// deletion is a human decision.
type AuditReport struct {
	ToDelete  []MatchRecord `json:"toDelete"`
	ToKeep    []MatchRecord `json:"toKeep"`
	Timestamp time.Time     `json:"timestamp"`
}
