package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"matchsync/internal/domain"
	"matchsync/internal/source/statsport"
)

// Engine discovers, without prior knowledge, which competitions the target
// team participates in. Each run is a pure function of the provider's
// current state; the result replaces the persisted snapshot wholesale.
type Engine struct {
	source    LeagueSource
	snapshots SnapshotStore
	team      domain.TeamKeys
	logger    *slog.Logger
	now       func() time.Time
}

func NewEngine(source LeagueSource, snapshots SnapshotStore, team domain.TeamKeys, logger *slog.Logger) *Engine {
	return &Engine{
		source:    source,
		snapshots: snapshots,
		team:      team,
		logger:    logger.With("component", "discovery"),
		now:       time.Now,
	}
}

// Discover enumerates every competition, checks each roster for the target
// team, and persists the resulting snapshot. A single competition's roster
// failure is logged and skipped; discovery never aborts globally on one
// bad competition.
func (e *Engine) Discover(ctx context.Context) (*domain.DiscoveryCache, error) {
	leagues, err := e.source.ListLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	cache := &domain.DiscoveryCache{
		TeamID:   e.team.InternalID,
		TeamName: e.team.DisplayName,
	}

	for _, league := range leagues {
		teams, err := e.source.ListTeams(ctx, league.ID)
		if err != nil {
			e.logger.Warn("failed to fetch roster, skipping competition",
				"league_id", league.ID,
				"league_name", league.Name,
				"error", err,
			)
			continue
		}

		entry, ok := e.findTeam(league, teams)
		if !ok {
			continue
		}

		e.logger.Debug("team found in competition",
			"league_id", league.ID,
			"season", entry.SeasonYear,
			"team_scoped_id", entry.TeamScopedID,
		)
		cache.Competitions = append(cache.Competitions, entry)
	}

	cache.SortCompetitions()
	now := e.now().UTC()
	cache.LastUpdated = &now

	if err := e.snapshots.Put(ctx, e.team.InternalID, cache); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	e.logger.Info("discovery completed",
		"leagues_scanned", len(leagues),
		"competitions_found", len(cache.Competitions),
	)

	return cache, nil
}

// findTeam matches the target team against one roster: internal id,
// external id, or exact display name, first match wins. No fuzzy matching;
// a provider renaming the team while also changing its id scheme would
// make this silently miss, which is a known limitation.
func (e *Engine) findTeam(league statsport.League, teams []statsport.Team) (domain.Competition, bool) {
	for _, team := range teams {
		if !e.teamMatches(team) {
			continue
		}

		return domain.Competition{
			CompetitionID:    league.ID,
			CompetitionName:  league.Name,
			StartDate:        league.StartDate,
			EndDate:          league.EndDate,
			TournamentNumber: league.TournamentNumber,
			SeasonYear:       seasonYear(league.StartDate, e.logger, league.ID),
			TeamScopedID:     team.ID,
		}, true
	}
	return domain.Competition{}, false
}

func (e *Engine) teamMatches(team statsport.Team) bool {
	if e.team.InternalID != "" && team.ID == e.team.InternalID {
		return true
	}
	if e.team.ExternalID != "" && (team.ID == e.team.ExternalID || team.ExternalID == e.team.ExternalID) {
		return true
	}
	return e.team.DisplayName != "" && team.Name == e.team.DisplayName
}

// seasonYear derives the season from the competition start date's calendar
// year.
func seasonYear(startDate string, logger *slog.Logger, leagueID string) string {
	t, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		logger.Warn("failed to parse start date",
			"league_id", leagueID,
			"start_date", startDate,
		)
		return ""
	}
	return fmt.Sprintf("%d", t.Year())
}
