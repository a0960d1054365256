package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"matchsync/internal/config"
	"matchsync/internal/domain"
	"matchsync/internal/source/statsport"
)

// Options control one sync run. Limit truncates each competition's match
// list before reconciliation; it is a testing aid, not pagination. Season
// filters to one season year; empty or "all" processes everything.
type Options struct {
	DryRun bool   `json:"dryRun"`
	Limit  int    `json:"limit"`
	Season string `json:"season"`
}

// SyncService reconciles the provider's match records against the CMS by
// idempotent upsert keyed on (externalMatchID, externalCompetitionID).
// Competitions are processed sequentially; one competition's failure never
// aborts the run.
type SyncService struct {
	source    MatchSource
	matches   MatchStore
	discovery DiscoveryCache
	logger    *slog.Logger
	config    config.SyncConfig
	now       func() time.Time
}

func NewSyncService(
	source MatchSource,
	matches MatchStore,
	discovery DiscoveryCache,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		source:    source,
		matches:   matches,
		discovery: discovery,
		logger:    logger.With("component", "sync"),
		config:    cfg,
		now:       time.Now,
	}
}

// Sync runs one full reconciliation pass. A nil error with Success=true
// means every precondition held; per-item failures are in result.Errors.
func (s *SyncService) Sync(ctx context.Context, opts Options) (*domain.SyncResult, error) {
	startTime := s.now()
	s.logger.Info("starting sync",
		"dry_run", opts.DryRun,
		"limit", opts.Limit,
		"season", opts.Season,
	)

	cache, err := s.discovery.Get(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("load discovery cache: %w", err)
	}

	result := &domain.SyncResult{
		Success: true,
		DryRun:  opts.DryRun,
	}
	runTime := startTime.UTC()

	for _, competition := range cache.Competitions {
		if !seasonSelected(opts.Season, competition.SeasonYear) {
			continue
		}
		s.syncCompetition(ctx, competition, opts, runTime, result)
	}

	result.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", result.Duration,
	)

	return result, nil
}

func (s *SyncService) syncCompetition(
	ctx context.Context,
	competition domain.Competition,
	opts Options,
	runTime time.Time,
	result *domain.SyncResult,
) {
	// The competition-scoped id is mandatory: querying with any other id
	// silently returns zero matches upstream, so its absence is an
	// explicit error, never a quiet empty result.
	if competition.TeamScopedID == "" {
		result.Errors = append(result.Errors, domain.SyncError{
			CompetitionID: competition.CompetitionID,
			Message:       "missing competition-scoped team id",
		})
		return
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.config.CompetitionTimeout)
	defer cancel()

	matches, err := s.fetchTeamMatches(fetchCtx, competition)
	if err != nil {
		s.logger.Warn("failed to fetch competition matches",
			"competition_id", competition.CompetitionID,
			"error", err,
		)
		result.Errors = append(result.Errors, domain.SyncError{
			CompetitionID: competition.CompetitionID,
			Message:       err.Error(),
		})
		return
	}

	if opts.Limit > 0 && len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}

	for i := range matches {
		s.reconcile(ctx, &matches[i], competition, opts.DryRun, runTime, result)
	}
}

// fetchTeamMatches returns the competition's matches where the team
// appears as home or as away, deduplicated by match id.
func (s *SyncService) fetchTeamMatches(ctx context.Context, competition domain.Competition) ([]statsport.Match, error) {
	home, err := s.source.ListMatches(ctx, competition.CompetitionID, competition.TeamScopedID, "")
	if err != nil {
		return nil, fmt.Errorf("fetch home matches: %w", err)
	}

	away, err := s.source.ListMatches(ctx, competition.CompetitionID, "", competition.TeamScopedID)
	if err != nil {
		return nil, fmt.Errorf("fetch away matches: %w", err)
	}

	seen := make(map[string]bool, len(home)+len(away))
	merged := make([]statsport.Match, 0, len(home)+len(away))
	for _, m := range append(home, away...) {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		merged = append(merged, m)
	}

	return merged, nil
}

// reconcile applies one external match: create if unseen, update if any
// tracked field differs, skip if identical. Dry-run counts without
// writing. Errors are recorded with the match's identifying fields and
// processing continues.
func (s *SyncService) reconcile(
	ctx context.Context,
	match *statsport.Match,
	competition domain.Competition,
	dryRun bool,
	runTime time.Time,
	result *domain.SyncResult,
) {
	record := s.mapMatch(match, competition, runTime)

	existing, err := s.matches.FindByNaturalKey(ctx, record.ExternalMatchID, record.ExternalCompetitionID)
	if err != nil {
		result.Errors = append(result.Errors, domain.SyncError{
			CompetitionID: competition.CompetitionID,
			MatchID:       match.ID,
			Message:       fmt.Sprintf("lookup: %v", err),
		})
		return
	}

	switch {
	case existing == nil:
		if !dryRun {
			if _, err := s.matches.Create(ctx, record); err != nil {
				result.Errors = append(result.Errors, domain.SyncError{
					CompetitionID: competition.CompetitionID,
					MatchID:       match.ID,
					Message:       fmt.Sprintf("create: %v", err),
				})
				return
			}
		}
		result.Created++
		s.logger.Debug("match created", "external_match_id", match.ID, "dry_run", dryRun)

	case !existing.ContentEquals(record):
		if !dryRun {
			if err := s.matches.Update(ctx, existing.CMSID, record); err != nil {
				result.Errors = append(result.Errors, domain.SyncError{
					CompetitionID: competition.CompetitionID,
					MatchID:       match.ID,
					Message:       fmt.Sprintf("update: %v", err),
				})
				return
			}
		}
		result.Updated++
		s.logger.Debug("match updated", "external_match_id", match.ID, "dry_run", dryRun)

	default:
		result.Skipped++
	}
}

func (s *SyncService) mapMatch(match *statsport.Match, competition domain.Competition, runTime time.Time) *domain.MatchRecord {
	kickoffDate, kickoffTime := splitKickoff(match.Kickoff)
	title := fmt.Sprintf("%s vs %s", match.HomeTeamName, match.AwayTeamName)

	return &domain.MatchRecord{
		Title:                 title,
		Slug:                  slugify(fmt.Sprintf("%s-%s-%s", match.HomeTeamName, match.AwayTeamName, kickoffDate)),
		HomeTeam:              match.HomeTeamName,
		AwayTeam:              match.AwayTeamName,
		KickoffDate:           kickoffDate,
		KickoffTime:           kickoffTime,
		Venue:                 match.Venue,
		Status:                domain.MatchStatus(match.Status),
		GoalsHome:             match.GoalsHome,
		GoalsAway:             match.GoalsAway,
		CompetitionName:       competition.CompetitionName,
		Season:                competition.SeasonYear,
		ExternalMatchID:       match.ID,
		ExternalCompetitionID: competition.CompetitionID,
		LastSyncedAt:          runTime,
	}
}

func seasonSelected(filter, season string) bool {
	return filter == "" || filter == "all" || filter == season
}

// splitKickoff breaks an RFC3339 kickoff into the CMS's date and time
// fields. A malformed timestamp yields the raw string as the date so the
// record still round-trips rather than being dropped.
func splitKickoff(kickoff string) (string, string) {
	t, err := time.Parse(time.RFC3339, kickoff)
	if err != nil {
		return kickoff, ""
	}
	return t.UTC().Format("2006-01-02"), t.UTC().Format("15:04")
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
