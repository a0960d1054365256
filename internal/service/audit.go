package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"matchsync/internal/domain"
)

// Auditor flags CMS match records whose participants do not include the
// target team. It is strictly read-only: deletion is a human decision, the
// auditor only computes the partition, deterministically and repeatably.
type Auditor struct {
	matches  MatchStore
	teamName string
	logger   *slog.Logger
	now      func() time.Time
}

func NewAuditor(matches MatchStore, teamName string, logger *slog.Logger) *Auditor {
	return &Auditor{
		matches:  matches,
		teamName: teamName,
		logger:   logger.With("component", "audit"),
		now:      time.Now,
	}
}

// Preview partitions every match record by whether either participant name
// contains the target team name, case-insensitively. An empty team name
// is rejected up front: it substring-matches every record, which would
// make the whole report ToKeep and look like a clean audit.
func (a *Auditor) Preview(ctx context.Context) (*domain.AuditReport, error) {
	if a.teamName == "" {
		return nil, fmt.Errorf("%w: audit requires a team display name", domain.ErrConfiguration)
	}

	records, err := a.matches.ListAll(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	needle := strings.ToLower(a.teamName)
	report := &domain.AuditReport{
		ToDelete:  []domain.MatchRecord{},
		ToKeep:    []domain.MatchRecord{},
		Timestamp: a.now().UTC(),
	}

	for _, record := range records {
		if strings.Contains(strings.ToLower(record.HomeTeam), needle) ||
			strings.Contains(strings.ToLower(record.AwayTeam), needle) {
			report.ToKeep = append(report.ToKeep, record)
		} else {
			report.ToDelete = append(report.ToDelete, record)
		}
	}

	a.logger.Info("audit preview computed",
		"total", len(records),
		"to_keep", len(report.ToKeep),
		"to_delete", len(report.ToDelete),
	)

	return report, nil
}
