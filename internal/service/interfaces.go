package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"matchsync/internal/domain"
	"matchsync/internal/source/statsport"
)

// MatchSource is the slice of the provider API the sync engine needs.
type MatchSource interface {
	ListMatches(ctx context.Context, leagueID, homeTeamID, awayTeamID string) ([]statsport.Match, error)
}

// MatchStore is the CMS match collection. FindByNaturalKey excludes custom
// matches and returns nil when no record exists.
type MatchStore interface {
	FindByNaturalKey(ctx context.Context, externalMatchID, externalCompetitionID string) (*domain.MatchRecord, error)
	Create(ctx context.Context, record *domain.MatchRecord) (int64, error)
	Update(ctx context.Context, id int64, record *domain.MatchRecord) error
	ListAll(ctx context.Context, limit int) ([]domain.MatchRecord, error)
}

// DiscoveryCache is the read path over the discovery snapshot.
type DiscoveryCache interface {
	Get(ctx context.Context, force bool) (*domain.DiscoveryCache, error)
}
