package discovery

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"matchsync/internal/domain"
	"matchsync/internal/source/statsport"
)

// LeagueSource is the slice of the provider API discovery needs.
type LeagueSource interface {
	ListLeagues(ctx context.Context) ([]statsport.League, error)
	ListTeams(ctx context.Context, leagueID string) ([]statsport.Team, error)
}

// SnapshotStore persists the discovery result between runs. Get returns
// nil when no snapshot exists.
type SnapshotStore interface {
	Get(ctx context.Context, key string) (*domain.DiscoveryCache, error)
	Put(ctx context.Context, key string, cache *domain.DiscoveryCache) error
}
