package invalidation

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"matchsync/internal/domain"
)

// Invalidator applies a computed invalidation against the CMS-facing cache
// layer.
type Invalidator interface {
	Invalidate(ctx context.Context, inv domain.Invalidation) error
}

// Result is the gateway's response payload.
type Result struct {
	Revalidated bool             `json:"revalidated"`
	MatchID     string           `json:"matchId"`
	LeagueID    string           `json:"leagueId"`
	EventType   domain.EventType `json:"eventType"`
	Timestamp   time.Time        `json:"timestamp"`
}

// Gateway turns one normalized live event into a precisely scoped cache
// invalidation. The shared secret is checked before anything else; a
// mismatch performs no invalidation at all.
type Gateway struct {
	secret      string
	invalidator Invalidator
	logger      *slog.Logger
	now         func() time.Time
}

func NewGateway(secret string, invalidator Invalidator, logger *slog.Logger) *Gateway {
	return &Gateway{
		secret:      secret,
		invalidator: invalidator,
		logger:      logger.With("component", "invalidation"),
		now:         time.Now,
	}
}

func (g *Gateway) Handle(ctx context.Context, event domain.LiveEvent) (*Result, error) {
	if subtle.ConstantTimeCompare([]byte(event.Secret), []byte(g.secret)) != 1 {
		return nil, domain.ErrUnauthorized
	}

	inv := ScopeFor(event.EventType, event.MatchID, event.LeagueID)

	if err := g.invalidator.Invalidate(ctx, inv); err != nil {
		return nil, fmt.Errorf("invalidate: %w", err)
	}

	g.logger.Info("cache invalidated",
		"match_id", event.MatchID,
		"league_id", event.LeagueID,
		"event_type", event.EventType,
		"tags", inv.Tags,
		"paths", inv.Paths,
	)

	return &Result{
		Revalidated: true,
		MatchID:     event.MatchID,
		LeagueID:    event.LeagueID,
		EventType:   event.EventType,
		Timestamp:   g.now().UTC(),
	}, nil
}
