package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"matchsync/internal/domain"
)

// SnapshotStore persists the discovery cache as a single JSONB row per
// team. Each refresh replaces the row wholesale; there is no incremental
// merge.
type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Get returns the stored snapshot for key, or nil when none exists.
func (s *SnapshotStore) Get(ctx context.Context, key string) (*domain.DiscoveryCache, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw,
		"SELECT value FROM discovery_snapshots WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cache domain.DiscoveryCache
	if err := json.Unmarshal(raw, &cache); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &cache, nil
}

func (s *SnapshotStore) Put(ctx context.Context, key string, cache *domain.DiscoveryCache) error {
	raw, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	query := `
		INSERT INTO discovery_snapshots (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`

	_, err = s.db.ExecContext(ctx, query, key, raw, time.Now().UTC())
	return err
}
