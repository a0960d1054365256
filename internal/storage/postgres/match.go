package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"matchsync/internal/domain"
)

// MatchStore is the CMS match collection, exposed as an upsert-capable
// store. The sync engine only ever addresses provider-synced records
// through the natural key; custom matches are filtered out at the query.
type MatchStore struct {
	db *sqlx.DB
}

func NewMatchStore(db *sqlx.DB) *MatchStore {
	return &MatchStore{db: db}
}

const matchColumns = `
	id, title, slug, home_team, away_team, kickoff_date, kickoff_time,
	venue, status, goals_home, goals_away, competition_name, season,
	external_match_id, external_competition_id, is_custom_match, last_synced_at`

// FindByNaturalKey looks up the record for (externalMatchID,
// externalCompetitionID), excluding custom matches. Returns nil when no
// such record exists.
func (s *MatchStore) FindByNaturalKey(ctx context.Context, externalMatchID, externalCompetitionID string) (*domain.MatchRecord, error) {
	query := `
		SELECT` + matchColumns + `
		FROM matches
		WHERE external_match_id = $1
		  AND external_competition_id = $2
		  AND NOT is_custom_match`

	var record domain.MatchRecord
	err := s.db.GetContext(ctx, &record, query, externalMatchID, externalCompetitionID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MatchStore) Create(ctx context.Context, record *domain.MatchRecord) (int64, error) {
	query := `
		INSERT INTO matches (
			title, slug, home_team, away_team, kickoff_date, kickoff_time,
			venue, status, goals_home, goals_away, competition_name, season,
			external_match_id, external_competition_id, is_custom_match, last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		record.Title,
		record.Slug,
		record.HomeTeam,
		record.AwayTeam,
		record.KickoffDate,
		record.KickoffTime,
		record.Venue,
		record.Status,
		record.GoalsHome,
		record.GoalsAway,
		record.CompetitionName,
		record.Season,
		record.ExternalMatchID,
		record.ExternalCompetitionID,
		record.IsCustomMatch,
		record.LastSyncedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites the tracked content columns of an existing record. Columns
// an editor may set by hand are deliberately absent from the SET list so a
// sync never clobbers them.
func (s *MatchStore) Update(ctx context.Context, id int64, record *domain.MatchRecord) error {
	query := `
		UPDATE matches SET
			home_team = $2,
			away_team = $3,
			kickoff_date = $4,
			kickoff_time = $5,
			venue = $6,
			status = $7,
			goals_home = $8,
			goals_away = $9,
			competition_name = $10,
			season = $11,
			last_synced_at = $12
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		id,
		record.HomeTeam,
		record.AwayTeam,
		record.KickoffDate,
		record.KickoffTime,
		record.Venue,
		record.Status,
		record.GoalsHome,
		record.GoalsAway,
		record.CompetitionName,
		record.Season,
		record.LastSyncedAt,
	)
	if err != nil {
		return err
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ListAll returns every match record, newest kickoff first. limit <= 0
// means no limit.
func (s *MatchStore) ListAll(ctx context.Context, limit int) ([]domain.MatchRecord, error) {
	query := `
		SELECT` + matchColumns + `
		FROM matches
		ORDER BY kickoff_date DESC, id DESC`

	var records []domain.MatchRecord
	var err error
	if limit > 0 {
		err = s.db.SelectContext(ctx, &records, query+" LIMIT $1", limit)
	} else {
		err = s.db.SelectContext(ctx, &records, query)
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}
