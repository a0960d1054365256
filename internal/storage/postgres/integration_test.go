//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"matchsync/internal/domain"
	"matchsync/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_matches.up.sql"),
			filepath.Join(migrationsPath, "002_create_discovery_snapshots.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM matches")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM discovery_snapshots")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) record(matchID, competitionID string) *domain.MatchRecord {
	return &domain.MatchRecord{
		Title:                 "Testville FC vs Rivertown",
		Slug:                  "testville-fc-rivertown-2025-09-14",
		HomeTeam:              "Testville FC",
		AwayTeam:              "Rivertown",
		KickoffDate:           "2025-09-14",
		KickoffTime:           "15:00",
		Venue:                 "Testville Arena",
		Status:                domain.StatusScheduled,
		CompetitionName:       "Premier Division",
		Season:                "2025",
		ExternalMatchID:       matchID,
		ExternalCompetitionID: competitionID,
		LastSyncedAt:          time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresIntegrationSuite) TestMatchStore_CreateAndFindByNaturalKey() {
	store := NewMatchStore(s.db)

	id, err := store.Create(s.ctx, s.record("m-1", "c-1"))
	s.Require().NoError(err)
	s.Greater(id, int64(0))

	found, err := store.FindByNaturalKey(s.ctx, "m-1", "c-1")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(id, found.CMSID)
	s.Equal("Testville FC", found.HomeTeam)
	s.Equal(domain.StatusScheduled, found.Status)
}

func (s *PostgresIntegrationSuite) TestMatchStore_FindByNaturalKey_Missing() {
	store := NewMatchStore(s.db)

	found, err := store.FindByNaturalKey(s.ctx, "absent", "c-1")
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *PostgresIntegrationSuite) TestMatchStore_NaturalKeyIsCompetitionScoped() {
	store := NewMatchStore(s.db)

	_, err := store.Create(s.ctx, s.record("m-1", "c-1"))
	s.Require().NoError(err)
	_, err = store.Create(s.ctx, s.record("m-1", "c-2"))
	s.Require().NoError(err)

	inC1, err := store.FindByNaturalKey(s.ctx, "m-1", "c-1")
	s.Require().NoError(err)
	inC2, err := store.FindByNaturalKey(s.ctx, "m-1", "c-2")
	s.Require().NoError(err)

	s.Require().NotNil(inC1)
	s.Require().NotNil(inC2)
	s.NotEqual(inC1.CMSID, inC2.CMSID)
}

func (s *PostgresIntegrationSuite) TestMatchStore_CustomMatchNeverFound() {
	store := NewMatchStore(s.db)

	custom := s.record("m-1", "c-1")
	custom.IsCustomMatch = true
	_, err := store.Create(s.ctx, custom)
	s.Require().NoError(err)

	found, err := store.FindByNaturalKey(s.ctx, "m-1", "c-1")
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *PostgresIntegrationSuite) TestMatchStore_DuplicateNaturalKeyRejected() {
	store := NewMatchStore(s.db)

	_, err := store.Create(s.ctx, s.record("m-1", "c-1"))
	s.Require().NoError(err)

	_, err = store.Create(s.ctx, s.record("m-1", "c-1"))
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestMatchStore_CustomMatchesNotUnderUniqueIndex() {
	store := NewMatchStore(s.db)

	first := s.record("m-1", "c-1")
	first.IsCustomMatch = true
	_, err := store.Create(s.ctx, first)
	s.Require().NoError(err)

	second := s.record("m-1", "c-1")
	second.IsCustomMatch = true
	_, err = store.Create(s.ctx, second)
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestMatchStore_UpdateTrackedColumns() {
	store := NewMatchStore(s.db)

	id, err := store.Create(s.ctx, s.record("m-1", "c-1"))
	s.Require().NoError(err)

	updated := s.record("m-1", "c-1")
	updated.Status = domain.StatusOver
	updated.GoalsHome = 2
	updated.GoalsAway = 1
	s.Require().NoError(store.Update(s.ctx, id, updated))

	found, err := store.FindByNaturalKey(s.ctx, "m-1", "c-1")
	s.Require().NoError(err)
	s.Equal(domain.StatusOver, found.Status)
	s.Equal(2, found.GoalsHome)
	s.Equal(1, found.GoalsAway)
}

func (s *PostgresIntegrationSuite) TestMatchStore_UpdateNeverTouchesTitleOrSlug() {
	store := NewMatchStore(s.db)

	id, err := store.Create(s.ctx, s.record("m-1", "c-1"))
	s.Require().NoError(err)

	_, err = s.db.ExecContext(s.ctx,
		"UPDATE matches SET title = $1, slug = $2 WHERE id = $3",
		"Editor Headline", "editor-slug", id)
	s.Require().NoError(err)

	s.Require().NoError(store.Update(s.ctx, id, s.record("m-1", "c-1")))

	found, err := store.FindByNaturalKey(s.ctx, "m-1", "c-1")
	s.Require().NoError(err)
	s.Equal("Editor Headline", found.Title)
	s.Equal("editor-slug", found.Slug)
}

func (s *PostgresIntegrationSuite) TestMatchStore_UpdateMissingRow() {
	store := NewMatchStore(s.db)

	err := store.Update(s.ctx, 99999, s.record("m-1", "c-1"))
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestMatchStore_ListAllOrderedAndLimited() {
	store := NewMatchStore(s.db)

	early := s.record("m-1", "c-1")
	early.KickoffDate = "2025-08-01"
	late := s.record("m-2", "c-1")
	late.KickoffDate = "2025-09-14"

	_, err := store.Create(s.ctx, early)
	s.Require().NoError(err)
	_, err = store.Create(s.ctx, late)
	s.Require().NoError(err)

	all, err := store.ListAll(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("m-2", all[0].ExternalMatchID)

	limited, err := store.ListAll(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(limited, 1)
}

func (s *PostgresIntegrationSuite) TestSnapshotStore_RoundTrip() {
	store := NewSnapshotStore(s.db)

	cache := &domain.DiscoveryCache{
		TeamID:      "11",
		TeamName:    "Testville FC",
		LastUpdated: utils.Ptr(time.Now().UTC().Truncate(time.Microsecond)),
		Competitions: []domain.Competition{
			{CompetitionID: "c-1", CompetitionName: "Premier Division", SeasonYear: "2025", TeamScopedID: "11"},
		},
	}

	s.Require().NoError(store.Put(s.ctx, "testville", cache))

	got, err := store.Get(s.ctx, "testville")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Testville FC", got.TeamName)
	s.Require().Len(got.Competitions, 1)
	s.Equal("11", got.Competitions[0].TeamScopedID)
}

func (s *PostgresIntegrationSuite) TestSnapshotStore_GetMissingIsNil() {
	store := NewSnapshotStore(s.db)

	got, err := store.Get(s.ctx, "absent")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *PostgresIntegrationSuite) TestSnapshotStore_PutReplacesWholesale() {
	store := NewSnapshotStore(s.db)

	s.Require().NoError(store.Put(s.ctx, "testville", &domain.DiscoveryCache{
		TeamID:       "11",
		Competitions: []domain.Competition{{CompetitionID: "c-1"}, {CompetitionID: "c-2"}},
	}))
	s.Require().NoError(store.Put(s.ctx, "testville", &domain.DiscoveryCache{
		TeamID:       "11",
		Competitions: []domain.Competition{{CompetitionID: "c-3"}},
	}))

	got, err := store.Get(s.ctx, "testville")
	s.Require().NoError(err)
	s.Require().Len(got.Competitions, 1)
	s.Equal("c-3", got.Competitions[0].CompetitionID)
}
