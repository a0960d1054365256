package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"matchsync/internal/domain"
	"matchsync/internal/service/mocks"
)

type AuditorTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	matches *mocks.MockMatchStore
	auditor *Auditor
}

func (s *AuditorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.matches = mocks.NewMockMatchStore(s.ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.auditor = NewAuditor(s.matches, "Testville FC", logger)
}

func (s *AuditorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditorTestSuite(t *testing.T) {
	suite.Run(t, new(AuditorTestSuite))
}

func (s *AuditorTestSuite) TestPreview_PartitionsByTeamName() {
	ctx := context.Background()

	records := []domain.MatchRecord{
		{CMSID: 1, HomeTeam: "Testville FC", AwayTeam: "Rivertown"},
		{CMSID: 2, HomeTeam: "Rivertown", AwayTeam: "testville fc"},
		{CMSID: 3, HomeTeam: "Northgate", AwayTeam: "Southbank"},
		{CMSID: 4, HomeTeam: "FC Testville FC B", AwayTeam: "Eastfield"},
	}

	s.matches.EXPECT().ListAll(ctx, 0).Return(records, nil)

	report, err := s.auditor.Preview(ctx)

	s.NoError(err)
	s.Len(report.ToKeep, 3)
	s.Require().Len(report.ToDelete, 1)
	s.Equal(int64(3), report.ToDelete[0].CMSID)
	s.False(report.Timestamp.IsZero())
}

func (s *AuditorTestSuite) TestPreview_EmptyStore() {
	ctx := context.Background()

	s.matches.EXPECT().ListAll(ctx, 0).Return(nil, nil)

	report, err := s.auditor.Preview(ctx)

	s.NoError(err)
	s.Empty(report.ToKeep)
	s.Empty(report.ToDelete)
}

func (s *AuditorTestSuite) TestPreview_IsRepeatable() {
	ctx := context.Background()

	records := []domain.MatchRecord{
		{CMSID: 1, HomeTeam: "Testville FC", AwayTeam: "Rivertown"},
		{CMSID: 2, HomeTeam: "Northgate", AwayTeam: "Southbank"},
	}

	s.matches.EXPECT().ListAll(ctx, 0).Return(records, nil).Times(2)

	first, err := s.auditor.Preview(ctx)
	s.NoError(err)
	second, err := s.auditor.Preview(ctx)
	s.NoError(err)

	s.Equal(first.ToDelete, second.ToDelete)
	s.Equal(first.ToKeep, second.ToKeep)
}

func (s *AuditorTestSuite) TestPreview_EmptyTeamNameRejected() {
	ctx := context.Background()

	// An empty needle matches every record, so the store is never queried.
	auditor := NewAuditor(s.matches, "", slog.New(slog.NewTextHandler(os.Stdout, nil)))

	report, err := auditor.Preview(ctx)

	s.Require().ErrorIs(err, domain.ErrConfiguration)
	s.Nil(report)
}

func (s *AuditorTestSuite) TestPreview_StoreError() {
	ctx := context.Background()

	s.matches.EXPECT().ListAll(ctx, 0).Return(nil, errors.New("db down"))

	report, err := s.auditor.Preview(ctx)

	s.Error(err)
	s.Nil(report)
}
