package statsport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"matchsync/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(serverURL string) *Client {
	return New(Config{
		BaseURL:        serverURL,
		APIKey:         "test-key",
		Timeout:        2 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ClientTestSuite) TestListLeagues_SendsAuthHeader() {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("X-Auth-Token")
		s.Equal("/leagues", r.URL.Path)
		w.Write([]byte(`[{"id":"l-1","name":"Premier Division","startDate":"2025-08-01"}]`))
	}))
	defer server.Close()

	leagues, err := s.newClient(server.URL).ListLeagues(context.Background())

	s.Require().NoError(err)
	s.Equal("test-key", gotAuth)
	s.Require().Len(leagues, 1)
	s.Equal("l-1", leagues[0].ID)
	s.Equal("Premier Division", leagues[0].Name)
	s.Equal("2025-08-01", leagues[0].StartDate)
}

func (s *ClientTestSuite) TestListTeams_ScopesPathToLeague() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/leagues/l-1/teams", r.URL.Path)
		w.Write([]byte(`[{"id":"11","externalId":"ext-11","name":"Testville FC"}]`))
	}))
	defer server.Close()

	teams, err := s.newClient(server.URL).ListTeams(context.Background(), "l-1")

	s.Require().NoError(err)
	s.Require().Len(teams, 1)
	s.Equal("11", teams[0].ID)
	s.Equal("ext-11", teams[0].ExternalID)
}

func (s *ClientTestSuite) TestListMatches_FilterParams() {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id":"m-1","leagueId":"l-1","homeTeamId":"11","status":"Scheduled"}]`))
	}))
	defer server.Close()

	matches, err := s.newClient(server.URL).ListMatches(context.Background(), "l-1", "11", "")

	s.Require().NoError(err)
	s.Equal("home-team-id=11", gotQuery)
	s.Require().Len(matches, 1)
	s.Equal("m-1", matches[0].ID)
}

func (s *ClientTestSuite) TestListMatches_NoFilterOmitsQuery() {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).ListMatches(context.Background(), "l-1", "", "")

	s.Require().NoError(err)
	s.Empty(gotQuery)
}

func (s *ClientTestSuite) TestGet_RetriesTransientFailures() {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).ListLeagues(context.Background())

	s.Require().NoError(err)
	s.Equal(int32(3), calls.Load())
}

func (s *ClientTestSuite) TestGet_ExhaustedRetriesReturnUpstreamError() {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).ListLeagues(context.Background())

	s.Require().Error(err)
	var upstream *domain.UpstreamError
	s.Require().ErrorAs(err, &upstream)
	s.Equal("/leagues", upstream.Endpoint)
	s.Equal(int32(3), calls.Load())
}

func (s *ClientTestSuite) TestGet_MalformedBodyIsUpstreamError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).ListLeagues(context.Background())

	var upstream *domain.UpstreamError
	s.Require().ErrorAs(err, &upstream)
}

func (s *ClientTestSuite) TestLiveStats_DecodesScoreboard() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/leagues/l-1/matches/m-1/live-stats", r.URL.Path)
		w.Write([]byte(`{"matchId":"m-1","status":"In progress","minute":57,"goalsHome":2,"goalsAway":1}`))
	}))
	defer server.Close()

	stats, err := s.newClient(server.URL).LiveStats(context.Background(), "l-1", "m-1")

	s.Require().NoError(err)
	s.Equal(57, stats.Minute)
	s.Equal(2, stats.GoalsHome)
}

func (s *ClientTestSuite) TestCalculateBackoff_DoublesAndCaps() {
	client := s.newClient("http://unused")

	s.Equal(time.Millisecond, client.calculateBackoff(1))
	s.Equal(2*time.Millisecond, client.calculateBackoff(2))
	s.Equal(4*time.Millisecond, client.calculateBackoff(3))
	s.Equal(5*time.Millisecond, client.calculateBackoff(4))
}
