package statsport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"matchsync/internal/domain"
)

const authHeader = "X-Auth-Token"

// Config holds provider client configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client is a thin typed wrapper over the sports-data provider API. It
// injects the auth header, bounds every call with the configured timeout,
// retries transient failures, and validates response shape. No business
// logic lives here.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "statsport"),
	}
}

// ListLeagues returns every competition the provider exposes.
func (c *Client) ListLeagues(ctx context.Context) ([]League, error) {
	var leagues []League
	if err := c.get(ctx, "/leagues", nil, &leagues); err != nil {
		return nil, err
	}
	return leagues, nil
}

// ListTeams returns the roster of one league. Team ids in the result are
// scoped to that league.
func (c *Client) ListTeams(ctx context.Context, leagueID string) ([]Team, error) {
	var teams []Team
	path := fmt.Sprintf("/leagues/%s/teams", url.PathEscape(leagueID))
	if err := c.get(ctx, path, nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// ListMatches returns matches in a league, optionally filtered to those
// where the given team id appears as home or away. The id must be the
// league-scoped one; any other id silently matches nothing upstream.
func (c *Client) ListMatches(ctx context.Context, leagueID, homeTeamID, awayTeamID string) ([]Match, error) {
	params := url.Values{}
	if homeTeamID != "" {
		params.Set("home-team-id", homeTeamID)
	}
	if awayTeamID != "" {
		params.Set("away-team-id", awayTeamID)
	}

	var matches []Match
	path := fmt.Sprintf("/leagues/%s/matches", url.PathEscape(leagueID))
	if err := c.get(ctx, path, params, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// LiveStats returns the live scoreboard for one match.
func (c *Client) LiveStats(ctx context.Context, leagueID, matchID string) (*LiveStats, error) {
	var stats LiveStats
	path := fmt.Sprintf("/leagues/%s/matches/%s/live-stats", url.PathEscape(leagueID), url.PathEscape(matchID))
	if err := c.get(ctx, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MatchEvents returns the event feed for one match, optionally from a
// specific event id onward.
func (c *Client) MatchEvents(ctx context.Context, leagueID, matchID, afterEventID string) ([]MatchEvent, error) {
	params := url.Values{}
	if afterEventID != "" {
		params.Set("event-id", afterEventID)
	}

	var events []MatchEvent
	path := fmt.Sprintf("/leagues/%s/matches/%s/events", url.PathEscape(leagueID), url.PathEscape(matchID))
	if err := c.get(ctx, path, params, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, endpoint, out)
		if err == nil {
			return nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return &domain.UpstreamError{Endpoint: path, Err: ctx.Err()}
		case <-time.After(backoff):
		}
	}

	return &domain.UpstreamError{Endpoint: path, Err: fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)}
}

func (c *Client) doRequest(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(authHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
