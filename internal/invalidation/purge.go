package invalidation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"matchsync/internal/domain"
)

// HTTPInvalidator purges tags and paths against the CMS cache layer's
// purge endpoint.
type HTTPInvalidator struct {
	httpClient *http.Client
	purgeURL   string
	logger     *slog.Logger
}

func NewHTTPInvalidator(purgeURL string, timeout time.Duration, logger *slog.Logger) *HTTPInvalidator {
	return &HTTPInvalidator{
		httpClient: &http.Client{Timeout: timeout},
		purgeURL:   purgeURL,
		logger:     logger.With("component", "purge"),
	}
}

func (p *HTTPInvalidator) Invalidate(ctx context.Context, inv domain.Invalidation) error {
	body, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("marshal purge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.purgeURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create purge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute purge request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("purge endpoint returned %d", resp.StatusCode)
	}

	return nil
}

// LogInvalidator only records what would have been purged. Used when no
// purge endpoint is configured, keeping the gateway observable in
// environments without a CDN in front.
type LogInvalidator struct {
	logger *slog.Logger
}

func NewLogInvalidator(logger *slog.Logger) *LogInvalidator {
	return &LogInvalidator{logger: logger.With("component", "purge")}
}

func (p *LogInvalidator) Invalidate(_ context.Context, inv domain.Invalidation) error {
	p.logger.Info("purge (log only)", "tags", inv.Tags, "paths", inv.Paths)
	return nil
}
