package listener

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

// WebhookClient POSTs normalized live events to the cache-invalidation
// gateway. The shared secret is attached here so the listener's message
// handling never sees it.
type WebhookClient struct {
	httpClient *http.Client
	url        string
	secret     string
	logger     *slog.Logger
}

func NewWebhookClient(url, secret string, timeout time.Duration, logger *slog.Logger) *WebhookClient {
	return &WebhookClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		secret:     secret,
		logger:     logger.With("component", "webhook"),
	}
}

func (c *WebhookClient) Send(ctx context.Context, event domain.LiveEvent) error {
	event.Secret = c.secret
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned %d", resp.StatusCode)
	}

	return nil
}
