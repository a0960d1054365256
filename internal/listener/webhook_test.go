package listener

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchsync/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookSend_AttachesSecretAndTimestamp(t *testing.T) {
	var got domain.LiveEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, "hook-secret", time.Second, discardLogger())

	err := client.Send(context.Background(), domain.LiveEvent{
		MatchID:   "m-1",
		LeagueID:  "l-1",
		EventType: domain.EventGoal,
	})

	require.NoError(t, err)
	assert.Equal(t, "m-1", got.MatchID)
	assert.Equal(t, "hook-secret", got.Secret)
	assert.False(t, got.Timestamp.IsZero())
}

func TestWebhookSend_PreservesEventTimestamp(t *testing.T) {
	var got domain.LiveEvent
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	stamped := time.Date(2025, 9, 14, 15, 4, 0, 0, time.UTC)
	client := NewWebhookClient(server.URL, "hook-secret", time.Second, discardLogger())

	require.NoError(t, client.Send(context.Background(), domain.LiveEvent{
		MatchID:   "m-1",
		Timestamp: stamped,
	}))
	assert.True(t, got.Timestamp.Equal(stamped))
}

func TestWebhookSend_UnauthorizedIsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, "wrong", time.Second, discardLogger())

	err := client.Send(context.Background(), domain.LiveEvent{MatchID: "m-1"})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestWebhookSend_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, "hook-secret", time.Second, discardLogger())

	require.Error(t, client.Send(context.Background(), domain.LiveEvent{MatchID: "m-1"}))
}
