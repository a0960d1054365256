package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"matchsync/internal/domain"
	"matchsync/internal/invalidation"
	"matchsync/internal/service"
)

// Syncer runs one reconciliation pass.
type Syncer interface {
	Sync(ctx context.Context, opts service.Options) (*domain.SyncResult, error)
}

// Auditor computes the non-target partition.
type Auditor interface {
	Preview(ctx context.Context) (*domain.AuditReport, error)
}

// Server exposes the sync trigger, discovery, audit, and the cache
// invalidation webhook. Handlers stay thin; all logic lives in the
// services.
type Server struct {
	syncer     Syncer
	auditor    Auditor
	discovery  service.DiscoveryCache
	gateway    *invalidation.Gateway
	syncSecret string
	logger     *slog.Logger
}

func New(
	syncer Syncer,
	auditor Auditor,
	discovery service.DiscoveryCache,
	gateway *invalidation.Gateway,
	syncSecret string,
	logger *slog.Logger,
) *Server {
	return &Server{
		syncer:     syncer,
		auditor:    auditor,
		discovery:  discovery,
		gateway:    gateway,
		syncSecret: syncSecret,
		logger:     logger.With("component", "http"),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/sync", s.requireSecret(s.handleSync))
	mux.HandleFunc("POST /api/discovery/refresh", s.requireSecret(s.handleDiscoveryRefresh))
	mux.HandleFunc("GET /api/discovery", s.requireSecret(s.handleDiscovery))
	mux.HandleFunc("GET /api/audit/non-target", s.requireSecret(s.handleAudit))
	mux.HandleFunc("POST /api/revalidate", s.handleRevalidate)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// requireSecret accepts the sync secret as either a bearer token or an
// X-Sync-Secret header.
func (s *Server) requireSecret(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		presented := r.Header.Get("X-Sync-Secret")
		if presented == "" {
			presented = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(s.syncSecret)) != 1 {
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}

type syncResponse struct {
	*domain.SyncResult
	Summary string `json:"summary"`
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	// ContentLength is -1 on chunked requests, so the body is decoded
	// unconditionally; an empty body just means default options.
	var opts service.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.syncer.Sync(r.Context(), opts)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, syncResponse{
		SyncResult: result,
		Summary:    result.Summary(),
	})
}

func (s *Server) handleDiscoveryRefresh(w http.ResponseWriter, r *http.Request) {
	cache, err := s.discovery.Get(r.Context(), true)
	if err != nil {
		s.logger.Error("discovery refresh failed", "error", err)
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, cache)
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	cache, err := s.discovery.Get(r.Context(), false)
	if err != nil {
		s.logger.Error("discovery read failed", "error", err)
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, cache)
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	report, err := s.auditor.Preview(r.Context())
	if err != nil {
		s.logger.Error("audit preview failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleRevalidate(w http.ResponseWriter, r *http.Request) {
	var event domain.LiveEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.gateway.Handle(r.Context(), event)
	if errors.Is(err, domain.ErrUnauthorized) {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err != nil {
		s.logger.Error("revalidation failed", "match_id", event.MatchID, "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
