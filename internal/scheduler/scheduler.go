package scheduler

import (
	"context"
	"log/slog"
	"time"

	"matchsync/internal/domain"
	"matchsync/internal/service"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context, opts service.Options) (*domain.SyncResult, error)
}

// Scheduler runs a full (non-dry-run) sync on a fixed interval, first run
// immediately.
type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.syncer.Sync(syncCtx, service.Options{}); err != nil {
		s.logger.Error("scheduled sync failed", "error", err)
	}
}
