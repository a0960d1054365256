package discovery

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"matchsync/internal/domain"
)

// Discoverer runs one full discovery sweep.
type Discoverer interface {
	Discover(ctx context.Context) (*domain.DiscoveryCache, error)
}

type call struct {
	wg      sync.WaitGroup
	refresh bool
	value   *domain.DiscoveryCache
	err     error
}

// Cache is the read path over the persisted discovery snapshot: a short
// TTL memo collapses repeated reads, and concurrent refreshes are
// deduplicated single-flight — the first caller starts the sweep, everyone
// else waits on the same in-flight result. The slot is cleared only after
// completion, success or failure.
type Cache struct {
	engine    Discoverer
	snapshots SnapshotStore
	key       string
	ttl       time.Duration
	logger    *slog.Logger

	mu        sync.Mutex
	value     *domain.DiscoveryCache
	expiresAt time.Time
	inFlight  *call

	now func() time.Time
}

func NewCache(engine Discoverer, snapshots SnapshotStore, key string, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		engine:    engine,
		snapshots: snapshots,
		key:       key,
		ttl:       ttl,
		logger:    logger.With("component", "discovery_cache"),
		now:       time.Now,
	}
}

// Get returns the discovery cache, refreshing when forced or when neither
// the memo nor the persisted snapshot holds a usable result. A snapshot
// with zero competitions counts as empty and triggers a sweep.
func (c *Cache) Get(ctx context.Context, force bool) (*domain.DiscoveryCache, error) {
	c.mu.Lock()

	if !force {
		if c.value != nil && c.now().Before(c.expiresAt) {
			value := c.value
			c.mu.Unlock()
			return value, nil
		}
	}

	// A forced caller may only join another refresh flight. Joining a
	// plain snapshot read would hand back the old snapshot without a
	// sweep ever running.
	if inFlight := c.inFlight; inFlight != nil && (!force || inFlight.refresh) {
		c.mu.Unlock()
		inFlight.wg.Wait()
		return inFlight.value, inFlight.err
	}

	fl := &call{refresh: force}
	fl.wg.Add(1)
	c.inFlight = fl
	c.mu.Unlock()

	fl.value, fl.err = c.load(ctx, force)
	fl.wg.Done()

	c.mu.Lock()
	// A snapshot read displaced by a forced refresh must not clear the
	// refresh's slot or overwrite the fresher memo.
	if c.inFlight == fl {
		c.inFlight = nil
		if fl.err == nil {
			c.value = fl.value
			c.expiresAt = c.now().Add(c.ttl)
		}
	}
	c.mu.Unlock()

	return fl.value, fl.err
}

func (c *Cache) load(ctx context.Context, force bool) (*domain.DiscoveryCache, error) {
	if !force {
		snapshot, err := c.snapshots.Get(ctx, c.key)
		if err != nil {
			return nil, err
		}
		if snapshot != nil && len(snapshot.Competitions) > 0 {
			return snapshot, nil
		}
		c.logger.Info("snapshot empty, running discovery")
	}

	return c.engine.Discover(ctx)
}
