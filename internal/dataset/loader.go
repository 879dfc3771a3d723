package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/warehouse"
)

// Loader memoizes the warehouse snapshot. The dataset is loaded once, date
// fields are derived, and the result is reused by every render pass until
// the cache TTL lapses or Invalidate is called. Snapshots are read-only:
// callers must not mutate the returned slice.
type Loader struct {
	source warehouse.Source
	cache  SnapshotCache
	logger *slog.Logger

	// mu serializes cache misses so concurrent renders trigger one load.
	mu sync.Mutex
}

func NewLoader(source warehouse.Source, cache SnapshotCache, logger *slog.Logger) *Loader {
	return &Loader{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

func (l *Loader) Snapshot(ctx context.Context) ([]models.SalesRecord, error) {
	if records, ok := l.cached(ctx); ok {
		return records, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Another render may have loaded while we waited for the lock.
	if records, ok := l.cached(ctx); ok {
		return records, nil
	}

	start := time.Now()

	records, err := l.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales data: %w", err)
	}

	DeriveDateFields(records)

	if err := l.cache.Set(ctx, records); err != nil {
		l.logger.Warn("snapshot cache write failed", "error", err)
	}

	l.logger.Info("sales snapshot refreshed",
		"rows", len(records),
		"duration", time.Since(start),
	)

	return records, nil
}

// Invalidate drops the cached snapshot; the next render reloads from the
// source.
func (l *Loader) Invalidate(ctx context.Context) error {
	return l.cache.Invalidate(ctx)
}

func (l *Loader) cached(ctx context.Context) ([]models.SalesRecord, bool) {
	records, ok, err := l.cache.Get(ctx)
	if err != nil {
		l.logger.Warn("snapshot cache read failed", "error", err)
		return nil, false
	}
	return records, ok
}
