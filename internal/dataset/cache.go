package dataset

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"sales-dashboard/internal/models"
)

// snapshotKey is the single cache key: the dataset query takes no parameters,
// so one key covers the whole snapshot.
const snapshotKey = "sales:snapshot:v1"

// SnapshotCache stores the loaded dataset between render passes. Entries
// expire after the configured TTL; Invalidate drops them early.
type SnapshotCache interface {
	Get(ctx context.Context) ([]models.SalesRecord, bool, error)
	Set(ctx context.Context, records []models.SalesRecord) error
	Invalidate(ctx context.Context) error
}

// MemoryCache keeps the snapshot in process memory.
type MemoryCache struct {
	mu       sync.RWMutex
	records  []models.SalesRecord
	storedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl: ttl,
		now: time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context) ([]models.SalesRecord, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.records == nil || c.now().Sub(c.storedAt) > c.ttl {
		return nil, false, nil
	}
	return c.records, true, nil
}

func (c *MemoryCache) Set(_ context.Context, records []models.SalesRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = records
	c.storedAt = c.now()
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = nil
	return nil
}

// RedisCache shares the gob-encoded snapshot through Redis, letting several
// dashboard instances reuse one warehouse load. Expiry is handled by Redis
// key TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context) ([]models.SalesRecord, bool, error) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot from redis: %w", err)
	}

	var records []models.SalesRecord
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&records); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}

	return records, true, nil
}

func (c *RedisCache) Set(ctx context.Context, records []models.SalesRecord) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(records); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey, buf.Bytes(), c.ttl).Err(); err != nil {
		return fmt.Errorf("write snapshot to redis: %w", err)
	}

	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("drop snapshot from redis: %w", err)
	}
	return nil
}
