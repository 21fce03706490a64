package billing

import (
	"context"
	"encoding/json"
	"time"

	"rentwise/models"

	"github.com/go-redis/redis/v8"
)

const scheduleCachePrefix = "schedule:"

// RedisScheduleCache keeps built schedules in Redis for a short TTL.
type RedisScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration) *RedisScheduleCache {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisScheduleCache{client: client, ttl: ttl}
}

func (c *RedisScheduleCache) Get(ctx context.Context, landlordID string) ([]models.ScheduleEntry, bool) {
	raw, err := c.client.Get(ctx, scheduleCachePrefix+landlordID).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []models.ScheduleEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *RedisScheduleCache) Set(ctx context.Context, landlordID string, entries []models.ScheduleEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, scheduleCachePrefix+landlordID, raw, c.ttl).Err()
}

func (c *RedisScheduleCache) Invalidate(ctx context.Context, landlordID string) error {
	return c.client.Del(ctx, scheduleCachePrefix+landlordID).Err()
}
