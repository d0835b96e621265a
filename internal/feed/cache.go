// README: Redis-backed cache for raw feed payloads.
package feed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const recordsKey = "feed:stations:records"

// Cache stores the last good raw feed payload so periodic refreshes do not
// hammer the upstream API. A nil *Cache is a valid no-op cache.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

// Get returns the cached records and whether the cache held a usable entry.
func (c *Cache) Get(ctx context.Context) ([]Record, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	val, err := c.redis.Get(ctx, recordsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var records []Record
	if err := json.Unmarshal(val, &records); err != nil {
		return nil, false
	}
	return records, true
}

// Put stores records with the configured TTL. Failures are swallowed; the
// cache is an optimization, not a source of truth.
func (c *Cache) Put(ctx context.Context, records []Record) {
	if c == nil || c.redis == nil {
		return
	}
	val, err := json.Marshal(records)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, recordsKey, val, c.ttl).Err()
}
