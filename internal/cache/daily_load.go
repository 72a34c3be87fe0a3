package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const dailyLoadTTL = 60 * time.Second

// DailyLoadCache keeps the dashboard's per-day appointment counts in redis
// for a short window. A miss or a redis outage falls through to the store;
// the cache is never authoritative.
type DailyLoadCache struct {
	rdb *redis.Client
}

func NewDailyLoadCache(rdb *redis.Client) *DailyLoadCache {
	return &DailyLoadCache{rdb: rdb}
}

func key(year int, month int) string {
	return fmt.Sprintf("daily_load:%04d-%02d", year, month)
}

func (c *DailyLoadCache) Get(
	ctx context.Context,
	year int,
	month int,
) (map[string]int64, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(year, month)).Result()
	if err != nil {
		return nil, false
	}

	var counts map[string]int64
	if err := json.Unmarshal([]byte(raw), &counts); err != nil {
		return nil, false
	}
	return counts, true
}

func (c *DailyLoadCache) Set(
	ctx context.Context,
	year int,
	month int,
	counts map[string]int64,
) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(year, month), raw, dailyLoadTTL)
}
