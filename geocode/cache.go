package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedGeocoder fronts another Geocoder with a Redis postcode cache. Cache
// problems are logged and fall through to the underlying geocoder; a cache
// outage must never cost a booking. Not-found results are not cached.
type CachedGeocoder struct {
	next   Geocoder
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedGeocoder(next Geocoder, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedGeocoder {
	return &CachedGeocoder{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func cacheKey(postcode string) string {
	return "geocode:" + strings.ToUpper(strings.ReplaceAll(postcode, " ", ""))
}

func (c *CachedGeocoder) Lookup(ctx context.Context, postcode string) (Coordinates, error) {
	key := cacheKey(postcode)

	if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var coords Coordinates
		if err := json.Unmarshal([]byte(raw), &coords); err == nil {
			return coords, nil
		}
		c.logger.Warn("corrupt geocode cache entry", "key", key)
	} else if err != redis.Nil {
		c.logger.Warn("geocode cache read failed", "error", err)
	}

	coords, err := c.next.Lookup(ctx, postcode)
	if err != nil {
		return Coordinates{}, err
	}

	if raw, err := json.Marshal(coords); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.Warn("geocode cache write failed", "error", err)
		}
	}
	return coords, nil
}
