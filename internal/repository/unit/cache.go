package unit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"courierqueue/internal/entities"
	"courierqueue/pkg/logger"
)

const cacheKeyPrefix = "unit_settings:"

// Cache кладет настройки юнита в Redis на ttl. С nil клиентом
// все чтения идут напрямую в source.
type Cache struct {
	log    cacheLogger
	client *goredis.Client
	source settingsSource
	ttl    time.Duration
}

func NewCache(log cacheLogger, client *goredis.Client, source settingsSource, ttl time.Duration) *Cache {
	return &Cache{
		log:    log,
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func (c *Cache) Get(ctx context.Context, unitID string) (*entities.UnitSettings, error) {
	if c.client == nil || c.ttl <= 0 {
		return c.source.Get(ctx, unitID)
	}

	key := cacheKeyPrefix + unitID

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedSettings
		if err := json.Unmarshal(raw, &cached); err == nil {
			return fromCached(&cached), nil
		}
		c.log.Warn("unit settings cache entry is corrupted",
			logger.NewField("unit_id", unitID),
		)
	case errors.Is(err, goredis.Nil):
	default:
		c.log.Warn("unit settings cache read failed",
			logger.NewField("unit_id", unitID),
			logger.NewField("error", err),
		)
	}

	settings, err := c.source.Get(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("unit settings cache: %w", err)
	}

	payload, err := json.Marshal(toCached(settings))
	if err != nil {
		return settings, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("unit settings cache write failed",
			logger.NewField("unit_id", unitID),
			logger.NewField("error", err),
		)
	}

	return settings, nil
}
