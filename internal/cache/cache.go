// Package cache provides an optional Redis-backed result cache for pipeline
// runs. The pipeline is deterministic, so a cached result keyed by the
// content digest is always as good as a fresh run. The cache fails open:
// any Redis problem degrades to computing the result again.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vacancy-utils/internal/config"
	"vacancy-utils/internal/logging"
	"vacancy-utils/pkg/models"
)

const keyPrefix = "vacancy:result:"

// ResultCache stores pipeline results keyed by content digest.
type ResultCache struct {
	client  *redis.Client
	ttl     time.Duration
	timeout time.Duration
}

// New connects to Redis when caching is enabled in the configuration and
// returns nil otherwise. A nil *ResultCache is a valid no-op cache.
func New(cfg *config.Config) (*ResultCache, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &ResultCache{
		client:  client,
		ttl:     cfg.Redis.TTL,
		timeout: cfg.Redis.Timeout,
	}, nil
}

// Get returns the cached result for the digest, or false on miss or error.
func (c *ResultCache) Get(ctx context.Context, digest string) (*models.PipelineResult, bool) {
	if c == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := c.client.Get(ctx, keyPrefix+digest).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.GetGlobalLogger().Warn("Result cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var result models.PipelineResult
	if err := json.Unmarshal(data, &result); err != nil {
		logging.GetGlobalLogger().Warn("Discarding undecodable cached result", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}
	return &result, true
}

// Set stores the result under the digest. Failures are logged, not returned.
func (c *ResultCache) Set(ctx context.Context, digest string, result *models.PipelineResult) {
	if c == nil || result == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Set(ctx, keyPrefix+digest, data, c.ttl).Err(); err != nil {
		logging.GetGlobalLogger().Warn("Result cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Close releases the Redis connection.
func (c *ResultCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
