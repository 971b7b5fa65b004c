package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"salon-booking/internal/domain/entity"
	"salon-booking/internal/infrastructure/backend"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for the list cache
	cacheGenerationKeyPrefix = "salon:cache:gen:"
	cacheListKeyPrefix       = "salon:cache:list:"

	// Timeout for individual Redis operations
	cacheOpTimeout = 2 * time.Second

	publicScope = "public"
)

// ListCache stores backend list responses keyed by collection generation.
// Invalidating a collection bumps its generation, so every cached read of
// that collection, for every caller, misses afterwards.
type ListCache interface {
	Generation(ctx context.Context, kind entity.Kind) (int64, error)
	Get(ctx context.Context, kind entity.Kind, generation int64, scope string) ([]byte, bool, error)
	Set(ctx context.Context, kind entity.Kind, generation int64, scope string, payload []byte) error
	Invalidate(ctx context.Context, kind entity.Kind, id string) error
}

// RedisListCache is the redis-backed ListCache.
type RedisListCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

// NewRedisListCache returns nil when caching is disabled (no client or a
// zero TTL). A nil ListCache is valid everywhere and means "always fetch".
func NewRedisListCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) ListCache {
	if redisClient == nil || ttl <= 0 {
		return nil
	}
	return &RedisListCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *RedisListCache) Generation(ctx context.Context, kind entity.Kind) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	gen, err := c.redisClient.Get(ctx, cacheGenerationKeyPrefix+string(kind)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisListCache) Get(ctx context.Context, kind entity.Kind, generation int64, scope string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	payload, err := c.redisClient.Get(ctx, listKey(kind, generation, scope)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (c *RedisListCache) Set(ctx context.Context, kind entity.Kind, generation int64, scope string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	return c.redisClient.Set(ctx, listKey(kind, generation, scope), payload, c.ttl).Err()
}

func (c *RedisListCache) Invalidate(ctx context.Context, kind entity.Kind, id string) error {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	gen, err := c.redisClient.Incr(ctx, cacheGenerationKeyPrefix+string(kind)).Result()
	if err != nil {
		return fmt.Errorf("bump %s generation: %w", kind, err)
	}
	c.log.Debugf("Invalidated %s cache (id=%s, generation=%d)", kind, id, gen)
	return nil
}

func listKey(kind entity.Kind, generation int64, scope string) string {
	return cacheListKeyPrefix + string(kind) + ":" + strconv.FormatInt(generation, 10) + ":" + scope
}

// CallerScope returns the cache scope for the caller in ctx. Lists differ per
// token (the backend filters by role and owner), so the scope is a hash of it.
func CallerScope(ctx context.Context) string {
	token, ok := backend.TokenFromContext(ctx)
	if !ok {
		return publicScope
	}
	return strconv.FormatUint(xxhash.Sum64String(token), 16)
}

// CachedList serves a list through cache, falling back to fetch on a miss.
// Cache failures are logged and never fail the read.
func CachedList[T any](
	ctx context.Context,
	cache ListCache,
	log *logrus.Logger,
	kind entity.Kind,
	scope string,
	fetch func(ctx context.Context) ([]T, error),
) ([]T, error) {
	if cache == nil {
		return fetch(ctx)
	}

	// Read the generation before fetching: a concurrent invalidation then
	// strands this write under the old generation instead of hiding newer data.
	generation, err := cache.Generation(ctx, kind)
	if err != nil {
		log.Warnf("List cache unavailable for %s: %+v", kind, err)
		return fetch(ctx)
	}

	payload, hit, err := cache.Get(ctx, kind, generation, scope)
	if err != nil {
		log.Warnf("Failed to read %s list cache: %+v", kind, err)
	}
	if hit {
		var items []T
		if err := json.Unmarshal(payload, &items); err == nil {
			return items, nil
		}
		log.Warnf("Discarding unreadable %s list cache entry", kind)
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(items); err == nil {
		if err := cache.Set(ctx, kind, generation, scope, encoded); err != nil {
			log.Warnf("Failed to write %s list cache: %+v", kind, err)
		}
	}
	return items, nil
}

// InvalidateList is the nil-safe form of cache.Invalidate.
func InvalidateList(ctx context.Context, cache ListCache, kind entity.Kind, id string) error {
	if cache == nil {
		return nil
	}
	return cache.Invalidate(ctx, kind, id)
}
