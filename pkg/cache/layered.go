package cache

import (
	"context"
	"time"
)

// LayeredCache implements two-level cache (L1: Memory, L2: Redis).
type LayeredCache struct {
	memCache   *MemoryCache
	redisCache *RedisCache
}

// NewLayeredCache creates a layered cache with memory in front of Redis.
func NewLayeredCache(redisCache *RedisCache, memOpts ...MemoryOption) *LayeredCache {
	return &LayeredCache{
		memCache:   NewMemoryCache(memOpts...),
		redisCache: redisCache,
	}
}

func (lc *LayeredCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	// Write-through: Redis first, then memory
	if err := lc.redisCache.Set(ctx, key, value, expiration); err != nil {
		return err
	}
	_ = lc.memCache.Set(ctx, key, value, expiration)
	return nil
}

func (lc *LayeredCache) Get(ctx context.Context, key string, dest interface{}) error {
	if err := lc.memCache.Get(ctx, key, dest); err == nil {
		return nil
	}

	if err := lc.redisCache.Get(ctx, key, dest); err != nil {
		return err
	}

	// Promote to memory, bounded by the remaining Redis TTL so the memory
	// copy cannot outlive the entry it mirrors.
	if remaining, err := lc.redisCache.TTL(ctx, key); err == nil {
		if ttl := promotionTTL(remaining); ttl > 0 {
			_ = lc.memCache.Set(ctx, key, dest, ttl)
		}
	}
	return nil
}

// maxPromotionTTL bounds how long a promoted entry may live in memory without
// revalidation, even when its Redis TTL is longer or absent.
const maxPromotionTTL = 30 * time.Second

// promotionTTL converts the remaining Redis TTL of an entry into its memory
// lifetime. Zero means do not promote: expired, missing, or no-expiry keys
// per Redis TTL semantics all report non-positive durations.
func promotionTTL(remaining time.Duration) time.Duration {
	if remaining <= 0 {
		return 0
	}
	if remaining > maxPromotionTTL {
		return maxPromotionTTL
	}
	return remaining
}

func (lc *LayeredCache) Delete(ctx context.Context, keys ...string) error {
	_ = lc.memCache.Delete(ctx, keys...)
	return lc.redisCache.Delete(ctx, keys...)
}

func (lc *LayeredCache) Exists(ctx context.Context, keys ...string) (bool, error) {
	return lc.redisCache.Exists(ctx, keys...)
}

// Close closes both cache layers.
func (lc *LayeredCache) Close() error {
	_ = lc.memCache.Close()
	return lc.redisCache.Close()
}
