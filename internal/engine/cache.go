package engine

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache provides 2-tier caching: L1 in-memory + L2 Redis.
// L1 is fast but lost on restart. L2 survives restarts.
// Job listings are cached per calendar day, so the default TTL is 24h.
var jobCache *tieredCache

// Cache metrics — atomic counters for thread-safe access.
var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

// tieredCache implements L1 (memory) + L2 (Redis) caching.
type tieredCache struct {
	l1              sync.Map      // key → *cacheEntry
	rdb             *redis.Client // nil if Redis unavailable
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// InitCache sets up the 2-tier cache. Call after Init().
// redisURL can be empty to disable L2.
func InitCache(redisURL string, ttl time.Duration, maxEntries int, cleanupInterval time.Duration) {
	c := &tieredCache{ttl: ttl, maxEntries: maxEntries, cleanupInterval: cleanupInterval}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("cache: redis unreachable, L2 disabled", slog.Any("error", err))
			} else {
				c.rdb = rdb
				slog.Info("cache: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}

	jobCache = c
	slog.Info("cache: initialized", slog.Duration("ttl", ttl), slog.Bool("redis", c.rdb != nil), slog.Int("max_entries", maxEntries))

	// Start L1 cleanup goroutine
	go c.cleanupLoop()
}

// CacheKey builds a deterministic cache key from parts.
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("gr:%x", hash[:12]) // 24-char hex prefix
}

// DayKey returns today's date component for day-scoped cache keys.
func DayKey() string {
	return time.Now().Format("20060102")
}

// CacheGet tries L1, then L2. On L2 hit, populates L1.
// Returns the raw cached payload; callers decode it themselves.
func CacheGet(ctx context.Context, key string) ([]byte, bool) {
	if jobCache == nil {
		cacheMisses.Add(1)
		return nil, false
	}

	// L1 check
	if val, ok := jobCache.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			slog.Debug("cache: L1 hit", slog.String("key", key))
			cacheHits.Add(1)
			return entry.data, true
		}
		jobCache.l1.Delete(key) // expired
	}

	// L2 check
	if jobCache.rdb != nil {
		data, err := jobCache.rdb.Get(ctx, key).Bytes()
		if err == nil {
			slog.Debug("cache: L2 hit", slog.String("key", key))
			cacheHits.Add(1)
			// Populate L1
			jobCache.l1.Store(key, &cacheEntry{
				data:      data,
				expiresAt: time.Now().Add(jobCache.ttl),
			})
			return data, true
		}
	}

	cacheMisses.Add(1)
	return nil, false
}

// CacheSet stores a raw payload in both L1 and L2.
func CacheSet(ctx context.Context, key string, data []byte) {
	if jobCache == nil {
		return
	}

	// Evict if needed before adding
	jobCache.evictIfNeeded()

	// L1
	jobCache.l1.Store(key, &cacheEntry{
		data:      data,
		expiresAt: time.Now().Add(jobCache.ttl),
	})

	// L2
	if jobCache.rdb != nil {
		if err := jobCache.rdb.Set(ctx, key, data, jobCache.ttl).Err(); err != nil {
			slog.Debug("cache: L2 set failed", slog.Any("error", err))
		}
	}
}

// CacheLoadJSON tries to load a cached value of type T.
// Returns the decoded value and true on hit; zero value and false on miss or decode error.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	var out T
	data, ok := CacheGet(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// CacheStoreJSON marshals v and stores it under key.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	CacheSet(ctx, key, data)
}

// CacheStats returns current cache hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}

// evictIfNeeded removes entries when L1 exceeds maxEntries.
// Removes expired entries first, then oldest entries if still over limit.
func (c *tieredCache) evictIfNeeded() {
	if c.maxEntries <= 0 {
		return
	}

	count := 0
	c.l1.Range(func(_, _ any) bool {
		count++
		return true
	})

	if count < c.maxEntries {
		return
	}

	// Phase 1: remove expired
	now := time.Now()
	c.l1.Range(func(key, val any) bool {
		if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
			c.l1.Delete(key)
			count--
		}
		return count >= c.maxEntries
	})

	if count < c.maxEntries {
		return
	}

	// Phase 2: remove oldest entries until under limit
	var oldest struct {
		key any
		at  time.Time
	}
	for count >= c.maxEntries {
		oldest.key = nil
		oldest.at = time.Now().Add(2 * c.ttl).Add(time.Hour) // past any live entry's expiry
		c.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*cacheEntry); ok {
				// Earlier expiry = older entry (since expiry = createdAt + ttl)
				if entry.expiresAt.Before(oldest.at) {
					oldest.key = key
					oldest.at = entry.expiresAt
				}
			}
			return true
		})
		if oldest.key == nil {
			break
		}
		c.l1.Delete(oldest.key)
		count--
	}
}

// cleanupLoop periodically removes expired L1 entries.
func (c *tieredCache) cleanupLoop() {
	interval := c.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
				c.l1.Delete(key)
			}
			return true
		})
	}
}
