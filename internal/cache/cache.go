package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-leaderboard/internal/adapter"
	"github.com/feral-file/ff-leaderboard/internal/config"
	"github.com/feral-file/ff-leaderboard/internal/logger"
)

// MIN_TTL is the shortest lifetime of a cached response
const MIN_TTL = 60 * time.Second

// Entry is a cached HTTP response
type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Cache defines the interface for the response cache
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	// Get returns the entry stored at key. Read failures are reported as a miss.
	Get(ctx context.Context, key string) (*Entry, bool)
	// Set stores a 200 response until the next daily expiry. Write failures are logged only.
	Set(ctx context.Context, key string, entry *Entry)
}

type responseCache struct {
	redis  adapter.RedisClient
	clock  adapter.Clock
	loc    *time.Location
	hour   int
	minute int
}

// New creates a redis-backed response cache
func New(redis adapter.RedisClient, clock adapter.Clock, cfg config.CacheConfig) Cache {
	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("Unknown cache timezone, using UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.UTC
	}

	return &responseCache{
		redis:  redis,
		clock:  clock,
		loc:    loc,
		hour:   cfg.ExpireHour,
		minute: cfg.ExpireMinute,
	}
}

func (c *responseCache) Get(ctx context.Context, key string) (*Entry, bool) {
	data, err := c.redis.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, adapter.ErrCacheMiss) {
			logger.WarnCtx(ctx, "Failed to read cached response", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		logger.WarnCtx(ctx, "Failed to decode cached response", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &entry, true
}

func (c *responseCache) Set(ctx context.Context, key string, entry *Entry) {
	if entry == nil || entry.Status != http.StatusOK {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to encode response for cache", zap.String("key", key), zap.Error(err))
		return
	}

	ttl := TTLUntil(c.clock.Now(), c.loc, c.hour, c.minute)
	if err := c.redis.Set(ctx, key, data, ttl); err != nil {
		logger.WarnCtx(ctx, "Failed to write cached response", zap.String("key", key), zap.Error(err))
	}
}

// Key builds a cache key of the form namespace:path?sorted-query[:uid:<id>].
// Query keys and the values of each key are sorted so equivalent requests share a key.
func Key(namespace, path string, query url.Values, uid string) string {
	var b strings.Builder
	b.WriteString(namespace)
	b.WriteByte(':')
	b.WriteString(path)

	if len(query) > 0 {
		keys := make([]string, 0, len(query))
		for k := range query {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			values := append([]string(nil), query[k]...)
			sort.Strings(values)
			for _, v := range values {
				parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
			}
		}
		b.WriteByte('?')
		b.WriteString(strings.Join(parts, "&"))
	}

	if uid != "" {
		b.WriteString(":uid:")
		b.WriteString(uid)
	}
	return b.String()
}

// TTLUntil returns the time left until the next hour:minute in loc, never less than MIN_TTL
func TTLUntil(now time.Time, loc *time.Location, hour, minute int) time.Duration {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	expiry := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !expiry.After(local) {
		expiry = expiry.AddDate(0, 0, 1)
	}

	ttl := expiry.Sub(local)
	if ttl < MIN_TTL {
		return MIN_TTL
	}
	return ttl
}
