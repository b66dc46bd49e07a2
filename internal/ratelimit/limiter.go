package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-leaderboard/internal/adapter"
	"github.com/feral-file/ff-leaderboard/internal/logger"
)

const (
	// KEY_PREFIX namespaces limiter keys in Redis
	KEY_PREFIX = "ff:leaderboard:limiter:"
	// maxLocalKeys bounds the number of per-key local limiters kept in memory
	maxLocalKeys = 10000
	// localIdleTTL is how long an unused local limiter is kept
	localIdleTTL = 10 * time.Minute
)

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter defines the interface for per-key rate limiting
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request for key and reports whether it may proceed
	Allow(ctx context.Context, key string) Decision
}

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiter allows perMinute requests per key per minute. It uses the distributed
// limiter while Redis answers and falls back to an in-process token bucket otherwise.
type limiter struct {
	perMinute      int
	distributed    adapter.RedisRateLimiter
	clock          adapter.Clock
	redisAvailable atomic.Bool

	mu    sync.Mutex
	local map[string]*localEntry
}

// NewLimiter creates a limiter. distributed may be nil, in which case only the
// local limiter is used.
func NewLimiter(perMinute int, distributed adapter.RedisRateLimiter, clock adapter.Clock) (Limiter, error) {
	if perMinute <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", perMinute)
	}

	l := &limiter{
		perMinute:   perMinute,
		distributed: distributed,
		clock:       clock,
		local:       make(map[string]*localEntry),
	}
	l.redisAvailable.Store(distributed != nil)
	return l, nil
}

// Allow consumes one request for key
func (l *limiter) Allow(ctx context.Context, key string) Decision {
	if l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, KEY_PREFIX+key, redis_rate.PerMinute(l.perMinute))
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: max(res.RetryAfter, 0),
			}
		}
		if ctx.Err() == nil {
			// Redis is unreachable; stay on the local limiter from now on
			l.redisAvailable.Store(false)
			logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
		}
	}

	return l.allowLocal(key)
}

func (l *limiter) allowLocal(key string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.local[key]
	if !ok {
		if len(l.local) >= maxLocalKeys {
			l.pruneLocked(now)
		}
		entry = &localEntry{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute),
		}
		l.local[key] = entry
	}
	entry.lastSeen = now

	reservation := entry.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay > 0 {
		reservation.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}
	}
	return Decision{Allowed: true, Remaining: int(entry.limiter.TokensAt(now))}
}

// pruneLocked drops local limiters unused for localIdleTTL
func (l *limiter) pruneLocked(now time.Time) {
	for key, entry := range l.local {
		if now.Sub(entry.lastSeen) > localIdleTTL {
			delete(l.local, key)
		}
	}
}
