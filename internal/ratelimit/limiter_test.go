package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/mocks"
	"github.com/feral-file/ff-leaderboard/internal/ratelimit"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testLimiterMocks contains all the mocks needed for testing the limiter
type testLimiterMocks struct {
	ctrl             *gomock.Controller
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
}

// setupTestLimiter creates all the mocks for testing
func setupTestLimiter(t *testing.T) *testLimiterMocks {
	ctrl := gomock.NewController(t)
	return &testLimiterMocks{
		ctrl:             ctrl,
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
	}
}

// tearDownTestLimiter cleans up the test mocks
func tearDownTestLimiter(mocks *testLimiterMocks) {
	mocks.ctrl.Finish()
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	mocks := setupTestLimiter(t)
	defer tearDownTestLimiter(mocks)

	_, err := ratelimit.NewLimiter(0, mocks.redisRateLimiter, mocks.clock)
	assert.Error(t, err)
}

func TestLimiter_Distributed(t *testing.T) {
	tests := []struct {
		name     string
		result   *redis_rate.Result
		expected ratelimit.Decision
	}{
		{
			name:     "allowed",
			result:   &redis_rate.Result{Allowed: 1, Remaining: 4, RetryAfter: -1},
			expected: ratelimit.Decision{Allowed: true, Remaining: 4},
		},
		{
			name:     "denied",
			result:   &redis_rate.Result{Allowed: 0, Remaining: 0, RetryAfter: 12 * time.Second},
			expected: ratelimit.Decision{Allowed: false, RetryAfter: 12 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestLimiter(t)
			defer tearDownTestLimiter(mocks)

			mocks.redisRateLimiter.EXPECT().
				Allow(gomock.Any(), ratelimit.KEY_PREFIX+"login:127.0.0.1", redis_rate.PerMinute(5)).
				Return(tt.result, nil)

			l, err := ratelimit.NewLimiter(5, mocks.redisRateLimiter, mocks.clock)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, l.Allow(context.Background(), "login:127.0.0.1"))
		})
	}
}

func TestLimiter_FallsBackToLocal(t *testing.T) {
	mocks := setupTestLimiter(t)
	defer tearDownTestLimiter(mocks)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()

	// Redis fails once, the limiter must not call it again
	mocks.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(1)

	l, err := ratelimit.NewLimiter(2, mocks.redisRateLimiter, mocks.clock)
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, l.Allow(ctx, "login:a").Allowed)
	assert.True(t, l.Allow(ctx, "login:a").Allowed)

	denied := l.Allow(ctx, "login:a")
	assert.False(t, denied.Allowed)
	assert.InDelta(t, float64(30*time.Second), float64(denied.RetryAfter), float64(time.Millisecond))

	// Keys are limited independently
	assert.True(t, l.Allow(ctx, "login:b").Allowed)
}

func TestLimiter_LocalOnly(t *testing.T) {
	mocks := setupTestLimiter(t)
	defer tearDownTestLimiter(mocks)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gomock.InOrder(
		mocks.clock.EXPECT().Now().Return(now),
		mocks.clock.EXPECT().Now().Return(now),
		mocks.clock.EXPECT().Now().Return(now.Add(2*time.Minute)),
	)

	l, err := ratelimit.NewLimiter(1, nil, mocks.clock)
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, l.Allow(ctx, "login:a").Allowed)
	assert.False(t, l.Allow(ctx, "login:a").Allowed)
	assert.True(t, l.Allow(ctx, "login:a").Allowed)
}
