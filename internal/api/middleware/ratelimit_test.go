package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-leaderboard/internal/api/middleware"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/mocks"
	"github.com/feral-file/ff-leaderboard/internal/ratelimit"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name               string
		decision           ratelimit.Decision
		expectedCode       int
		expectedRetryAfter string
	}{
		{
			name:         "allowed",
			decision:     ratelimit.Decision{Allowed: true, Remaining: 29},
			expectedCode: http.StatusOK,
		},
		{
			name:               "limited",
			decision:           ratelimit.Decision{Allowed: false, RetryAfter: 1500 * time.Millisecond},
			expectedCode:       http.StatusTooManyRequests,
			expectedRetryAfter: "2",
		},
		{
			name:               "retry after is at least one second",
			decision:           ratelimit.Decision{Allowed: false},
			expectedCode:       http.StatusTooManyRequests,
			expectedRetryAfter: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			limiter := mocks.NewMockRateLimiter(ctrl)
			limiter.EXPECT().Allow(gomock.Any(), "login:192.0.2.1").Return(tt.decision)

			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			req.RemoteAddr = "192.0.2.1:4321"
			w := serve(t, req, middleware.RateLimit(limiter, "login"), ok)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedRetryAfter, w.Header().Get("Retry-After"))
			if tt.expectedCode == http.StatusTooManyRequests {
				assert.Equal(t, apierrors.ErrCodeTooManyRequests, decodeAPIError(t, w).Code)
			}
		})
	}
}
