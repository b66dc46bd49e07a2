package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-leaderboard/internal/api/middleware"
	"github.com/feral-file/ff-leaderboard/internal/api/rest"
	"github.com/feral-file/ff-leaderboard/internal/api/server"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/auth"
	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/mocks"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestRouter(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour, nil)
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("health with request log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		exec := mocks.NewMockAPIExecutor(ctrl)
		exec.EXPECT().CheckHealth(gomock.Any()).Return(nil)

		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().Return(start)
		clock.EXPECT().Since(start).Return(3 * time.Millisecond)

		var entry *schema.RequestLog
		recorder := mocks.NewMockRecorder(ctrl)
		recorder.EXPECT().Record(gomock.Any()).Do(func(e *schema.RequestLog) { entry = e })

		srv := server.New(server.Config{}, exec, rest.RouteConfig{Tokens: tokens, Users: exec}, recorder, clock)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(middleware.REQUEST_ID_HEADER, "req-1")
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "req-1", w.Header().Get(middleware.REQUEST_ID_HEADER))
		assert.JSONEq(t, `{"status":"ok","service":"ff-leaderboard-api"}`, w.Body.String())

		require.NotNil(t, entry)
		assert.Equal(t, "/health", entry.Path)
		assert.Equal(t, http.StatusOK, entry.StatusCode)
		assert.EqualValues(t, 3, entry.ResponseTime)
	})

	t.Run("without request log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		exec := mocks.NewMockAPIExecutor(ctrl)

		srv := server.New(server.Config{AllowedOrigins: []string{"https://leaderboard.example"}}, exec, rest.RouteConfig{Tokens: tokens, Users: exec}, nil, nil)

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/auth/login", nil)
		req.Header.Set("Origin", "https://leaderboard.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://leaderboard.example", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
