package rest_test

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-leaderboard/internal/analytics"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/dto"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/types"
	"github.com/feral-file/ff-leaderboard/internal/domain"
)

func TestGetCountryRankings(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		setup        func(m *testRESTMocks)
		expectedCode int
	}{
		{
			name: "latest snapshot with default page",
			setup: func(m *testRESTMocks) {
				m.executor.EXPECT().GetCountryRankings(gomock.Any(), nil, 1, 50).
					Return(dto.EmptyPage[dto.CountryRanking](1, 50), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "quarter filter",
			query: "?quarter=2026-Q1&page=2&page_size=10",
			setup: func(m *testRESTMocks) {
				m.executor.EXPECT().GetCountryRankings(gomock.Any(), &analytics.Quarter{Year: 2026, Q: 1}, 2, 10).
					Return(dto.EmptyPage[dto.CountryRanking](2, 10), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "malformed quarter",
			query:        "?quarter=2026-Q5",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "page size over the maximum",
			query:        "?page_size=101",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "page below one",
			query:        "?page=0",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestREST(t)
			defer tearDownTestREST(m)
			if tt.setup != nil {
				tt.setup(m)
			}

			w := m.do(http.MethodGet, "/api/v1/dashboard/country-rankings"+tt.query, "")
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetTopUsersByWeightChange(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		setup        func(m *testRESTMocks)
		expectedCode int
	}{
		{
			name: "defaults to descending without country",
			setup: func(m *testRESTMocks) {
				m.executor.EXPECT().GetTopUsersByWeightChange(gomock.Any(), nil, types.OrderDesc, nil, 1, 50).
					Return(dto.EmptyPage[dto.UserWeightChangeRanking](1, 50), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "ascending within one country",
			query: "?order=asc&country=%20US%20&quarter=2025-Q4",
			setup: func(m *testRESTMocks) {
				m.executor.EXPECT().GetTopUsersByWeightChange(gomock.Any(), &analytics.Quarter{Year: 2025, Q: 4}, types.OrderAsc, str("US"), 1, 50).
					Return(dto.EmptyPage[dto.UserWeightChangeRanking](1, 50), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown order",
			query:        "?order=up",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestREST(t)
			defer tearDownTestREST(m)
			if tt.setup != nil {
				tt.setup(m)
			}

			w := m.do(http.MethodGet, "/api/v1/dashboard/top-users-by-weight-change"+tt.query, "")
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetTopUsersByCorrelation(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		correlation  domain.CorrelationType
		expectedCode int
	}{
		{name: "defaults to prod", correlation: domain.CorrelationProd, expectedCode: http.StatusOK},
		{name: "self correlation", query: "?correlation_type=self", correlation: domain.CorrelationSelf, expectedCode: http.StatusOK},
		{name: "unknown correlation", query: "?correlation_type=cross", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestREST(t)
			defer tearDownTestREST(m)

			if tt.correlation != "" {
				m.executor.EXPECT().GetTopUsersByCorrelation(gomock.Any(), tt.correlation, nil, 1, 50).
					Return(dto.EmptyPage[dto.UserCorrelationRanking](1, 50), nil)
			}

			w := m.do(http.MethodGet, "/api/v1/dashboard/top-users-by-correlation"+tt.query, "")
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetCountryHistory(t *testing.T) {
	m := setupTestREST(t)
	defer tearDownTestREST(m)

	m.executor.EXPECT().GetCountryHistory(gomock.Any(), "US", 1, 20).
		Return(dto.EmptyPage[dto.CountryHistory](1, 20), nil)

	w := m.do(http.MethodGet, "/api/v1/dashboard/country-history/US", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
