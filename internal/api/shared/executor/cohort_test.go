package executor_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-leaderboard/internal/api/shared/dto"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/executor"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/types"
	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/store"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

func marker(content, date string, dateRange *string) schema.EventUpdateRecord {
	return schema.EventUpdateRecord{UpdateContent: content, UpdateDate: day(date), DateRange: dateRange}
}

func expectMarkers(m *testExecutorMocks, families []domain.MetricFamily, markers ...schema.EventUpdateRecord) {
	m.store.EXPECT().
		ListEventMarkers(gomock.Any(), families, gomock.Nil(), gomock.Nil()).
		Return(markers, nil)
}

func expectConsultantsOn(m *testExecutorMocks, date string, rows []schema.ConsultantUser) {
	m.store.EXPECT().
		GetConsultantUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates(date)}).
		Return(rows, nil)
}

func expectGeniusOn(m *testExecutorMocks, date string, rows []schema.GeniusUser) {
	m.store.EXPECT().
		GetGeniusUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates(date)}).
		Return(rows, nil)
}

func TestGetValueFactorAnalysis(t *testing.T) {
	base := []schema.ConsultantUser{
		{User: "A", Country: str("US"), ValueFactor: f(0.5)},
		{User: "B", Country: str("US"), ValueFactor: f(0.25)},
		{User: "C", Country: str("CN"), ValueFactor: f(0.75)},
		{User: "D", Country: str("CN")},
		{User: "F", Country: str("CN"), ValueFactor: f(0.75)},
	}
	target := []schema.ConsultantUser{
		{User: "A", Country: str("US"), ValueFactor: f(0.5)},
		{User: "B", Country: str("US"), ValueFactor: f(0.75)},
		{User: "E", ValueFactor: f(0.625)},
		{User: "F", ValueFactor: f(0.5)},
	}
	membership := dto.CohortMembership{
		UsersOnTargetDate: 4,
		UsersOnBaseDate:   4,
		ComparableUsers:   3,
		NewUsers:          1,
		MissingUsers:      1,
	}

	tests := []struct {
		name        string
		excludeHalf bool
		expected    dto.ValueFactorSummary
		gainers     []string
	}{
		{
			name: "every comparable user",
			expected: dto.ValueFactorSummary{
				CohortMembership:     membership,
				IncreasedUsers:       1,
				DecreasedUsers:       1,
				UnchangedUsers:       1,
				AvgTargetValueFactor: 0.5833,
				AvgBaseValueFactor:   0.5,
				AvgChange:            0.0833,
				MedianChange:         0,
				MaxIncrease:          0.5,
				MaxDecrease:          -0.25,
			},
			gainers: []string{"B", "A", "F"},
		},
		{
			name:        "users neutral on both dates excluded",
			excludeHalf: true,
			expected: dto.ValueFactorSummary{
				CohortMembership: dto.CohortMembership{
					UsersOnTargetDate: 4,
					UsersOnBaseDate:   4,
					ComparableUsers:   2,
					NewUsers:          1,
					MissingUsers:      1,
				},
				IncreasedUsers:       1,
				DecreasedUsers:       1,
				AvgTargetValueFactor: 0.625,
				AvgBaseValueFactor:   0.5,
				AvgChange:            0.125,
				MedianChange:         0.125,
				MaxIncrease:          0.5,
				MaxDecrease:          -0.25,
			},
			gainers: []string{"B", "F"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestExecutor(t)
			defer tearDownTestExecutor(m)

			expectMarkers(m, []domain.MetricFamily{domain.MetricFamilyValueFactor},
				marker("value_factor", "2026-01-10", nil),
				marker("value_factor", "2026-02-01", nil),
				marker("value_factor", "2026-02-01", nil),
				marker("value_factor", "2026-02-08", nil),
			)
			expectConsultantsOn(m, "2026-02-01", base)
			expectConsultantsOn(m, "2026-02-08", target)

			analysis, err := m.executor.GetValueFactorAnalysis(context.Background(), tt.excludeHalf)
			require.NoError(t, err)
			assert.Equal(t, "2026-02-01", analysis.BaseRecordDate)
			assert.Equal(t, "2026-02-08", analysis.TargetRecordDate)
			assert.Equal(t, tt.expected, analysis.Summary)

			gainers := make([]string, len(analysis.TopGainers))
			for i, g := range analysis.TopGainers {
				gainers[i] = g.User
			}
			assert.Equal(t, tt.gainers, gainers)
			assert.Equal(t, "F", analysis.TopDecliners[0].User)
			assert.Equal(t, "CN", *analysis.TopDecliners[0].Country)

			total := 0
			for _, c := range analysis.Distribution.Counts {
				total += c
			}
			assert.Equal(t, len(tt.gainers), total)
		})
	}

	t.Run("dimension summaries", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		expectMarkers(m, []domain.MetricFamily{domain.MetricFamilyValueFactor},
			marker("value_factor", "2026-02-01", nil),
			marker("value_factor", "2026-02-08", nil),
		)
		expectConsultantsOn(m, "2026-02-01", base)
		expectConsultantsOn(m, "2026-02-08", target)

		analysis, err := m.executor.GetValueFactorAnalysis(context.Background(), false)
		require.NoError(t, err)
		require.Len(t, analysis.ByCountry, 2)
		assert.Equal(t, "US", analysis.ByCountry[0].Dimension)
		assert.Equal(t, 2, analysis.ByCountry[0].ComparableUsers)
		assert.Equal(t, 0.25, analysis.ByCountry[0].AvgChange)
		assert.Equal(t, "CN", analysis.ByCountry[1].Dimension)
		require.Len(t, analysis.ByUniversity, 1)
		assert.Equal(t, domain.UNKNOWN_DIMENSION, analysis.ByUniversity[0].Dimension)

		require.Len(t, analysis.Distribution.Counts, 10)
		assert.Equal(t, 1, analysis.Distribution.Counts[0])
		assert.Equal(t, 1, analysis.Distribution.Counts[3])
		assert.Equal(t, 1, analysis.Distribution.Counts[9])
	})

	t.Run("comparable count follows neutral exclusion", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		expectMarkers(m, []domain.MetricFamily{domain.MetricFamilyValueFactor},
			marker("value_factor", "2026-02-01", nil),
			marker("value_factor", "2026-02-08", nil),
		)
		expectConsultantsOn(m, "2026-02-01", []schema.ConsultantUser{
			{User: "A", ValueFactor: f(0.5)},
			{User: "B", ValueFactor: f(0.25)},
		})
		expectConsultantsOn(m, "2026-02-08", []schema.ConsultantUser{
			{User: "A", ValueFactor: f(0.5)},
			{User: "B", ValueFactor: f(0.75)},
		})

		analysis, err := m.executor.GetValueFactorAnalysis(context.Background(), true)
		require.NoError(t, err)
		assert.Equal(t, 2, analysis.Summary.UsersOnBaseDate)
		assert.Equal(t, 2, analysis.Summary.UsersOnTargetDate)
		assert.Equal(t, 1, analysis.Summary.ComparableUsers)
		assert.Equal(t, 1, analysis.Summary.IncreasedUsers)
		assert.Equal(t, 0, analysis.Summary.UnchangedUsers)
	})
}

func TestGetValueFactorUserChanges(t *testing.T) {
	base := []schema.ConsultantUser{
		{User: "A", Country: str("US"), ValueFactor: f(0.25)},
		{User: "B", Country: str("CN"), ValueFactor: f(0.5)},
	}
	target := []schema.ConsultantUser{
		{User: "A", Country: str("US"), ValueFactor: f(0.75)},
		{User: "B", Country: str("CN"), ValueFactor: f(0.25)},
	}
	geniusBase := []schema.GeniusUser{{User: "B", GeniusLevel: str("MASTER"), Country: str("VN")}}
	geniusTarget := []schema.GeniusUser{{User: "A", GeniusLevel: str("GOLD")}}

	tests := []struct {
		name     string
		params   executor.ValueFactorUserChangesParams
		expected []dto.ValueFactorChange
	}{
		{
			name:   "default sort is change descending",
			params: executor.ValueFactorUserChangesParams{Page: 1, PageSize: 20},
			expected: []dto.ValueFactorChange{
				{User: "A", Country: str("US"), GeniusLevel: str("GOLD"), BaseValueFactor: 0.25, TargetValueFactor: 0.75, Change: 0.5},
				{User: "B", Country: str("VN"), GeniusLevel: str("MASTER"), BaseValueFactor: 0.5, TargetValueFactor: 0.25, Change: -0.25},
			},
		},
		{
			name:   "genius level filter",
			params: executor.ValueFactorUserChangesParams{GeniusLevels: []string{"MASTER"}, Page: 1, PageSize: 20},
			expected: []dto.ValueFactorChange{
				{User: "B", Country: str("VN"), GeniusLevel: str("MASTER"), BaseValueFactor: 0.5, TargetValueFactor: 0.25, Change: -0.25},
			},
		},
		{
			name:   "country filter uses the resolved country",
			params: executor.ValueFactorUserChangesParams{Countries: []string{"CN"}, Page: 1, PageSize: 20},
			expected: []dto.ValueFactorChange{},
		},
		{
			name: "sort by target ascending",
			params: executor.ValueFactorUserChangesParams{
				SortBy:   types.ValueFactorSortTarget,
				Order:    types.OrderAsc,
				Page:     1,
				PageSize: 1,
			},
			expected: []dto.ValueFactorChange{
				{User: "B", Country: str("VN"), GeniusLevel: str("MASTER"), BaseValueFactor: 0.5, TargetValueFactor: 0.25, Change: -0.25},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestExecutor(t)
			defer tearDownTestExecutor(m)

			// a single marker falls back to the configured anchors
			expectMarkers(m, []domain.MetricFamily{domain.MetricFamilyValueFactor}, marker("value_factor", "2026-01-10", nil))
			expectConsultantsOn(m, "2026-02-09", base)
			expectConsultantsOn(m, "2026-02-10", target)
			expectGeniusOn(m, "2026-02-09", geniusBase)
			expectGeniusOn(m, "2026-02-10", geniusTarget)

			page, err := m.executor.GetValueFactorUserChanges(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page.Items)
		})
	}

	t.Run("invalid sort field", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		_, err := m.executor.GetValueFactorUserChanges(context.Background(), executor.ValueFactorUserChangesParams{
			SortBy: types.ValueFactorSortField("user"),
		})
		requireAPIError(t, err, http.StatusBadRequest)
	})
}

func combinedUser(user string, country, level *string, alpha, powerPool, selected *float64) schema.GeniusUser {
	return schema.GeniusUser{
		User:                              user,
		Country:                           country,
		GeniusLevel:                       level,
		CombinedAlphaPerformance:          alpha,
		CombinedPowerPoolAlphaPerformance: powerPool,
		CombinedSelectedAlphaPerformance:  selected,
	}
}

func expectCombinedCohort(m *testExecutorMocks) {
	expectMarkers(m, []domain.MetricFamily{domain.MetricFamilyCombined},
		marker("combined", "2026-02-01", nil),
		marker("combined", "2026-02-08", nil),
	)
	expectGeniusOn(m, "2026-02-01", []schema.GeniusUser{
		combinedUser("A", str("US"), str("GOLD"), f(1), f(2), f(3)),
		combinedUser("B", nil, str("MASTER"), f(0), f(0), f(1)),
		combinedUser("C", nil, nil, f(1), nil, f(1)),
	})
	expectGeniusOn(m, "2026-02-08", []schema.GeniusUser{
		combinedUser("A", nil, nil, f(2), f(2), f(2)),
		combinedUser("B", nil, str("MASTER"), f(0), f(0), f(2)),
		combinedUser("D", nil, nil, f(1), f(1), f(1)),
	})
}

func TestGetCombinedAnalysis(t *testing.T) {
	m := setupTestExecutor(t)
	defer tearDownTestExecutor(m)

	expectCombinedCohort(m)

	analysis, err := m.executor.GetCombinedAnalysis(context.Background(), executor.CombinedFilter{ExcludeAlphaBothZero: true})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", analysis.BaseRecordDate)
	assert.Equal(t, dto.CohortMembership{
		UsersOnTargetDate: 3,
		UsersOnBaseDate:   2,
		ComparableUsers:   1,
		NewUsers:          1,
		MissingUsers:      0,
	}, analysis.Summary)

	require.Len(t, analysis.MetricSummaries, 3)
	alpha, powerPool, selected := analysis.MetricSummaries[0], analysis.MetricSummaries[1], analysis.MetricSummaries[2]
	assert.Equal(t, "combined_alpha_performance", alpha.Metric)
	assert.Equal(t, "Combined Alpha", alpha.DisplayName)
	assert.Equal(t, 1.0, alpha.AvgChange)
	assert.Equal(t, 1, alpha.IncreasedUsers)
	assert.Equal(t, 1, powerPool.UnchangedUsers)
	assert.Equal(t, -1.0, selected.MaxDecrease)
	assert.Equal(t, 1, selected.DecreasedUsers)

	require.Len(t, analysis.Distributions, 3)
	assert.Equal(t, dto.Distribution{Labels: []string{"1.0000"}, Counts: []int{1}}, analysis.Distributions["combined_alpha_performance"])
}

func TestGetCombinedUserChanges(t *testing.T) {
	tests := []struct {
		name     string
		params   executor.CombinedUserChangesParams
		expected []string
	}{
		{
			name:     "default sort is alpha change descending",
			params:   executor.CombinedUserChangesParams{Page: 1, PageSize: 20},
			expected: []string{"A", "B"},
		},
		{
			name:     "sort by base selected ascending",
			params:   executor.CombinedUserChangesParams{SortBy: types.CombinedSortBaseSelected, Order: types.OrderAsc, Page: 1, PageSize: 20},
			expected: []string{"B", "A"},
		},
		{
			name: "level filter falls back to the base snapshot",
			params: executor.CombinedUserChangesParams{
				CombinedFilter: executor.CombinedFilter{Levels: []string{"GOLD"}},
				Page:           1,
				PageSize:       20,
			},
			expected: []string{"A"},
		},
		{
			name: "power pool both zero excluded",
			params: executor.CombinedUserChangesParams{
				CombinedFilter: executor.CombinedFilter{ExcludePowerPoolBothZero: true},
				Page:           1,
				PageSize:       20,
			},
			expected: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestExecutor(t)
			defer tearDownTestExecutor(m)

			expectCombinedCohort(m)

			page, err := m.executor.GetCombinedUserChanges(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, len(tt.expected), page.Total)

			users := make([]string, len(page.Items))
			for i, item := range page.Items {
				users[i] = item.User
			}
			assert.Equal(t, tt.expected, users)
		})
	}

	t.Run("user values", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		expectCombinedCohort(m)

		page, err := m.executor.GetCombinedUserChanges(context.Background(), executor.CombinedUserChangesParams{Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.Equal(t, []dto.CombinedUserChange{{
			User:            "A",
			Country:         str("US"),
			GeniusLevel:     str("GOLD"),
			BaseAlpha:       1,
			TargetAlpha:     2,
			AlphaChange:     1,
			BasePowerPool:   2,
			TargetPowerPool: 2,
			PowerPoolChange: 0,
			BaseSelected:    3,
			TargetSelected:  2,
			SelectedChange:  -1,
		}}, page.Items)
	})
}

func TestGetUserMetricTrends(t *testing.T) {
	m := setupTestExecutor(t)
	defer tearDownTestExecutor(m)

	expectMarkers(m, []domain.MetricFamily{domain.MetricFamilyValueFactor, domain.MetricFamilyCombined},
		marker("value_factor", "2026-02-01", str("W5")),
		marker("combined", "2026-02-01", nil),
		marker("value_factor", "2026-02-08", str("W6")),
		marker("value_factor", "2026-02-08", str("W6b")),
		marker("weight_factor", "2026-02-08", nil),
	)
	m.store.EXPECT().
		GetConsultantUsers(gomock.Any(), store.SnapshotFilter{Users: []string{"AB1"}, RecordDates: dates("2026-02-01", "2026-02-08")}).
		Return([]schema.ConsultantUser{
			{User: "AB1", RecordDate: day("2026-02-01"), ValueFactor: f(0.4)},
			{User: "AB1", RecordDate: day("2026-02-01"), ValueFactor: f(0.6)},
		}, nil)
	m.store.EXPECT().
		GetGeniusUsers(gomock.Any(), store.SnapshotFilter{Users: []string{"AB1"}, RecordDates: dates("2026-02-01")}).
		Return([]schema.GeniusUser{
			{User: "AB1", RecordDate: day("2026-02-01"), CombinedAlphaPerformance: f(1)},
			{User: "AB1", RecordDate: day("2026-02-01"), CombinedAlphaPerformance: f(3)},
		}, nil)

	trends, err := m.executor.GetUserMetricTrends(context.Background(), "ab1")
	require.NoError(t, err)
	assert.Equal(t, "AB1", trends.User)
	assert.Equal(t, []dto.ValueFactorTrendPoint{
		{UpdateDate: "2026-02-01", DateRange: "W5", ValueFactor: f(0.6)},
		{UpdateDate: "2026-02-08", DateRange: "W6b"},
	}, trends.ValueFactorTrend)
	assert.Equal(t, []dto.CombinedTrendPoint{
		{UpdateDate: "2026-02-01", DateRange: "2026-02-01", CombinedAlphaPerformance: f(3)},
	}, trends.CombinedTrend)
}
