package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database.
	// The returned handle is used to seed snapshot rows.
	InitDB func(t *testing.T) (Store, *gorm.DB)
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// =============================================================================
// Test Data Builders
// =============================================================================

func day(s string) time.Time {
	d, err := time.Parse(domain.DATE_LAYOUT, s)
	if err != nil {
		panic(err)
	}
	return d
}

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }
func stringPtr(v string) *string    { return &v }

// buildTestConsultantUser creates a consultant user snapshot
func buildTestConsultantUser(user, date string, weight *float64, country string) schema.ConsultantUser {
	return schema.ConsultantUser{
		RecordDate:                 day(date),
		User:                       user,
		Country:                    stringPtr(country),
		University:                 stringPtr("MIT"),
		WeightFactor:               weight,
		ValueFactor:                float64Ptr(0.5),
		SubmissionsCount:           int64Ptr(10),
		SuperAlphaSubmissionsCount: int64Ptr(2),
	}
}

// buildTestGeniusUser creates a genius user snapshot
func buildTestGeniusUser(user, date, level string, country *string) schema.GeniusUser {
	return schema.GeniusUser{
		RecordDate:                        day(date),
		User:                              user,
		GeniusLevel:                       stringPtr(level),
		Country:                           country,
		CombinedAlphaPerformance:          float64Ptr(1.2),
		CombinedPowerPoolAlphaPerformance: float64Ptr(0.8),
		CombinedSelectedAlphaPerformance:  float64Ptr(0.4),
	}
}

// buildTestConsultantCountry creates a country snapshot
func buildTestConsultantCountry(country, date string, weight float64) schema.ConsultantCountry {
	return schema.ConsultantCountry{
		RecordDate:       day(date),
		Country:          country,
		UserCount:        int64Ptr(3),
		WeightFactor:     float64Ptr(weight),
		SubmissionsCount: int64Ptr(100),
	}
}

func seed(t *testing.T, db *gorm.DB, rows ...interface{}) {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, db.Create(row).Error)
	}
}

// =============================================================================
// Test: LatestRecordDate
// =============================================================================

func testLatestRecordDate(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	rows := []schema.ConsultantUser{
		buildTestConsultantUser("AB123", "2026-01-10", float64Ptr(1), "US"),
		buildTestConsultantUser("AB123", "2026-01-12", float64Ptr(2), "US"),
		buildTestConsultantUser("CD456", "2026-01-15", float64Ptr(3), "VN"),
	}
	deleted := buildTestConsultantUser("CD456", "2026-01-20", float64Ptr(4), "VN")
	deleted.DeleteFlag = true
	seed(t, db, &rows, &deleted)

	tests := []struct {
		name     string
		table    domain.Table
		query    RecordDateQuery
		expected *time.Time
	}{
		{
			name:     "latest non-deleted date",
			table:    domain.TableConsultantUser,
			expected: func() *time.Time { d := day("2026-01-15"); return &d }(),
		},
		{
			name:     "on or before bound",
			table:    domain.TableConsultantUser,
			query:    RecordDateQuery{OnOrBefore: func() *time.Time { d := day("2026-01-12"); return &d }()},
			expected: func() *time.Time { d := day("2026-01-12"); return &d }(),
		},
		{
			name:     "strictly before bound",
			table:    domain.TableConsultantUser,
			query:    RecordDateQuery{Before: func() *time.Time { d := day("2026-01-12"); return &d }()},
			expected: func() *time.Time { d := day("2026-01-10"); return &d }(),
		},
		{
			name:     "single user",
			table:    domain.TableConsultantUser,
			query:    RecordDateQuery{User: "AB123"},
			expected: func() *time.Time { d := day("2026-01-12"); return &d }(),
		},
		{
			name:  "empty table",
			table: domain.TableGeniusCountry,
		},
		{
			name:  "nothing before bound",
			table: domain.TableConsultantUser,
			query: RecordDateQuery{Before: func() *time.Time { d := day("2026-01-01"); return &d }()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			latest, err := store.LatestRecordDate(ctx, tt.table, tt.query)
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, latest)
				return
			}
			require.NotNil(t, latest)
			assert.Equal(t, tt.expected.Format(domain.DATE_LAYOUT), latest.Format(domain.DATE_LAYOUT))
		})
	}

	t.Run("unknown table", func(t *testing.T) {
		_, err := store.LatestRecordDate(ctx, domain.Table("users; DROP TABLE x"), RecordDateQuery{})
		assert.Error(t, err)
	})

	t.Run("user filter on aggregate table", func(t *testing.T) {
		_, err := store.LatestRecordDate(ctx, domain.TableConsultantCountry, RecordDateQuery{User: "AB123"})
		assert.Error(t, err)
	})
}

// =============================================================================
// Test: Snapshot queries
// =============================================================================

func testGetConsultantUsers(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	rows := []schema.ConsultantUser{
		buildTestConsultantUser("AB123", "2026-01-10", float64Ptr(1), "US"),
		buildTestConsultantUser("AB123", "2026-01-11", float64Ptr(2), "US"),
		buildTestConsultantUser("CD456", "2026-01-10", float64Ptr(3), "VN"),
		buildTestConsultantUser("EF789", "2026-01-11", nil, "JP"),
	}
	seed(t, db, &rows)

	t.Run("by record dates", func(t *testing.T) {
		got, err := store.GetConsultantUsers(ctx, SnapshotFilter{RecordDates: []time.Time{day("2026-01-10")}})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "AB123", got[0].User)
		assert.Equal(t, "CD456", got[1].User)
	})

	t.Run("by users and range ordered by date", func(t *testing.T) {
		start, end := day("2026-01-10"), day("2026-01-11")
		got, err := store.GetConsultantUsers(ctx, SnapshotFilter{Users: []string{"AB123"}, Start: &start, End: &end})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2026-01-10", got[0].RecordDate.Format(domain.DATE_LAYOUT))
		assert.Equal(t, "2026-01-11", got[1].RecordDate.Format(domain.DATE_LAYOUT))
	})

	t.Run("by countries", func(t *testing.T) {
		got, err := store.GetConsultantUsers(ctx, SnapshotFilter{Countries: []string{"JP", "VN"}})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Nil(t, got[1].WeightFactor)
	})
}

func testGetConsultantCountries(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	rows := []schema.ConsultantCountry{
		buildTestConsultantCountry("US", "2026-01-10", 10),
		buildTestConsultantCountry("US", "2026-01-11", 12),
		buildTestConsultantCountry("VN", "2026-01-11", 8),
	}
	seed(t, db, &rows)

	got, err := store.GetConsultantCountries(ctx, SnapshotFilter{RecordDates: []time.Time{day("2026-01-11")}})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "US", got[0].Country)
	require.NotNil(t, got[0].UserCount)
	assert.Equal(t, int64(3), *got[0].UserCount)

	history, total, err := store.ListConsultantCountryHistory(ctx, "US", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, history, 1)
	assert.Equal(t, "2026-01-11", history[0].RecordDate.Format(domain.DATE_LAYOUT))

	history, total, err = store.ListConsultantCountryHistory(ctx, "FR", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, history)
}

func testGetGeniusWeightRows(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	consultants := []schema.ConsultantUser{
		buildTestConsultantUser("AB123", "2026-01-10", float64Ptr(1.5), "US"),
		buildTestConsultantUser("CD456", "2026-01-10", float64Ptr(2.5), "VN"),
	}
	genius := []schema.GeniusUser{
		buildTestGeniusUser("AB123", "2026-01-10", "MASTER", nil),
		buildTestGeniusUser("CD456", "2026-01-10", "GOLD", stringPtr("SG")),
		buildTestGeniusUser("GH000", "2026-01-10", "GOLD", stringPtr("SG")),
	}
	seed(t, db, &consultants, &genius)

	t.Run("joins weights and falls back to consultant country", func(t *testing.T) {
		rows, err := store.GetGeniusWeightRows(ctx, SnapshotFilter{RecordDates: []time.Time{day("2026-01-10")}})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "AB123", rows[0].User)
		require.NotNil(t, rows[0].Country)
		assert.Equal(t, "US", *rows[0].Country)
		require.NotNil(t, rows[0].WeightFactor)
		assert.InDelta(t, 1.5, *rows[0].WeightFactor, 1e-9)
		require.NotNil(t, rows[1].Country)
		assert.Equal(t, "SG", *rows[1].Country)
	})

	t.Run("filters by level and resolved country", func(t *testing.T) {
		rows, err := store.GetGeniusWeightRows(ctx, SnapshotFilter{Levels: []string{"MASTER"}, Countries: []string{"US"}})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "AB123", rows[0].User)
	})

	t.Run("genius users by level", func(t *testing.T) {
		rows, err := store.GetGeniusUsers(ctx, SnapshotFilter{Levels: []string{"GOLD"}})
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}

func testCountSnapshotDatesByUser(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	rows := []schema.ConsultantUser{
		buildTestConsultantUser("AB123", "2026-01-10", float64Ptr(1), "US"),
		buildTestConsultantUser("AB123", "2026-01-11", float64Ptr(1), "US"),
		buildTestConsultantUser("AB123", "2026-01-12", float64Ptr(1), "US"),
		buildTestConsultantUser("CD456", "2026-01-12", float64Ptr(1), "VN"),
	}
	seed(t, db, &rows)

	counts, err := store.CountSnapshotDatesByUser(ctx, []string{"AB123", "CD456", "ZZ999"}, day("2026-01-11"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["AB123"])
	assert.Equal(t, int64(0), counts["CD456"])
	assert.Equal(t, int64(0), counts["ZZ999"])

	counts, err = store.CountSnapshotDatesByUser(ctx, nil, day("2026-01-11"))
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func testDistinctValues(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	countries := []schema.ConsultantCountry{
		buildTestConsultantCountry("VN", "2026-01-10", 1),
		buildTestConsultantCountry("US", "2026-01-10", 1),
		buildTestConsultantCountry("US", "2026-01-11", 1),
	}
	genius := []schema.GeniusUser{
		buildTestGeniusUser("AB123", "2026-01-10", "MASTER", stringPtr("US")),
		buildTestGeniusUser("CD456", "2026-01-10", "", nil),
		buildTestGeniusUser("EF789", "2026-01-10", "GOLD", stringPtr("JP")),
	}
	seed(t, db, &countries, &genius)

	got, err := store.ListDistinctCountries(ctx, domain.TableConsultantCountry)
	require.NoError(t, err)
	assert.Equal(t, []string{"US", "VN"}, got)

	got, err = store.ListDistinctCountries(ctx, domain.TableGeniusUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"JP", "US"}, got)

	levels, err := store.ListGeniusLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"GOLD", "MASTER"}, levels)

	_, err = store.ListDistinctCountries(ctx, domain.TableConsultantUniversity)
	assert.Error(t, err)
}

func testEventMarkers(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	events := []schema.EventUpdateRecord{
		{UpdateContent: "VALUE_FACTOR", UpdateDate: day("2026-02-01"), DateRange: stringPtr("Jan")},
		{UpdateContent: "combined", UpdateDate: day("2026-02-03")},
		{UpdateContent: "value_factor", UpdateDate: day("2026-03-01")},
		{UpdateContent: "other", UpdateDate: day("2026-03-02")},
	}
	seed(t, db, &events)

	got, err := store.ListEventMarkers(ctx, []domain.MetricFamily{domain.MetricFamilyValueFactor}, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-02-01", got[0].UpdateDate.Format(domain.DATE_LAYOUT))
	assert.Equal(t, "2026-03-01", got[1].UpdateDate.Format(domain.DATE_LAYOUT))

	start := day("2026-02-02")
	got, err = store.ListEventMarkers(ctx, []domain.MetricFamily{domain.MetricFamilyValueFactor, domain.MetricFamilyCombined}, &start, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func testCountRows(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	rows := []schema.ConsultantUniversity{
		{RecordDate: day("2026-01-10"), University: "MIT"},
		{RecordDate: day("2026-01-10"), University: "ETH", DeleteFlag: true},
	}
	seed(t, db, &rows)

	count, err := store.CountRows(ctx, domain.TableConsultantUniversity)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = store.CountRows(ctx, domain.Table("system_user"))
	assert.Error(t, err)
}

// =============================================================================
// Test: Users, feedback and request logs
// =============================================================================

func testSystemUsers(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	t.Run("missing user returns nil", func(t *testing.T) {
		user, err := store.GetActiveSystemUserByWQID(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("create and lookup", func(t *testing.T) {
		user := &schema.SystemUser{WQID: "AB123", Username: "AB123", IsActive: true}
		require.NoError(t, store.CreateSystemUser(ctx, user))
		assert.NotZero(t, user.ID)

		got, err := store.GetActiveSystemUserByWQID(ctx, "AB123")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("inactive user is only found by the unconditional lookup", func(t *testing.T) {
		user := &schema.SystemUser{WQID: "CD456", Username: "cd", IsActive: true}
		require.NoError(t, store.CreateSystemUser(ctx, user))
		require.NoError(t, db.Model(user).Update("is_active", false).Error)

		active, err := store.GetActiveSystemUserByWQID(ctx, "CD456")
		require.NoError(t, err)
		assert.Nil(t, active)

		found, err := store.GetSystemUserByWQID(ctx, "CD456")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.IsActive)
	})

	t.Run("consultant existence", func(t *testing.T) {
		row := buildTestConsultantUser("EF789", "2026-01-10", float64Ptr(1), "US")
		seed(t, db, &row)

		exists, err := store.ConsultantUserExists(ctx, "EF789")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = store.ConsultantUserExists(ctx, "GH000")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func testFeedbackAndRequestLogs(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()

	user := &schema.SystemUser{WQID: "AB123", Username: "AB123", IsActive: true}
	require.NoError(t, store.CreateSystemUser(ctx, user))

	feedback := &schema.UserFeedback{
		UserID:       user.ID,
		WQID:         user.WQID,
		Username:     user.Username,
		Content:      "chart is empty",
		FeedbackType: string(domain.FeedbackTypeBug),
		Page:         stringPtr("/dashboard"),
	}
	require.NoError(t, store.CreateFeedback(ctx, feedback))
	assert.NotZero(t, feedback.ID)

	var stored schema.UserFeedback
	require.NoError(t, db.First(&stored, feedback.ID).Error)
	assert.Equal(t, "new", stored.Status)

	entry := &schema.RequestLog{
		RequestID:    "3f0c6a52-35a8-4bb7-9b0c-2d1f2d3d9a10",
		Method:       "GET",
		Path:         "/api/v1/dashboard/country-rankings",
		QueryParams:  datatypes.JSON(`{"page":["1"]}`),
		StatusCode:   200,
		ResponseTime: 12,
		IPAddress:    "127.0.0.1",
	}
	require.NoError(t, store.CreateRequestLog(ctx, entry))
	assert.NotZero(t, entry.ID)
}

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) (Store, *gorm.DB), cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store, *gorm.DB)
	}{
		{"LatestRecordDate", testLatestRecordDate},
		{"GetConsultantUsers", testGetConsultantUsers},
		{"GetConsultantCountries", testGetConsultantCountries},
		{"GetGeniusWeightRows", testGetGeniusWeightRows},
		{"CountSnapshotDatesByUser", testCountSnapshotDatesByUser},
		{"DistinctValues", testDistinctValues},
		{"EventMarkers", testEventMarkers},
		{"CountRows", testCountRows},
		{"SystemUsers", testSystemUsers},
		{"FeedbackAndRequestLogs", testFeedbackAndRequestLogs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, db := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store, db)
		})
	}
}
