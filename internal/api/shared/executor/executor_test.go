package executor_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-leaderboard/internal/analytics"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/auth"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/executor"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/types"
	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/mocks"
	"github.com/feral-file/ff-leaderboard/internal/store"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	tokens   *auth.TokenIssuer
	executor executor.Executor
}

// setupTestExecutor creates an executor backed by a mocked store
func setupTestExecutor(t *testing.T, opts ...func(*executor.Options)) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockStore(ctrl)
	tokens := auth.NewTokenIssuer(testSecret, time.Hour, nil)

	options := executor.Options{
		ValueFactorAnchors: executor.AnchorPair{Base: day("2026-02-09"), Target: day("2026-02-10")},
		CombinedAnchors:    executor.AnchorPair{Base: day("2026-02-09"), Target: day("2026-02-10")},
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &testExecutorMocks{
		ctrl:     ctrl,
		store:    mockStore,
		tokens:   tokens,
		executor: executor.NewExecutor(mockStore, tokens, options),
	}
}

// tearDownTestExecutor cleans up test resources
func tearDownTestExecutor(mocks *testExecutorMocks) {
	mocks.ctrl.Finish()
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DATE_LAYOUT, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func f(v float64) *float64 { return &v }

func i64(v int64) *int64 { return &v }

func str(v string) *string { return &v }

func dates(days ...string) []time.Time {
	out := make([]time.Time, len(days))
	for i, d := range days {
		out[i] = day(d)
	}
	return out
}

func expectLatest(m *testExecutorMocks, table domain.Table, query store.RecordDateQuery, latest *time.Time) {
	m.store.EXPECT().LatestRecordDate(gomock.Any(), table, query).Return(latest, nil)
}

func requireAPIError(t *testing.T, err error, status int) *apierrors.APIError {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := apierrors.As(err)
	require.True(t, ok, "expected an API error, got %v", err)
	assert.Equal(t, status, apiErr.HTTPStatus())
	return apiErr
}

func TestNewAnchorPair(t *testing.T) {
	pair, err := executor.NewAnchorPair("2026-02-10", "2026-02-11")
	require.NoError(t, err)
	assert.Equal(t, day("2026-02-10"), pair.Base)
	assert.Equal(t, day("2026-02-11"), pair.Target)

	_, err = executor.NewAnchorPair("2026-02-10", "11/02/2026")
	assert.ErrorIs(t, err, analytics.ErrInvalidDate)
}

func TestCheckHealth(t *testing.T) {
	m := setupTestExecutor(t)
	defer tearDownTestExecutor(m)

	m.store.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, m.executor.CheckHealth(context.Background()))

	m.store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	requireAPIError(t, m.executor.CheckHealth(context.Background()), http.StatusInternalServerError)
}

func TestGetCountryRankings(t *testing.T) {
	ctx := context.Background()

	t.Run("changes against the previous snapshot", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		expectLatest(m, domain.TableConsultantCountry, store.RecordDateQuery{}, dayPtr("2026-02-10"))
		expectLatest(m, domain.TableConsultantCountry, store.RecordDateQuery{Before: dayPtr("2026-02-10")}, dayPtr("2026-02-09"))
		m.store.EXPECT().
			GetConsultantCountries(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-10")}).
			Return([]schema.ConsultantCountry{
				{Country: "US", UserCount: i64(50), WeightFactor: f(100), ValueFactor: f(0.61234), SubmissionsCount: i64(10), SuperAlphaSubmissionsCount: i64(5)},
				{Country: "CN", UserCount: i64(40), WeightFactor: f(120)},
				{Country: "", WeightFactor: f(999)},
			}, nil)
		m.store.EXPECT().
			GetConsultantCountries(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-09")}).
			Return([]schema.ConsultantCountry{
				{Country: "US", WeightFactor: f(80), SubmissionsCount: i64(8), SuperAlphaSubmissionsCount: i64(5)},
			}, nil)

		page, err := m.executor.GetCountryRankings(ctx, nil, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, 2, page.Total)
		assert.Equal(t, 1, page.TotalPages)

		cn, us := page.Items[0], page.Items[1]
		assert.Equal(t, "CN", cn.Country)
		assert.Equal(t, 120.0, cn.WeightFactor)
		assert.Nil(t, cn.WeightChange)
		assert.Nil(t, cn.TotalSubmissionsChange)
		assert.Equal(t, int64(0), cn.TotalSubmissions)

		assert.Equal(t, "US", us.Country)
		assert.Equal(t, 0.6123, *us.ValueFactor)
		assert.Equal(t, int64(15), us.TotalSubmissions)
		assert.Equal(t, 20.0, *us.WeightChange)
		assert.Nil(t, us.ValueChange)
		assert.Equal(t, int64(2), *us.SubmissionsChange)
		assert.Equal(t, int64(0), *us.SuperAlphaSubmissionsChange)
		assert.Equal(t, int64(2), *us.TotalSubmissionsChange)
	})

	t.Run("quarter without a baseline", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		quarter, err := analytics.ParseQuarter("2026-Q1")
		require.NoError(t, err)

		expectLatest(m, domain.TableConsultantCountry, store.RecordDateQuery{OnOrBefore: dayPtr("2026-03-31")}, dayPtr("2026-03-30"))
		expectLatest(m, domain.TableConsultantCountry, store.RecordDateQuery{OnOrBefore: dayPtr("2025-12-31")}, nil)
		m.store.EXPECT().
			GetConsultantCountries(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-03-30")}).
			Return([]schema.ConsultantCountry{{Country: "US", WeightFactor: f(10)}}, nil)

		page, err := m.executor.GetCountryRankings(ctx, &quarter, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Nil(t, page.Items[0].WeightChange)
	})

	t.Run("no snapshots", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		expectLatest(m, domain.TableConsultantCountry, store.RecordDateQuery{}, nil)

		page, err := m.executor.GetCountryRankings(ctx, nil, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
	})

	t.Run("store failure", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		m.store.EXPECT().LatestRecordDate(gomock.Any(), domain.TableConsultantCountry, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := m.executor.GetCountryRankings(ctx, nil, 1, 10)
		apiErr := requireAPIError(t, err, http.StatusInternalServerError)
		assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	})
}

func TestGetCountryHistory(t *testing.T) {
	m := setupTestExecutor(t)
	defer tearDownTestExecutor(m)

	m.store.EXPECT().
		ListConsultantCountryHistory(gomock.Any(), "US", 20, 20).
		Return([]schema.ConsultantCountry{
			{RecordDate: day("2026-02-10"), Country: "US", UserCount: i64(3), WeightFactor: f(1.239), SubmissionsCount: i64(4)},
		}, int64(21), nil)

	page, err := m.executor.GetCountryHistory(context.Background(), "US", 2, 20)
	require.NoError(t, err)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "2026-02-10", page.Items[0].RecordDate)
	assert.Equal(t, 1.24, page.Items[0].WeightFactor)
	assert.Equal(t, int64(4), page.Items[0].TotalSubmissions)
}

func TestGetUniversityRankings(t *testing.T) {
	m := setupTestExecutor(t)
	defer tearDownTestExecutor(m)

	expectLatest(m, domain.TableConsultantUser, store.RecordDateQuery{}, dayPtr("2026-02-10"))
	m.store.EXPECT().
		GetConsultantUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-10")}).
		Return([]schema.ConsultantUser{
			{User: "U1", University: str("MIT"), WeightFactor: f(10), SubmissionsCount: i64(1), SuperAlphaSubmissionsCount: i64(1)},
			{User: "U2", University: str("MIT"), WeightFactor: f(20), SubmissionsCount: i64(2)},
			{User: "U3", University: str("Stanford"), WeightFactor: f(40), SubmissionsCount: i64(3), SuperAlphaSubmissionsCount: i64(3)},
			{User: "U4", WeightFactor: f(50)},
			{User: "U5", University: str("  "), WeightFactor: f(50)},
			{User: "U6", University: str("MIT")},
		}, nil)

	page, err := m.executor.GetUniversityRankings(context.Background(), nil, 1, 50)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	stanford, mit := page.Items[0], page.Items[1]
	assert.Equal(t, "Stanford", stanford.University)
	assert.Equal(t, 40.0, stanford.AvgWeight)
	assert.Equal(t, int64(6), stanford.TotalSubmissions)

	assert.Equal(t, "MIT", mit.University)
	assert.Equal(t, 2, mit.UserCount)
	assert.Equal(t, 15.0, mit.AvgWeight)
	assert.Equal(t, 20.0, mit.MaxWeight)
	assert.Equal(t, int64(2), mit.TotalSubmissions)
}

func TestGetTopUsersByWeight(t *testing.T) {
	m := setupTestExecutor(t)
	defer tearDownTestExecutor(m)

	expectLatest(m, domain.TableConsultantUser, store.RecordDateQuery{}, dayPtr("2026-02-10"))
	m.store.EXPECT().
		GetConsultantUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-10"), Countries: []string{"US"}}).
		Return([]schema.ConsultantUser{
			{User: "A", WeightFactor: f(1), ValueFactor: f(0)},
			{User: "B", WeightFactor: f(3), ValueFactor: f(0.55555), SubmissionsCount: i64(2)},
			{User: "C"},
			{User: "D", WeightFactor: f(2)},
		}, nil)

	page, err := m.executor.GetTopUsersByWeight(context.Background(), str("US"), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "A", page.Items[0].User)
	assert.Equal(t, 3, page.Items[0].Rank)
	assert.Nil(t, page.Items[0].ValueFactor)
}

func TestGetTopUsersByWeightChange(t *testing.T) {
	tests := []struct {
		name     string
		order    types.Order
		expected []string
		changes  []float64
	}{
		{name: "descending", order: types.OrderDesc, expected: []string{"A", "B"}, changes: []float64{6, 5}},
		{name: "ascending", order: types.OrderAsc, expected: []string{"B", "A"}, changes: []float64{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestExecutor(t)
			defer tearDownTestExecutor(m)

			expectLatest(m, domain.TableConsultantUser, store.RecordDateQuery{}, dayPtr("2026-02-10"))
			m.store.EXPECT().
				GetConsultantUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-10")}).
				Return([]schema.ConsultantUser{
					{User: "A", WeightFactor: f(10)},
					{User: "B", WeightFactor: f(5)},
					{User: "C"},
				}, nil)
			m.store.EXPECT().
				GetConsultantUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-09")}).
				Return([]schema.ConsultantUser{
					{User: "A", WeightFactor: f(4)},
					{User: "B"},
				}, nil)

			page, err := m.executor.GetTopUsersByWeightChange(context.Background(), nil, tt.order, nil, 1, 10)
			require.NoError(t, err)
			require.Len(t, page.Items, 2)
			for i, item := range page.Items {
				assert.Equal(t, tt.expected[i], item.User)
				assert.Equal(t, tt.changes[i], item.WeightChange)
				assert.Equal(t, i+1, item.Rank)
			}
		})
	}
}

func TestGetTopUsersByWeightChangeCountryMove(t *testing.T) {
	m := setupTestExecutor(t)
	defer tearDownTestExecutor(m)

	expectLatest(m, domain.TableConsultantUser, store.RecordDateQuery{}, dayPtr("2026-02-10"))
	m.store.EXPECT().
		GetConsultantUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-10"), Countries: []string{"US"}}).
		Return([]schema.ConsultantUser{
			{User: "A", Country: str("US"), WeightFactor: f(100)},
		}, nil)
	// the previous day is read for every country
	m.store.EXPECT().
		GetConsultantUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-09")}).
		Return([]schema.ConsultantUser{
			{User: "A", Country: str("CN"), WeightFactor: f(99)},
		}, nil)

	page, err := m.executor.GetTopUsersByWeightChange(context.Background(), nil, types.OrderDesc, str("US"), 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "A", page.Items[0].User)
	assert.Equal(t, 100.0, page.Items[0].CurrentWeight)
	assert.Equal(t, 1.0, page.Items[0].WeightChange)
	assert.Equal(t, "US", *page.Items[0].Country)
}

func TestGetTopUsersBySubmissions(t *testing.T) {
	m := setupTestExecutor(t)
	defer tearDownTestExecutor(m)

	expectLatest(m, domain.TableConsultantUser, store.RecordDateQuery{}, dayPtr("2026-02-10"))
	m.store.EXPECT().
		GetConsultantUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-10")}).
		Return([]schema.ConsultantUser{
			{User: "A", SubmissionsCount: i64(3), WeightFactor: f(0)},
			{User: "B", SubmissionsCount: i64(2), SuperAlphaSubmissionsCount: i64(4), WeightFactor: f(1.234)},
		}, nil)

	page, err := m.executor.GetTopUsersBySubmissions(context.Background(), nil, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "B", page.Items[0].User)
	assert.Equal(t, int64(6), page.Items[0].TotalSubmissions)
	assert.Equal(t, 1.23, *page.Items[0].WeightFactor)
	assert.Nil(t, page.Items[1].WeightFactor)
}

func TestGetTopUsersByCorrelation(t *testing.T) {
	t.Run("prod correlation", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		expectLatest(m, domain.TableConsultantUser, store.RecordDateQuery{}, dayPtr("2026-02-10"))
		m.store.EXPECT().
			GetConsultantUsers(gomock.Any(), store.SnapshotFilter{RecordDates: dates("2026-02-10")}).
			Return([]schema.ConsultantUser{
				{User: "A", MeanProdCorrelation: f(0.5), SuperAlphaMeanProdCorrelation: f(0.3), MeanSelfCorrelation: f(0.9)},
				{User: "B", SuperAlphaMeanProdCorrelation: f(0.9)},
			}, nil)

		page, err := m.executor.GetTopUsersByCorrelation(context.Background(), domain.CorrelationProd, nil, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "B", page.Items[0].User)
		assert.Equal(t, 0.45, page.Items[0].AvgCorrelation)
		assert.Nil(t, page.Items[0].RegularCorrelation)
		assert.Equal(t, "A", page.Items[1].User)
		assert.Equal(t, 0.4, page.Items[1].AvgCorrelation)
	})

	t.Run("unknown correlation type", func(t *testing.T) {
		m := setupTestExecutor(t)
		defer tearDownTestExecutor(m)

		_, err := m.executor.GetTopUsersByCorrelation(context.Background(), domain.CorrelationType("alpha"), nil, 1, 10)
		requireAPIError(t, err, http.StatusBadRequest)
	})
}
