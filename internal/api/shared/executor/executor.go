package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feral-file/ff-leaderboard/internal/analytics"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/auth"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/types"
	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/store"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Login authenticates a WQ id and issues an access token
	Login(ctx context.Context, wqID string) (*dto.LoginResponse, error)
	// ResolveActiveUser finds the active system user a token subject refers to
	ResolveActiveUser(ctx context.Context, wqID string) (*schema.SystemUser, error)
	// GetProfileHistory retrieves the recent consultant snapshots of the user
	GetProfileHistory(ctx context.Context, user *schema.SystemUser, limitDays int) (*dto.ProfileHistory, error)
	// GetProfileStatistics summarizes every consultant snapshot of the user
	GetProfileStatistics(ctx context.Context, user *schema.SystemUser) (*dto.ProfileStatisticsResponse, error)
	// SubmitFeedback stores a feedback entry of the user
	SubmitFeedback(ctx context.Context, user *schema.SystemUser, req dto.FeedbackRequest) (*dto.FeedbackResponse, error)

	// GetCountryRankings ranks countries by weight with changes against the baseline snapshot
	GetCountryRankings(ctx context.Context, quarter *analytics.Quarter, page, pageSize int) (*dto.Page[dto.CountryRanking], error)
	// GetCountryHistory retrieves the snapshots of one country newest first
	GetCountryHistory(ctx context.Context, country string, page, pageSize int) (*dto.Page[dto.CountryHistory], error)
	// GetUniversityRankings ranks universities by average consultant weight
	GetUniversityRankings(ctx context.Context, quarter *analytics.Quarter, page, pageSize int) (*dto.Page[dto.UniversityRanking], error)
	// GetTopUsersByWeight ranks consultants by current weight
	GetTopUsersByWeight(ctx context.Context, country *string, page, pageSize int) (*dto.Page[dto.UserWeightRanking], error)
	// GetTopUsersByWeightChange ranks consultants by weight change against the baseline
	GetTopUsersByWeightChange(ctx context.Context, quarter *analytics.Quarter, order types.Order, country *string, page, pageSize int) (*dto.Page[dto.UserWeightChangeRanking], error)
	// GetTopUsersBySubmissions ranks consultants by total submissions
	GetTopUsersBySubmissions(ctx context.Context, country *string, page, pageSize int) (*dto.Page[dto.UserSubmissionsRanking], error)
	// GetTopUsersByCorrelation ranks consultants by the mean of a correlation pair
	GetTopUsersByCorrelation(ctx context.Context, correlation domain.CorrelationType, country *string, page, pageSize int) (*dto.Page[dto.UserCorrelationRanking], error)

	// GetCountryWeightTimeSeries retrieves the weight series of countries
	GetCountryWeightTimeSeries(ctx context.Context, countries []string, limitDays int) ([]dto.CountryWeightTimeSeries, error)
	// GetCountrySubmissionTimeSeries retrieves the submission series of countries with day-over-day changes
	GetCountrySubmissionTimeSeries(ctx context.Context, countries []string, limitDays int, start, end *time.Time) ([]dto.CountrySubmissionTimeSeries, error)
	// GetGeniusCountryTimeSeries retrieves the day-over-day alpha count changes of countries
	GetGeniusCountryTimeSeries(ctx context.Context, countries []string, start, end *time.Time) ([]dto.GeniusCountryTimeSeries, error)
	// GetGeniusWeightTimeSeries sums consultant weight per genius level and country
	GetGeniusWeightTimeSeries(ctx context.Context, levels, countries []string, start, end *time.Time) ([]dto.GeniusWeightTimeSeries, error)
	// GetUserWeightTimeSeries retrieves the weight series of one user
	GetUserWeightTimeSeries(ctx context.Context, user string, start, end *time.Time) (*dto.UserWeightTimeSeries, error)
	// GetUserDailyOsmosisTimeSeries retrieves the daily osmosis rank series of one user
	GetUserDailyOsmosisTimeSeries(ctx context.Context, user string, start, end *time.Time) (*dto.UserDailyOsmosisTimeSeries, error)
	// GetAvailableCountries lists the countries of the consultant country snapshots
	GetAvailableCountries(ctx context.Context) ([]string, error)
	// GetGeniusAvailableCountries lists the countries found in any genius or consultant country snapshot
	GetGeniusAvailableCountries(ctx context.Context) ([]string, error)
	// GetGeniusAvailableLevels lists the genius levels found in the genius snapshots
	GetGeniusAvailableLevels(ctx context.Context) ([]string, error)
	// GetCountryLeaderboard retrieves the top countries by weight with their change over days
	GetCountryLeaderboard(ctx context.Context, limit, days int) ([]dto.CountryWeight, error)
	// GetUserLeaderboard retrieves the top users by weight with their change over days
	GetUserLeaderboard(ctx context.Context, limit, days int, order types.Order) ([]dto.UserWeight, error)
	// GetSummaryStatistics aggregates the latest country snapshots and their change over days
	GetSummaryStatistics(ctx context.Context, days int) (*dto.SummaryStatistics, error)
	// GetGeniusUserWeightChanges ranks genius users by weight change across a date range
	GetGeniusUserWeightChanges(ctx context.Context, params GeniusUserWeightChangesParams) (*dto.Page[dto.GeniusUserWeightChange], error)
	// GetGeniusLevelWeightChanges totals the weight of each genius tier and its change over days
	GetGeniusLevelWeightChanges(ctx context.Context, days int) ([]dto.GeniusLevelWeightChange, error)
	// GetConsultantMergedPage retrieves consultant and genius snapshots of one date side by side
	GetConsultantMergedPage(ctx context.Context, params MergedPageParams) (*dto.ConsultantMergedPage, error)

	// GetValueFactorAnalysis compares value factors between the anchor dates
	GetValueFactorAnalysis(ctx context.Context, excludeBothHalf bool) (*dto.ValueFactorAnalysis, error)
	// GetValueFactorUserChanges lists per-user value factor changes between the anchor dates
	GetValueFactorUserChanges(ctx context.Context, params ValueFactorUserChangesParams) (*dto.Page[dto.ValueFactorChange], error)
	// GetCombinedAnalysis compares combined performance between the anchor dates
	GetCombinedAnalysis(ctx context.Context, filter CombinedFilter) (*dto.CombinedAnalysis, error)
	// GetCombinedUserChanges lists per-user combined performance changes between the anchor dates
	GetCombinedUserChanges(ctx context.Context, params CombinedUserChangesParams) (*dto.Page[dto.CombinedUserChange], error)
	// GetUserMetricTrends samples a user's metrics on the event calendar
	GetUserMetricTrends(ctx context.Context, user string) (*dto.UserMetricTrends, error)

	// CheckHealth checks the connectivity of the backing store
	CheckHealth(ctx context.Context) error
}

// AnchorPair is the base and target date of a cohort comparison
type AnchorPair struct {
	Base   time.Time
	Target time.Time
}

// NewAnchorPair parses a YYYY-MM-DD base and target date
func NewAnchorPair(base, target string) (AnchorPair, error) {
	b, err := analytics.ParseDate(base)
	if err != nil {
		return AnchorPair{}, err
	}
	t, err := analytics.ParseDate(target)
	if err != nil {
		return AnchorPair{}, err
	}
	return AnchorPair{Base: b, Target: t}, nil
}

// Options configures the executor
type Options struct {
	// ValueFactorAnchors and CombinedAnchors are used when the event calendar
	// has fewer than two markers of the metric family
	ValueFactorAnchors AnchorPair
	CombinedAnchors    AnchorPair

	// BootstrapFromConsultant creates a system user on first login of a known consultant
	BootstrapFromConsultant bool
}

type executor struct {
	store  store.Store
	tokens *auth.TokenIssuer
	opts   Options
}

func NewExecutor(store store.Store, tokens *auth.TokenIssuer, opts Options) Executor {
	return &executor{store: store, tokens: tokens, opts: opts}
}

func (e *executor) CheckHealth(ctx context.Context) error {
	if err := e.store.Ping(ctx); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to ping database: %v", err))
	}
	return nil
}

// tableDates looks up snapshot dates of one table, optionally for a single user
type tableDates struct {
	store store.Store
	table domain.Table
	user  string
}

func (d tableDates) LatestOnOrBefore(ctx context.Context, bound *time.Time) (*time.Time, error) {
	return d.store.LatestRecordDate(ctx, d.table, store.RecordDateQuery{OnOrBefore: bound, User: d.user})
}

func (d tableDates) LatestBefore(ctx context.Context, bound time.Time) (*time.Time, error) {
	return d.store.LatestRecordDate(ctx, d.table, store.RecordDateQuery{Before: &bound, User: d.user})
}

func (e *executor) dates(table domain.Table) analytics.SnapshotDates {
	return tableDates{store: e.store, table: table}
}

func (e *executor) userDates(table domain.Table, user string) analytics.SnapshotDates {
	return tableDates{store: e.store, table: table, user: user}
}

// latestDate returns the latest snapshot date of table, capped at the quarter end when given
func (e *executor) latestDate(ctx context.Context, table domain.Table, quarter *analytics.Quarter) (*time.Time, error) {
	var bound *time.Time
	if quarter != nil {
		end := quarter.End()
		bound = &end
	}
	latest, err := e.dates(table).LatestOnOrBefore(ctx, bound)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get latest record date: %v", err))
	}
	if latest == nil {
		return nil, nil
	}
	day := analytics.Day(*latest)
	return &day, nil
}

// resolveError maps a failure of the period resolver or the analytics core to an API error
func resolveError(what string, err error) error {
	var apiErr *apierrors.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, analytics.ErrInvalidDate), errors.Is(err, analytics.ErrInvalidPeriod):
		return apierrors.NewBadRequestError(err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apierrors.NewInternalError(fmt.Sprintf("Failed to %s: %v", what, err))
	default:
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to %s: %v", what, err))
	}
}
