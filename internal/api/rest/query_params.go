package rest

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-leaderboard/internal/analytics"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/executor"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/types"
	"github.com/feral-file/ff-leaderboard/internal/domain"
)

// PaginationQueryParams holds the page and page_size query parameters
type PaginationQueryParams struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size"`
}

// normalize applies the default page size and checks the bounds
func (p *PaginationQueryParams) normalize(defaultSize, maxSize int) error {
	if p.Page < 1 {
		return apierrors.NewValidationError("page must be at least 1")
	}
	if p.PageSize == 0 {
		p.PageSize = defaultSize
	}
	if p.PageSize < 1 || p.PageSize > maxSize {
		return apierrors.NewValidationError(fmt.Sprintf("page_size must be between 1 and %d", maxSize))
	}
	return nil
}

// DateRangeQueryParams holds optional start_date and end_date parameters
type DateRangeQueryParams struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`

	Start *time.Time `form:"-"`
	End   *time.Time `form:"-"`
}

func (p *DateRangeQueryParams) parse() error {
	var err error
	if p.Start, err = analytics.ParseOptionalDate(p.StartDate); err != nil {
		return apierrors.NewBadRequestError("start_date must be in YYYY-MM-DD format", err.Error())
	}
	if p.End, err = analytics.ParseOptionalDate(p.EndDate); err != nil {
		return apierrors.NewBadRequestError("end_date must be in YYYY-MM-DD format", err.Error())
	}
	return nil
}

// DashboardQueryParams holds query parameters for the dashboard rankings
type DashboardQueryParams struct {
	PaginationQueryParams
	Quarter         string      `form:"quarter"`
	Country         string      `form:"country"`
	Order           types.Order `form:"order,default=desc"`
	CorrelationType string      `form:"correlation_type,default=prod"`

	ParsedQuarter *analytics.Quarter     `form:"-"`
	Correlation   domain.CorrelationType `form:"-"`
}

// ParseDashboardQuery parses query parameters for the dashboard rankings
func ParseDashboardQuery(c *gin.Context, defaultPageSize int) (*DashboardQueryParams, error) {
	var params DashboardQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if err := params.PaginationQueryParams.normalize(defaultPageSize, constants.MAX_DASHBOARD_PAGE_SIZE); err != nil {
		return nil, err
	}
	if !params.Order.Valid() {
		return nil, apierrors.NewValidationError("order must be asc or desc")
	}

	quarter, err := analytics.ParseOptionalQuarter(params.Quarter)
	if err != nil {
		return nil, apierrors.NewBadRequestError("quarter must be in YYYY-Qn format", err.Error())
	}
	params.ParsedQuarter = quarter

	correlation, err := domain.ParseCorrelationType(params.CorrelationType)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	params.Correlation = correlation

	return &params, nil
}

// CountryFilter returns the trimmed country filter, or nil when unset
func (p *DashboardQueryParams) CountryFilter() *string {
	country := strings.TrimSpace(p.Country)
	if country == "" {
		return nil
	}
	return &country
}

// TimeSeriesQueryParams holds query parameters for the leaderboard time series
type TimeSeriesQueryParams struct {
	DateRangeQueryParams
	Countries string `form:"countries"`
	Levels    string `form:"levels"`
	User      string `form:"user"`
	LimitDays int    `form:"limit_days,default=30"`
}

// ParseTimeSeriesQuery parses query parameters for the leaderboard time series
func ParseTimeSeriesQuery(c *gin.Context) (*TimeSeriesQueryParams, error) {
	var params TimeSeriesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if params.LimitDays < 1 || params.LimitDays > constants.MAX_LIMIT_DAYS {
		return nil, apierrors.NewValidationError(fmt.Sprintf("limit_days must be between 1 and %d", constants.MAX_LIMIT_DAYS))
	}
	if err := params.DateRangeQueryParams.parse(); err != nil {
		return nil, err
	}
	params.User = domain.NormalizeWQID(params.User)
	return &params, nil
}

// CountryList returns the parsed countries filter
func (p *TimeSeriesQueryParams) CountryList() []string {
	return domain.SplitList(p.Countries)
}

// LevelList returns the parsed genius levels filter
func (p *TimeSeriesQueryParams) LevelList() []string {
	return domain.SplitList(p.Levels)
}

// RequireUser checks that the user parameter is present
func (p *TimeSeriesQueryParams) RequireUser() error {
	if p.User == "" {
		return apierrors.NewValidationError("user is required")
	}
	return nil
}

// LeaderboardQueryParams holds query parameters for the top lists and summaries
type LeaderboardQueryParams struct {
	Limit int         `form:"limit"`
	Days  int         `form:"days,default=7"`
	Order types.Order `form:"order,default=desc"`
}

// ParseLeaderboardQuery parses query parameters for the top lists and summaries
func ParseLeaderboardQuery(c *gin.Context, defaultLimit int) (*LeaderboardQueryParams, error) {
	var params LeaderboardQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if params.Limit == 0 {
		params.Limit = defaultLimit
	}
	if params.Limit < 1 || params.Limit > constants.MAX_LEADERBOARD_LIMIT {
		return nil, apierrors.NewValidationError(fmt.Sprintf("limit must be between 1 and %d", constants.MAX_LEADERBOARD_LIMIT))
	}
	if params.Days < 1 || params.Days > constants.MAX_LIMIT_DAYS {
		return nil, apierrors.NewValidationError(fmt.Sprintf("days must be between 1 and %d", constants.MAX_LIMIT_DAYS))
	}
	if !params.Order.Valid() {
		return nil, apierrors.NewValidationError("order must be asc or desc")
	}
	return &params, nil
}

// GeniusUserWeightChangesQueryParams holds query parameters for GET /leaderboard/genius-user-weight-changes
type GeniusUserWeightChangesQueryParams struct {
	PaginationQueryParams
	DateRangeQueryParams
	Levels    string      `form:"levels"`
	Countries string      `form:"countries"`
	Order     types.Order `form:"order,default=desc"`
}

// ParseGeniusUserWeightChangesQuery parses query parameters for GET /leaderboard/genius-user-weight-changes
func ParseGeniusUserWeightChangesQuery(c *gin.Context) (*GeniusUserWeightChangesQueryParams, error) {
	var params GeniusUserWeightChangesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if err := params.PaginationQueryParams.normalize(constants.DEFAULT_CHANGES_PAGE_SIZE, constants.MAX_CHANGES_PAGE_SIZE); err != nil {
		return nil, err
	}
	if err := params.DateRangeQueryParams.parse(); err != nil {
		return nil, err
	}
	if !params.Order.Valid() {
		return nil, apierrors.NewValidationError("order must be asc or desc")
	}
	return &params, nil
}

// MergedPageQueryParams holds query parameters for GET /leaderboard/consultant-merged-page
type MergedPageQueryParams struct {
	PaginationQueryParams
	RecordDate  string                `form:"record_date"`
	Countries   string                `form:"countries"`
	Levels      string                `form:"levels"`
	UserKeyword string                `form:"user_keyword"`
	SortBy      types.MergedSortField `form:"sort_by,default=user"`
	SortOrder   types.Order           `form:"sort_order,default=asc"`

	ParsedRecordDate *time.Time `form:"-"`
}

// ParseMergedPageQuery parses query parameters for GET /leaderboard/consultant-merged-page
func ParseMergedPageQuery(c *gin.Context) (*MergedPageQueryParams, error) {
	var params MergedPageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if err := params.PaginationQueryParams.normalize(constants.DEFAULT_MERGED_PAGE_SIZE, constants.MAX_MERGED_PAGE_SIZE); err != nil {
		return nil, err
	}
	if !params.SortBy.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid sort_by: %s", params.SortBy))
	}
	if !params.SortOrder.Valid() {
		return nil, apierrors.NewValidationError("sort_order must be asc or desc")
	}

	recordDate, err := analytics.ParseOptionalDate(params.RecordDate)
	if err != nil {
		return nil, apierrors.NewBadRequestError("record_date must be in YYYY-MM-DD format", err.Error())
	}
	params.ParsedRecordDate = recordDate
	params.UserKeyword = strings.TrimSpace(params.UserKeyword)

	return &params, nil
}

// ValueFactorQueryParams holds query parameters for the value factor comparisons
type ValueFactorQueryParams struct {
	PaginationQueryParams
	SortBy          types.ValueFactorSortField `form:"sort_by,default=change"`
	SortOrder       types.Order                `form:"sort_order,default=desc"`
	Countries       string                     `form:"countries"`
	GeniusLevels    string                     `form:"genius_levels"`
	ExcludeBothHalf bool                       `form:"exclude_both_half"`

	// Deprecated: use sort_order
	Order types.Order `form:"order"`
	// Deprecated: use countries
	Country string `form:"country"`
}

// ParseValueFactorQuery parses query parameters for the value factor comparisons.
// The deprecated order and country parameters are folded into sort_order and countries.
func ParseValueFactorQuery(c *gin.Context) (*ValueFactorQueryParams, error) {
	var params ValueFactorQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if err := params.PaginationQueryParams.normalize(constants.DEFAULT_CHANGES_PAGE_SIZE, constants.MAX_CHANGES_PAGE_SIZE); err != nil {
		return nil, err
	}
	if !params.SortBy.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid sort_by: %s", params.SortBy))
	}
	if params.Order != "" {
		if !params.Order.Valid() {
			return nil, apierrors.NewValidationError("order must be asc or desc")
		}
		params.SortOrder = params.Order
	}
	if !params.SortOrder.Valid() {
		return nil, apierrors.NewValidationError("sort_order must be asc or desc")
	}
	return &params, nil
}

// CountryList returns the countries filter, falling back to the deprecated country
func (p *ValueFactorQueryParams) CountryList() []string {
	countries := domain.SplitList(p.Countries)
	if len(countries) == 0 {
		if country := strings.TrimSpace(p.Country); country != "" {
			countries = []string{country}
		}
	}
	return countries
}

// CombinedQueryParams holds query parameters for the combined performance comparisons
type CombinedQueryParams struct {
	PaginationQueryParams
	Countries                string                  `form:"countries"`
	Levels                   string                  `form:"levels"`
	ExcludeAlphaBothZero     bool                    `form:"exclude_alpha_both_zero"`
	ExcludePowerPoolBothZero bool                    `form:"exclude_power_pool_both_zero"`
	ExcludeSelectedBothZero  bool                    `form:"exclude_selected_both_zero"`
	SortBy                   types.CombinedSortField `form:"sort_by,default=alpha_change"`
	SortOrder                types.Order             `form:"sort_order,default=desc"`
}

// ParseCombinedQuery parses query parameters for the combined performance comparisons
func ParseCombinedQuery(c *gin.Context) (*CombinedQueryParams, error) {
	var params CombinedQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if err := params.PaginationQueryParams.normalize(constants.DEFAULT_CHANGES_PAGE_SIZE, constants.MAX_CHANGES_PAGE_SIZE); err != nil {
		return nil, err
	}
	if !params.SortBy.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid sort_by: %s", params.SortBy))
	}
	if !params.SortOrder.Valid() {
		return nil, apierrors.NewValidationError("sort_order must be asc or desc")
	}
	return &params, nil
}

// Filter returns the comparable-user filter of the combined comparisons
func (p *CombinedQueryParams) Filter() executor.CombinedFilter {
	return executor.CombinedFilter{
		Countries:                domain.SplitList(p.Countries),
		Levels:                   domain.SplitList(p.Levels),
		ExcludeAlphaBothZero:     p.ExcludeAlphaBothZero,
		ExcludePowerPoolBothZero: p.ExcludePowerPoolBothZero,
		ExcludeSelectedBothZero:  p.ExcludeSelectedBothZero,
	}
}

// ProfileQueryParams holds query parameters for GET /user/profile/history
type ProfileQueryParams struct {
	LimitDays int `form:"limit_days,default=30"`
}

// ParseProfileQuery parses query parameters for GET /user/profile/history
func ParseProfileQuery(c *gin.Context) (*ProfileQueryParams, error) {
	var params ProfileQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if params.LimitDays < 1 || params.LimitDays > constants.MAX_LIMIT_DAYS {
		return nil, apierrors.NewValidationError(fmt.Sprintf("limit_days must be between 1 and %d", constants.MAX_LIMIT_DAYS))
	}
	return &params, nil
}
