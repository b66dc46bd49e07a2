package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-leaderboard/internal/api/shared/constants"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/executor"
	"github.com/feral-file/ff-leaderboard/internal/domain"
)

// GetCountryWeightTimeSeries retrieves the weight series of countries
func (h *handler) GetCountryWeightTimeSeries(c *gin.Context) {
	queryParams, err := ParseTimeSeriesQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	series, err := h.executor.GetCountryWeightTimeSeries(c.Request.Context(), queryParams.CountryList(), queryParams.LimitDays)
	if err != nil {
		respondError(c, err, "Failed to get country weight time series")
		return
	}

	c.JSON(http.StatusOK, orEmpty(series))
}

// GetCountrySubmissionTimeSeries retrieves the submission series of countries
func (h *handler) GetCountrySubmissionTimeSeries(c *gin.Context) {
	queryParams, err := ParseTimeSeriesQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	series, err := h.executor.GetCountrySubmissionTimeSeries(
		c.Request.Context(),
		queryParams.CountryList(),
		queryParams.LimitDays,
		queryParams.Start,
		queryParams.End,
	)
	if err != nil {
		respondError(c, err, "Failed to get country submission time series")
		return
	}

	c.JSON(http.StatusOK, orEmpty(series))
}

// GetGeniusCountryTimeSeries retrieves the alpha count changes of countries
func (h *handler) GetGeniusCountryTimeSeries(c *gin.Context) {
	queryParams, err := ParseTimeSeriesQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	series, err := h.executor.GetGeniusCountryTimeSeries(c.Request.Context(), queryParams.CountryList(), queryParams.Start, queryParams.End)
	if err != nil {
		respondError(c, err, "Failed to get genius country time series")
		return
	}

	c.JSON(http.StatusOK, orEmpty(series))
}

// GetGeniusWeightTimeSeries sums weight per genius level and country
func (h *handler) GetGeniusWeightTimeSeries(c *gin.Context) {
	queryParams, err := ParseTimeSeriesQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	series, err := h.executor.GetGeniusWeightTimeSeries(
		c.Request.Context(),
		queryParams.LevelList(),
		queryParams.CountryList(),
		queryParams.Start,
		queryParams.End,
	)
	if err != nil {
		respondError(c, err, "Failed to get genius weight time series")
		return
	}

	c.JSON(http.StatusOK, orEmpty(series))
}

// GetUserWeightTimeSeries retrieves the weight series of one user
func (h *handler) GetUserWeightTimeSeries(c *gin.Context) {
	queryParams, err := ParseTimeSeriesQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}
	if err := queryParams.RequireUser(); err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	series, err := h.executor.GetUserWeightTimeSeries(c.Request.Context(), queryParams.User, queryParams.Start, queryParams.End)
	if err != nil {
		respondError(c, err, "Failed to get user weight time series")
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetUserDailyOsmosisTimeSeries retrieves the daily osmosis rank series of one user
func (h *handler) GetUserDailyOsmosisTimeSeries(c *gin.Context) {
	queryParams, err := ParseTimeSeriesQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}
	if err := queryParams.RequireUser(); err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	series, err := h.executor.GetUserDailyOsmosisTimeSeries(c.Request.Context(), queryParams.User, queryParams.Start, queryParams.End)
	if err != nil {
		respondError(c, err, "Failed to get user daily osmosis time series")
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetAvailableCountries lists the countries of the consultant country snapshots
func (h *handler) GetAvailableCountries(c *gin.Context) {
	countries, err := h.executor.GetAvailableCountries(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get available countries")
		return
	}

	c.JSON(http.StatusOK, orEmpty(countries))
}

// GetGeniusAvailableCountries lists the countries of any genius or consultant snapshot
func (h *handler) GetGeniusAvailableCountries(c *gin.Context) {
	countries, err := h.executor.GetGeniusAvailableCountries(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get genius available countries")
		return
	}

	c.JSON(http.StatusOK, orEmpty(countries))
}

// GetGeniusAvailableLevels lists the genius levels of the genius snapshots
func (h *handler) GetGeniusAvailableLevels(c *gin.Context) {
	levels, err := h.executor.GetGeniusAvailableLevels(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get genius available levels")
		return
	}

	c.JSON(http.StatusOK, orEmpty(levels))
}

// GetCountryLeaderboard retrieves the top countries by weight
func (h *handler) GetCountryLeaderboard(c *gin.Context) {
	queryParams, err := ParseLeaderboardQuery(c, constants.DEFAULT_COUNTRY_LEADERBOARD_LIMIT)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	countries, err := h.executor.GetCountryLeaderboard(c.Request.Context(), queryParams.Limit, queryParams.Days)
	if err != nil {
		respondError(c, err, "Failed to get country leaderboard")
		return
	}

	c.JSON(http.StatusOK, orEmpty(countries))
}

// GetUserLeaderboard retrieves the top users by weight
func (h *handler) GetUserLeaderboard(c *gin.Context) {
	queryParams, err := ParseLeaderboardQuery(c, constants.DEFAULT_USER_LEADERBOARD_LIMIT)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	users, err := h.executor.GetUserLeaderboard(c.Request.Context(), queryParams.Limit, queryParams.Days, queryParams.Order)
	if err != nil {
		respondError(c, err, "Failed to get user leaderboard")
		return
	}

	c.JSON(http.StatusOK, orEmpty(users))
}

// GetSummaryStatistics aggregates the latest country snapshots
func (h *handler) GetSummaryStatistics(c *gin.Context) {
	queryParams, err := ParseLeaderboardQuery(c, constants.DEFAULT_COUNTRY_LEADERBOARD_LIMIT)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	stats, err := h.executor.GetSummaryStatistics(c.Request.Context(), queryParams.Days)
	if err != nil {
		respondError(c, err, "Failed to get summary statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetGeniusUserWeightChanges ranks genius users by weight change
func (h *handler) GetGeniusUserWeightChanges(c *gin.Context) {
	queryParams, err := ParseGeniusUserWeightChangesQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetGeniusUserWeightChanges(c.Request.Context(), executor.GeniusUserWeightChangesParams{
		Levels:    domain.SplitList(queryParams.Levels),
		Countries: domain.SplitList(queryParams.Countries),
		Start:     queryParams.Start,
		End:       queryParams.End,
		Order:     queryParams.Order,
		Page:      queryParams.Page,
		PageSize:  queryParams.PageSize,
	})
	if err != nil {
		respondError(c, err, "Failed to get genius user weight changes")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetGeniusLevelWeightChanges totals the weight of each genius tier
func (h *handler) GetGeniusLevelWeightChanges(c *gin.Context) {
	queryParams, err := ParseLeaderboardQuery(c, constants.DEFAULT_COUNTRY_LEADERBOARD_LIMIT)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	changes, err := h.executor.GetGeniusLevelWeightChanges(c.Request.Context(), queryParams.Days)
	if err != nil {
		respondError(c, err, "Failed to get genius level weight changes")
		return
	}

	c.JSON(http.StatusOK, orEmpty(changes))
}

// GetConsultantMergedPage retrieves consultant and genius snapshots side by side
func (h *handler) GetConsultantMergedPage(c *gin.Context) {
	queryParams, err := ParseMergedPageQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetConsultantMergedPage(c.Request.Context(), executor.MergedPageParams{
		RecordDate:  queryParams.ParsedRecordDate,
		Countries:   domain.SplitList(queryParams.Countries),
		Levels:      domain.SplitList(queryParams.Levels),
		UserKeyword: queryParams.UserKeyword,
		SortBy:      queryParams.SortBy,
		Order:       queryParams.SortOrder,
		Page:        queryParams.Page,
		PageSize:    queryParams.PageSize,
	})
	if err != nil {
		respondError(c, err, "Failed to get consultant merged page")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetValueFactorAnalysis compares value factors between the anchor dates
func (h *handler) GetValueFactorAnalysis(c *gin.Context) {
	queryParams, err := ParseValueFactorQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	analysis, err := h.executor.GetValueFactorAnalysis(c.Request.Context(), queryParams.ExcludeBothHalf)
	if err != nil {
		respondError(c, err, "Failed to get value factor analysis")
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetValueFactorUserChanges lists per-user value factor changes
func (h *handler) GetValueFactorUserChanges(c *gin.Context) {
	queryParams, err := ParseValueFactorQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetValueFactorUserChanges(c.Request.Context(), executor.ValueFactorUserChangesParams{
		Countries:       queryParams.CountryList(),
		GeniusLevels:    domain.SplitList(queryParams.GeniusLevels),
		ExcludeBothHalf: queryParams.ExcludeBothHalf,
		SortBy:          queryParams.SortBy,
		Order:           queryParams.SortOrder,
		Page:            queryParams.Page,
		PageSize:        queryParams.PageSize,
	})
	if err != nil {
		respondError(c, err, "Failed to get value factor user changes")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetCombinedAnalysis compares combined performance between the anchor dates
func (h *handler) GetCombinedAnalysis(c *gin.Context) {
	queryParams, err := ParseCombinedQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	analysis, err := h.executor.GetCombinedAnalysis(c.Request.Context(), queryParams.Filter())
	if err != nil {
		respondError(c, err, "Failed to get combined analysis")
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetCombinedUserChanges lists per-user combined performance changes
func (h *handler) GetCombinedUserChanges(c *gin.Context) {
	queryParams, err := ParseCombinedQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetCombinedUserChanges(c.Request.Context(), executor.CombinedUserChangesParams{
		CombinedFilter: queryParams.Filter(),
		SortBy:         queryParams.SortBy,
		Order:          queryParams.SortOrder,
		Page:           queryParams.Page,
		PageSize:       queryParams.PageSize,
	})
	if err != nil {
		respondError(c, err, "Failed to get combined user changes")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetUserMetricTrends samples a user's metrics on the event calendar
func (h *handler) GetUserMetricTrends(c *gin.Context) {
	queryParams, err := ParseTimeSeriesQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}
	if err := queryParams.RequireUser(); err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	trends, err := h.executor.GetUserMetricTrends(c.Request.Context(), queryParams.User)
	if err != nil {
		respondError(c, err, "Failed to get user metric trends")
		return
	}

	c.JSON(http.StatusOK, trends)
}
