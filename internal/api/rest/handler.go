package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-leaderboard/internal/api/middleware"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/dto"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/executor"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Login issues an access token for a WQ id
	// POST /api/v1/auth/login
	Login(c *gin.Context)

	// GetCurrentUser returns the authenticated system user
	// GET /api/v1/auth/user/me
	GetCurrentUser(c *gin.Context)

	// GetProfileHistory retrieves the recent consultant snapshots of the current user
	// GET /api/v1/user/profile/history?limit_days=<days>
	GetProfileHistory(c *gin.Context)

	// GetProfileStatistics summarizes the consultant snapshots of the current user
	// GET /api/v1/user/profile/statistics
	GetProfileStatistics(c *gin.Context)

	// SubmitFeedback stores a feedback entry of the current user
	// POST /api/v1/feedback
	SubmitFeedback(c *gin.Context)

	// GetCountryRankings ranks countries by weight with changes against the baseline
	// GET /api/v1/dashboard/country-rankings?quarter=<YYYY-Qn>&page=<page>&page_size=<size>
	GetCountryRankings(c *gin.Context)

	// GetUniversityRankings ranks universities by average consultant weight
	// GET /api/v1/dashboard/university-rankings?quarter=<YYYY-Qn>&page=<page>&page_size=<size>
	GetUniversityRankings(c *gin.Context)

	// GetTopUsersByWeight ranks consultants by weight
	// GET /api/v1/dashboard/top-users-by-weight?country=<country>&page=<page>&page_size=<size>
	GetTopUsersByWeight(c *gin.Context)

	// GetTopUsersByWeightChange ranks consultants by weight change
	// GET /api/v1/dashboard/top-users-by-weight-change?quarter=<YYYY-Qn>&order=<order>&country=<country>&page=<page>&page_size=<size>
	GetTopUsersByWeightChange(c *gin.Context)

	// GetTopUsersBySubmissions ranks consultants by submissions
	// GET /api/v1/dashboard/top-users-by-submissions?country=<country>&page=<page>&page_size=<size>
	GetTopUsersBySubmissions(c *gin.Context)

	// GetTopUsersByCorrelation ranks consultants by a correlation pair
	// GET /api/v1/dashboard/top-users-by-correlation?correlation_type=<prod|self>&country=<country>&page=<page>&page_size=<size>
	GetTopUsersByCorrelation(c *gin.Context)

	// GetCountryHistory retrieves the snapshots of one country newest first
	// GET /api/v1/dashboard/country-history/:country?page=<page>&page_size=<size>
	GetCountryHistory(c *gin.Context)

	// GetCountryWeightTimeSeries retrieves the weight series of countries
	// GET /api/v1/leaderboard/country-weight-timeseries?countries=<c1,c2>&limit_days=<days>
	GetCountryWeightTimeSeries(c *gin.Context)

	// GetCountrySubmissionTimeSeries retrieves the submission series of countries
	// GET /api/v1/leaderboard/country-submission-timeseries?countries=<c1,c2>&limit_days=<days>&start_date=<date>&end_date=<date>
	GetCountrySubmissionTimeSeries(c *gin.Context)

	// GetGeniusCountryTimeSeries retrieves the alpha count changes of countries
	// GET /api/v1/leaderboard/genius-country-timeseries?countries=<c1,c2>&start_date=<date>&end_date=<date>
	GetGeniusCountryTimeSeries(c *gin.Context)

	// GetGeniusWeightTimeSeries sums weight per genius level and country
	// GET /api/v1/leaderboard/genius-weight-timeseries?levels=<l1,l2>&countries=<c1,c2>&start_date=<date>&end_date=<date>
	GetGeniusWeightTimeSeries(c *gin.Context)

	// GetUserWeightTimeSeries retrieves the weight series of one user
	// GET /api/v1/leaderboard/genius-user-weight-timeseries?user=<wq_id>&start_date=<date>&end_date=<date>
	GetUserWeightTimeSeries(c *gin.Context)

	// GetUserDailyOsmosisTimeSeries retrieves the daily osmosis rank series of one user
	// GET /api/v1/leaderboard/consultant-user-daily-osmosis-timeseries?user=<wq_id>&start_date=<date>&end_date=<date>
	GetUserDailyOsmosisTimeSeries(c *gin.Context)

	// GetAvailableCountries lists the countries of the consultant country snapshots
	// GET /api/v1/leaderboard/available-countries
	GetAvailableCountries(c *gin.Context)

	// GetGeniusAvailableCountries lists the countries of any genius or consultant snapshot
	// GET /api/v1/leaderboard/genius-available-countries
	GetGeniusAvailableCountries(c *gin.Context)

	// GetGeniusAvailableLevels lists the genius levels of the genius snapshots
	// GET /api/v1/leaderboard/genius-available-levels
	GetGeniusAvailableLevels(c *gin.Context)

	// GetCountryLeaderboard retrieves the top countries by weight
	// GET /api/v1/leaderboard/country-leaderboard?limit=<limit>&days=<days>
	GetCountryLeaderboard(c *gin.Context)

	// GetUserLeaderboard retrieves the top users by weight
	// GET /api/v1/leaderboard/user-leaderboard?limit=<limit>&days=<days>&order=<order>
	GetUserLeaderboard(c *gin.Context)

	// GetSummaryStatistics aggregates the latest country snapshots
	// GET /api/v1/leaderboard/summary-statistics?days=<days>
	GetSummaryStatistics(c *gin.Context)

	// GetGeniusUserWeightChanges ranks genius users by weight change
	// GET /api/v1/leaderboard/genius-user-weight-changes?levels=<l1,l2>&countries=<c1,c2>&start_date=<date>&end_date=<date>&order=<order>&page=<page>&page_size=<size>
	GetGeniusUserWeightChanges(c *gin.Context)

	// GetGeniusLevelWeightChanges totals the weight of each genius tier
	// GET /api/v1/leaderboard/genius-level-weight-changes?days=<days>
	GetGeniusLevelWeightChanges(c *gin.Context)

	// GetConsultantMergedPage retrieves consultant and genius snapshots side by side
	// GET /api/v1/leaderboard/consultant-merged-page?record_date=<date>&countries=<c1,c2>&levels=<l1,l2>&user_keyword=<keyword>&sort_by=<field>&sort_order=<order>&page=<page>&page_size=<size>
	GetConsultantMergedPage(c *gin.Context)

	// GetValueFactorAnalysis compares value factors between the anchor dates
	// GET /api/v1/leaderboard/value-factor-analysis?exclude_both_half=<bool>
	GetValueFactorAnalysis(c *gin.Context)

	// GetValueFactorUserChanges lists per-user value factor changes
	// GET /api/v1/leaderboard/value-factor-user-changes?sort_by=<field>&sort_order=<order>&countries=<c1,c2>&genius_levels=<l1,l2>&exclude_both_half=<bool>&page=<page>&page_size=<size>
	// Deprecated parameters: order=<order> (use sort_order), country=<country> (use countries)
	GetValueFactorUserChanges(c *gin.Context)

	// GetCombinedAnalysis compares combined performance between the anchor dates
	// GET /api/v1/leaderboard/combined-analysis?countries=<c1,c2>&levels=<l1,l2>&exclude_alpha_both_zero=<bool>&exclude_power_pool_both_zero=<bool>&exclude_selected_both_zero=<bool>
	GetCombinedAnalysis(c *gin.Context)

	// GetCombinedUserChanges lists per-user combined performance changes
	// GET /api/v1/leaderboard/combined-user-changes?sort_by=<field>&sort_order=<order>&countries=<c1,c2>&levels=<l1,l2>&exclude_*_both_zero=<bool>&page=<page>&page_size=<size>
	GetCombinedUserChanges(c *gin.Context)

	// GetUserMetricTrends samples a user's metrics on the event calendar
	// GET /api/v1/leaderboard/user-metric-trends?user=<wq_id>
	GetUserMetricTrends(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// currentUser returns the user set by the auth middleware, responding 401 when absent
func currentUser(c *gin.Context) (*schema.SystemUser, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthorized(c, "Could not validate credentials")
		return nil, false
	}
	return user, true
}

// Login issues an access token for a WQ id
func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid login request")
		return
	}

	resp, err := h.executor.Login(c.Request.Context(), req.WQID)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCurrentUser returns the authenticated system user
func (h *handler) GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.MapSystemUserToDTO(user))
}

// GetProfileHistory retrieves the recent consultant snapshots of the current user
func (h *handler) GetProfileHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	queryParams, err := ParseProfileQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	history, err := h.executor.GetProfileHistory(c.Request.Context(), user, queryParams.LimitDays)
	if err != nil {
		respondError(c, err, "Failed to get profile history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetProfileStatistics summarizes the consultant snapshots of the current user
func (h *handler) GetProfileStatistics(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.executor.GetProfileStatistics(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to get profile statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// SubmitFeedback stores a feedback entry of the current user
func (h *handler) SubmitFeedback(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid feedback")
		return
	}

	resp, err := h.executor.SubmitFeedback(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err, "Failed to submit feedback")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.executor.CheckHealth(c.Request.Context()); err != nil {
		respondError(c, err, "Health check failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-leaderboard-api",
	})
}

// orEmpty keeps list responses rendered as [] rather than null
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
