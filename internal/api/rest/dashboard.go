package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-leaderboard/internal/api/shared/constants"
)

// GetCountryRankings ranks countries by weight with changes against the baseline
func (h *handler) GetCountryRankings(c *gin.Context) {
	queryParams, err := ParseDashboardQuery(c, constants.DEFAULT_DASHBOARD_PAGE_SIZE)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetCountryRankings(c.Request.Context(), queryParams.ParsedQuarter, queryParams.Page, queryParams.PageSize)
	if err != nil {
		respondError(c, err, "Failed to get country rankings")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetUniversityRankings ranks universities by average consultant weight
func (h *handler) GetUniversityRankings(c *gin.Context) {
	queryParams, err := ParseDashboardQuery(c, constants.DEFAULT_DASHBOARD_PAGE_SIZE)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetUniversityRankings(c.Request.Context(), queryParams.ParsedQuarter, queryParams.Page, queryParams.PageSize)
	if err != nil {
		respondError(c, err, "Failed to get university rankings")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetTopUsersByWeight ranks consultants by weight
func (h *handler) GetTopUsersByWeight(c *gin.Context) {
	queryParams, err := ParseDashboardQuery(c, constants.DEFAULT_DASHBOARD_PAGE_SIZE)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetTopUsersByWeight(c.Request.Context(), queryParams.CountryFilter(), queryParams.Page, queryParams.PageSize)
	if err != nil {
		respondError(c, err, "Failed to get top users by weight")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetTopUsersByWeightChange ranks consultants by weight change
func (h *handler) GetTopUsersByWeightChange(c *gin.Context) {
	queryParams, err := ParseDashboardQuery(c, constants.DEFAULT_DASHBOARD_PAGE_SIZE)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetTopUsersByWeightChange(
		c.Request.Context(),
		queryParams.ParsedQuarter,
		queryParams.Order,
		queryParams.CountryFilter(),
		queryParams.Page,
		queryParams.PageSize,
	)
	if err != nil {
		respondError(c, err, "Failed to get top users by weight change")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetTopUsersBySubmissions ranks consultants by submissions
func (h *handler) GetTopUsersBySubmissions(c *gin.Context) {
	queryParams, err := ParseDashboardQuery(c, constants.DEFAULT_DASHBOARD_PAGE_SIZE)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetTopUsersBySubmissions(c.Request.Context(), queryParams.CountryFilter(), queryParams.Page, queryParams.PageSize)
	if err != nil {
		respondError(c, err, "Failed to get top users by submissions")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetTopUsersByCorrelation ranks consultants by a correlation pair
func (h *handler) GetTopUsersByCorrelation(c *gin.Context) {
	queryParams, err := ParseDashboardQuery(c, constants.DEFAULT_DASHBOARD_PAGE_SIZE)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetTopUsersByCorrelation(
		c.Request.Context(),
		queryParams.Correlation,
		queryParams.CountryFilter(),
		queryParams.Page,
		queryParams.PageSize,
	)
	if err != nil {
		respondError(c, err, "Failed to get top users by correlation")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetCountryHistory retrieves the snapshots of one country newest first
func (h *handler) GetCountryHistory(c *gin.Context) {
	country := strings.TrimSpace(c.Param("country"))
	if country == "" {
		respondBadRequest(c, "country is required")
		return
	}

	queryParams, err := ParseDashboardQuery(c, constants.DEFAULT_COUNTRY_HISTORY_PAGE_SIZE)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	page, err := h.executor.GetCountryHistory(c.Request.Context(), country, queryParams.Page, queryParams.PageSize)
	if err != nil {
		respondError(c, err, "Failed to get country history")
		return
	}

	c.JSON(http.StatusOK, page)
}
