package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-leaderboard/internal/api/middleware"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/auth"
	"github.com/feral-file/ff-leaderboard/internal/cache"
	"github.com/feral-file/ff-leaderboard/internal/ratelimit"
)

// RouteConfig holds the dependencies of the route middleware
type RouteConfig struct {
	Tokens *auth.TokenIssuer
	Users  middleware.UserResolver
	// Cache serves repeated GET responses; nil disables caching
	Cache cache.Cache
	// LoginLimiter limits login attempts per client ip; nil disables limiting
	LoginLimiter ratelimit.Limiter
}

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, cfg RouteConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	requireAuth := middleware.Auth(cfg.Tokens, cfg.Users)
	shared := func(namespace string) gin.HandlerFunc {
		return middleware.ResponseCache(cfg.Cache, namespace, false)
	}
	perUser := func(namespace string) gin.HandlerFunc {
		return middleware.ResponseCache(cfg.Cache, namespace, true)
	}

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		if cfg.LoginLimiter != nil {
			authGroup.POST("/login", middleware.RateLimit(cfg.LoginLimiter, "login"), handler.Login)
		} else {
			authGroup.POST("/login", handler.Login)
		}
		authGroup.GET("/user/me", requireAuth, handler.GetCurrentUser)

		user := v1.Group("/user", requireAuth)
		user.GET("/profile/history", perUser("user:profile-history"), handler.GetProfileHistory)
		user.GET("/profile/statistics", perUser("user:profile-statistics"), handler.GetProfileStatistics)

		v1.POST("/feedback", requireAuth, handler.SubmitFeedback)

		dashboard := v1.Group("/dashboard", requireAuth)
		dashboard.GET("/country-rankings", shared("dashboard:country-rankings"), handler.GetCountryRankings)
		dashboard.GET("/university-rankings", shared("dashboard:university-rankings"), handler.GetUniversityRankings)
		dashboard.GET("/top-users-by-weight", shared("dashboard:top-users-by-weight"), handler.GetTopUsersByWeight)
		dashboard.GET("/top-users-by-weight-change", shared("dashboard:top-users-by-weight-change"), handler.GetTopUsersByWeightChange)
		dashboard.GET("/top-users-by-submissions", shared("dashboard:top-users-by-submissions"), handler.GetTopUsersBySubmissions)
		dashboard.GET("/top-users-by-correlation", shared("dashboard:top-users-by-correlation"), handler.GetTopUsersByCorrelation)
		dashboard.GET("/country-history/:country", shared("dashboard:country-history"), handler.GetCountryHistory)

		leaderboard := v1.Group("/leaderboard", requireAuth)
		leaderboard.GET("/country-weight-timeseries", shared("leaderboard:country-weight-timeseries"), handler.GetCountryWeightTimeSeries)
		leaderboard.GET("/country-submission-timeseries", shared("leaderboard:country-submission-timeseries"), handler.GetCountrySubmissionTimeSeries)
		leaderboard.GET("/genius-country-timeseries", shared("leaderboard:genius-country-timeseries"), handler.GetGeniusCountryTimeSeries)
		leaderboard.GET("/genius-weight-timeseries", shared("leaderboard:genius-weight-timeseries"), handler.GetGeniusWeightTimeSeries)
		leaderboard.GET("/genius-user-weight-timeseries", shared("leaderboard:genius-user-weight-timeseries"), handler.GetUserWeightTimeSeries)
		leaderboard.GET("/consultant-user-daily-osmosis-timeseries", shared("leaderboard:consultant-user-daily-osmosis-timeseries"), handler.GetUserDailyOsmosisTimeSeries)
		leaderboard.GET("/available-countries", shared("leaderboard:available-countries"), handler.GetAvailableCountries)
		leaderboard.GET("/genius-available-countries", shared("leaderboard:genius-available-countries"), handler.GetGeniusAvailableCountries)
		leaderboard.GET("/genius-available-levels", shared("leaderboard:genius-available-levels"), handler.GetGeniusAvailableLevels)
		leaderboard.GET("/country-leaderboard", shared("leaderboard:country-leaderboard"), handler.GetCountryLeaderboard)
		leaderboard.GET("/user-leaderboard", shared("leaderboard:user-leaderboard"), handler.GetUserLeaderboard)
		leaderboard.GET("/summary-statistics", shared("leaderboard:summary-statistics"), handler.GetSummaryStatistics)
		leaderboard.GET("/genius-user-weight-changes", shared("leaderboard:genius-user-weight-changes"), handler.GetGeniusUserWeightChanges)
		leaderboard.GET("/genius-level-weight-changes", shared("leaderboard:genius-level-weight-changes"), handler.GetGeniusLevelWeightChanges)
		leaderboard.GET("/consultant-merged-page", shared("leaderboard:consultant-merged-page"), handler.GetConsultantMergedPage)
		leaderboard.GET("/value-factor-analysis", shared("leaderboard:value-factor-analysis"), handler.GetValueFactorAnalysis)
		leaderboard.GET("/value-factor-user-changes", shared("leaderboard:value-factor-user-changes"), handler.GetValueFactorUserChanges)
		leaderboard.GET("/combined-analysis", shared("leaderboard:combined-analysis"), handler.GetCombinedAnalysis)
		leaderboard.GET("/combined-user-changes", shared("leaderboard:combined-user-changes"), handler.GetCombinedUserChanges)
		leaderboard.GET("/user-metric-trends", shared("leaderboard:user-metric-trends"), handler.GetUserMetricTrends)
	}
}
