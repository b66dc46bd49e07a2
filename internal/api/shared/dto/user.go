package dto

import (
	"time"

	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	WQID        string `json:"wq_id"`
	Username    string `json:"username"`
}

// UserResponse describes the authenticated system user
type UserResponse struct {
	ID        uint64    `json:"id"`
	WQID      string    `json:"wq_id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// MapSystemUserToDTO maps a system user row to its response
func MapSystemUserToDTO(user *schema.SystemUser) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		WQID:      user.WQID,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ProfileHistoryPoint is one dated consultant snapshot of the current user
type ProfileHistoryPoint struct {
	RecordDate                    string   `json:"record_date"`
	WeightFactor                  *float64 `json:"weight_factor"`
	ValueFactor                   *float64 `json:"value_factor"`
	SubmissionsCount              *int64   `json:"submissions_count"`
	MeanProdCorrelation           *float64 `json:"mean_prod_correlation"`
	MeanSelfCorrelation           *float64 `json:"mean_self_correlation"`
	SuperAlphaSubmissionsCount    *int64   `json:"super_alpha_submissions_count"`
	SuperAlphaMeanProdCorrelation *float64 `json:"super_alpha_mean_prod_correlation"`
	SuperAlphaMeanSelfCorrelation *float64 `json:"super_alpha_mean_self_correlation"`
	University                    *string  `json:"university"`
	Country                       *string  `json:"country"`
}

// ProfileHistory is the recent consultant history of the current user
type ProfileHistory struct {
	WQID     string                `json:"wq_id"`
	Username string                `json:"username"`
	Data     []ProfileHistoryPoint `json:"data"`
}

// ProfileStatistics summarizes every consultant snapshot of the current user
type ProfileStatistics struct {
	CurrentWeight      float64 `json:"current_weight"`
	CurrentValue       float64 `json:"current_value"`
	CurrentSubmissions int64   `json:"current_submissions"`
	MaxWeight          float64 `json:"max_weight"`
	MaxDailyChange     float64 `json:"max_daily_change"`
	MaxChangeDate      *string `json:"max_change_date"`
	TotalSubmissions   int64   `json:"total_submissions"`
	RecordDays         int     `json:"record_days"`
	DailyChange        float64 `json:"daily_change"`
	University         *string `json:"university"`
	Country            *string `json:"country"`
	LatestDate         string  `json:"latest_date"`
}

// ProfileStatisticsResponse carries the statistics, or a message when the user has no snapshot
type ProfileStatisticsResponse struct {
	WQID     string `json:"wq_id"`
	Username string `json:"username"`
	*ProfileStatistics
	Message string `json:"message,omitempty"`
}

// FeedbackResponse acknowledges a feedback submission
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
