package executor

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-leaderboard/internal/analytics"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/store"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

const (
	loginFailedMessage = "WQ_ID not found or inactive"
	feedbackStatusNew  = "new"
)

func (e *executor) Login(ctx context.Context, wqID string) (*dto.LoginResponse, error) {
	wqID = domain.NormalizeWQID(wqID)

	user, err := e.store.GetActiveSystemUserByWQID(ctx, wqID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil && e.opts.BootstrapFromConsultant {
		user, err = e.bootstrapUser(ctx, wqID)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, apierrors.NewUnauthorizedError(loginFailedMessage)
	}

	token, err := e.tokens.Issue(user.ID, user.WQID)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to issue token: %v", err))
	}

	return &dto.LoginResponse{
		Success:     true,
		Message:     "Login successful",
		AccessToken: token,
		TokenType:   "bearer",
		WQID:        user.WQID,
		Username:    user.Username,
	}, nil
}

// bootstrapUser creates a system user for a consultant that has no account yet.
// A deactivated or deleted account is never recreated.
func (e *executor) bootstrapUser(ctx context.Context, wqID string) (*schema.SystemUser, error) {
	existing, err := e.store.GetSystemUserByWQID(ctx, wqID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if existing != nil {
		return nil, nil
	}

	known, err := e.store.ConsultantUserExists(ctx, wqID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to check consultant: %v", err))
	}
	if !known {
		return nil, nil
	}

	user := &schema.SystemUser{WQID: wqID, Username: wqID, IsActive: true}
	if err := e.store.CreateSystemUser(ctx, user); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create user: %v", err))
	}
	logger.InfoCtx(ctx, "Bootstrapped system user from consultant snapshots", zap.String("wqID", wqID))
	return user, nil
}

func (e *executor) ResolveActiveUser(ctx context.Context, wqID string) (*schema.SystemUser, error) {
	user, err := e.store.GetActiveSystemUserByWQID(ctx, domain.NormalizeWQID(wqID))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, apierrors.NewUnauthorizedError(domain.ErrUserNotFound.Error())
	}
	return user, nil
}

func (e *executor) GetProfileHistory(ctx context.Context, user *schema.SystemUser, limitDays int) (*dto.ProfileHistory, error) {
	history := &dto.ProfileHistory{WQID: user.WQID, Username: user.Username, Data: []dto.ProfileHistoryPoint{}}

	window, err := analytics.ResolveWindow(ctx, e.dates(domain.TableConsultantUser), analytics.WindowHint{LookbackDays: limitDays})
	if err != nil {
		return nil, resolveError("resolve profile history window", err)
	}
	if window.Empty {
		return history, nil
	}

	rows, err := e.store.GetConsultantUsers(ctx, store.SnapshotFilter{Users: []string{user.WQID}, Start: &window.Start, End: &window.End})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get profile history: %v", err))
	}
	for _, r := range rows {
		history.Data = append(history.Data, dto.ProfileHistoryPoint{
			RecordDate:                    analytics.FormatDate(r.RecordDate),
			WeightFactor:                  r.WeightFactor,
			ValueFactor:                   r.ValueFactor,
			SubmissionsCount:              r.SubmissionsCount,
			MeanProdCorrelation:           r.MeanProdCorrelation,
			MeanSelfCorrelation:           r.MeanSelfCorrelation,
			SuperAlphaSubmissionsCount:    r.SuperAlphaSubmissionsCount,
			SuperAlphaMeanProdCorrelation: r.SuperAlphaMeanProdCorrelation,
			SuperAlphaMeanSelfCorrelation: r.SuperAlphaMeanSelfCorrelation,
			University:                    r.University,
			Country:                       r.Country,
		})
	}
	return history, nil
}

func (e *executor) GetProfileStatistics(ctx context.Context, user *schema.SystemUser) (*dto.ProfileStatisticsResponse, error) {
	resp := &dto.ProfileStatisticsResponse{WQID: user.WQID, Username: user.Username}

	rows, err := e.store.GetConsultantUsers(ctx, store.SnapshotFilter{Users: []string{user.WQID}})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get profile statistics: %v", err))
	}
	if len(rows) == 0 {
		resp.Message = "No data available"
		return resp, nil
	}

	latest := rows[len(rows)-1]
	stats := &dto.ProfileStatistics{
		CurrentWeight:      analytics.Round(deref(latest.WeightFactor), analytics.WeightPlaces),
		CurrentValue:       analytics.Round(deref(latest.ValueFactor), analytics.RatioPlaces),
		CurrentSubmissions: deref(latest.SubmissionsCount) + deref(latest.SuperAlphaSubmissionsCount),
		RecordDays:         len(rows),
		University:         latest.University,
		Country:            latest.Country,
		LatestDate:         analytics.FormatDate(latest.RecordDate),
	}
	stats.TotalSubmissions = stats.CurrentSubmissions

	var maxWeight *float64
	for i, r := range rows {
		maxWeight = maxPtr(maxWeight, r.WeightFactor)
		if i == 0 || r.WeightFactor == nil || rows[i-1].WeightFactor == nil {
			continue
		}
		diff := math.Abs(*r.WeightFactor - *rows[i-1].WeightFactor)
		if stats.MaxChangeDate == nil || diff > stats.MaxDailyChange {
			stats.MaxDailyChange = diff
			stats.MaxChangeDate = ptr(analytics.FormatDate(r.RecordDate))
		}
	}
	stats.MaxWeight = analytics.Round(deref(maxWeight), analytics.WeightPlaces)
	stats.MaxDailyChange = analytics.Round(stats.MaxDailyChange, analytics.WeightPlaces)
	if n := len(rows); n >= 2 {
		stats.DailyChange = analytics.Round(deref(rows[n-1].WeightFactor)-deref(rows[n-2].WeightFactor), analytics.WeightPlaces)
	}

	resp.ProfileStatistics = stats
	return resp, nil
}

func (e *executor) SubmitFeedback(ctx context.Context, user *schema.SystemUser, req dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	feedback := &schema.UserFeedback{
		UserID:       user.ID,
		WQID:         user.WQID,
		Username:     user.Username,
		Content:      strings.TrimSpace(req.Content),
		FeedbackType: string(req.FeedbackType),
		Page:         req.Page,
		Contact:      req.Contact,
		Status:       feedbackStatusNew,
	}
	if err := e.store.CreateFeedback(ctx, feedback); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to submit feedback: %v", err))
	}

	return &dto.FeedbackResponse{
		Success: true,
		Message: "Feedback submitted successfully",
	}, nil
}
