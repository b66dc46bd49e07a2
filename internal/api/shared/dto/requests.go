package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/feral-file/ff-leaderboard/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/domain"
)

// LoginRequest represents the request body for logging in with a WQ id
type LoginRequest struct {
	WQID string `json:"wq_id"`
}

// Validate validates the request body
func (r *LoginRequest) Validate() error {
	id := strings.TrimSpace(r.WQID)
	if id == "" {
		return apierrors.NewValidationError("wq_id is required")
	}
	if utf8.RuneCountInString(id) > constants.MAX_WQ_ID_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("wq_id must be at most %d characters", constants.MAX_WQ_ID_LENGTH))
	}
	return nil
}

// FeedbackRequest represents the request body for submitting feedback
type FeedbackRequest struct {
	Content      string              `json:"content"`
	FeedbackType domain.FeedbackType `json:"feedback_type"`
	Page         *string             `json:"page"`
	Contact      *string             `json:"contact"`
}

// Validate validates the request body and applies the default feedback type
func (r *FeedbackRequest) Validate() error {
	content := strings.TrimSpace(r.Content)
	if content == "" {
		return apierrors.NewValidationError("content is required")
	}
	if utf8.RuneCountInString(r.Content) > constants.MAX_FEEDBACK_CONTENT_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("content must be at most %d characters", constants.MAX_FEEDBACK_CONTENT_LENGTH))
	}

	if r.FeedbackType == "" {
		r.FeedbackType = domain.FeedbackTypeBug
	}
	if !r.FeedbackType.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid feedback_type: %s. Must be one of bug, optimize, request", r.FeedbackType))
	}

	if r.Page != nil && utf8.RuneCountInString(*r.Page) > constants.MAX_FEEDBACK_FIELD_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("page must be at most %d characters", constants.MAX_FEEDBACK_FIELD_LENGTH))
	}
	if r.Contact != nil && utf8.RuneCountInString(*r.Contact) > constants.MAX_FEEDBACK_FIELD_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("contact must be at most %d characters", constants.MAX_FEEDBACK_FIELD_LENGTH))
	}

	return nil
}
