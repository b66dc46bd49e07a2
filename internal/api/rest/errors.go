package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/logger"
)

// respondError renders err with the status of its API error.
// Errors that are not API errors are reported as internal errors.
func respondError(c *gin.Context, err error, message string) {
	apiErr, ok := apierrors.As(err)
	if !ok {
		apiErr = apierrors.NewInternalError(message)
	}
	if apiErr.HTTPStatus() >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.String("message", message),
		)
	}
	c.JSON(apiErr.HTTPStatus(), apiErr)
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(message))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError(message))
}
