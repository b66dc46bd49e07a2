package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-leaderboard/internal/api/shared/auth"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	CURRENT_USER_KEY contextKey = "current_user"
	IDENTITY_KEY     contextKey = "identity"
	REQUEST_ID_KEY   contextKey = "request_id"
)

// UserResolver resolves the active system user a token subject refers to
type UserResolver interface {
	ResolveActiveUser(ctx context.Context, wqID string) (*schema.SystemUser, error)
}

// Auth returns a gin middleware that requires a valid bearer token whose
// subject is an active system user
func Auth(tokens *auth.TokenIssuer, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		identity, err := tokens.ParseHeader(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(ctx, "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			abortWithError(c, apierrors.NewUnauthorizedError("Could not validate credentials", authFailure(err)))
			return
		}

		user, err := users.ResolveActiveUser(ctx, identity.WQID)
		if err != nil {
			apiErr, ok := apierrors.As(err)
			if !ok {
				apiErr = apierrors.NewInternalError("Failed to resolve user")
			}
			if apiErr.HTTPStatus() >= 500 {
				logger.ErrorCtx(ctx, err, zap.String("wq_id", identity.WQID))
			} else {
				logger.WarnCtx(ctx, "Token subject is not an active user", zap.String("wq_id", identity.WQID))
			}
			abortWithError(c, apiErr)
			return
		}

		c.Set(IDENTITY_KEY, identity)
		c.Set(CURRENT_USER_KEY, user)
		c.Request = c.Request.WithContext(logger.WithSubject(ctx, user.WQID))

		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.Uint64("user_id", user.ID),
		)

		c.Next()
	}
}

// CurrentUser returns the system user set by Auth
func CurrentUser(c *gin.Context) (*schema.SystemUser, bool) {
	v, ok := c.Get(CURRENT_USER_KEY)
	if !ok {
		return nil, false
	}
	user, ok := v.(*schema.SystemUser)
	return user, ok && user != nil
}

func authFailure(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return auth.ErrMissingToken.Error()
	case errors.Is(err, auth.ErrInvalidHeader):
		return auth.ErrInvalidHeader.Error()
	default:
		return auth.ErrInvalidToken.Error()
	}
}

// abortWithError renders an API error with its status and stops the chain
func abortWithError(c *gin.Context, apiErr *apierrors.APIError) {
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
