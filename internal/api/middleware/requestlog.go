package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-leaderboard/internal/adapter"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/auth"
	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/requestlog"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// maxCapturedBody bounds how much of a request body is read for the log
const maxCapturedBody = 64 << 10

// RequestLog returns a gin middleware that persists one entry per request
// through the recorder. The caller identity is taken from a valid bearer token.
func RequestLog(recorder requestlog.Recorder, tokens *auth.TokenIssuer, clock adapter.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := clock.Now()

		var body *string
		if requestlog.CapturesBody(c.Request.Method) && c.Request.Body != nil {
			data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCapturedBody))
			if err != nil {
				logger.WarnCtx(c.Request.Context(), "Failed to read request body for log", zap.Error(err))
			}
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), c.Request.Body))
			body = requestlog.SanitizeBody(data)
		}

		c.Next()

		entry := &schema.RequestLog{
			RequestID:    logger.RequestID(c.Request.Context()),
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			QueryParams:  requestlog.EncodeQuery(c.Request.URL.Query()),
			Body:         body,
			StatusCode:   c.Writer.Status(),
			ResponseTime: clock.Since(start).Milliseconds(),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
			CreatedAt:    start,
		}
		if identity, err := tokens.ParseHeader(c.GetHeader("Authorization")); err == nil {
			userID := identity.UserID
			wqID := identity.WQID
			entry.UserID = &userID
			entry.WQID = &wqID
		}

		recorder.Record(entry)
	}
}
