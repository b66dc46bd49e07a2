package middleware

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-leaderboard/internal/cache"
)

// CACHE_HEADER reports whether a response was served from the cache
const CACHE_HEADER = "X-Cache"

// bodyCapture tees the response body so it can be stored after the handler ran
type bodyCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache returns a gin middleware serving GET responses from the cache.
// Responses of routes marked perUser are keyed by the authenticated user id,
// so it must run after Auth on those routes. A nil store disables caching.
func ResponseCache(store cache.Cache, namespace string, perUser bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		var uid string
		if perUser {
			user, ok := CurrentUser(c)
			if !ok {
				c.Next()
				return
			}
			uid = strconv.FormatUint(user.ID, 10)
		}

		ctx := c.Request.Context()
		key := cache.Key(namespace, c.Request.URL.Path, c.Request.URL.Query(), uid)

		if entry, ok := store.Get(ctx, key); ok {
			c.Header(CACHE_HEADER, "HIT")
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}

		writer := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Header(CACHE_HEADER, "MISS")

		c.Next()

		store.Set(ctx, key, &cache.Entry{
			Status:      writer.Status(),
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
	}
}
