package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// cachedResponse is the envelope stored in Redis for a cached
// response.  Only the status, content type and body are kept; other
// headers are request-specific and not worth replaying.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyCapture duplicates the response body into a buffer while
// forwarding it to the client, so a successful response can be stored
// after the handler returns.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache returns a middleware that caches successful GET
// responses in Redis for the given TTL.  The cache key is derived
// from the route and raw query, so the public menu, wine list and
// specials pages are served from Redis between catalog edits.  A nil
// client disables caching; cache errors fall through to the handler.
func ResponseCache(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	if rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
			key := fmt.Sprintf("cache:%x", sum)

			ctx := c.Request().Context()
			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					return c.Blob(cached.Status, cached.ContentType, cached.Body)
				}
			}

			rec := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}
			if rec.status == http.StatusOK {
				entry := cachedResponse{
					Status:      rec.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        rec.buf.Bytes(),
				}
				if raw, err := json.Marshal(entry); err == nil {
					rdb.Set(ctx, key, raw, ttl)
				}
			}
			return nil
		}
	}
}
