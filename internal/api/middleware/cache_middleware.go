package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karakusgokhan/team-hub/internal/infrastructure/cache"
)

// CacheMiddleware caches rendered GET responses in Redis. With no Redis
// configured the cache client is nil and every method is a pass-through.
type CacheMiddleware struct {
	cache  *cache.RedisClient
	prefix string
	ttl    time.Duration
}

func NewCacheMiddleware(cache *cache.RedisClient, prefix string, ttl time.Duration) *CacheMiddleware {
	return &CacheMiddleware{
		cache:  cache,
		prefix: prefix,
		ttl:    ttl,
	}
}

// responseBuffer is a custom ResponseWriter that stores the response
type responseBuffer struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func newResponseBuffer(original gin.ResponseWriter) *responseBuffer {
	return &responseBuffer{
		ResponseWriter: original,
		body:           bytes.NewBufferString(""),
	}
}

func (r *responseBuffer) Write(b []byte) (int, error) {
	r.ResponseWriter.Write(b)
	return r.body.Write(b)
}

func (r *responseBuffer) WriteString(s string) (int, error) {
	r.ResponseWriter.WriteString(s)
	return r.body.WriteString(s)
}

// CacheResponse caches the response of a GET endpoint
func (m *CacheMiddleware) CacheResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || !m.cache.IsHealthy() {
			c.Next()
			return
		}

		key := m.generateCacheKey(c)

		if cached, err := m.cache.Get(c, key); err == nil {
			var response map[string]interface{}
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				c.JSON(http.StatusOK, response)
				c.Abort()
				return
			}
		}

		writer := c.Writer
		buff := newResponseBuffer(writer)
		c.Writer = buff

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := m.cache.Set(c, key, buff.body.String(), m.ttl); err != nil {
				log.Error("Failed to cache response", zap.Error(err))
			}
		}

		c.Writer = writer
	}
}

// CacheInvalidate clears cached entries matching the patterns after a
// successful mutation. Optimistic writes answer from memory, so this is
// what keeps cached lists from serving pre-mutation snapshots.
func (m *CacheMiddleware) CacheInvalidate(patterns ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !m.cache.IsHealthy() {
			return
		}
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			for _, pattern := range patterns {
				key := fmt.Sprintf("%s:%s", m.prefix, pattern)
				if err := m.cache.ClearByPattern(c, key); err != nil {
					log.Error("Failed to invalidate cache", zap.Error(err), zap.String("pattern", pattern))
				}
			}
		}
	}
}

func (m *CacheMiddleware) generateCacheKey(c *gin.Context) string {
	parts := []string{m.prefix}

	// api/calendar/week -> calendar:week
	pathParts := strings.Split(strings.Trim(c.Request.URL.Path, "/"), "/")
	if len(pathParts) > 1 && pathParts[0] == "api" {
		pathParts = pathParts[1:]
	}
	parts = append(parts, pathParts...)

	if len(c.Request.URL.RawQuery) > 0 {
		parts = append(parts, c.Request.URL.RawQuery)
	}

	return strings.Join(parts, ":")
}
