package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Routes chain gzip outside the response cache. The buffer must see the
// plain JSON the handler wrote, not the compressed stream, or every
// cached entry would fail to decode on hits.
func TestResponseBufferCapturesPlainJSONUnderGzip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buff *responseBuffer
	router := gin.New()
	router.GET("/data",
		gzip.Gzip(gzip.DefaultCompression),
		func(c *gin.Context) {
			buff = newResponseBuffer(c.Writer)
			c.Writer = buff
			c.Next()
		},
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"data": []string{"a", "b"}})
		},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	require.NotNil(t, buff)
	var cached map[string]any
	require.NoError(t, json.Unmarshal(buff.body.Bytes(), &cached))
	assert.Contains(t, cached, "data")
}

func TestCacheMiddlewareNilClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewCacheMiddleware(nil, "teamhub", 0)
	router := gin.New()
	router.GET("/data", m.CacheResponse(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "ok"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
