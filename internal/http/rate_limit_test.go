package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func newLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.Use(IPRateLimitMiddleware(t.Context(), rps, burst, discardLogger()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func requestFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestIPRateLimitMiddleware_AllowsWithinBurst(t *testing.T) {
	router := newLimitedRouter(t, 1, 3)

	for range 3 {
		assert.Equal(t, http.StatusOK, requestFrom(router, "192.0.2.1:1234").Code)
	}
}

func TestIPRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	router := newLimitedRouter(t, 0.5, 1)

	assert.Equal(t, http.StatusOK, requestFrom(router, "192.0.2.1:1234").Code)

	w := requestFrom(router, "192.0.2.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestIPRateLimitMiddleware_IndependentLimitsPerIP(t *testing.T) {
	router := newLimitedRouter(t, 0.5, 1)

	assert.Equal(t, http.StatusOK, requestFrom(router, "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(router, "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusOK, requestFrom(router, "192.0.2.2:1234").Code)
}

func TestIPLimiterStore_RemoveIdle(t *testing.T) {
	store := &ipLimiterStore{rps: 1, burst: 1}
	now := time.Now()

	store.getLimiter("192.0.2.1", now.Add(-2*time.Hour))
	store.getLimiter("192.0.2.2", now)

	store.removeIdle(now.Add(-time.Hour))

	_, staleKept := store.limiters.Load("192.0.2.1")
	_, freshKept := store.limiters.Load("192.0.2.2")
	assert.False(t, staleKept)
	assert.True(t, freshKept)
}

func TestIPLimiterStore_ReusesLimiter(t *testing.T) {
	store := &ipLimiterStore{rps: 1, burst: 1}

	first := store.getLimiter("192.0.2.1", time.Now())
	second := store.getLimiter("192.0.2.1", time.Now())

	assert.Same(t, first, second)
}
