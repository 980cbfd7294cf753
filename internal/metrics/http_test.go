package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsRouter(t *testing.T, namespace string) (*Provider, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider(namespace)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), namespace))
	router.GET("/v1/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_name": "Jane"})
	})
	router.PATCH("/v1/profile", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation_error"})
	})
	router.DELETE("/v1/transactions/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return provider, router
}

func serve(router *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	t.Run("CountsByRouteAndStatus", func(t *testing.T) {
		provider, router := newMetricsRouter(t, "http_count")

		for range 3 {
			assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/profile"))
		}
		assert.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodPatch, "/v1/profile"))

		output := scrape(t, provider)
		assertBizMetricLine(t, output, `http_count_http_requests_total`,
			`method="GET".*path="/v1/profile".*status_class="2xx".*status_code="200"`, `3`)
		assertBizMetricLine(t, output, `http_count_http_requests_total`,
			`method="PATCH".*path="/v1/profile".*status_class="4xx".*status_code="422"`, `1`)
	})

	t.Run("UsesRoutePatternForPathParams", func(t *testing.T) {
		provider, router := newMetricsRouter(t, "http_params")

		assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/v1/transactions/t-1"))
		assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/v1/transactions/t-2"))

		output := scrape(t, provider)
		assertBizMetricLine(t, output, `http_params_http_requests_total`,
			`path="/v1/transactions/:id"`, `2`)
		assert.NotContains(t, output, "/v1/transactions/t-1")
	})

	t.Run("CollapsesUnmatchedRoutes", func(t *testing.T) {
		provider, router := newMetricsRouter(t, "http_unmatched")

		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/wp-admin"))
		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/.env"))

		output := scrape(t, provider)
		assertBizMetricLine(t, output, `http_unmatched_http_requests_total`,
			`path="unmatched".*status_code="404"`, `2`)
		assert.NotContains(t, output, "/wp-admin")
	})

	t.Run("RecordsDuration", func(t *testing.T) {
		provider, router := newMetricsRouter(t, "http_duration")

		serve(router, http.MethodGet, "/v1/profile")

		output := scrape(t, provider)
		assertBizMetricLine(t, output, `http_duration_http_request_duration_seconds_count`,
			`method="GET".*path="/v1/profile"`, `1`)
	})
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/v1/transactions/:id", routeLabel("/v1/transactions/:id"))
	assert.Equal(t, "/", routeLabel("/"))
	assert.Equal(t, unmatchedRoute, routeLabel(""))
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusOK, "2xx"},
		{http.StatusNoContent, "2xx"},
		{http.StatusLocked, "4xx"},
		{http.StatusServiceUnavailable, "5xx"},
		{42, "unknown"},
		{600, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusClass(tt.status))
		})
	}
}
