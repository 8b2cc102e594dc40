package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dcamacho/barkeep-api/internal/domain/enum"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestMaintenanceModeBlocksRequests(t *testing.T) {
	router := gin.New()
	router.Use(MaintenanceMiddleware(true))
	router.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

	w := performRequest(router, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "maintenance")
}

func TestMaintenanceModeDisabledPassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(MaintenanceMiddleware(false))
	router.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

	w := performRequest(router, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	newRouter := func(role string) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) { c.Set("user_role", role) })
		router.Use(RequireRole(enum.RoleAdmin))
		router.GET("/admin", func(c *gin.Context) { c.String(200, "ok") })
		return router
	}

	w := performRequest(newRouter(enum.RoleAdmin), http.MethodGet, "/admin")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(newRouter(enum.RoleWaiter), http.MethodGet, "/admin")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 1,
		BurstSize:         2,
		CleanupInterval:   DefaultRateLimiterConfig().CleanupInterval,
		EntryTTL:          DefaultRateLimiterConfig().EntryTTL,
	})

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

	assert.Equal(t, http.StatusOK, performRequest(router, http.MethodGet, "/ping").Code)
	assert.Equal(t, http.StatusOK, performRequest(router, http.MethodGet, "/ping").Code)
	assert.Equal(t, http.StatusTooManyRequests, performRequest(router, http.MethodGet, "/ping").Code)
}
