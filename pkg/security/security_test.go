package security

import (
	"course_insights_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func serve(r http.Handler, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	r := newRouter(CORS(config.CORSConfig{
		AllowedOrigins: []string{"http://allowed.local"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAgeSeconds:  600,
	}))

	w := serve(r, http.MethodGet, "http://allowed.local")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://allowed.local", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Methods"))

	w = serve(r, http.MethodGet, "http://evil.local")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodOptions, "http://allowed.local")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization, Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
}

func TestSecureHeaders(t *testing.T) {
	w := serve(newRouter(Secure()), http.MethodGet, "")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestRateLimiter(t *testing.T) {
	r := newRouter(RateLimiter(config.RateLimitConfig{MaxRequests: 2, WindowMinutes: 60}))

	codes := make([]int, 3)
	for i := range codes {
		codes[i] = serve(r, http.MethodGet, "").Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := newRouter(RateLimiter(config.RateLimitConfig{MaxRequests: 0, WindowMinutes: 1}))

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "").Code)
	}
}

func TestVisitorStore_Sweep(t *testing.T) {
	store := &visitorStore{visitors: make(map[string]*visitor), limit: 1, burst: 1}
	now := time.Now()

	assert.True(t, store.allow("10.0.0.1", now.Add(-time.Hour)))
	assert.True(t, store.allow("10.0.0.2", now))
	assert.False(t, store.allow("10.0.0.2", now))

	assert.Equal(t, 1, store.sweep(now, 10*time.Minute))
}
