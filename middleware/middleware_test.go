package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Run("Should reject requests past the burst", func(t *testing.T) {
		r := gin.New()
		r.Use(RateLimitMiddleware(2))
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

		codes := make([]int, 3)
		for i := range codes {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			codes[i] = w.Code
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})
	t.Run("Should track clients independently", func(t *testing.T) {
		r := gin.New()
		r.Use(RateLimitMiddleware(1))
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
			req.RemoteAddr = addr
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, addr)
		}
	})
	t.Run("Should be disabled by a zero limit", func(t *testing.T) {
		r := gin.New()
		r.Use(RateLimitMiddleware(0))
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestRateLimiterStore_Prune(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newRateLimiterStore(10)
	s.now = func() time.Time { return now }
	s.getLimiter("a")
	now = now.Add(limiterIdleTTL + time.Second)
	s.getLimiter("b")
	assert.Len(t, s.limiters, 1)
	_, ok := s.limiters["b"]
	assert.True(t, ok)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/api/health", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	entries := logs.FilterMessage("request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-1", fields["requestId"])
		assert.Equal(t, int64(http.StatusNoContent), fields["status"])
		assert.Equal(t, "/api/health", fields["path"])
	}
}
