package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func TestMemoryLimiterAllowsBurst(t *testing.T) {
	l := NewMemoryLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should have been allowed", i+1)
		}
	}

	assert.Equal(t, false, l.Allow("1.2.3.4"))
}

func TestMemoryLimiterKeysIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, 1)

	assert.Equal(t, true, l.Allow("1.2.3.4"))
	assert.Equal(t, false, l.Allow("1.2.3.4"))

	assert.Equal(t, true, l.Allow("5.6.7.8"))
}

type stubLimiter struct {
	allow bool
}

func (s *stubLimiter) Allow(key string) bool {
	return s.allow
}

func newLimitedRouter(limiter Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(limiter))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func TestMiddlewarePassesAllowedRequests(t *testing.T) {
	r := newLimitedRouter(&stubLimiter{allow: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddlewareRejectsOverLimit(t *testing.T) {
	r := newLimitedRouter(&stubLimiter{allow: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
