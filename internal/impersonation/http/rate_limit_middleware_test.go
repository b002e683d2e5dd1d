package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.POST("/limited", RateLimitMiddleware(rps, burst, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests within the burst", func(t *testing.T) {
		router := setupRateLimitedRouter(1, 3)

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/limited", nil)
			req.RemoteAddr = "203.0.113.10:40000"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rejects requests beyond the burst with Retry-After", func(t *testing.T) {
		router := setupRateLimitedRouter(0.1, 1)

		first := httptest.NewRequest(http.MethodPost, "/limited", nil)
		first.RemoteAddr = "203.0.113.11:40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, first)
		assert.Equal(t, http.StatusOK, w.Code)

		second := httptest.NewRequest(http.MethodPost, "/limited", nil)
		second.RemoteAddr = "203.0.113.11:40000"
		w = httptest.NewRecorder()
		router.ServeHTTP(w, second)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("limits are independent per IP", func(t *testing.T) {
		router := setupRateLimitedRouter(0.1, 1)

		first := httptest.NewRequest(http.MethodPost, "/limited", nil)
		first.RemoteAddr = "203.0.113.12:40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, first)
		assert.Equal(t, http.StatusOK, w.Code)

		other := httptest.NewRequest(http.MethodPost, "/limited", nil)
		other.RemoteAddr = "203.0.113.13:40000"
		w = httptest.NewRecorder()
		router.ServeHTTP(w, other)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
