package middleware

import (
	"net/http"
	"net/http/httptest"
	"referralvip-backend/config"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBotAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(cfg *config.Config) *gin.Engine {
		r := gin.New()
		r.Use(BotAuthMiddleware(cfg))
		r.GET("/bot", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Unconfigured Token", func(t *testing.T) {
		r := newRouter(&config.Config{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/bot", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Missing Header", func(t *testing.T) {
		r := newRouter(&config.Config{BotServiceToken: "secret-token"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/bot", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong Token", func(t *testing.T) {
		r := newRouter(&config.Config{BotServiceToken: "secret-token"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/bot", nil)
		req.Header.Set("X-Bot-Token", "wrong")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		r := newRouter(&config.Config{BotServiceToken: "secret-token"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/bot", nil)
		req.Header.Set("X-Bot-Token", "secret-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
