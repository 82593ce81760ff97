package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/utils"
)

func newEngine(store utils.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.Set(config.AppConfig{JWTSecret: "middleware-secret"})
	r := gin.New()
	r.Use(LoadSession(store))
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "user %d", id)
	})
	r.POST("/private", RequireLogin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/private", RequireLogin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestLoadSessionFromCookieAndHeader(t *testing.T) {
	store := utils.NewMemoryStore()
	r := newEngine(store)
	token, _, err := utils.GenerateToken(5, "alice", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: config.Get().SessionCookie, Value: token})
	r.ServeHTTP(w, req)
	assert.Equal(t, "user 5", w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, "user 5", w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: config.Get().SessionCookie, Value: "garbage"})
	r.ServeHTTP(w, req)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestRevokedSessionIsAnonymous(t *testing.T) {
	store := utils.NewMemoryStore()
	r := newEngine(store)
	token, claims, err := utils.GenerateToken(5, "alice", time.Hour)
	require.NoError(t, err)
	utils.RevokeToken(context.Background(), store, claims.ID, claims.ExpiresAt.Time)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestRequireLoginRedirects(t *testing.T) {
	r := newEngine(utils.NewMemoryStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts/login/?next=%2Fprivate", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/private", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestRateLimitPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	// perMinute 2 gives a burst of one
	assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2"))

	// a fresh middleware starts with full buckets
	other := gin.New()
	other.Use(RateLimitMiddleware(2))
	other.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	other.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
