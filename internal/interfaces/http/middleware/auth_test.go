// internal/interfaces/http/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techvista/storefront/internal/config"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/pkg/auth"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "TechVista Storefront"},
		JWT: config.JWTConfig{
			Secret:            "test-secret-key-that-is-long-enough-000",
			AccessTokenExpiry: time.Hour,
		},
	}
}

func newGuardedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	protected := router.Group("/protected")
	protected.Use(AuthMiddleware(cfg))
	protected.GET("", func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	admin := router.Group("/admin")
	admin.Use(AuthMiddleware(cfg))
	admin.Use(AdminMiddleware())
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func tokenFor(t *testing.T, cfg *config.Config, user *session.User) string {
	t.Helper()
	token, err := auth.NewJWTManager(cfg).GenerateToken(user)
	require.NoError(t, err)
	return token
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	router := newGuardedRouter(cfg)
	token := tokenFor(t, cfg, &session.User{ID: "user-1", Email: "marie@example.com"})

	t.Run("valid token passes", func(t *testing.T) {
		w := get(router, "/protected", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
	})

	t.Run("missing header rejected", func(t *testing.T) {
		w := get(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := get(router, "/protected", "not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	cfg := testConfig()
	router := newGuardedRouter(cfg)

	adminToken := tokenFor(t, cfg, &session.User{ID: "admin-special", IsAdmin: true})
	userToken := tokenFor(t, cfg, &session.User{ID: "user-1"})

	t.Run("admin passes", func(t *testing.T) {
		w := get(router, "/admin", adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		w := get(router, "/admin", userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		w := get(router, "/admin", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
