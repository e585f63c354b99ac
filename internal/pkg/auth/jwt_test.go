// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techvista/storefront/internal/config"
	"github.com/techvista/storefront/internal/domain/session"
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

func testUser() *session.User {
	return &session.User{
		ID:      "admin-special",
		Email:   "admin@techvista.com",
		Name:    "Administrator",
		IsAdmin: true,
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "admin-special", claims.UserID)
	assert.Equal(t, "admin@techvista.com", claims.Email)
	assert.Equal(t, "Administrator", claims.Name)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "admin-special", claims.Subject)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateToken(testUser())
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "another-secret-key-that-is-long-enough-1"

	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessTokenExpiry = -time.Minute
	manager := NewJWTManager(cfg)

	token, err := manager.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	manager := NewJWTManager(testConfig())

	_, err := manager.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}
