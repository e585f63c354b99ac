// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "TechVista Storefront", cfg.App.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 2*time.Second, cfg.Checkout.PaymentDelay)
	assert.Equal(t, "gemini-2.0-flash", cfg.Assistant.Model)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CHECKOUT_PAYMENT_DELAY", "50ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "cache.internal:6380", cfg.GetRedisAddr())
	assert.Equal(t, 50*time.Millisecond, cfg.Checkout.PaymentDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8080"},
			Storage: StorageConfig{Driver: "memory"},
			JWT:     JWTConfig{Secret: "test-secret-key-that-is-long-enough-000"},
		}
	}

	assert.NoError(t, base().Validate())

	short := base()
	short.JWT.Secret = "short"
	assert.Error(t, short.Validate())

	driver := base()
	driver.Storage.Driver = "postgres"
	assert.Error(t, driver.Validate())

	redisNoHost := base()
	redisNoHost.Storage.Driver = "redis"
	assert.Error(t, redisNoHost.Validate())

	noPort := base()
	noPort.Server.Port = ""
	assert.Error(t, noPort.Validate())
}
