package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NOBEL_API_BASE_URL", "http://upstream.test/2.1/")
	t.Setenv("NOBEL_API_TIMEOUT_SEC", "5")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:9090", cfg.AppHost)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "http://upstream.test/2.1", cfg.NobelAPI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.NobelAPI.Timeout())
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_HOST", "API_PREFIX", "NOBEL_API_BASE_URL", "NOBEL_API_TIMEOUT_SEC", "BODY_LIMIT_BYTES", "METRICS_ENABLED", "LOG_TIMEZONE"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, DefaultNobelAPIBaseURL, cfg.NobelAPI.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.NobelAPI.Timeout())
	assert.Equal(t, 102400, cfg.BodyLimitBytes)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestNormalizePrefix(t *testing.T) {
	assert.Equal(t, "/api", normalizePrefix("api"))
	assert.Equal(t, "/api/v1", normalizePrefix("/api/v1/"))
	assert.Equal(t, "", normalizePrefix("/"))
}

func TestLocationFallback(t *testing.T) {
	cfg := &AppConfig{LogTimezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
