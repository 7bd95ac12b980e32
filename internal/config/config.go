package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultNobelAPIBaseURL is the public Nobel Prize API v2.1 root.
const DefaultNobelAPIBaseURL = "http://api.nobelprize.org/2.1"

// NobelAPIConfig holds settings for the upstream Nobel Prize API client.
type NobelAPIConfig struct {
	BaseURL string
	// TimeoutSec bounds a single upstream call. Zero means no timeout.
	TimeoutSec int
}

// Timeout returns the configured upstream timeout, zero when unbounded.
func (c NobelAPIConfig) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at start-up and then passed
// explicitly to the components that need it.
type AppConfig struct {
	AppHost        string
	Port           string
	APIPrefix      string
	BodyLimitBytes int
	LogTimezone    string
	MetricsEnabled bool
	NobelAPI       NobelAPIConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	port := getEnv("PORT", "8000")
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:"+port),
		Port:           port,
		APIPrefix:      normalizePrefix(getEnv("API_PREFIX", "/api")),
		BodyLimitBytes: getEnvInt("BODY_LIMIT_BYTES", 100*1024),
		LogTimezone:    getEnv("LOG_TIMEZONE", "UTC"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		NobelAPI: NobelAPIConfig{
			BaseURL:    strings.TrimRight(getEnv("NOBEL_API_BASE_URL", DefaultNobelAPIBaseURL), "/"),
			TimeoutSec: getEnvInt("NOBEL_API_TIMEOUT_SEC", 0),
		},
	}
}

// Location resolves LogTimezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.LogTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func normalizePrefix(p string) string {
	p = "/" + strings.Trim(p, "/")
	if p == "/" {
		return ""
	}
	return p
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
