package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Upstream SpaceX API
	SpaceXBaseURL          string        // env: SPACEX_BASE_URL
	UpstreamTimeout        time.Duration // per request, env: UPSTREAM_TIMEOUT
	UpstreamMaxConcurrency int           // in-flight lookups per request, <= 0 means unbounded
	UpstreamProbeInterval  time.Duration // 0 disables the background probe

	// Run history (optional)
	DatabaseURL string // empty disables run history

	// Rate limiting
	RateLimitMax int
	RedisURL     string // limiter storage; empty keeps counters in memory

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Tracing
	OTelEnabled  bool
	OTelEndpoint string // OTLP/HTTP endpoint; empty exports to stdout
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                    getEnv("ENV", "development"),
		ServerAddr:             getEnv("SERVER_ADDR", ":8080"),
		SpaceXBaseURL:          getEnv("SPACEX_BASE_URL", "https://api.spacexdata.com/v4"),
		UpstreamTimeout:        getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamMaxConcurrency: getInt("UPSTREAM_MAX_CONCURRENCY", 16),
		UpstreamProbeInterval:  getDuration("UPSTREAM_PROBE_INTERVAL", 30*time.Second),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		RateLimitMax:           getInt("RATE_LIMIT_MAX", 100),
		RedisURL:               getEnv("REDIS_URL", ""),
		TLSEnabled:             getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:            getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:             getEnv("TLS_KEY_FILE", ""),
		CORSOrigins:            getEnv("CORS_ORIGINS", "*"),
		OTelEnabled:            getBool("OTEL_ENABLED"),
		OTelEndpoint:           getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

// getDuration accepts Go duration strings ("15s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getBool(key string) bool {
	switch getEnv(key, "") {
	case "1", "true", "TRUE", "yes", "on":
		return true
	}
	return false
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HistoryEnabled returns true if aggregation runs should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}
