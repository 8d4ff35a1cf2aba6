package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "SERVER_ADDR", "SPACEX_BASE_URL", "UPSTREAM_TIMEOUT",
		"UPSTREAM_MAX_CONCURRENCY", "UPSTREAM_PROBE_INTERVAL", "DATABASE_URL",
		"RATE_LIMIT_MAX", "REDIS_URL", "OTEL_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.SpaceXBaseURL != "https://api.spacexdata.com/v4" {
		t.Errorf("SpaceXBaseURL = %q, want default", cfg.SpaceXBaseURL)
	}
	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":8080")
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 10s", cfg.UpstreamTimeout)
	}
	if cfg.UpstreamMaxConcurrency != 16 {
		t.Errorf("UpstreamMaxConcurrency = %d, want 16", cfg.UpstreamMaxConcurrency)
	}
	if cfg.HistoryEnabled() {
		t.Error("HistoryEnabled() should be false without DATABASE_URL")
	}
	if !cfg.IsDev() {
		t.Error("IsDev() should be true by default")
	}
	if cfg.OTelEnabled {
		t.Error("OTelEnabled should be false by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SPACEX_BASE_URL", "http://upstream.local/v4")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_MAX_CONCURRENCY", "4")
	t.Setenv("UPSTREAM_PROBE_INTERVAL", "90")
	t.Setenv("DATABASE_URL", "postgres://localhost/launchstats")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	if cfg.IsDev() {
		t.Error("IsDev() should be false in production")
	}
	if cfg.SpaceXBaseURL != "http://upstream.local/v4" {
		t.Errorf("SpaceXBaseURL = %q", cfg.SpaceXBaseURL)
	}
	if cfg.UpstreamTimeout != 3*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 3s", cfg.UpstreamTimeout)
	}
	if cfg.UpstreamMaxConcurrency != 4 {
		t.Errorf("UpstreamMaxConcurrency = %d, want 4", cfg.UpstreamMaxConcurrency)
	}
	if cfg.UpstreamProbeInterval != 90*time.Second {
		t.Errorf("UpstreamProbeInterval = %v, want 90s", cfg.UpstreamProbeInterval)
	}
	if !cfg.HistoryEnabled() {
		t.Error("HistoryEnabled() should be true with DATABASE_URL")
	}
	if !cfg.OTelEnabled {
		t.Error("OTelEnabled should be true")
	}
}

func TestGetDuration_Invalid(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")
	if got := getDuration("UPSTREAM_TIMEOUT", time.Minute); got != time.Minute {
		t.Errorf("getDuration() = %v, want fallback 1m", got)
	}
}

func TestLoadYAMLConfig_Missing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	y, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("LoadYAMLConfig() error = %v", err)
	}
	if y != nil {
		t.Errorf("LoadYAMLConfig() = %+v, want nil", y)
	}
	// Applying a nil file is a no-op.
	cfg := &Config{SpaceXBaseURL: "unchanged"}
	if err := y.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if cfg.SpaceXBaseURL != "unchanged" {
		t.Errorf("SpaceXBaseURL = %q, want unchanged", cfg.SpaceXBaseURL)
	}
}

func TestLoadYAMLConfig_Apply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
upstream:
  base_url: http://mirror.local/v4
  timeout: 2s
  max_concurrency: 0
  probe_interval: 0s
server:
  addr: ":9000"
  rate_limit_max: 10
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	y, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("LoadYAMLConfig() error = %v", err)
	}

	cfg := &Config{
		SpaceXBaseURL:          "https://api.spacexdata.com/v4",
		UpstreamMaxConcurrency: 16,
		UpstreamProbeInterval:  30 * time.Second,
		CORSOrigins:            "*",
		RateLimitMax:           100,
	}
	if err := y.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if cfg.SpaceXBaseURL != "http://mirror.local/v4" {
		t.Errorf("SpaceXBaseURL = %q", cfg.SpaceXBaseURL)
	}
	if cfg.UpstreamTimeout != 2*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 2s", cfg.UpstreamTimeout)
	}
	if cfg.UpstreamMaxConcurrency != 0 {
		t.Errorf("UpstreamMaxConcurrency = %d, want 0", cfg.UpstreamMaxConcurrency)
	}
	if cfg.UpstreamProbeInterval != 0 {
		t.Errorf("UpstreamProbeInterval = %v, want 0", cfg.UpstreamProbeInterval)
	}
	if cfg.ServerAddr != ":9000" {
		t.Errorf("ServerAddr = %q, want :9000", cfg.ServerAddr)
	}
	if cfg.RateLimitMax != 10 {
		t.Errorf("RateLimitMax = %d, want 10", cfg.RateLimitMax)
	}
	if cfg.CORSOrigins != "*" {
		t.Errorf("CORSOrigins = %q, want untouched", cfg.CORSOrigins)
	}
}

func TestLoadYAMLConfig_BadDuration(t *testing.T) {
	y := &YAMLConfig{Upstream: UpstreamConfig{Timeout: "fast"}}
	if err := y.Apply(&Config{}); err == nil {
		t.Error("Apply() expected error for invalid timeout")
	}
}
