package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the optional config.yaml file.
// Values set in the file override the environment.
type YAMLConfig struct {
	Upstream UpstreamConfig `yaml:"upstream"`
	Server   ServerConfig   `yaml:"server"`
}

// UpstreamConfig defines how the SpaceX API is reached.
type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	Timeout        string `yaml:"timeout"`         // Go duration, e.g. "5s"
	MaxConcurrency *int   `yaml:"max_concurrency"` // nil keeps the env value
	ProbeInterval  string `yaml:"probe_interval"`  // "0s" disables the probe
}

// ServerConfig defines listener and middleware settings.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	CORSOrigins  string `yaml:"cors_origins"`
	RateLimitMax *int   `yaml:"rate_limit_max"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply overrides cfg with every value set in the YAML file.
func (y *YAMLConfig) Apply(cfg *Config) error {
	if y == nil {
		return nil
	}

	if y.Upstream.BaseURL != "" {
		cfg.SpaceXBaseURL = y.Upstream.BaseURL
	}
	if y.Upstream.Timeout != "" {
		d, err := time.ParseDuration(y.Upstream.Timeout)
		if err != nil {
			return err
		}
		cfg.UpstreamTimeout = d
	}
	if y.Upstream.MaxConcurrency != nil {
		cfg.UpstreamMaxConcurrency = *y.Upstream.MaxConcurrency
	}
	if y.Upstream.ProbeInterval != "" {
		d, err := time.ParseDuration(y.Upstream.ProbeInterval)
		if err != nil {
			return err
		}
		cfg.UpstreamProbeInterval = d
	}

	if y.Server.Addr != "" {
		cfg.ServerAddr = y.Server.Addr
	}
	if y.Server.CORSOrigins != "" {
		cfg.CORSOrigins = y.Server.CORSOrigins
	}
	if y.Server.RateLimitMax != nil {
		cfg.RateLimitMax = *y.Server.RateLimitMax
	}
	return nil
}
