package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	ESPN struct {
		CDNBaseURL string `yaml:"cdn_base_url"`
		APIBaseURL string `yaml:"api_base_url"`
		UserAgent  string `yaml:"user_agent"`
		Timeout    string `yaml:"timeout"`
	} `yaml:"espn"`
	Metrics struct {
		Enabled      bool   `yaml:"enabled"`
		OtlpEndpoint string `yaml:"otlp_endpoint"`
		ServiceName  string `yaml:"service_name"`
		OtlpInsecure *bool  `yaml:"otlp_insecure"`
	} `yaml:"metrics"`
	LogLevel string `yaml:"log_level"`
}

// LoadFile reads a YAML config file and layers the environment on top, so
// variables still win over file values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg := Load()
	if cfg.ESPN.CDNBaseURL == "" {
		cfg.ESPN.CDNBaseURL = fc.ESPN.CDNBaseURL
	}
	if cfg.ESPN.APIBaseURL == "" {
		cfg.ESPN.APIBaseURL = fc.ESPN.APIBaseURL
	}
	if cfg.ESPN.UserAgent == "" {
		cfg.ESPN.UserAgent = fc.ESPN.UserAgent
	}
	if os.Getenv(envTimeout) == "" && fc.ESPN.Timeout != "" {
		if d, err := time.ParseDuration(fc.ESPN.Timeout); err == nil && d > 0 {
			cfg.ESPN.Timeout = d
		}
	}
	if os.Getenv(envMetricsOn) == "" {
		cfg.Metrics.Enabled = fc.Metrics.Enabled
	}
	if cfg.Metrics.OtlpEndpoint == "" {
		cfg.Metrics.OtlpEndpoint = fc.Metrics.OtlpEndpoint
	}
	if os.Getenv(envOtelService) == "" && fc.Metrics.ServiceName != "" {
		cfg.Metrics.ServiceName = fc.Metrics.ServiceName
	}
	if os.Getenv(envOtelInsecure) == "" && fc.Metrics.OtlpInsecure != nil {
		cfg.Metrics.OtlpInsecure = *fc.Metrics.OtlpInsecure
	}
	if os.Getenv(envLogLevel) == "" && fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return cfg, nil
}
