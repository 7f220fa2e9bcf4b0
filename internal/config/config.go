// Package config resolves client settings from the environment, an optional
// .env file, and an optional YAML file. Environment variables win over file
// values; everything has a working default.
package config

// Config holds runtime configuration for the fetch CLI and client defaults.
type Config struct {
	ESPN     ESPNConfig
	Metrics  MetricsConfig
	LogLevel string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is honored when present.
func Load() Config {
	loadDotEnv()
	return Config{
		ESPN:     loadESPN(),
		Metrics:  loadMetrics(),
		LogLevel: envOrDefault(envLogLevel, defaultLogLevel),
	}
}

const (
	envLogLevel     = "ESPN_LOG_LEVEL"
	defaultLogLevel = "info"
)
