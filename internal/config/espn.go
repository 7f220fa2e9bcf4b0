package config

import "time"

const (
	envCDNBaseURL = "ESPN_CDN_BASE_URL"
	envAPIBaseURL = "ESPN_API_BASE_URL"
	envUserAgent  = "ESPN_USER_AGENT"
	envTimeout    = "ESPN_HTTP_TIMEOUT"

	defaultTimeout = 15 * time.Second
)

// ESPNConfig controls how we talk to the upstream hosts. Empty base URLs
// mean the client's built-in defaults.
type ESPNConfig struct {
	CDNBaseURL string
	APIBaseURL string
	UserAgent  string
	Timeout    time.Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		CDNBaseURL: envOrDefault(envCDNBaseURL, ""),
		APIBaseURL: envOrDefault(envAPIBaseURL, ""),
		UserAgent:  envOrDefault(envUserAgent, ""),
		Timeout:    durationEnvOrDefault(envTimeout, defaultTimeout),
	}
}
