package config

const (
	envMetricsOn    = "ESPN_METRICS_ENABLED"
	envOtelEndpoint = "ESPN_OTLP_ENDPOINT"
	envOtelService  = "ESPN_OTEL_SERVICE_NAME"
	envOtelInsecure = "ESPN_OTLP_INSECURE"
)

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "espn-sports-client"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
