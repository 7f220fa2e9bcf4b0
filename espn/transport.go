package espn

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveClock(clock clockwork.Clock) clockwork.Clock {
	if clock != nil {
		return clock
	}
	return clockwork.NewRealClock()
}

func resolveLogger(logger *zerolog.Logger) zerolog.Logger {
	if logger != nil {
		return *logger
	}
	return zerolog.Nop()
}

func resolveUserAgent(ua string) string {
	if ua != "" {
		return ua
	}
	return defaultUserAgent
}

const (
	defaultCDNBaseURL  = "https://cdn.espn.com"
	defaultAPIBaseURL  = "https://site.api.espn.com"
	defaultUserAgent   = "espn-sports-client/1.0"
	defaultHTTPTimeout = 15 * time.Second

	// maxErrorBody caps how much of an error response is carried in the
	// returned error.
	maxErrorBody = 512
)
