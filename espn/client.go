// Package espn is the shared plumbing for the per-sport clients: the two
// upstream hosts, the GET transport, and the declarative response projection
// that turns raw provider documents into stable per-operation shapes.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"espn-sports-client/internal/logging"
	"espn-sports-client/pkg/metrics"
)

// Config controls how the client reaches the upstream hosts. The zero value
// is usable: real hosts, default timeout, no logging, no metrics.
type Config struct {
	CDNBaseURL string
	APIBaseURL string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *zerolog.Logger
	Clock      clockwork.Clock
	Metrics    *metrics.Recorder
}

// Client issues one GET per operation and decodes the JSON body. It holds no
// mutable state, so concurrent use needs no coordination.
type Client struct {
	cdnBase    string
	apiBase    string
	userAgent  string
	httpClient httpDoer
	log        zerolog.Logger
	clock      clockwork.Clock
	rec        *metrics.Recorder
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		cdnBase:    normalizeBaseURL(cfg.CDNBaseURL, defaultCDNBaseURL),
		apiBase:    normalizeBaseURL(cfg.APIBaseURL, defaultAPIBaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		log:        resolveLogger(cfg.Logger),
		clock:      resolveClock(cfg.Clock),
		rec:        cfg.Metrics,
	}
}

// Now exposes the injected clock so parameter defaults (current standings
// year) stay deterministic under test.
func (c *Client) Now() time.Time {
	return c.clock.Now()
}

// Metrics returns the recorder this client reports to, nil when unset.
func (c *Client) Metrics() *metrics.Recorder {
	return c.rec
}

// Fetch resolves the endpoint against its host, issues the GET and decodes
// the body. Any transport failure is returned before projection can run.
func (c *Client) Fetch(ctx context.Context, ep Endpoint, params url.Values) (Document, error) {
	req, err := c.buildRequest(ctx, ep, params)
	if err != nil {
		return nil, err
	}

	callID := uuid.NewString()
	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := c.clock.Since(start)

	if err != nil {
		c.rec.RecordFetch(ep.Operation, elapsed, err)
		c.logFetch(ep, callID, 0, elapsed, err)
		return nil, fmt.Errorf("espn: %s request failed: %w", ep.Operation, err)
	}
	defer resp.Body.Close()

	c.logFetch(ep, callID, resp.StatusCode, elapsed, nil)

	if resp.StatusCode == http.StatusTooManyRequests {
		rlErr := &RateLimitError{
			Operation:  ep.Operation,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
		c.rec.RecordRateLimit(ep.Operation, rlErr.RetryAfter)
		c.rec.RecordFetch(ep.Operation, elapsed, rlErr)
		return nil, rlErr
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		upErr := &UpstreamError{
			Operation:  ep.Operation,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
		c.rec.RecordFetch(ep.Operation, elapsed, upErr)
		return nil, upErr
	}

	var doc Document
	if decodeErr := json.NewDecoder(resp.Body).Decode(&doc); decodeErr != nil {
		c.rec.RecordFetch(ep.Operation, elapsed, decodeErr)
		return nil, fmt.Errorf("espn: %s decoding response: %w", ep.Operation, decodeErr)
	}

	c.rec.RecordFetch(ep.Operation, elapsed, nil)
	return doc, nil
}

func (c *Client) buildRequest(ctx context.Context, ep Endpoint, params url.Values) (*http.Request, error) {
	base := c.apiBase
	if ep.Host == HostCDN {
		base = c.cdnBase
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+ep.Path, nil)
	if err != nil {
		return nil, fmt.Errorf("espn: %s building request: %w", ep.Operation, err)
	}

	if q := ep.query(params); len(q) > 0 {
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) logFetch(ep Endpoint, callID string, status int, elapsed time.Duration, err error) {
	evt := c.log.Debug()
	if err != nil {
		evt = c.log.Warn().Err(err)
	}
	evt.
		Str(logging.FieldOperation, ep.Operation).
		Str(logging.FieldCallID, callID).
		Int(logging.FieldStatus, status).
		Dur(logging.FieldDuration, elapsed).
		Msg("upstream fetch")
}
