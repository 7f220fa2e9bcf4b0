package espn

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// UpstreamError captures a non-2xx response from the provider.
type UpstreamError struct {
	Operation  string
	URL        string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("espn: %s returned status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// RateLimitError is the 429 case, with the parsed Retry-After when the
// provider sent one. No retry is performed; callers decide.
type RateLimitError struct {
	Operation  string
	StatusCode int
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("espn: %s rate limited (status=%d, retry after %s)", e.Operation, e.StatusCode, e.RetryAfter)
	}
	return fmt.Sprintf("espn: %s rate limited (status=%d)", e.Operation, e.StatusCode)
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// parseRetryAfter handles the delay-seconds form of the Retry-After header.
// The HTTP-date form is rare enough upstream that it is treated as absent.
func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
