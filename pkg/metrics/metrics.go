package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	fetches          int
	errors           int
	rateLimitHits    int
	lastRetryAfter   time.Duration
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches,
// keyed by operation (e.g. "nba.summary"). All methods are safe on a nil
// receiver so an unconfigured client costs nothing.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for one upstream call and stores the last
// observed latency.
func (r *Recorder) RecordFetch(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(operation)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordFetch(operation, duration, err)
	}
}

// RecordRateLimit tracks a 429 from upstream and the last Retry-After seen.
func (r *Recorder) RecordRateLimit(operation string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(operation)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(operation, retryAfter)
	}
}

// Fetches returns the total upstream calls recorded for an operation.
func (r *Recorder) Fetches(operation string) int {
	return r.Snapshot(operation).Fetches
}

// Errors returns the total failed calls recorded for an operation.
func (r *Recorder) Errors(operation string) int {
	return r.Snapshot(operation).Errors
}

// RateLimitHits returns the number of rate limit events seen for an operation.
func (r *Recorder) RateLimitHits(operation string) int {
	return r.Snapshot(operation).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for an operation.
func (r *Recorder) LastRetryAfter(operation string) time.Duration {
	return r.Snapshot(operation).LastRetryAfter
}

// LastFetchLatency returns the last recorded latency for an operation.
func (r *Recorder) LastFetchLatency(operation string) time.Duration {
	return r.Snapshot(operation).LastFetchLatency
}

// Snapshot is a copy of the current stats for one operation.
type Snapshot struct {
	Fetches          int
	Errors           int
	RateLimitHits    int
	LastRetryAfter   time.Duration
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(operation)
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		RateLimitHits:    stats.rateLimitHits,
		LastRetryAfter:   stats.lastRetryAfter,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

func (r *Recorder) ensureStats(operation string) *operationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok {
		stats = &operationStats{}
		r.stats[operation] = stats
	}
	return stats
}

func (r *Recorder) snapshot(operation string) operationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[operation]; ok {
		return *stats
	}
	return operationStats{}
}
