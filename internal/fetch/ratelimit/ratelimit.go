// Package ratelimit provides request pacing and retry/backoff policy for
// outbound fetches to third-party services.
package ratelimit

import (
	"sync"
	"time"
)

// Config holds outbound rate limiting configuration.
type Config struct {
	RequestsPerSecond int `json:"requestsPerSecond"`
	MaxRetries        int `json:"maxRetries"`
	InitialBackoffMs  int `json:"initialBackoffMs"`
	MaxBackoffMs      int `json:"maxBackoffMs"`
}

// DefaultConfig returns conservative defaults suitable for public weather
// endpoints.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 2,
		MaxRetries:        3,
		InitialBackoffMs:  100,
		MaxBackoffMs:      30000,
	}
}

// Limiter enforces a minimum interval between requests.
type Limiter struct {
	mu          sync.Mutex
	config      Config
	lastRequest time.Time
}

// NewLimiter creates a limiter with the given config.
func NewLimiter(config Config) *Limiter {
	return &Limiter{config: config}
}

// Throttle blocks until the next request is allowed.
func (l *Limiter) Throttle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	minInterval := time.Second / time.Duration(l.config.RequestsPerSecond)
	if wait := minInterval - time.Since(l.lastRequest); wait > 0 {
		time.Sleep(wait)
	}
	l.lastRequest = time.Now()
}

// Reset clears the limiter state.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastRequest = time.Time{}
}
