package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryableStatus(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
	}{
		{200, false},
		{400, false},
		{404, false},
		{429, true},
		{500, true},
		{502, true},
		{504, true},
		{599, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.retryable, IsRetryableStatus(tt.status), "status %d", tt.status)
	}
}

func TestBackoffGrowsAndCaps(t *testing.T) {
	cfg := Config{InitialBackoffMs: 100, MaxBackoffMs: 500}

	b0 := Backoff(0, cfg)
	assert.GreaterOrEqual(t, b0, 100*time.Millisecond)
	assert.Less(t, b0, 126*time.Millisecond) // 100ms + up to 25% jitter

	b1 := Backoff(1, cfg)
	assert.GreaterOrEqual(t, b1, 200*time.Millisecond)

	// Attempt 5 would be 3200ms uncapped; the cap plus jitter bounds it.
	b5 := Backoff(5, cfg)
	assert.LessOrEqual(t, b5, 625*time.Millisecond)
}

func TestRateLimitBackoffHonorsRetryAfter(t *testing.T) {
	cfg := DefaultConfig()

	b := RateLimitBackoff(0, cfg, "2")
	assert.GreaterOrEqual(t, b, 2*time.Second)
	assert.Less(t, b, 3*time.Second)
}

func TestRateLimitBackoffIgnoresBadRetryAfter(t *testing.T) {
	cfg := Config{InitialBackoffMs: 100, MaxBackoffMs: 10000}

	b := RateLimitBackoff(1, cfg, "soon")
	// 3x curve: 100 * 3^1 = 300ms, plus jitter.
	assert.GreaterOrEqual(t, b, 300*time.Millisecond)
	assert.Less(t, b, 376*time.Millisecond)
}

func TestLimiterThrottlePaces(t *testing.T) {
	l := NewLimiter(Config{RequestsPerSecond: 100})

	start := time.Now()
	l.Throttle()
	l.Throttle()
	l.Throttle()
	elapsed := time.Since(start)

	// Three calls at 100 rps need at least two 10ms gaps.
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestFetchRetryErrorMessage(t *testing.T) {
	err := &FetchRetryError{URL: "https://wttr.in/Sibasa", Attempts: 4, LastStatus: 503}
	assert.Contains(t, err.Error(), "https://wttr.in/Sibasa")
	assert.Contains(t, err.Error(), "4 attempts")
	assert.Contains(t, err.Error(), "503")
}
