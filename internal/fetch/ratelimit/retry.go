package ratelimit

import (
	"math"
	"math/rand"
	"strconv"
	"time"
)

// FetchRetryError reports that all retry attempts for a URL are exhausted.
type FetchRetryError struct {
	URL        string
	Attempts   int
	LastStatus int
	LastError  error
}

func (e *FetchRetryError) Error() string {
	msg := "failed to fetch " + e.URL + " after " + strconv.Itoa(e.Attempts) + " attempts"
	if e.LastStatus != 0 {
		msg += " (HTTP " + strconv.Itoa(e.LastStatus) + ")"
	}
	if e.LastError != nil {
		msg += ": " + e.LastError.Error()
	}
	return msg
}

func (e *FetchRetryError) Unwrap() error {
	return e.LastError
}

// IsRetryableStatus reports whether an HTTP status is worth retrying:
// 429 and 5xx.
func IsRetryableStatus(status int) bool {
	return status == 429 || (status >= 500 && status < 600)
}

// Backoff computes the exponential backoff delay for an attempt, with 0-25%
// jitter.
func Backoff(attempt int, config Config) time.Duration {
	delay := float64(config.InitialBackoffMs) * math.Pow(2, float64(attempt))
	delay = math.Min(delay, float64(config.MaxBackoffMs))
	jitter := rand.Float64() * 0.25 * delay
	return time.Duration(delay+jitter) * time.Millisecond
}

// RateLimitBackoff computes the delay after an HTTP 429. A server-provided
// Retry-After wins; otherwise a steeper 3x exponential curve applies.
func RateLimitBackoff(attempt int, config Config, retryAfter string) time.Duration {
	if retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
			return time.Duration(seconds)*time.Second + time.Duration(rand.Intn(1000))*time.Millisecond
		}
	}

	delay := float64(config.InitialBackoffMs) * math.Pow(3, float64(attempt))
	delay = math.Min(delay, float64(config.MaxBackoffMs))
	jitter := rand.Float64() * 0.25 * delay
	return time.Duration(delay+jitter) * time.Millisecond
}
