package ratelimit

import "time"

// RateLimitConfig carries the per-window scan limits for the gate endpoint.
// A zero limit disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

// GateKey builds the limiter key for a gate terminal. Scans are throttled
// per client IP because terminals authenticate with a shared guard token.
func GateKey(clientIP string) string {
	return "gate:" + clientIP
}
