package ratelimit

import "time"

type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// LoginLimit is applied per email address on the login endpoint.
var LoginLimit = Config{
	RequestsPerMinute: 5,
	RequestsPerHour:   30,
}

type RateLimiter interface {
	Allow(key string, cfg Config) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
