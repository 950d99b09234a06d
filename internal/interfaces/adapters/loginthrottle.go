// Package adapters bridges infrastructure services onto the small
// interfaces the application layer depends on.
package adapters

import (
	"strings"

	"github.com/linkdesk-io/linkdesk/internal/infrastructure/ratelimit"
)

// LoginThrottleAdapter keys the sliding-window limiter by email so a
// brute-force run against one account cannot lock out the rest.
type LoginThrottleAdapter struct {
	limiter ratelimit.RateLimiter
}

func NewLoginThrottleAdapter(limiter ratelimit.RateLimiter) *LoginThrottleAdapter {
	return &LoginThrottleAdapter{limiter: limiter}
}

func (a *LoginThrottleAdapter) Allow(email string) (bool, error) {
	key := "login:" + strings.ToLower(strings.TrimSpace(email))
	return a.limiter.Allow(key, ratelimit.LoginLimit)
}
