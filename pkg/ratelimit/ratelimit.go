package ratelimit

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	DefaultMaxKeys = 1000
	DefaultTTL     = 5 * time.Minute
)

// Limiter is a keyed token-bucket limiter. Idle keys expire so memory stays bounded.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter allowing requestsPerMin per key with a burst of a tenth of that.
func New(requestsPerMin, maxKeys int, ttl time.Duration) *Limiter {
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxKeys, nil, ttl),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(1, requestsPerMin/10),
	}
}

// Allow reports whether key may proceed now.
func (l *Limiter) Allow(key string) bool {
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
