package middleware

import (
	"tenant-maintenance-assistant/config"
	"tenant-maintenance-assistant/pkg/log"
	"tenant-maintenance-assistant/pkg/ratelimit"
)

type Middleware struct {
	l       log.Logger
	limiter *ratelimit.Limiter
}

func New(l log.Logger, rl config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		mw.limiter = ratelimit.New(rl.RequestsPerMin, rl.MaxKeys, ratelimit.DefaultTTL)
	}
	return mw
}
