package middleware

import (
	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/pkg/response"
)

// RateLimit throttles per client IP. It is a no-op when rate limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if !m.limiter.Allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s throttled on %s", c.ClientIP(), c.Request.URL.Path)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
