package middleware

import (
	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/pkg/log"
)

const (
	HeaderTenantID   = "X-Tenant-ID"
	HeaderPropertyID = "X-Property-ID"
	HeaderSessionID  = "X-Session-ID"

	scopeKey = "scope"
)

// Scope reads the tenant context headers into a model.Scope for the handlers.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			TenantID:   c.GetHeader(HeaderTenantID),
			PropertyID: c.GetHeader(HeaderPropertyID),
			SessionID:  c.GetHeader(HeaderSessionID),
			Channel:    model.ChannelWeb,
		}
		c.Set(scopeKey, sc)
		if sc.SessionID != "" {
			c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), sc.SessionID))
		}
		c.Next()
	}
}

// GetScope returns the scope set by Scope, or the zero Scope.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
