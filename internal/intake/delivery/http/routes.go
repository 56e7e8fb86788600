package http

import (
	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. Session and tenant come from the
// X-Session-ID and X-Tenant-ID headers.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("/start", h.Start)
		chat.POST("/message", mw.RateLimit(), h.Message)
		chat.POST("/reset", h.Reset)
		chat.GET("/session", h.Session)
	}
}
