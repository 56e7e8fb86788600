package http

import (
	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/internal/middleware"
)

// RegisterRoutes maps the triage, request and assistant endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/triage", mw.RateLimit(), h.Triage)
	rg.GET("/requests/:id", h.Detail)
	rg.POST("/assistant/follow-up", mw.RateLimit(), h.FollowUp)
}
