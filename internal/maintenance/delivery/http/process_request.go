package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/internal/middleware"
	"tenant-maintenance-assistant/internal/model"
)

// processTriageReq binds the triage body. tenant_id falls back to the X-Tenant-ID header
// and a missing tenant_urgency counts as medium.
func (h *handler) processTriageReq(c *gin.Context) (triageReq, model.Scope, error) {
	var req triageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	if strings.TrimSpace(req.TenantUrgency) == "" {
		req.TenantUrgency = model.UrgencyMedium
	}

	sc := middleware.GetScope(c)
	if req.TenantID == "" {
		req.TenantID = sc.TenantID
	}
	if req.PropertyID != "" {
		sc.PropertyID = req.PropertyID
	}
	sc.TenantID = req.TenantID
	sc.Channel = model.ChannelAPI
	return req, sc, req.validate()
}

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc := middleware.GetScope(c)
	if sc.TenantID == "" {
		return sc, errMissingTenant
	}
	return sc, nil
}
