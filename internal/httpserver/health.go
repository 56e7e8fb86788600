package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Tenant Maintenance Assistant API"
	HealthVersion = "1.0.0"
	ServiceName   = "tenant-maintenance-assistant"

	readyTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only when Postgres and Redis answer a ping.
// @Summary Readiness Check
// @Description Check that the request store and the session store are reachable
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := gin.H{}
	ready := true
	if srv.postgresDB != nil {
		checks["postgres"] = "ok"
		if err := srv.postgresDB.PingContext(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck postgres: %v", err)
			checks["postgres"] = "down"
			ready = false
		}
	}
	if srv.redis != nil {
		checks["redis"] = "ok"
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck redis: %v", err)
			checks["redis"] = "down"
			ready = false
		}
	}

	status := "ready"
	if !ready {
		status = "not_ready"
	}
	body := gin.H{
		"status":  status,
		"checks":  checks,
		"version": HealthVersion,
		"service": ServiceName,
	}
	if !ready {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Service not ready",
			Data:      body,
		})
		return
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
