package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/internal/middleware"
	"tenant-maintenance-assistant/pkg/response"
)

// Start godoc
// @Summary     Start a conversation
// @Description Returns the greeting and puts the session back at the welcome state.
// @Tags        Chat
// @Produce     json
// @Param       X-Tenant-ID  header string true "Tenant ID"
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} turnResp
// @Failure     400 {object} response.Resp "Missing session headers"
// @Failure     503 {object} response.Resp "Session store unavailable"
// @Router      /api/v1/chat/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Start(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newTurnResp(out))
}

// Message godoc
// @Summary     Send a message
// @Description Advances the conversation by one tenant message. Empty text repeats the current prompt.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Tenant-ID  header string     true "Tenant ID"
// @Param       X-Session-ID header string     true "Session ID"
// @Param       body         body   messageReq true "Message"
// @Success     200 {object} turnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Session store unavailable"
// @Router      /api/v1/chat/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Handle(ctx, middleware.GetScope(c), intake.HandleInput{Text: req.Text})
	if err != nil && !errors.Is(err, intake.ErrEmptyInput) {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newTurnResp(out))
}

// Reset godoc
// @Summary     Reset a conversation
// @Description Forgets the conversation and the identity collected for the session.
// @Tags        Chat
// @Produce     json
// @Param       X-Tenant-ID  header string true "Tenant ID"
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Missing session headers"
// @Router      /api/v1/chat/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, middleware.GetScope(c)); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}

// Session godoc
// @Summary     Inspect a conversation
// @Description Returns the stored state, draft request and identity of the session.
// @Tags        Chat
// @Produce     json
// @Param       X-Tenant-ID  header string true "Tenant ID"
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/session [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	conv, err := h.uc.Snapshot(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Snapshot: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newSessionResp(conv))
}
