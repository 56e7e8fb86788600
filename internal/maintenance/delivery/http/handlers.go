package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/internal/triage"
	"tenant-maintenance-assistant/pkg/response"
)

// Triage godoc
// @Summary     Triage a maintenance request
// @Description Classifies the request, records it and auto-dispatches a vendor for High and Urgent priorities.
// @Tags        Triage
// @Accept      json
// @Produce     json
// @Param       body body triageReq true "Maintenance request"
// @Success     200 {object} triageResp
// @Failure     400 {object} triageErrResp "Invalid description or tenant"
// @Failure     502 {object} triageErrResp "Classification service unavailable"
// @Failure     503 {object} triageErrResp "Vendor registry unavailable"
// @Failure     500 {object} triageErrResp "Internal Server Error"
// @Router      /api/v1/triage [POST]
func (h *handler) Triage(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processTriageReq(c)
	if err != nil {
		status, msg := h.triageStatus(err)
		if status == http.StatusInternalServerError {
			status, msg = http.StatusBadRequest, "invalid request body"
		}
		c.JSON(status, triageErrResp{Error: msg})
		return
	}

	output, err := h.uc.Triage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Triage: %v", err)
		status, msg := h.triageStatus(err)
		c.JSON(status, triageErrResp{Error: msg, RequestID: output.RequestID})
		return
	}

	c.JSON(http.StatusOK, newTriageResp(output))
}

// Detail godoc
// @Summary     Get a maintenance request
// @Description Returns one recorded request of the tenant given in X-Tenant-ID.
// @Tags        Triage
// @Produce     json
// @Param       X-Tenant-ID header string true "Tenant ID"
// @Param       id path string true "Request ID"
// @Success     200 {object} requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/requests/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	rec, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRequestResp(rec))
}

// FollowUp godoc
// @Summary     Ask a clarifying question
// @Description Drafts one clarifying question about a free-text issue. Falls back to a static question.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body followUpReq true "Issue and prior turns"
// @Success     200 {object} followUpResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/follow-up [POST]
func (h *handler) FollowUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req followUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.classifier.FollowUp(ctx, triage.FollowUpInput{Description: req.Description, History: req.History})
	if err != nil {
		h.l.Errorf(ctx, "uc.FollowUp: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, followUpResp{Question: out.Question, Generated: out.Generated})
}
