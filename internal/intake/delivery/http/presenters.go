package http

import (
	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/internal/model"
)

type messageReq struct {
	Text string `json:"text"`
}

type submittedResp struct {
	RequestID      string        `json:"request_id,omitempty"`
	Specialty      string        `json:"specialty,omitempty"`
	Priority       string        `json:"priority,omitempty"`
	Status         string        `json:"status,omitempty"`
	AssignedVendor *model.Vendor `json:"assigned_vendor,omitempty"`
	Failed         bool          `json:"failed"`
}

type turnResp struct {
	State   string         `json:"state"`
	Step    string         `json:"step,omitempty"`
	Message string         `json:"message"`
	Options []string       `json:"options"`
	Request *submittedResp `json:"request,omitempty"`
}

func newTurnResp(out intake.Output) turnResp {
	resp := turnResp{
		State:   string(out.State),
		Step:    string(out.Step),
		Message: out.Message,
		Options: out.Options,
	}
	if resp.Options == nil {
		resp.Options = []string{}
	}
	if r := out.Request; r != nil {
		resp.Request = &submittedResp{
			RequestID:      r.RequestID,
			Specialty:      string(r.Classification.Specialty),
			Priority:       string(r.Classification.Priority),
			Status:         string(r.Status),
			AssignedVendor: r.Vendor,
			Failed:         r.Failed,
		}
	}
	return resp
}

type sessionResp struct {
	SessionID string                    `json:"session_id"`
	State     string                    `json:"state"`
	Step      string                    `json:"step,omitempty"`
	Draft     *model.MaintenanceRequest `json:"draft,omitempty"`
	Identity  model.Session             `json:"identity"`
}

func newSessionResp(conv intake.Conversation) sessionResp {
	return sessionResp{
		SessionID: conv.SessionID,
		State:     string(conv.State),
		Step:      string(conv.Step),
		Draft:     conv.Draft,
		Identity:  conv.Session,
	}
}
