package http

import (
	"strings"

	"tenant-maintenance-assistant/internal/maintenance"
	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/internal/triage"
	"tenant-maintenance-assistant/pkg/response"
)

// --- Request DTOs ---

type triageReq struct {
	Description       string `json:"description"`
	IssueType         string `json:"issue_type"`
	MediaURL          string `json:"media_url"`
	TenantUrgency     string `json:"tenant_urgency"`
	PermissionToEnter bool   `json:"permission_to_enter"`
	TenantID          string `json:"tenant_id"`
	PropertyID        string `json:"property_id"`
	TenantName        string `json:"tenant_name"`
	UnitNumber        string `json:"unit_number"`
	ContactInfo       string `json:"contact_info"`
}

func (r triageReq) validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return maintenance.ErrInvalidDescription
	}
	if strings.TrimSpace(r.TenantID) == "" {
		return errMissingTenant
	}
	return nil
}

func (r triageReq) toInput() maintenance.TriageInput {
	return maintenance.TriageInput{
		Description:       r.Description,
		IssueType:         r.IssueType,
		MediaURL:          r.MediaURL,
		TenantUrgency:     r.TenantUrgency,
		PermissionToEnter: r.PermissionToEnter,
		TenantName:        r.TenantName,
		UnitNumber:        r.UnitNumber,
		ContactInfo:       r.ContactInfo,
	}
}

type followUpReq struct {
	Description string        `json:"description" binding:"required"`
	History     []triage.Turn `json:"history"`
}

// --- Response DTOs ---

type triageResp struct {
	Success        bool          `json:"success"`
	RequestID      string        `json:"request_id"`
	Specialty      string        `json:"specialty"`
	Priority       string        `json:"priority"`
	Status         string        `json:"status"`
	AssignedVendor *model.Vendor `json:"assigned_vendor,omitempty"`
}

func newTriageResp(out maintenance.TriageOutput) triageResp {
	return triageResp{
		Success:        true,
		RequestID:      out.RequestID,
		Specialty:      string(out.Classification.Specialty),
		Priority:       string(out.Classification.Priority),
		Status:         string(out.Result.Status),
		AssignedVendor: out.Result.AssignedVendor,
	}
}

type triageErrResp struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type requestResp struct {
	ID                  string            `json:"id"`
	TenantID            string            `json:"tenant_id"`
	PropertyID          string            `json:"property_id,omitempty"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	RequestType         string            `json:"request_type"`
	Priority            string            `json:"priority"`
	Status              string            `json:"status"`
	AssignedTo          string            `json:"assigned_to,omitempty"`
	AssignedVendorEmail string            `json:"assigned_vendor_email,omitempty"`
	MediaURL            string            `json:"media_url,omitempty"`
	PermissionToEnter   bool              `json:"permission_to_enter"`
	Notes               string            `json:"notes"`
	CreatedAt           response.DateTime `json:"created_at"`
	UpdatedAt           response.DateTime `json:"updated_at"`
}

func newRequestResp(rec model.RequestRecord) requestResp {
	return requestResp{
		ID:                  rec.ID,
		TenantID:            rec.TenantID,
		PropertyID:          rec.PropertyID,
		Title:               rec.Title,
		Description:         rec.Description,
		RequestType:         string(rec.RequestType),
		Priority:            string(rec.Priority),
		Status:              string(rec.Status),
		AssignedTo:          rec.AssignedTo,
		AssignedVendorEmail: rec.AssignedVendorEmail,
		MediaURL:            rec.MediaURL,
		PermissionToEnter:   rec.PermissionToEnter,
		Notes:               rec.Notes,
		CreatedAt:           response.DateTime(rec.CreatedAt),
		UpdatedAt:           response.DateTime(rec.UpdatedAt),
	}
}

type followUpResp struct {
	Question  string `json:"question"`
	Generated bool   `json:"generated"`
}
