package maintenance

import (
	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/internal/triage"
)

// TriageInput is one maintenance request to triage.
type TriageInput struct {
	Description       string
	IssueType         string
	MediaURL          string
	TenantUrgency     string
	PermissionToEnter bool

	TenantName  string
	UnitNumber  string
	ContactInfo string
}

// FromRequest builds a TriageInput from a request collected by the conversation.
func FromRequest(r model.MaintenanceRequest) TriageInput {
	return TriageInput{
		Description:   r.Description,
		IssueType:     r.IssueType,
		TenantUrgency: r.UrgencyHint(),
		TenantName:    r.TenantName,
		UnitNumber:    r.UnitNumber,
		ContactInfo:   r.ContactInfo,
	}
}

// TriageOutput is the pipeline result.
type TriageOutput struct {
	RequestID      string
	Classification model.Classification
	Source         triage.Source
	Result         model.DispatchResult
}
