package notification

import (
	"time"

	"tenant-maintenance-assistant/internal/model"
)

// Notice is what staff learn about a request.
type Notice struct {
	RequestID      string
	TenantName     string
	UnitNumber     string
	ContactInfo    string
	IssueType      string
	Description    string
	Classification model.Classification
	Vendor         *model.Vendor
	SubmittedAt    time.Time
}

// Urgent reports whether the notice is flagged as urgent to staff.
func (n Notice) Urgent() bool {
	return n.Classification.Priority.Escalated()
}
