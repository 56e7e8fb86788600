package model

import "time"

// Specialty is the trade category of a request or vendor.
type Specialty string

const (
	SpecialtyPlumbing   Specialty = "Plumbing"
	SpecialtyElectrical Specialty = "Electrical"
	SpecialtyHVAC       Specialty = "HVAC"
	SpecialtyGeneral    Specialty = "General"
)

// Specialties lists every allowed Specialty.
var Specialties = []Specialty{SpecialtyPlumbing, SpecialtyElectrical, SpecialtyHVAC, SpecialtyGeneral}

// Valid reports whether s is one of the allowed specialties.
func (s Specialty) Valid() bool {
	for _, v := range Specialties {
		if s == v {
			return true
		}
	}
	return false
}

// Priority is the triage urgency of a request.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// Priorities lists every allowed Priority.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is one of the allowed priorities.
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// Escalated reports whether p warrants automatic vendor dispatch.
func (p Priority) Escalated() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

// RequestStatus is the lifecycle status of a stored request.
type RequestStatus string

const (
	StatusNew       RequestStatus = "New"
	StatusScheduled RequestStatus = "Scheduled"
)

// NoFurtherDetail is recorded when the tenant gives no description beyond the issue type.
const NoFurtherDetail = "No further detail provided"

// MaintenanceRequest is the structured complaint produced by the conversation.
type MaintenanceRequest struct {
	TenantName          string `json:"tenant_name"`
	UnitNumber          string `json:"unit_number"`
	ContactInfo         string `json:"contact_info"`
	IssueType           string `json:"issue_type"`
	Description         string `json:"description"`
	SelfReportedUrgency bool   `json:"self_reported_urgency"`
}

// ReadyForTriage reports whether the request carries what classification needs.
func (r MaintenanceRequest) ReadyForTriage() bool {
	return r.IssueType != "" && r.Description != ""
}

// UrgencyHint renders the self-reported urgency as the hint the classifier understands.
func (r MaintenanceRequest) UrgencyHint() string {
	if r.SelfReportedUrgency {
		return UrgencyHigh
	}
	return UrgencyLow
}

// Tenant urgency hints accepted by triage.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// Classification is the triage outcome for one request.
type Classification struct {
	Specialty Specialty `json:"specialty"`
	Priority  Priority  `json:"priority"`
}

// Vendor is read-only registry data.
type Vendor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Specialty    Specialty `json:"specialty"`
	ContactEmail string    `json:"contact_email"`
}

// DispatchResult is the dispatch outcome. Status is Scheduled exactly when AssignedVendor is set;
// build it with NewDispatchResult or ScheduledWith.
type DispatchResult struct {
	Status         RequestStatus `json:"status"`
	AssignedVendor *Vendor       `json:"assigned_vendor,omitempty"`
}

// NewDispatchResult is the unassigned result.
func NewDispatchResult() DispatchResult {
	return DispatchResult{Status: StatusNew}
}

// ScheduledWith is the result of a successful claim by v.
func ScheduledWith(v Vendor) DispatchResult {
	return DispatchResult{Status: StatusScheduled, AssignedVendor: &v}
}

// RequestRecord is the stored maintenance request row.
type RequestRecord struct {
	ID                  string
	TenantID            string
	PropertyID          string
	TenantName          string
	UnitNumber          string
	ContactInfo         string
	Title               string
	Description         string
	RequestType         Specialty
	Priority            Priority
	Status              RequestStatus
	AssignedTo          string
	AssignedVendorEmail string
	MediaURL            string
	PermissionToEnter   bool
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
