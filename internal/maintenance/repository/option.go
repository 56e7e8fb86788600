package repository

import "tenant-maintenance-assistant/internal/model"

// CreateRequestOptions holds the columns of a new request row. Status is always New.
type CreateRequestOptions struct {
	ID                string
	TenantName        string
	UnitNumber        string
	ContactInfo       string
	Title             string
	Description       string
	RequestType       model.Specialty
	Priority          model.Priority
	MediaURL          string
	PermissionToEnter bool
	Notes             string
}
