package repository

import "tenant-maintenance-assistant/internal/model"

// ListVendorsOptions filters the vendor registry.
type ListVendorsOptions struct {
	Specialty model.Specialty
}

// ClaimRequestOptions holds parameters for the conditional assignment.
type ClaimRequestOptions struct {
	RequestID string
	Vendor    model.Vendor
	Notes     string
}
