package repository

import (
	"context"

	"tenant-maintenance-assistant/internal/model"
)

// Repository is the composed interface for the dispatch data store.
type Repository interface {
	VendorRepository
	ClaimRepository
}

// VendorRepository reads the vendor registry.
type VendorRepository interface {
	ListVendors(ctx context.Context, opt ListVendorsOptions) ([]model.Vendor, error)
}

// ClaimRepository records vendor assignments.
type ClaimRepository interface {
	// ClaimRequest assigns the vendor only if the request is still New and unassigned.
	// It reports whether this call won the claim.
	ClaimRequest(ctx context.Context, sc model.Scope, opt ClaimRequestOptions) (bool, error)
}
