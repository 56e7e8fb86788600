package repository

import (
	"context"

	"tenant-maintenance-assistant/internal/model"
)

// Repository is the composed interface for the maintenance domain data store.
type Repository interface {
	RequestRepository
}

// RequestRepository stores maintenance request rows.
type RequestRepository interface {
	CreateRequest(ctx context.Context, sc model.Scope, opt CreateRequestOptions) (model.RequestRecord, error)
	// GetRequest returns a zero RequestRecord (ID == "") when no row matches.
	GetRequest(ctx context.Context, sc model.Scope, id string) (model.RequestRecord, error)
}
