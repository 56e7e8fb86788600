package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "tenant-maintenance-assistant/internal/maintenance/repository"
	"tenant-maintenance-assistant/internal/model"
)

// CreateRequest inserts a New request row and returns the stored record.
func (r *implRepository) CreateRequest(ctx context.Context, sc model.Scope, opt repo.CreateRequestOptions) (model.RequestRecord, error) {
	rec := model.RequestRecord{
		ID:                opt.ID,
		TenantID:          sc.TenantID,
		PropertyID:        sc.PropertyID,
		TenantName:        opt.TenantName,
		UnitNumber:        opt.UnitNumber,
		ContactInfo:       opt.ContactInfo,
		Title:             opt.Title,
		Description:       opt.Description,
		RequestType:       opt.RequestType,
		Priority:          opt.Priority,
		Status:            model.StatusNew,
		MediaURL:          opt.MediaURL,
		PermissionToEnter: opt.PermissionToEnter,
		Notes:             opt.Notes,
	}

	err := r.db.QueryRowContext(ctx, createRequestQuery,
		opt.ID, sc.TenantID, sc.PropertyID, opt.TenantName, opt.UnitNumber, opt.ContactInfo,
		opt.Title, opt.Description, string(opt.RequestType), string(opt.Priority),
		opt.MediaURL, opt.PermissionToEnter, opt.Notes,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.RequestRecord{}, repo.ErrFailedToInsert
	}
	return rec, nil
}

// GetRequest loads one request of the scoped tenant.
func (r *implRepository) GetRequest(ctx context.Context, sc model.Scope, id string) (model.RequestRecord, error) {
	var (
		rec              model.RequestRecord
		requestType      string
		priority, status string
	)
	err := r.db.QueryRowContext(ctx, getRequestQuery, id, sc.TenantID).Scan(
		&rec.ID, &rec.TenantID, &rec.PropertyID, &rec.TenantName, &rec.UnitNumber, &rec.ContactInfo,
		&rec.Title, &rec.Description, &requestType, &priority, &status,
		&rec.AssignedTo, &rec.AssignedVendorEmail,
		&rec.MediaURL, &rec.PermissionToEnter, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RequestRecord{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRequest"), err)
		return model.RequestRecord{}, repo.ErrFailedToGet
	}

	rec.RequestType = model.Specialty(requestType)
	rec.Priority = model.Priority(priority)
	rec.Status = model.RequestStatus(status)
	return rec, nil
}
