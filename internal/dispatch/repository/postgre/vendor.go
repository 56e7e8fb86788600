package postgre

import (
	"context"

	repo "tenant-maintenance-assistant/internal/dispatch/repository"
	"tenant-maintenance-assistant/internal/model"
)

// ListVendors returns active vendors of one specialty in registry order.
func (r *implRepository) ListVendors(ctx context.Context, opt repo.ListVendorsOptions) ([]model.Vendor, error) {
	rows, err := r.db.QueryContext(ctx, listVendorsQuery, string(opt.Specialty))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListVendors"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var vendors []model.Vendor
	for rows.Next() {
		var v model.Vendor
		var specialty string
		if err := rows.Scan(&v.ID, &v.Name, &specialty, &v.ContactEmail); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListVendors"), err)
			return nil, repo.ErrFailedToList
		}
		v.Specialty = model.Specialty(specialty)
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListVendors"), err)
		return nil, repo.ErrFailedToList
	}
	return vendors, nil
}
