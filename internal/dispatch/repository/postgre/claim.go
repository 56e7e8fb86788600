package postgre

import (
	"context"

	repo "tenant-maintenance-assistant/internal/dispatch/repository"
	"tenant-maintenance-assistant/internal/model"
)

// ClaimRequest assigns opt.Vendor when the request is still claimable.
func (r *implRepository) ClaimRequest(ctx context.Context, sc model.Scope, opt repo.ClaimRequestOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx, claimRequestQuery,
		opt.Vendor.Name, opt.Vendor.ContactEmail, opt.Notes, opt.RequestID, sc.TenantID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClaimRequest"), err)
		return false, repo.ErrFailedToClaim
	}

	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("ClaimRequest"), err)
		return false, repo.ErrFailedToClaim
	}
	return n == 1, nil
}
