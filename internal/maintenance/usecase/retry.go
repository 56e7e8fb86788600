package usecase

import (
	"context"

	"tenant-maintenance-assistant/internal/dispatch"
	"tenant-maintenance-assistant/internal/maintenance"
	"tenant-maintenance-assistant/internal/model"
)

// RetryDispatch re-runs dispatch for a request left New by a registry failure.
// Requests already assigned are left untouched.
func (uc *implUseCase) RetryDispatch(ctx context.Context, sc model.Scope, requestID string) error {
	rec, err := uc.repo.GetRequest(ctx, sc, requestID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RetryDispatch GetRequest: %v", err)
		return dispatch.ErrRegistryUnavailable
	}
	if rec.ID == "" {
		return maintenance.ErrRequestNotFound
	}
	if rec.Status != model.StatusNew || rec.AssignedTo != "" {
		uc.l.Infof(ctx, "uc.RetryDispatch: request %s already %s, nothing to do", requestID, rec.Status)
		return nil
	}

	d, err := uc.dispatcher.Dispatch(ctx, sc, dispatch.DispatchInput{
		RequestID:      rec.ID,
		Classification: model.Classification{Specialty: rec.RequestType, Priority: rec.Priority},
		Notes:          rec.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RetryDispatch Dispatch: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.RetryDispatch: request %s finished with %s", requestID, d.Outcome)
	return nil
}
