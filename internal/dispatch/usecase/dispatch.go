package usecase

import (
	"context"
	"fmt"
	"strings"

	"tenant-maintenance-assistant/internal/dispatch"
	repo "tenant-maintenance-assistant/internal/dispatch/repository"
	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/pkg/metrics"
)

// Dispatch assigns a vendor to High and Urgent requests.
func (uc *implUseCase) Dispatch(ctx context.Context, sc model.Scope, input dispatch.DispatchInput) (dispatch.DispatchOutput, error) {
	if input.RequestID == "" {
		return dispatch.DispatchOutput{}, dispatch.ErrMissingRequestID
	}

	c := input.Classification
	if !c.Priority.Escalated() {
		return uc.done(dispatch.OutcomeNotEscalated, model.NewDispatchResult()), nil
	}

	vendors, err := uc.repo.ListVendors(ctx, repo.ListVendorsOptions{Specialty: c.Specialty})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dispatch ListVendors: %v", err)
		return dispatch.DispatchOutput{Result: model.NewDispatchResult()}, dispatch.ErrRegistryUnavailable
	}
	if len(vendors) == 0 {
		uc.l.Warnf(ctx, "uc.Dispatch: no available vendor for specialty %s (request %s)", c.Specialty, input.RequestID)
		return uc.done(dispatch.OutcomeNoVendor, model.NewDispatchResult()), nil
	}

	vendor := uc.selector.Select(c.Specialty, vendors)
	won, err := uc.repo.ClaimRequest(ctx, sc, repo.ClaimRequestOptions{
		RequestID: input.RequestID,
		Vendor:    vendor,
		Notes:     assignmentNotes(input.Notes, vendor),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dispatch ClaimRequest: %v", err)
		return dispatch.DispatchOutput{Result: model.NewDispatchResult()}, dispatch.ErrRegistryUnavailable
	}
	if !won {
		uc.l.Infof(ctx, "uc.Dispatch: request %s already claimed", input.RequestID)
		return uc.done(dispatch.OutcomeAlreadyClaimed, model.NewDispatchResult()), nil
	}

	uc.l.Infof(ctx, "uc.Dispatch: request %s auto-dispatched to %s", input.RequestID, vendor.Name)
	return uc.done(dispatch.OutcomeScheduled, model.ScheduledWith(vendor)), nil
}

func (uc *implUseCase) done(outcome dispatch.Outcome, result model.DispatchResult) dispatch.DispatchOutput {
	metrics.DispatchOutcomes.WithLabelValues(string(outcome)).Inc()
	return dispatch.DispatchOutput{Result: result, Outcome: outcome}
}

func assignmentNotes(notes string, v model.Vendor) string {
	line := fmt.Sprintf("Auto-dispatched to %s (%s).", v.Name, v.ContactEmail)
	if strings.TrimSpace(notes) == "" {
		return line
	}
	return notes + " " + line
}
