package usecase

import (
	"context"
	"fmt"

	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/internal/maintenance"
	"tenant-maintenance-assistant/internal/model"
)

// submit runs the pipeline for a finished request and prefixes the acknowledgement.
// Pipeline errors never reach the tenant.
func (uc *implUseCase) submit(ctx context.Context, sc model.Scope, req model.MaintenanceRequest, out intake.Output) intake.Output {
	if req.Description == "" {
		req.Description = model.NoFurtherDetail
	}

	res, err := uc.submitter.Triage(ctx, sc, maintenance.FromRequest(req))
	summary := &intake.SubmittedRequest{
		RequestID:      res.RequestID,
		Classification: res.Classification,
		Status:         res.Result.Status,
		Vendor:         res.Result.AssignedVendor,
	}
	out.Request = summary

	if err != nil {
		uc.l.Warnf(ctx, "uc.submit Triage: %v", err)
		summary.Failed = true
		out.Message = joinParagraphs(AckFailure, out.Message)
		return out
	}

	ack := AckRoutine
	if res.Classification.Priority.Escalated() {
		ack = AckUrgent
	}
	if v := res.Result.AssignedVendor; v != nil {
		ack += " " + fmt.Sprintf(AckVendor, v.Name, v.Specialty)
	}
	out.Message = joinParagraphs(ack, out.Message)
	return out
}
