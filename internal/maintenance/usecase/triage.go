package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tenant-maintenance-assistant/internal/dispatch"
	"tenant-maintenance-assistant/internal/maintenance"
	repo "tenant-maintenance-assistant/internal/maintenance/repository"
	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/internal/notification"
	"tenant-maintenance-assistant/internal/triage"
)

// Triage runs validate, classify, record, dispatch and notify for one request.
func (uc *implUseCase) Triage(ctx context.Context, sc model.Scope, input maintenance.TriageInput) (maintenance.TriageOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return maintenance.TriageOutput{}, maintenance.ErrInvalidDescription
	}

	cls, classifyErr := uc.classifier.Classify(ctx, triage.ClassifyInput{
		Description:   description,
		IssueType:     input.IssueType,
		TenantUrgency: input.TenantUrgency,
	})
	if classifyErr != nil && !errors.Is(classifyErr, triage.ErrGenerationUnavailable) {
		uc.l.Errorf(ctx, "uc.Triage Classify: %v", classifyErr)
		if errors.Is(classifyErr, triage.ErrEmptyDescription) {
			return maintenance.TriageOutput{}, maintenance.ErrInvalidDescription
		}
		return maintenance.TriageOutput{}, classifyErr
	}

	c := cls.Classification
	rec, err := uc.repo.CreateRequest(ctx, sc, repo.CreateRequestOptions{
		ID:                uc.newID(),
		TenantName:        input.TenantName,
		UnitNumber:        input.UnitNumber,
		ContactInfo:       input.ContactInfo,
		Title:             fmt.Sprintf("%s Issue", c.Specialty),
		Description:       description,
		RequestType:       c.Specialty,
		Priority:          c.Priority,
		MediaURL:          strings.TrimSpace(input.MediaURL),
		PermissionToEnter: input.PermissionToEnter,
		Notes:             triageNotes(c, input.PermissionToEnter),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Triage CreateRequest: %v", err)
		return maintenance.TriageOutput{}, err
	}

	output := maintenance.TriageOutput{
		RequestID:      rec.ID,
		Classification: c,
		Source:         cls.Source,
		Result:         model.NewDispatchResult(),
	}

	if classifyErr != nil {
		uc.l.Warnf(ctx, "uc.Triage: request %s recorded with fallback classification, dispatch skipped: %v", rec.ID, classifyErr)
		uc.notify(ctx, sc, input, output)
		return output, maintenance.ErrClassificationUnavailable
	}

	d, err := uc.dispatcher.Dispatch(ctx, sc, dispatch.DispatchInput{
		RequestID:      rec.ID,
		Classification: c,
		Notes:          rec.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Triage Dispatch: %v", err)
		if errors.Is(err, dispatch.ErrRegistryUnavailable) {
			if qErr := uc.retries.EnqueueRetry(ctx, sc, rec.ID); qErr != nil {
				uc.l.Errorf(ctx, "uc.Triage EnqueueRetry: %v", qErr)
			}
		}
		uc.notify(ctx, sc, input, output)
		return output, err
	}

	output.Result = d.Result
	uc.notify(ctx, sc, input, output)
	return output, nil
}

func (uc *implUseCase) notify(ctx context.Context, sc model.Scope, input maintenance.TriageInput, out maintenance.TriageOutput) {
	if uc.notifier == nil {
		return
	}
	err := uc.notifier.Send(ctx, sc, notification.Notice{
		RequestID:      out.RequestID,
		TenantName:     input.TenantName,
		UnitNumber:     input.UnitNumber,
		ContactInfo:    input.ContactInfo,
		IssueType:      input.IssueType,
		Description:    strings.TrimSpace(input.Description),
		Classification: out.Classification,
		Vendor:         out.Result.AssignedVendor,
		SubmittedAt:    uc.now(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Triage notify: %v", err)
	}
}

func triageNotes(c model.Classification, permissionToEnter bool) string {
	permission := "No"
	if permissionToEnter {
		permission = "Yes"
	}
	return fmt.Sprintf("Initial triage: %s work, %s priority. Permission to enter: %s.", c.Specialty, c.Priority, permission)
}
