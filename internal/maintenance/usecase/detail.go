package usecase

import (
	"context"

	"github.com/google/uuid"

	"tenant-maintenance-assistant/internal/maintenance"
	"tenant-maintenance-assistant/internal/model"
)

// Detail returns one request of the scoped tenant. Returns ErrRequestNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.RequestRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.RequestRecord{}, maintenance.ErrRequestNotFound
	}

	rec, err := uc.repo.GetRequest(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetRequest: %v", err)
		return model.RequestRecord{}, err
	}
	if rec.ID == "" {
		return model.RequestRecord{}, maintenance.ErrRequestNotFound
	}
	return rec, nil
}
