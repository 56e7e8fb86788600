package usecase

import (
	"context"

	"tenant-maintenance-assistant/internal/faq"
	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/internal/intake/repository"
	"tenant-maintenance-assistant/internal/maintenance"
	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/pkg/log"
)

// Submitter runs the triage pipeline for a finished request. maintenance.UseCase satisfies it.
type Submitter interface {
	Triage(ctx context.Context, sc model.Scope, input maintenance.TriageInput) (maintenance.TriageOutput, error)
}

type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	submitter Submitter
	engine    engine
	locks     *keyedMutex
}

var _ intake.UseCase = (*implUseCase)(nil)

// New creates a new intake UseCase implementation.
func New(l log.Logger, repo repository.Repository, router faq.Router, submitter Submitter) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		submitter: submitter,
		engine:    engine{faq: router},
		locks:     newKeyedMutex(),
	}
}
