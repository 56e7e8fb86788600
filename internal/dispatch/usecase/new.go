package usecase

import (
	"tenant-maintenance-assistant/internal/dispatch"
	"tenant-maintenance-assistant/internal/dispatch/repository"
	"tenant-maintenance-assistant/pkg/log"
)

// implUseCase is the private implementation of dispatch.UseCase.
type implUseCase struct {
	repo     repository.Repository
	selector VendorSelector
	l        log.Logger
}

var _ dispatch.UseCase = (*implUseCase)(nil)

// New creates a new dispatch UseCase implementation.
func New(repo repository.Repository, selector VendorSelector, l log.Logger) *implUseCase {
	if selector == nil {
		selector = FirstSelector{}
	}
	return &implUseCase{
		repo:     repo,
		selector: selector,
		l:        l,
	}
}
