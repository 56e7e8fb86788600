package usecase

import (
	"time"

	"github.com/google/uuid"

	"tenant-maintenance-assistant/internal/dispatch"
	"tenant-maintenance-assistant/internal/dispatch/queue"
	"tenant-maintenance-assistant/internal/maintenance/repository"
	"tenant-maintenance-assistant/internal/notification"
	"tenant-maintenance-assistant/internal/triage"
	"tenant-maintenance-assistant/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	classifier triage.UseCase
	dispatcher dispatch.UseCase
	retries    queue.Enqueuer
	notifier   notification.Sender

	now   func() time.Time
	newID func() string
}

// Deps groups the collaborators of the triage pipeline. Retries and Notifier are optional.
type Deps struct {
	Repo       repository.Repository
	Classifier triage.UseCase
	Dispatcher dispatch.UseCase
	Retries    queue.Enqueuer
	Notifier   notification.Sender
}

// New creates a new maintenance UseCase implementation.
func New(l log.Logger, d Deps) *implUseCase {
	uc := &implUseCase{
		l:          l,
		repo:       d.Repo,
		classifier: d.Classifier,
		dispatcher: d.Dispatcher,
		retries:    d.Retries,
		notifier:   d.Notifier,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	if uc.retries == nil {
		uc.retries = queue.NopEnqueuer{}
	}
	return uc
}
