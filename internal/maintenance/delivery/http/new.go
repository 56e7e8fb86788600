package http

import (
	"tenant-maintenance-assistant/internal/maintenance"
	"tenant-maintenance-assistant/internal/triage"
	"tenant-maintenance-assistant/pkg/log"
)

type handler struct {
	l          log.Logger
	uc         maintenance.UseCase
	classifier triage.UseCase
}

// New creates a new HTTP handler for the maintenance domain.
func New(l log.Logger, uc maintenance.UseCase, classifier triage.UseCase) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		classifier: classifier,
	}
}
