package http

import (
	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc intake.UseCase
}

// New creates a new HTTP handler for the chat endpoints.
func New(l log.Logger, uc intake.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
