package asynq

import (
	"context"

	"github.com/hibiken/asynq"

	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/pkg/log"
)

// Retrier re-runs dispatch for a stored request.
type Retrier interface {
	RetryDispatch(ctx context.Context, sc model.Scope, requestID string) error
}

// Handler consumes dispatch retry tasks.
type Handler interface {
	ProcessRetry(ctx context.Context, task *asynq.Task) error
}

type handler struct {
	l  log.Logger
	uc Retrier
}

// New creates a new asynq Handler for dispatch retries.
func New(l log.Logger, uc Retrier) Handler {
	return &handler{l: l, uc: uc}
}
