package asynq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"tenant-maintenance-assistant/internal/dispatch"
	"tenant-maintenance-assistant/internal/dispatch/queue"
	pkgLog "tenant-maintenance-assistant/pkg/log"
)

// ProcessRetry decodes the payload and retries dispatch. Registry failures are
// returned so asynq reschedules the task; anything else is final.
func (h *handler) ProcessRetry(ctx context.Context, task *asynq.Task) error {
	var p queue.RetryPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		h.l.Errorf(ctx, "dispatch.delivery.asynq.ProcessRetry: invalid payload: %v", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if p.RequestID == "" || p.TenantID == "" {
		h.l.Errorf(ctx, "dispatch.delivery.asynq.ProcessRetry: incomplete payload %+v", p)
		return fmt.Errorf("incomplete payload: %w", asynq.SkipRetry)
	}

	ctx = pkgLog.WithRequestID(ctx, p.RequestID)
	err := h.uc.RetryDispatch(ctx, p.Scope(), p.RequestID)
	if errors.Is(err, dispatch.ErrRegistryUnavailable) {
		h.l.Warnf(ctx, "dispatch.delivery.asynq.ProcessRetry: registry still unavailable for %s", p.RequestID)
		return err
	}
	if err != nil {
		h.l.Errorf(ctx, "dispatch.delivery.asynq.ProcessRetry: %v", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	return nil
}

// RegisterHandlers binds the handler to the worker mux.
func RegisterHandlers(mux *asynq.ServeMux, h Handler) {
	mux.HandleFunc(queue.TypeDispatchRetry, h.ProcessRetry)
}
