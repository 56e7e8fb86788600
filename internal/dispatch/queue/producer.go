package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/pkg/log"
)

// Enqueuer schedules dispatch retries.
type Enqueuer interface {
	EnqueueRetry(ctx context.Context, sc model.Scope, requestID string) error
}

// TaskClient is the subset of *asynq.Client used here.
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type implProducer struct {
	client   TaskClient
	maxRetry int
	delay    time.Duration
	l        log.Logger
}

const defaultRetryDelay = 30 * time.Second

// NewProducer creates an Enqueuer backed by asynq.
func NewProducer(client TaskClient, maxRetry int, l log.Logger) Enqueuer {
	return &implProducer{client: client, maxRetry: maxRetry, delay: defaultRetryDelay, l: l}
}

// EnqueueRetry schedules a retry after a short delay. Duplicate retries for the same
// request are collapsed by task id while one is pending.
func (p *implProducer) EnqueueRetry(ctx context.Context, sc model.Scope, requestID string) error {
	task, err := NewRetryTask(RetryPayload{RequestID: requestID, TenantID: sc.TenantID, PropertyID: sc.PropertyID})
	if err != nil {
		return fmt.Errorf("queue.EnqueueRetry: %w", err)
	}

	info, err := p.client.EnqueueContext(ctx, task,
		asynq.TaskID(fmt.Sprintf("%s:%s", TypeDispatchRetry, requestID)),
		asynq.MaxRetry(p.maxRetry),
		asynq.ProcessIn(p.delay),
	)
	if err == asynq.ErrTaskIDConflict {
		p.l.Infof(ctx, "queue.EnqueueRetry: retry for %s already pending", requestID)
		return nil
	}
	if err != nil {
		p.l.Errorf(ctx, "queue.EnqueueRetry: %v", err)
		return err
	}
	p.l.Infof(ctx, "queue.EnqueueRetry: enqueued %s (queue=%s)", info.ID, info.Queue)
	return nil
}

// NopEnqueuer drops retries; used when the queue is disabled.
type NopEnqueuer struct{}

func (NopEnqueuer) EnqueueRetry(context.Context, model.Scope, string) error { return nil }
