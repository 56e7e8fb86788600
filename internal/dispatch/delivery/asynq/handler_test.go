package asynq

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"

	"tenant-maintenance-assistant/internal/dispatch"
	"tenant-maintenance-assistant/internal/dispatch/queue"
	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/pkg/log"
)

type fakeRetrier struct {
	err   error
	scope model.Scope
	id    string
}

func (f *fakeRetrier) RetryDispatch(ctx context.Context, sc model.Scope, requestID string) error {
	f.scope, f.id = sc, requestID
	return f.err
}

func retryTask(t *testing.T, p queue.RetryPayload) *asynq.Task {
	t.Helper()
	task, err := queue.NewRetryTask(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return task
}

func TestProcessRetry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := &fakeRetrier{}
		err := New(log.NewNop(), r).ProcessRetry(context.Background(), retryTask(t, queue.RetryPayload{RequestID: "req-1", TenantID: "t1"}))
		assert.NoError(t, err)
		assert.Equal(t, "req-1", r.id)
		assert.Equal(t, "t1", r.scope.TenantID)
	})

	t.Run("registry unavailable is retried", func(t *testing.T) {
		r := &fakeRetrier{err: dispatch.ErrRegistryUnavailable}
		err := New(log.NewNop(), r).ProcessRetry(context.Background(), retryTask(t, queue.RetryPayload{RequestID: "req-1", TenantID: "t1"}))
		assert.ErrorIs(t, err, dispatch.ErrRegistryUnavailable)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("other errors skip retry", func(t *testing.T) {
		r := &fakeRetrier{err: errors.New("request not found")}
		err := New(log.NewNop(), r).ProcessRetry(context.Background(), retryTask(t, queue.RetryPayload{RequestID: "req-1", TenantID: "t1"}))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("bad payload", func(t *testing.T) {
		err := New(log.NewNop(), &fakeRetrier{}).ProcessRetry(context.Background(), asynq.NewTask(queue.TypeDispatchRetry, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)

		err = New(log.NewNop(), &fakeRetrier{}).ProcessRetry(context.Background(), retryTask(t, queue.RetryPayload{RequestID: "req-1"}))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}
