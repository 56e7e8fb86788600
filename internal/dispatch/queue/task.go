package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"tenant-maintenance-assistant/internal/model"
)

// TypeDispatchRetry is the asynq task type for out-of-band dispatch retries.
const TypeDispatchRetry = "dispatch:retry"

// RetryPayload identifies the request whose dispatch should be retried.
type RetryPayload struct {
	RequestID  string `json:"request_id"`
	TenantID   string `json:"tenant_id"`
	PropertyID string `json:"property_id,omitempty"`
}

// Scope rebuilds the tenant context carried by the payload.
func (p RetryPayload) Scope() model.Scope {
	return model.Scope{TenantID: p.TenantID, PropertyID: p.PropertyID, Channel: model.ChannelAPI}
}

// NewRetryTask builds the asynq task for a retry.
func NewRetryTask(p RetryPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDispatchRetry, b), nil
}
