package maintenance

import (
	"context"

	"tenant-maintenance-assistant/internal/model"
)

// UseCase runs the triage pipeline for a single maintenance request.
type UseCase interface {
	// Triage classifies, records and, for escalated requests, dispatches a request.
	// The returned output is populated whenever the request was recorded, even when
	// an error is also returned.
	Triage(ctx context.Context, sc model.Scope, input TriageInput) (TriageOutput, error)

	Detail(ctx context.Context, sc model.Scope, id string) (model.RequestRecord, error)

	// RetryDispatch re-runs dispatch for a recorded request still waiting for a vendor.
	RetryDispatch(ctx context.Context, sc model.Scope, requestID string) error
}
