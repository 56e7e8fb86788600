package dispatch

import (
	"context"

	"tenant-maintenance-assistant/internal/model"
)

// UseCase assigns a vendor to escalated requests. Implementations are safe for concurrent use.
type UseCase interface {
	// Dispatch selects and claims a vendor for an escalated request. A claim lost to a
	// concurrent dispatcher is reported through Outcome, not as an error.
	Dispatch(ctx context.Context, sc model.Scope, input DispatchInput) (DispatchOutput, error)
}
