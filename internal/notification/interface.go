package notification

import (
	"context"

	"tenant-maintenance-assistant/internal/model"
)

// Sender tells property staff about a recorded request. Failures are reported but
// never undo the request.
type Sender interface {
	Send(ctx context.Context, sc model.Scope, notice Notice) error
}

// Channel is one delivery route, e.g. email or SMS.
type Channel interface {
	Name() string
	// Accepts reports whether the channel handles this notice at all.
	Accepts(notice Notice) bool
	Send(ctx context.Context, sc model.Scope, notice Notice) error
}
