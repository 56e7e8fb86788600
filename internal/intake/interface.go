package intake

import (
	"context"

	"tenant-maintenance-assistant/internal/model"
)

// UseCase drives tenant conversations. Turns of one session are serialized; different
// sessions proceed in parallel.
type UseCase interface {
	// Start puts the conversation back at the greeting, keeping known identity.
	Start(ctx context.Context, sc model.Scope) (Output, error)

	// Handle advances the conversation by one tenant message. Empty input returns
	// ErrEmptyInput with the current prompt repeated and the state unchanged.
	Handle(ctx context.Context, sc model.Scope, input HandleInput) (Output, error)

	// Reset forgets the conversation and the stored identity.
	Reset(ctx context.Context, sc model.Scope) error

	Snapshot(ctx context.Context, sc model.Scope) (Conversation, error)
}
