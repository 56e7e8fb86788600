package triage

import "context"

// UseCase classifies maintenance requests and drafts clarifying questions.
// Implementations are stateless and safe for concurrent use.
type UseCase interface {
	// Classify returns the specialty and priority for a request. On generation failure it
	// returns the deterministic fallback classification together with ErrGenerationUnavailable.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)

	// FollowUp asks one clarifying question about a free-text issue. It never fails on
	// generation errors; a static question is returned instead.
	FollowUp(ctx context.Context, input FollowUpInput) (FollowUpOutput, error)
}
