package intake

import "tenant-maintenance-assistant/internal/model"

// HandleInput is one tenant message.
type HandleInput struct {
	Text string
}

// Output is what the tenant sees after a turn.
type Output struct {
	State   Kind
	Step    Step
	Message string
	Options []string

	// Request is set on the turn that submitted a maintenance request.
	Request *SubmittedRequest
}

// SubmittedRequest summarises the pipeline run triggered by a turn.
type SubmittedRequest struct {
	RequestID      string
	Classification model.Classification
	Status         model.RequestStatus
	Vendor         *model.Vendor
	Failed         bool
}

// Conversation is a read-only view of a stored conversation.
type Conversation struct {
	SessionID string
	State     Kind
	Step      Step
	Draft     *model.MaintenanceRequest
	Session   model.Session
}
