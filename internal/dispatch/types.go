package dispatch

import "tenant-maintenance-assistant/internal/model"

// Outcome explains how a dispatch attempt ended.
type Outcome string

const (
	OutcomeNotEscalated   Outcome = "not_escalated"
	OutcomeNoVendor       Outcome = "no_vendor"
	OutcomeScheduled      Outcome = "scheduled"
	OutcomeAlreadyClaimed Outcome = "already_claimed"
)

// DispatchInput is the input for Dispatch.
type DispatchInput struct {
	RequestID      string
	Classification model.Classification
	// Notes is the request's current notes, extended with the assignment on success.
	Notes string
}

// DispatchOutput is the result of Dispatch.
type DispatchOutput struct {
	Result  model.DispatchResult
	Outcome Outcome
}

// Selector names.
const (
	SelectorFirst      = "first"
	SelectorRoundRobin = "round_robin"
)
