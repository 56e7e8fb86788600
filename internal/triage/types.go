package triage

import "tenant-maintenance-assistant/internal/model"

// Source tells where a classification came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// ClassifyInput is the input for Classify.
type ClassifyInput struct {
	Description   string
	IssueType     string
	TenantUrgency string // "high", "medium", "low" or free text
}

// ClassifyOutput is the classification plus how it was obtained.
type ClassifyOutput struct {
	Classification model.Classification
	Source         Source
	FallbackReason string
}

// Turn is one prior exchange given to FollowUp.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FollowUpInput is the input for FollowUp.
type FollowUpInput struct {
	Description string
	History     []Turn
}

// FollowUpOutput is the clarifying question.
type FollowUpOutput struct {
	Question  string
	Generated bool
}
