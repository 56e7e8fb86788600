package triage

import "errors"

var (
	ErrEmptyDescription      = errors.New("description is empty")
	ErrGenerationUnavailable = errors.New("classification service unavailable")
)
