package maintenance

import "errors"

var (
	ErrInvalidDescription        = errors.New("description is required")
	ErrClassificationUnavailable = errors.New("classification service unavailable")
	ErrRequestNotFound           = errors.New("maintenance request not found")
)
