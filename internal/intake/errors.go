package intake

import "errors"

var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrMissingSession   = errors.New("session id and tenant id are required")
	ErrSessionNotFound  = errors.New("conversation not found")
	ErrCorruptState     = errors.New("stored conversation state is invalid")
	ErrStoreUnavailable = errors.New("session store unavailable")
)
