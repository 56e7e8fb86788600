package dispatch

import "errors"

var (
	ErrRegistryUnavailable = errors.New("vendor registry unavailable")
	ErrMissingRequestID    = errors.New("request id is required")
	ErrUnknownSelector     = errors.New("unknown vendor selector")
)
