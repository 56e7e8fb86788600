package notification

import "errors"

var (
	ErrNoRecipient    = errors.New("notification recipient not configured")
	ErrDeliveryFailed = errors.New("notification delivery failed")
)
