package usecase

import (
	"tenant-maintenance-assistant/internal/notification"
	"tenant-maintenance-assistant/pkg/log"
)

type implSender struct {
	l        log.Logger
	channels []notification.Channel
}

// New creates a Sender that fans a notice out to every channel accepting it.
func New(l log.Logger, channels ...notification.Channel) notification.Sender {
	return &implSender{l: l, channels: channels}
}
