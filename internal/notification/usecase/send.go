package usecase

import (
	"context"
	"errors"
	"fmt"

	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/internal/notification"
	"tenant-maintenance-assistant/pkg/metrics"
)

// Send delivers the notice on every accepting channel. One failing channel does not
// stop the others; all failures are joined into the returned error.
func (s *implSender) Send(ctx context.Context, sc model.Scope, notice notification.Notice) error {
	if len(s.channels) == 0 {
		s.l.Debugf(ctx, "notification.Send: no channels configured, skipping request %s", notice.RequestID)
		return nil
	}

	var errs []error
	for _, ch := range s.channels {
		if !ch.Accepts(notice) {
			continue
		}
		if err := ch.Send(ctx, sc, notice); err != nil {
			s.l.Errorf(ctx, "notification.Send %s: %v", ch.Name(), err)
			metrics.NotificationsSent.WithLabelValues(ch.Name(), metrics.OutcomeFailure).Inc()
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
			continue
		}
		metrics.NotificationsSent.WithLabelValues(ch.Name(), metrics.OutcomeSuccess).Inc()
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", notification.ErrDeliveryFailed, errors.Join(errs...))
	}
	return nil
}
