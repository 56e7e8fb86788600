package repository

import (
	"context"

	"tenant-maintenance-assistant/internal/intake"
)

// Repository keeps one conversation record per session key. Records expire after the
// configured TTL of inactivity.
type Repository interface {
	// Get returns found == false when the session is unknown or expired. A stored
	// record that cannot be decoded yields an error wrapping intake.ErrCorruptState.
	Get(ctx context.Context, key string) (rec intake.Record, found bool, err error)
	Save(ctx context.Context, key string, rec intake.Record) error
	Delete(ctx context.Context, key string) error
}
