package memory

import (
	"context"

	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/pkg/metrics"
)

func (r *implRepository) Get(_ context.Context, key string) (intake.Record, bool, error) {
	rec, ok := r.cache.Get(key)
	return rec, ok, nil
}

// Save stores rec and restarts its TTL.
func (r *implRepository) Save(_ context.Context, key string, rec intake.Record) error {
	r.cache.Add(key, rec)
	metrics.SessionsActive.Set(float64(r.cache.Len()))
	return nil
}

func (r *implRepository) Delete(_ context.Context, key string) error {
	r.cache.Remove(key)
	metrics.SessionsActive.Set(float64(r.cache.Len()))
	return nil
}
