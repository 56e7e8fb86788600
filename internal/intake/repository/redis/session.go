package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"tenant-maintenance-assistant/internal/intake"
	repo "tenant-maintenance-assistant/internal/intake/repository"
)

func (r *implRepository) Get(ctx context.Context, key string) (intake.Record, bool, error) {
	b, err := r.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return intake.Record{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return intake.Record{}, false, repo.ErrFailedToGet
	}

	var rec intake.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		r.l.Warnf(ctx, "%s decode %s: %v", r.dsn("Get"), key, err)
		if errors.Is(err, intake.ErrCorruptState) {
			return intake.Record{}, false, err
		}
		return intake.Record{}, false, fmt.Errorf("%w: %v", intake.ErrCorruptState, err)
	}
	return rec, true, nil
}

func (r *implRepository) Save(ctx context.Context, key string, rec intake.Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("Save"), err)
		return repo.ErrFailedToSave
	}
	if err := r.client.Set(ctx, redisKey(key), b, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return repo.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKey(key)).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
