package redis

import (
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"tenant-maintenance-assistant/internal/intake/repository"
	"tenant-maintenance-assistant/pkg/log"
)

const keyPrefix = "intake:session:"

type implRepository struct {
	client goredis.Cmdable
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed session Repository. Every Save refreshes the TTL.
func New(client goredis.Cmdable, ttl time.Duration, l log.Logger) repository.Repository {
	if client == nil {
		panic("intake/repository/redis: client is required")
	}
	return &implRepository{client: client, ttl: ttl, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("intake/repository/redis.%s", method)
}

func redisKey(key string) string {
	return keyPrefix + key
}
