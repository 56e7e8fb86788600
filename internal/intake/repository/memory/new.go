package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/internal/intake/repository"
)

const defaultMaxSessions = 10000

type implRepository struct {
	cache *expirable.LRU[string, intake.Record]
}

// New creates an in-process session Repository for single-instance deployments.
// The least recently used sessions are evicted once maxSessions is reached.
func New(maxSessions int, ttl time.Duration) repository.Repository {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	return &implRepository{
		cache: expirable.NewLRU[string, intake.Record](maxSessions, nil, ttl),
	}
}
