package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/internal/intake"
	pkgLog "tenant-maintenance-assistant/pkg/log"
	"tenant-maintenance-assistant/pkg/ratelimit"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Messenger is the subset of *telegram.Bot used to reply.
type Messenger interface {
	SendMessageWithOptions(ctx context.Context, chatID int64, text string, options []string) error
}

// Config tunes the per-chat queue and limiter.
type Config struct {
	TenantID       string
	RequestsPerMin int
	QueueSize      int
	IdleTimeout    time.Duration
}

const (
	defaultQueueSize   = 16
	defaultIdleTimeout = 2 * time.Minute
)

type handler struct {
	l        pkgLog.Logger
	uc       intake.UseCase
	bot      Messenger
	tenantID string
	limiter  *ratelimit.Limiter
	queue    *chatQueue
}

// New creates a new Telegram delivery handler. Messages of one chat are processed
// one at a time in arrival order.
func New(l pkgLog.Logger, uc intake.UseCase, bot Messenger, cfg Config) Handler {
	return newHandler(l, uc, bot, cfg)
}

func newHandler(l pkgLog.Logger, uc intake.UseCase, bot Messenger, cfg Config) *handler {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}

	h := &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		tenantID: cfg.TenantID,
	}
	if cfg.RequestsPerMin > 0 {
		h.limiter = ratelimit.New(cfg.RequestsPerMin, 0, 0)
	}
	h.queue = newChatQueue(cfg.QueueSize, cfg.IdleTimeout, h.processMessage)
	return h
}
