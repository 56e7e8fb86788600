package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/internal/model"
	pkgLog "tenant-maintenance-assistant/pkg/log"
	pkgResponse "tenant-maintenance-assistant/pkg/response"
	pkgTelegram "tenant-maintenance-assistant/pkg/telegram"
)

const (
	msgSlowDown  = "You're sending messages a little fast. Please wait a moment and try again."
	msgBusy      = "I'm still working on your previous messages. Please try again in a moment."
	msgTextOnly  = "Sorry, I can only read text messages right now."
	msgTryAgain  = "Sorry, something went wrong on our side. Please try again shortly."
	commandStart = "/start"
	commandReset = "/reset"
)

// HandleWebhook acknowledges the update immediately and queues the message for its chat.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "intake.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	msg := update.Message

	if h.limiter != nil && !h.limiter.Allow(fmt.Sprint(msg.Chat.ID)) {
		h.l.Warnf(ctx, "intake.delivery.telegram.HandleWebhook: chat %d throttled", msg.Chat.ID)
		go h.reply(context.Background(), msg.Chat.ID, msgSlowDown, nil)
		pkgResponse.OK(c, map[string]string{"status": "throttled"})
		return
	}

	if !h.queue.push(msg) {
		h.l.Warnf(ctx, "intake.delivery.telegram.HandleWebhook: queue full for chat %d", msg.Chat.ID)
		go h.reply(context.Background(), msg.Chat.ID, msgBusy, nil)
		pkgResponse.OK(c, map[string]string{"status": "dropped"})
		return
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs one conversation turn for a queued message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) {
	sc := model.Scope{
		TenantID:  h.tenantID,
		SessionID: fmt.Sprintf("telegram_%d", msg.Chat.ID),
		Channel:   model.ChannelTelegram,
	}
	ctx = pkgLog.WithSessionID(ctx, sc.SessionID)

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		h.reply(ctx, msg.Chat.ID, msgTextOnly, nil)
		return
	}

	var (
		out intake.Output
		err error
	)
	switch text {
	case commandStart:
		out, err = h.uc.Start(ctx, sc)
	case commandReset:
		if err = h.uc.Reset(ctx, sc); err == nil {
			out, err = h.uc.Start(ctx, sc)
		}
	default:
		out, err = h.uc.Handle(ctx, sc, intake.HandleInput{Text: text})
	}

	if err != nil && !errors.Is(err, intake.ErrEmptyInput) {
		h.l.Errorf(ctx, "intake.delivery.telegram.processMessage: %v", err)
		h.reply(ctx, msg.Chat.ID, msgTryAgain, nil)
		return
	}
	h.reply(ctx, msg.Chat.ID, out.Message, out.Options)
}

func (h *handler) reply(ctx context.Context, chatID int64, text string, options []string) {
	if err := h.bot.SendMessageWithOptions(ctx, chatID, text, options); err != nil {
		h.l.Warnf(ctx, "intake.delivery.telegram.reply: chat %d: %v", chatID, err)
	}
}
