package main

import (
	"context"

	"tenant-maintenance-assistant/config"
	"tenant-maintenance-assistant/internal/notification"
	notificationUC "tenant-maintenance-assistant/internal/notification/usecase"
	"tenant-maintenance-assistant/pkg/gmail"
	"tenant-maintenance-assistant/pkg/log"
	"tenant-maintenance-assistant/pkg/ses"
	"tenant-maintenance-assistant/pkg/sns"
	"tenant-maintenance-assistant/pkg/telegram"
)

// notificationChannels builds every configured staff channel. A channel that fails
// to initialize is skipped with a warning.
func notificationChannels(ctx context.Context, cfg *config.Config, bot *telegram.Bot, logger log.Logger) []notification.Channel {
	nc := cfg.Notification
	var channels []notification.Channel

	if nc.SES.Enabled {
		client, err := ses.New(ctx, nc.SES.Region)
		if err != nil {
			logger.Warnf(ctx, "SES not available: %v", err)
		} else {
			channels = append(channels, notificationUC.NewSESChannel(client, nc.SenderEmail, nc.RecipientEmail))
		}
	}

	if nc.Gmail.Enabled {
		client, err := gmail.NewClientFromCredentialsFile(ctx, nc.Gmail.CredentialsPath, nc.Gmail.TokenPath, nc.SenderEmail)
		if err != nil {
			logger.Warnf(ctx, "Gmail not available: %v", err)
			logger.Warn(ctx, "Run `go run scripts/gmail-auth/main.go` to generate token.json")
		} else {
			channels = append(channels, notificationUC.NewGmailChannel(client, nc.SenderEmail, nc.RecipientEmail))
		}
	}

	if nc.SNS.Enabled && nc.SNS.PhoneNumber != "" {
		client, err := sns.New(ctx, nc.SNS.Region)
		if err != nil {
			logger.Warnf(ctx, "SNS not available: %v", err)
		} else {
			channels = append(channels, notificationUC.NewSNSChannel(client, nc.SNS.PhoneNumber))
		}
	}

	if bot != nil && nc.StaffChatID != 0 {
		channels = append(channels, notificationUC.NewTelegramChannel(bot, nc.StaffChatID))
	}

	if len(channels) == 0 {
		logger.Warn(ctx, "No notification channel configured; staff will not be alerted")
	}
	return channels
}
