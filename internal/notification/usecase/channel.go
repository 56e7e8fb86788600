package usecase

import (
	"context"

	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/internal/notification"
	"tenant-maintenance-assistant/pkg/gmail"
	"tenant-maintenance-assistant/pkg/ses"
	"tenant-maintenance-assistant/pkg/sns"
)

const (
	ChannelSES      = "ses"
	ChannelGmail    = "gmail"
	ChannelSNS      = "sns"
	ChannelTelegram = "telegram"
)

// sesChannel emails the property manager through Amazon SES.
type sesChannel struct {
	client   ses.ISES
	from, to string
}

func NewSESChannel(client ses.ISES, from, to string) notification.Channel {
	return &sesChannel{client: client, from: from, to: to}
}

func (c *sesChannel) Name() string                     { return ChannelSES }
func (c *sesChannel) Accepts(notification.Notice) bool { return true }

func (c *sesChannel) Send(ctx context.Context, _ model.Scope, n notification.Notice) error {
	if c.to == "" {
		return notification.ErrNoRecipient
	}
	_, err := c.client.SendEmail(ctx, ses.Email{From: c.from, To: c.to, Subject: n.Subject(), Body: n.Body()})
	return err
}

// GmailSender is the subset of *gmail.Client used here.
type GmailSender interface {
	Send(ctx context.Context, msg gmail.Message) (string, error)
}

// gmailChannel emails the property manager through the Gmail API.
type gmailChannel struct {
	client   GmailSender
	from, to string
}

func NewGmailChannel(client GmailSender, from, to string) notification.Channel {
	return &gmailChannel{client: client, from: from, to: to}
}

func (c *gmailChannel) Name() string                     { return ChannelGmail }
func (c *gmailChannel) Accepts(notification.Notice) bool { return true }

func (c *gmailChannel) Send(ctx context.Context, _ model.Scope, n notification.Notice) error {
	if c.to == "" {
		return notification.ErrNoRecipient
	}
	_, err := c.client.Send(ctx, gmail.Message{From: c.from, To: c.to, Subject: n.Subject(), Body: n.Body()})
	return err
}

// snsChannel texts the on-call phone, escalated requests only.
type snsChannel struct {
	client sns.ISNS
	phone  string
}

func NewSNSChannel(client sns.ISNS, phone string) notification.Channel {
	return &snsChannel{client: client, phone: phone}
}

func (c *snsChannel) Name() string                       { return ChannelSNS }
func (c *snsChannel) Accepts(n notification.Notice) bool { return n.Urgent() }

func (c *snsChannel) Send(ctx context.Context, _ model.Scope, n notification.Notice) error {
	if c.phone == "" {
		return notification.ErrNoRecipient
	}
	_, err := c.client.SendSMS(ctx, c.phone, n.Short())
	return err
}

// TelegramSender is the subset of *telegram.Bot used here.
type TelegramSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// telegramChannel posts to the staff chat.
type telegramChannel struct {
	bot    TelegramSender
	chatID int64
}

func NewTelegramChannel(bot TelegramSender, chatID int64) notification.Channel {
	return &telegramChannel{bot: bot, chatID: chatID}
}

func (c *telegramChannel) Name() string                     { return ChannelTelegram }
func (c *telegramChannel) Accepts(notification.Notice) bool { return true }

func (c *telegramChannel) Send(ctx context.Context, sc model.Scope, n notification.Notice) error {
	if c.chatID == 0 {
		return notification.ErrNoRecipient
	}
	text := n.Short()
	if sc.TenantID != "" {
		text += "\nTenant: " + sc.TenantID
	}
	if n.RequestID != "" {
		text += "\nRequest: " + n.RequestID
	}
	return c.bot.SendMessage(ctx, c.chatID, text)
}
