package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/internal/notification"
	"tenant-maintenance-assistant/pkg/gmail"
	"tenant-maintenance-assistant/pkg/log"
	"tenant-maintenance-assistant/pkg/ses"
)

type fakeSES struct {
	sent []ses.Email
	err  error
}

func (f *fakeSES) SendEmail(ctx context.Context, e ses.Email) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, e)
	return "msg-1", nil
}

type fakeSNS struct {
	phones []string
	texts  []string
}

func (f *fakeSNS) SendSMS(ctx context.Context, phone, msg string) (string, error) {
	f.phones = append(f.phones, phone)
	f.texts = append(f.texts, msg)
	return "sms-1", nil
}

type fakeGmail struct {
	sent []gmail.Message
}

func (f *fakeGmail) Send(ctx context.Context, m gmail.Message) (string, error) {
	f.sent = append(f.sent, m)
	return "gm-1", nil
}

type fakeBot struct {
	chatID int64
	text   string
	err    error
}

func (f *fakeBot) SendMessage(ctx context.Context, chatID int64, text string) error {
	f.chatID, f.text = chatID, text
	return f.err
}

func notice(p model.Priority) notification.Notice {
	return notification.Notice{
		RequestID:      "req-1",
		TenantName:     "Jane Doe",
		UnitNumber:     "4B",
		Description:    "No heat",
		Classification: model.Classification{Specialty: model.SpecialtyHVAC, Priority: p},
		SubmittedAt:    time.Now(),
	}
}

var scope = model.Scope{TenantID: "tenant-1"}

func TestSend_FanOut(t *testing.T) {
	sesClient := &fakeSES{}
	gm := &fakeGmail{}
	sms := &fakeSNS{}
	bot := &fakeBot{}
	s := New(log.NewNop(),
		NewSESChannel(sesClient, "noreply@example.com", "manager@example.com"),
		NewGmailChannel(gm, "assistant@example.com", "manager@example.com"),
		NewSNSChannel(sms, "+15550100"),
		NewTelegramChannel(bot, 42),
	)

	t.Run("urgent reaches every channel", func(t *testing.T) {
		require.NoError(t, s.Send(context.Background(), scope, notice(model.PriorityUrgent)))

		require.Len(t, sesClient.sent, 1)
		assert.Equal(t, "[URGENT] Maintenance Request from Jane Doe", sesClient.sent[0].Subject)
		assert.Equal(t, "manager@example.com", sesClient.sent[0].To)
		require.Len(t, gm.sent, 1)
		assert.Equal(t, []string{"+15550100"}, sms.phones)
		assert.Equal(t, int64(42), bot.chatID)
		assert.Contains(t, bot.text, "Request: req-1")
	})

	t.Run("routine skips sms", func(t *testing.T) {
		require.NoError(t, s.Send(context.Background(), scope, notice(model.PriorityLow)))
		assert.Len(t, sesClient.sent, 2)
		assert.Len(t, sms.phones, 1)
	})
}

func TestSend_FailuresAreJoined(t *testing.T) {
	gm := &fakeGmail{}
	s := New(log.NewNop(),
		NewSESChannel(&fakeSES{err: errors.New("throttled")}, "a@example.com", "b@example.com"),
		NewGmailChannel(gm, "a@example.com", "b@example.com"),
		NewTelegramChannel(&fakeBot{}, 0),
	)

	err := s.Send(context.Background(), scope, notice(model.PriorityMedium))
	require.Error(t, err)
	assert.ErrorIs(t, err, notification.ErrDeliveryFailed)
	assert.ErrorIs(t, err, notification.ErrNoRecipient)
	assert.Contains(t, err.Error(), "ses: throttled")
	assert.Len(t, gm.sent, 1, "a failing channel must not block the others")
}

func TestSend_NoChannels(t *testing.T) {
	assert.NoError(t, New(log.NewNop()).Send(context.Background(), scope, notice(model.PriorityHigh)))
}
