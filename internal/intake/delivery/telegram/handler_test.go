package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/pkg/log"
	pkgTelegram "tenant-maintenance-assistant/pkg/telegram"
)

type sent struct {
	chatID  int64
	text    string
	options []string
}

type fakeBot struct {
	out chan sent
}

func (f *fakeBot) SendMessageWithOptions(ctx context.Context, chatID int64, text string, options []string) error {
	f.out <- sent{chatID: chatID, text: text, options: options}
	return nil
}

// echoUseCase replies with the text it received, in the order turns are handled.
type echoUseCase struct {
	mu     sync.Mutex
	scopes []model.Scope
	delay  time.Duration
	resets int
}

func (e *echoUseCase) Start(ctx context.Context, sc model.Scope) (intake.Output, error) {
	return intake.Output{Message: "greeting", Options: []string{"a", "b"}}, nil
}

func (e *echoUseCase) Handle(ctx context.Context, sc model.Scope, in intake.HandleInput) (intake.Output, error) {
	time.Sleep(e.delay)
	e.mu.Lock()
	e.scopes = append(e.scopes, sc)
	e.mu.Unlock()
	return intake.Output{Message: "echo:" + in.Text}, nil
}

func (e *echoUseCase) Reset(ctx context.Context, sc model.Scope) error {
	e.mu.Lock()
	e.resets++
	e.mu.Unlock()
	return nil
}

func (e *echoUseCase) Snapshot(ctx context.Context, sc model.Scope) (intake.Conversation, error) {
	return intake.Conversation{}, nil
}

func webhook(h Handler, chatID int64, text string) int {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)

	b, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1, Message: &pkgTelegram.Message{
		Chat: &pkgTelegram.Chat{ID: chatID},
		Text: text,
	}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(b)))
	return w.Code
}

func receive(t *testing.T, bot *fakeBot) sent {
	t.Helper()
	select {
	case s := <-bot.out:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a reply")
		return sent{}
	}
}

func TestHandleWebhook_PreservesOrderPerChat(t *testing.T) {
	bot := &fakeBot{out: make(chan sent, 10)}
	uc := &echoUseCase{delay: 5 * time.Millisecond}
	h := New(log.NewNop(), uc, bot, Config{TenantID: "tenant-1"})

	for _, text := range []string{"one", "two", "three"} {
		assert.Equal(t, http.StatusOK, webhook(h, 7, text))
	}

	assert.Equal(t, "echo:one", receive(t, bot).text)
	assert.Equal(t, "echo:two", receive(t, bot).text)
	assert.Equal(t, "echo:three", receive(t, bot).text)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	require.Len(t, uc.scopes, 3)
	assert.Equal(t, model.Scope{TenantID: "tenant-1", SessionID: "telegram_7", Channel: model.ChannelTelegram}, uc.scopes[0])
}

func TestHandleWebhook_Commands(t *testing.T) {
	bot := &fakeBot{out: make(chan sent, 10)}
	uc := &echoUseCase{}
	h := New(log.NewNop(), uc, bot, Config{TenantID: "tenant-1"})

	webhook(h, 1, "/start")
	s := receive(t, bot)
	assert.Equal(t, "greeting", s.text)
	assert.Equal(t, []string{"a", "b"}, s.options)

	webhook(h, 1, "/reset")
	assert.Equal(t, "greeting", receive(t, bot).text)
	uc.mu.Lock()
	assert.Equal(t, 1, uc.resets)
	uc.mu.Unlock()
}

func TestHandleWebhook_RateLimited(t *testing.T) {
	bot := &fakeBot{out: make(chan sent, 10)}
	h := New(log.NewNop(), &echoUseCase{}, bot, Config{TenantID: "t", RequestsPerMin: 1})

	webhook(h, 3, "first")
	assert.Equal(t, "echo:first", receive(t, bot).text)

	webhook(h, 3, "second")
	assert.Equal(t, msgSlowDown, receive(t, bot).text)
}

func TestHandleWebhook_IgnoresNonMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), &echoUseCase{}, &fakeBot{out: make(chan sent, 1)}, Config{})
	r.POST("/webhook/telegram", h.HandleWebhook)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader([]byte(`{"update_id":1}`))))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader([]byte(`{`))))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatQueue_IdleWorkerExits(t *testing.T) {
	done := make(chan struct{}, 1)
	q := newChatQueue(4, 20*time.Millisecond, func(ctx context.Context, msg *pkgTelegram.Message) {
		done <- struct{}{}
	})

	require.True(t, q.push(&pkgTelegram.Message{Chat: &pkgTelegram.Chat{ID: 1}}))
	<-done
	assert.Eventually(t, func() bool { return q.active() == 0 }, time.Second, 10*time.Millisecond)
}

func TestChatQueue_Full(t *testing.T) {
	started := make(chan struct{}, 2)
	block := make(chan struct{})
	q := newChatQueue(1, time.Minute, func(ctx context.Context, msg *pkgTelegram.Message) {
		started <- struct{}{}
		<-block
	})
	defer close(block)

	msg := &pkgTelegram.Message{Chat: &pkgTelegram.Chat{ID: 1}}
	require.True(t, q.push(msg))
	<-started

	assert.True(t, q.push(msg), "one message waits behind the one in progress")
	assert.False(t, q.push(msg))
}
