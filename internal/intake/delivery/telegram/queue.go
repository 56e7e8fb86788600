package telegram

import (
	"context"
	"sync"
	"time"

	pkgTelegram "tenant-maintenance-assistant/pkg/telegram"
)

// chatQueue runs one worker per active chat. A worker exits after idle time
// without messages.
type chatQueue struct {
	mu      sync.Mutex
	workers map[int64]chan *pkgTelegram.Message
	size    int
	idle    time.Duration
	process func(ctx context.Context, msg *pkgTelegram.Message)
}

func newChatQueue(size int, idle time.Duration, process func(context.Context, *pkgTelegram.Message)) *chatQueue {
	return &chatQueue{
		workers: make(map[int64]chan *pkgTelegram.Message),
		size:    size,
		idle:    idle,
		process: process,
	}
}

// push enqueues msg behind earlier messages of the same chat. It returns false when
// that chat's queue is full.
func (q *chatQueue) push(msg *pkgTelegram.Message) bool {
	id := msg.Chat.ID

	q.mu.Lock()
	defer q.mu.Unlock()

	ch, ok := q.workers[id]
	if !ok {
		ch = make(chan *pkgTelegram.Message, q.size)
		q.workers[id] = ch
		go q.run(id, ch)
	}

	select {
	case ch <- msg:
		return true
	default:
		return false
	}
}

func (q *chatQueue) run(id int64, ch chan *pkgTelegram.Message) {
	timer := time.NewTimer(q.idle)
	defer timer.Stop()

	for {
		select {
		case msg := <-ch:
			q.process(context.Background(), msg)
			timer.Reset(q.idle)
		case <-timer.C:
			q.mu.Lock()
			if len(ch) == 0 {
				delete(q.workers, id)
				q.mu.Unlock()
				return
			}
			q.mu.Unlock()
			timer.Reset(q.idle)
		}
	}
}

func (q *chatQueue) active() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.workers)
}
