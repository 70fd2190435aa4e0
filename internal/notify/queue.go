package notify

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/clipsmart/clipsmart-web/params"
	"github.com/gofiber/fiber/v2"
)

// Queue keeps pending toasts per browser session until the next page render.
type Queue struct {
	storage fiber.Storage
	ttl     time.Duration
	limit   int
	mu      sync.Mutex
}

func (q *Queue) load(sessionID string) ([]Notification, error) {
	blob, err := q.storage.Get(sessionID)
	if err != nil || len(blob) == 0 {
		return nil, err
	}
	var pending []Notification
	if err := json.Unmarshal(blob, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

func (q *Queue) Push(sessionID string, n Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	pending, err := q.load(sessionID)
	if err != nil {
		return err
	}
	pending = append(pending, n)
	if len(pending) > q.limit {
		pending = pending[len(pending)-q.limit:]
	}
	blob, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return q.storage.Set(sessionID, blob, q.ttl)
}

// Drain returns the pending toasts for a session and removes them.
func (q *Queue) Drain(sessionID string) ([]Notification, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending, err := q.load(sessionID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, nil
	}
	return pending, q.storage.Delete(sessionID)
}

// For returns a Notifier bound to one browser session.
func (q *Queue) For(sessionID string) Notifier {
	return NotifierFunc(func(kind Kind, message string) {
		if err := q.Push(sessionID, Notification{Kind: kind, Message: message}); err != nil {
			slog.Error("Failed to queue notification", "kind", kind, "error", err)
		}
	})
}

func NewQueue(storage fiber.Storage) *Queue {
	return &Queue{
		storage: storage,
		ttl:     params.NotificationTTL,
		limit:   params.MaxPendingToasts,
	}
}
