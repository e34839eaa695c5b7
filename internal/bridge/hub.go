package bridge

import (
	"sync"

	"stendconfig/internal/domain/models"
)

// subscriberBuffer — ёмкость канала подписчика. Переполненный канал
// означает отставшего подписчика: события для него теряются, публикация
// не блокируется никогда.
const subscriberBuffer = 64

// Hub доставляет push-события подписчикам. Реализует ports.EventPublisher
// для сервисов хоста; UI подписывается через Subscribe.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// NewHub создает новый экземпляр Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe регистрирует подписчика и возвращает канал событий вместе с
// функцией отписки. После отписки канал закрывается.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish рассылает событие всем подписчикам без блокировки.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
			// Подписчик не успевает — событие для него пропускается.
		}
	}
}

// Close закрывает все каналы подписчиков. Дальнейшие публикации
// игнорируются.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

// PublishStatus реализует ports.EventPublisher.
func (h *Hub) PublishStatus(status models.ConnectionStatus) {
	h.Publish(Event{Type: EventStatus, Status: &status})
}

// PublishData реализует ports.EventPublisher.
func (h *Hub) PublishData(text string) {
	h.Publish(Event{Type: EventData, Data: text})
}

// PublishError реализует ports.EventPublisher.
func (h *Hub) PublishError(msg string) {
	h.Publish(Event{Type: EventError, Error: msg})
}
