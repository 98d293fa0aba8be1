package network

import (
	"sync"

	"creature-forge/pkg/api"
)

// Broadcaster занимается только рассылкой событий сборки подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SubscriberID -> Личный канал
	subscribers map[string]chan api.BuildEvent
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.BuildEvent),
	}
}

// Register создает личный канал подписчика
func (b *Broadcaster) Register(id string) chan api.BuildEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.BuildEvent, 100)
	b.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Release удаляет подписчика, только если за id всё ещё закреплён канал ch.
// Нужно, когда тот же id уже перерегистрирован новым подключением.
func (b *Broadcaster) Release(id string, ch chan api.BuildEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cur, ok := b.subscribers[id]; ok && cur == ch {
		close(cur)
		delete(b.subscribers, id)
	}
}

// SendTo отправляет событие конкретному подписчику (Unicast).
// Полный канал означает потерю события, сборка не ждёт медленных клиентов.
func (b *Broadcaster) SendTo(id string, msg api.BuildEvent) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[id]; ok {
		select {
		case ch <- msg:
			return true
		default:
		}
	}
	return false
}

// Broadcast отправляет всем
func (b *Broadcaster) Broadcast(msg api.BuildEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, подключён ли подписчик
func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
