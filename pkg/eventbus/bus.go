// Package eventbus implements a synchronous in-process publish/subscribe bus.
//
// Handlers run on the publishing goroutine, in subscription order. A handler
// that subscribes or unsubscribes during a Publish does not affect the
// delivery already in progress.
package eventbus

import (
	"fmt"
	"log/slog"
	"sync"
)

// Handler receives the payload passed to Publish, which may be nil.
type Handler func(payload any)

// SubscriptionID identifies one Subscribe call.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]subscription
	nextID SubscriptionID
	logger *slog.Logger
}

func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[string][]subscription),
		logger: logger,
	}
}

// Subscribe registers handler for event.
func (b *Bus) Subscribe(event string, handler Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[event] = append(b.subs[event], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a subscription. It reports whether it was present.
func (b *Bus) Unsubscribe(event string, id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[event]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		rest := make([]subscription, 0, len(subs)-1)
		rest = append(rest, subs[:i]...)
		rest = append(rest, subs[i+1:]...)
		if len(rest) == 0 {
			delete(b.subs, event)
		} else {
			b.subs[event] = rest
		}
		return true
	}
	return false
}

// Publish delivers payload to every current subscriber of event and returns
// the number of handlers invoked.
func (b *Bus) Publish(event string, payload any) int {
	b.mu.RLock()
	subs := b.subs[event]
	b.mu.RUnlock()

	for _, s := range subs {
		b.deliver(event, s, payload)
	}
	return len(subs)
}

// Subscribers returns the number of handlers registered for event.
func (b *Bus) Subscribers(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[event])
}

func (b *Bus) deliver(event string, s subscription, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked",
				"event", event,
				"subscription", s.id,
				"panic", fmt.Sprint(r),
			)
		}
	}()
	s.handler(payload)
}
