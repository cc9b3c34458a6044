package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"bothint/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventKeyDown          = domain.EventKeyDown
	EventMouse            = domain.EventMouse
	EventCommandSelected  = domain.EventCommandSelected
	EventHintClosed       = domain.EventHintClosed
	EventCommandsReloaded = domain.EventCommandsReloaded
	EventMessageSent      = domain.EventMessageSent
)

// Re-export domain event types
type KeyDownEvent = domain.KeyDownEvent
type MouseEvent = domain.MouseEvent
type CommandSelectedEvent = domain.CommandSelectedEvent
type HintClosedEvent = domain.HintClosedEvent
type CommandsReloadedEvent = domain.CommandsReloadedEvent
type MessageSentEvent = domain.MessageSentEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Len(eventType EventType) int
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus dispatches on the publisher's goroutine. Input events must be fully
// handled before the host decides whether to forward them, so there is no
// queue between Publish and the handlers.
type bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to every current subscriber in registration order
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventKeyDown, EventMouse:
		// too frequent to log
	default:
		slog.Debug("EventBus: publishing event", "type", event.Type())
	}

	// Copy so handlers may unsubscribe while we iterate
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	subsCopy := make([]subscription, len(subs))
	copy(subsCopy, subs)
	b.mu.RUnlock()

	for _, sub := range subsCopy {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event handler panic", "type", event.Type(), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function; calling it more than once is a no-op
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					// Fresh slice so in-flight snapshots are untouched
					next := make([]subscription, 0, len(subs)-1)
					next = append(next, subs[:i]...)
					next = append(next, subs[i+1:]...)
					b.handlers[eventType] = next
					break
				}
			}
		})
	}
}

// Len returns the number of handlers subscribed to an event type
func (b *bus) Len(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
