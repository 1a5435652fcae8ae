package events

import (
	"context"
	"sync"
)

// EventHandler handles a published invalidation event.
type EventHandler func(context.Context, Event) error

// Dispatcher allows tag-based publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(tag Tag, handler EventHandler)
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[Tag][]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[Tag][]EventHandler),
	}
}

// Publish synchronously invokes handlers for every tag the event
// carries. A handler registered under several of the event's tags runs
// once per tag; handler errors do not stop the fan-out.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	var handlers []EventHandler
	for _, tag := range event.Tags {
		handlers = append(handlers, d.listeners[tag]...)
	}
	d.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			// continue processing other handlers despite errors
		}
	}
	return nil
}

// Subscribe registers a handler for the given tag.
func (d *inMemoryDispatcher) Subscribe(tag Tag, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[tag] = append(d.listeners[tag], handler)
}
