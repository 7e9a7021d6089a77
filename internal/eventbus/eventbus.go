// ABOUTME: Typed event bus used to fan out host events to decoupled listeners
// ABOUTME: Delivers synchronously in subscription order; unsubscribe is O(n)

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

type subscriber[T any] struct {
	id      int
	handler Handler[T]
}

// Bus delivers events of type T to registered handlers, in the order they
// subscribed. Deterministic ordering matters when one listener feeds
// another, e.g. a progress logger subscribed before the UI forwarder.
type Bus[T any] struct {
	mu     sync.Mutex
	subs   []subscriber[T]
	nextID int
}

// New creates an empty event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler and returns an unsubscribe function.
// Unsubscribing twice is a no-op.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber[T]{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subs {
			if sub.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers an event to all registered handlers in subscription
// order, synchronously on the caller's goroutine. Handlers that need
// another execution context must marshal themselves (see the dispatch
// package).
func (b *Bus[T]) Publish(event T) {
	b.mu.Lock()
	// Snapshot so the lock is not held during callbacks.
	snapshot := make([]subscriber[T], len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, sub := range snapshot {
		sub.handler(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
