// Package pubsub provides the in-process implementation of the notification
// bus. It is the default for single-instance deployments; multi-instance
// deployments use the rabbitmq implementation instead.
package pubsub

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
)

var ErrBusClosed = errors.New("notification bus is closed")

// subscriberBuffer is the per-subscription channel capacity. A subscriber
// that falls this far behind starts losing events rather than blocking
// publishers.
const subscriberBuffer = 16

// MemoryBus is an in-process, topic-based broadcast bus. Publish never
// blocks on slow subscribers; delivery to a full subscriber drops the event
// for that subscriber only.
type MemoryBus struct {
	mu     sync.RWMutex
	subs   map[order.Topic]map[int64]chan order.Event
	nextID int64
	closed bool
	logger *slog.Logger
}

// NewMemoryBus creates an in-process notification bus.
func NewMemoryBus(logger *slog.Logger) *MemoryBus {
	return &MemoryBus{
		subs:   make(map[order.Topic]map[int64]chan order.Event),
		logger: logger.With("component", "memory_bus"),
	}
}

// Publish broadcasts the event to all current subscribers of its topic.
func (b *MemoryBus) Publish(ctx context.Context, event order.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	for id, ch := range b.subs[event.Topic] {
		select {
		case ch <- event:
		default:
			b.logger.WarnContext(ctx, "dropping event for slow subscriber",
				"topic", event.Topic, "subscriberID", id, "orderID", event.OrderID)
		}
	}

	return nil
}

// Subscribe opens a buffered subscription to a topic. The returned cancel
// function releases the subscription and closes the channel; calling it
// more than once is safe.
func (b *MemoryBus) Subscribe(_ context.Context, topic order.Topic) (<-chan order.Event, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, nil, ErrBusClosed
	}

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int64]chan order.Event)
	}

	b.nextID++
	id := b.nextID
	ch := make(chan order.Event, subscriberBuffer)
	b.subs[topic][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if subs, ok := b.subs[topic]; ok {
				if _, live := subs[id]; live {
					delete(subs, id)
					close(ch)
				}
			}
		})
	}

	return ch, cancel, nil
}

// Close shuts the bus down and closes every open subscription.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, subs := range b.subs {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
	}

	return nil
}
