package ports

import (
	"context"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
)

// NotificationBus is a multi-producer, multi-consumer broadcast channel for
// order-state events.
//
// Publish is fire-and-forget: producers never block on subscriber delivery.
// The bus delivers every event on a topic to all of the topic's subscribers;
// filtering (role match, order-id match) happens at the consumer, using the
// event's filter predicates, not in the bus.
type NotificationBus interface {
	// Publish broadcasts the event to all subscribers of its topic.
	Publish(ctx context.Context, event order.Event) error

	// Subscribe opens an independent, buffered subscription to a topic.
	// The returned cancel function releases the subscription; the channel is
	// closed afterwards. Events may be dropped for subscribers that do not
	// keep up.
	Subscribe(ctx context.Context, topic order.Topic) (<-chan order.Event, func(), error)
}
