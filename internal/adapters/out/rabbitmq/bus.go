// Package rabbitmq provides the RabbitMQ-backed notification bus used when
// the service runs as more than one instance. Events are published to a
// durable topic exchange with the topic name as the routing key; every
// subscription gets its own exclusive queue, so each instance sees the full
// stream.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
)

const (
	exchangeName = "order.events"

	connectAttempts = 5
	publishTimeout  = 10 * time.Second

	// subscriberBuffer bounds the local channel between the AMQP consumer
	// goroutine and the subscriber. Overflow is dropped, matching the bus
	// contract for slow subscribers.
	subscriberBuffer = 16
)

// Bus is a NotificationBus implementation on top of a RabbitMQ topic
// exchange.
type Bus struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Connect dials RabbitMQ and declares the event exchange. Connection
// failures are retried with a growing backoff before giving up.
func Connect(url string, logger *slog.Logger) (*Bus, error) {
	var lastErr error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		conn, err := amqp091.Dial(url)
		if err == nil {
			bus, setupErr := setup(conn, logger)
			if setupErr == nil {
				return bus, nil
			}

			_ = conn.Close()
			err = setupErr
		}

		lastErr = err
		if attempt < connectAttempts {
			wait := time.Duration(attempt) * 2 * time.Second
			logger.Warn("rabbitmq connection failed, retrying",
				"attempt", attempt, "wait", wait, "error", err)
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("connect to rabbitmq after %d attempts: %w", connectAttempts, lastErr)
}

func setup(conn *amqp091.Connection, logger *slog.Logger) (*Bus, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchangeName, err)
	}

	return &Bus{
		conn:    conn,
		channel: channel,
		logger:  logger.With("component", "rabbitmq_bus"),
	}, nil
}

// Publish sends the event to the exchange, routed by its topic.
func (b *Bus) Publish(ctx context.Context, event order.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = b.channel.PublishWithContext(
		ctx,
		exchangeName,
		string(event.Topic), // routing key
		false,               // mandatory
		false,               // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Transient,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s/%s: %w", exchangeName, event.Topic, err)
	}

	return nil
}

// Subscribe binds a fresh server-named exclusive queue to the topic and
// streams its deliveries. The queue disappears with the subscription, so
// events published while nobody listens are not retained.
func (b *Bus) Subscribe(ctx context.Context, topic order.Topic) (<-chan order.Event, func(), error) {
	channel, err := b.conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	queue, err := channel.QueueDeclare(
		"",    // server-named
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		return nil, nil, fmt.Errorf("declare queue: %w", err)
	}

	err = channel.QueueBind(queue.Name, string(topic), exchangeName, false, nil)
	if err != nil {
		_ = channel.Close()
		return nil, nil, fmt.Errorf("bind queue %s to %s: %w", queue.Name, topic, err)
	}

	deliveries, err := channel.Consume(
		queue.Name,
		"",    // server-named consumer tag
		true,  // auto-ack: a missed notification is not worth a redelivery
		true,  // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		return nil, nil, fmt.Errorf("consume queue %s: %w", queue.Name, err)
	}

	events := make(chan order.Event, subscriberBuffer)
	go b.forward(ctx, topic, deliveries, events)

	var once sync.Once
	cancel := func() {
		once.Do(func() { _ = channel.Close() })
	}

	return events, cancel, nil
}

// forward decodes deliveries into events until the consumer channel closes.
func (b *Bus) forward(ctx context.Context, topic order.Topic, deliveries <-chan amqp091.Delivery, events chan<- order.Event) {
	defer close(events)

	for delivery := range deliveries {
		var event order.Event
		if err := json.Unmarshal(delivery.Body, &event); err != nil {
			b.logger.WarnContext(ctx, "discarding malformed event",
				"topic", topic, "error", err)
			continue
		}

		select {
		case events <- event:
		default:
			b.logger.WarnContext(ctx, "dropping event for slow subscriber",
				"topic", topic, "orderID", event.OrderID)
		}
	}
}

// Close shuts the bus down. Open subscriptions observe closed delivery
// channels and drain out.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	if b.channel != nil {
		_ = b.channel.Close()
	}

	return b.conn.Close()
}
