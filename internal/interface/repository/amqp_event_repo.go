package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bookingsync-service/internal/domain/entity"
	"bookingsync-service/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AmqpEventRepository publishes lifecycle events to a RabbitMQ topic exchange
type AmqpEventRepository struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

// NewAmqpEventRepository creates a new AMQP event repository
func NewAmqpEventRepository(url, exchange string, logger logger.Logger) (*AmqpEventRepository, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AmqpEventRepository{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// PublishLifecycle publishes a lifecycle event. Routing attributes travel in
// the routing key and message headers so consumers can filter without
// parsing the body. Delivery is at-least-once.
func (r *AmqpEventRepository) PublishLifecycle(ctx context.Context, event *entity.LifecycleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	key := fmt.Sprintf("booking.lifecycle.%s", strings.ToLower(event.EventType))

	err = r.ch.PublishWithContext(ctx, r.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   event.EventTimestamp,
		Headers: amqp.Table{
			"eventType": event.EventType,
			"bookingId": event.BookingID,
			"timestamp": event.EventTimestamp.UTC().Format(time.RFC3339),
		},
		Body: body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	r.logger.Info("Lifecycle event published",
		"eventType", event.EventType,
		"bookingId", event.BookingID,
		"routingKey", key)

	return nil
}

// Close closes the AMQP channel and connection
func (r *AmqpEventRepository) Close() error {
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
