package pubsub

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

const defaultExchange = "rental.bookings"

// amqpChannel is the subset of *amqp.Channel used for publishing
type amqpChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// rabbitMQPublisher implements EventPublisher on a durable topic exchange.
// The routing key is the event type, e.g. booking.created.
type rabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
	logger   *slog.Logger
}

// DialRabbitMQPublisher connects to the broker and declares the exchange
func DialRabbitMQPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	if exchange == "" {
		exchange = defaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open channel")
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	return &rabbitMQPublisher{conn: conn, channel: ch, exchange: exchange, logger: logger}, nil
}

// PublishBookingEvent publishes a persistent JSON message. amqp publishing does not take a context.
func (p *rabbitMQPublisher) PublishBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
		Body:         data,
	}
	if event.RequestID != "" {
		msg.CorrelationId = event.RequestID
	}

	if err := p.channel.Publish(p.exchange, event.Type, false, false, msg); err != nil {
		return errors.Wrap(err, "failed to publish booking event")
	}

	p.logger.DebugContext(ctx, "[RabbitMQ] Event published",
		slog.String("exchange", p.exchange),
		slog.String("routing_key", event.Type),
		slog.String("booking_id", event.BookingID),
	)

	return nil
}

// Close closes the channel and then the connection
func (p *rabbitMQPublisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = errors.WithStack(err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = errors.WithStack(err)
		}
	}

	return firstErr
}
