package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueName is the durable queue booking events are routed to.
const QueueName = "hotel.bookings"

// AMQPPublisher publishes events over a single long-lived connection.
// A broken connection is redialled on the next Publish.
type AMQPPublisher struct {
	url string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher dials the broker and declares the booking queue.
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url}
	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("events.NewAMQPPublisher: %w", err)
	}
	return p, nil
}

// connect must be called with p.mu held (or before p is shared).
func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	ch, err := openChannel(conn)
	if err != nil {
		_ = conn.Close()
		return err
	}
	p.conn, p.ch = conn, ch
	return nil
}

func openChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("channel: %w", err)
	}
	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("queue declare: %w", err)
	}
	return ch, nil
}

// ready redials a dead connection, or reopens the channel when only the
// channel was closed by the broker. Called with p.mu held.
func (p *AMQPPublisher) ready() error {
	if p.conn == nil || p.conn.IsClosed() {
		return p.connect()
	}
	if p.ch == nil || p.ch.IsClosed() {
		ch, err := openChannel(p.conn)
		if err != nil {
			return err
		}
		p.ch = ch
	}
	return nil
}

// Publish sends ev as a persistent JSON message on the booking queue.
func (p *AMQPPublisher) Publish(ctx context.Context, ev BookingEvent) error {
	msg, err := publishing(ev)
	if err != nil {
		return fmt.Errorf("events.AMQPPublisher.Publish: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ready(); err != nil {
		return fmt.Errorf("events.AMQPPublisher.Publish: reconnect: %w", err)
	}
	// Default exchange: the routing key is the queue name.
	if err := p.ch.PublishWithContext(ctx, "", QueueName, false, false, msg); err != nil {
		return fmt.Errorf("events.AMQPPublisher.Publish: %w", err)
	}
	return nil
}

// publishing wraps ev in a persistent message whose id is the event's own.
func publishing(ev BookingEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Type:         string(ev.Type),
		MessageId:    ev.EventID.String(),
		Body:         body,
	}, nil
}

// Close shuts down the channel and connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Nop discards every event. It is used when no AMQP URL is configured.
type Nop struct{}

func (Nop) Publish(context.Context, BookingEvent) error { return nil }
