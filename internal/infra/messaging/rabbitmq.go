package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher publishes booking events to a durable topic exchange. The routing key is the event topic.
type RabbitPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitPublisher(cfg config.AMQPConfig) *RabbitPublisher {
	return &RabbitPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, topic string, messageID uuid.UUID, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		p.exchange, // exchange
		topic,      // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID.String(),
			Timestamp:    time.Now().UTC(),
			Type:         topic,
			Body:         payload,
		},
	)
	if err != nil {
		// drop the channel so the next publish redials
		p.closeLocked()
		return errs.Wrapf(err, "failed to publish %s", topic)
	}
	return nil
}

func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.closeLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open rabbitmq channel")
	}
	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to declare exchange %s", p.exchange)
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *RabbitPublisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *RabbitPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

// LogPublisher stands in for the broker when AMQP_URL is empty. Events are logged and acknowledged.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic string, messageID uuid.UUID, payload []byte) error {
	slog.Info("booking event", "topic", topic, "message_id", messageID.String(), "bytes", len(payload))
	return nil
}
